package analytics

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// pictographic covers the Unicode blocks holding emoji and pictographic
// symbols. A grapheme cluster whose leading rune falls in one of these
// ranges is counted as a single emoji, which keeps ZWJ sequences and
// skin-tone modifiers together.
var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // arrows, stars
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental pictographs
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // extended-A
	},
}

// TopEmoji is one sender's most used emoji. Emoji is empty and Count
// zero for senders who never used one.
type TopEmoji struct {
	Emoji string
	Count int
}

// extractEmoji returns the emoji grapheme clusters of s in order.
func extractEmoji(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) > 0 && unicode.Is(pictographic, runes[0]) {
			out = append(out, g.Str())
		}
	}
	return out
}

// EmojiUsage tallies per sender how often each distinct emoji appears
// in their message bodies. Messages without emoji contribute nothing.
func EmojiUsage(msgs []parse.Message) map[string]map[string]int {
	usage := make(map[string]map[string]int)
	for _, m := range msgs {
		for _, e := range extractEmoji(m.Body) {
			if usage[m.Sender] == nil {
				usage[m.Sender] = make(map[string]int)
			}
			usage[m.Sender][e]++
		}
	}
	return usage
}

// MostUsedEmoji reports every sender's top emoji. The strictly highest
// count wins; ties keep the emoji first encountered in message order.
// Senders without any emoji are still reported, with a zero entry.
func MostUsedEmoji(msgs []parse.Message) map[string]TopEmoji {
	counts := make(map[string]map[string]int)
	order := make(map[string][]string)

	for _, m := range msgs {
		for _, e := range extractEmoji(m.Body) {
			if counts[m.Sender] == nil {
				counts[m.Sender] = make(map[string]int)
			}
			if counts[m.Sender][e] == 0 {
				order[m.Sender] = append(order[m.Sender], e)
			}
			counts[m.Sender][e]++
		}
	}

	top := make(map[string]TopEmoji)
	for _, sender := range Senders(msgs) {
		var best TopEmoji
		for _, e := range order[sender] {
			if counts[sender][e] > best.Count {
				best = TopEmoji{Emoji: e, Count: counts[sender][e]}
			}
		}
		top[sender] = best
	}
	return top
}
