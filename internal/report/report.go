// Package report renders analytics results as ANSI text. The core
// stays agnostic to presentation: everything here consumes the plain
// result records from the analytics package.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/gautham-gln/chatSummarizer/internal/analytics"
	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue
	colorSender = "\033[1;32m" // bold green
	colorValue  = "\033[1;33m" // bold yellow
	colorDim    = "\033[2m"
)

// Options carries the tunable analytics thresholds.
type Options struct {
	DayStart     int
	NightStart   int
	MonologueMin time.Duration
	Color        bool
}

// Section is one titled block of the report.
type Section struct {
	Title string
	Body  string
}

// Render builds the full report as one string.
func Render(msgs []parse.Message, opts Options) string {
	var b strings.Builder
	for i, s := range Sections(msgs, opts) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(paint(opts, colorTitle, "=== "+s.Title+" ===") + "\n")
		b.WriteString(s.Body)
	}
	return b.String()
}

// Sections computes every analytic and renders one section per result.
func Sections(msgs []parse.Message, opts Options) []Section {
	return []Section{
		{Title: "Overview", Body: overview(msgs, opts)},
		{Title: "Messages per person", Body: messageCounts(msgs, opts)},
		{Title: "Average response time", Body: responseTimes(msgs, opts)},
		{Title: "Longest silence", Body: longestGap(msgs, opts)},
		{Title: "Day vs night", Body: dayNight(msgs, opts)},
		{Title: "Longest monologue", Body: monologue(msgs, opts)},
		{Title: "Hourly activity", Body: hourly(msgs, opts)},
		{Title: "Weekly heatmap", Body: heatmap(msgs, opts)},
		{Title: "Emoji", Body: emoji(msgs, opts)},
		{Title: "Streaks", Body: streaks(msgs, opts)},
	}
}

func paint(opts Options, color, s string) string {
	if !opts.Color {
		return s
	}
	return color + s + colorReset
}

// fmtDuration renders a duration as d/h/m parts, minute resolution.
func fmtDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Minute)
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	mins := int(d % time.Hour / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	return strings.Join(parts, " ")
}

const timeLayout = "2006-01-02 15:04"
const dayLayout = "2006-01-02"

// senderColumn pads senders to a common display width so the value
// column lines up, using runewidth for non-ASCII names.
func senderColumn(senders []string) func(string) string {
	max := 0
	for _, s := range senders {
		if w := runewidth.StringWidth(s); w > max {
			max = w
		}
	}
	return func(s string) string {
		return runewidth.FillRight(s, max)
	}
}

func overview(msgs []parse.Message, opts Options) string {
	if len(msgs) == 0 {
		return "No messages imported. Run 'chatsum import <file>' first.\n"
	}
	sorted := analytics.SortByTime(msgs)
	first := sorted[0].Timestamp
	last := sorted[len(sorted)-1].Timestamp
	return fmt.Sprintf("%d messages from %d senders, %s to %s\n",
		len(msgs), len(analytics.Senders(msgs)),
		first.Format(dayLayout), last.Format(dayLayout))
}

func messageCounts(msgs []parse.Message, opts Options) string {
	counts := analytics.CountPerSender(msgs)
	senders := analytics.Senders(msgs)
	if len(senders) == 0 {
		return "(none)\n"
	}

	pad := senderColumn(senders)
	var b strings.Builder
	for _, s := range senders {
		fmt.Fprintf(&b, "%s  %s\n",
			paint(opts, colorSender, pad(s)),
			paint(opts, colorValue, fmt.Sprintf("%d", counts[s])))
	}
	return b.String()
}

func responseTimes(msgs []parse.Message, opts Options) string {
	stats := analytics.AverageResponseTime(msgs)
	senders := analytics.Senders(msgs)

	pad := senderColumn(senders)
	var b strings.Builder
	for _, s := range senders {
		st, ok := stats[s]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s  %s %s\n",
			paint(opts, colorSender, pad(s)),
			paint(opts, colorValue, fmtDuration(st.Average())),
			paint(opts, colorDim, fmt.Sprintf("(%d replies)", st.Count)))
	}
	if b.Len() == 0 {
		return "Not enough back-and-forth to measure.\n"
	}
	return b.String()
}

func longestGap(msgs []parse.Message, opts Options) string {
	gap := analytics.LongestGap(msgs)
	if gap == nil {
		return "Need at least two messages.\n"
	}
	return fmt.Sprintf("%s, from %s to %s\n",
		paint(opts, colorValue, fmtDuration(gap.Duration)),
		gap.From.Format(timeLayout), gap.To.Format(timeLayout))
}

func dayNight(msgs []parse.Message, opts Options) string {
	dn := analytics.DayVsNight(msgs, opts.DayStart, opts.NightStart)
	return fmt.Sprintf("Day (%02d:00-%02d:00): %d (%.1f%%)\nNight: %d (%.1f%%)\n",
		opts.DayStart, opts.NightStart,
		dn.DayCount, dn.DayPct, dn.NightCount, dn.NightPct)
}

func monologue(msgs []parse.Message, opts Options) string {
	m := analytics.LongestMonologue(msgs, opts.MonologueMin)
	if m == nil {
		return fmt.Sprintf("No monologue of %s or longer.\n", fmtDuration(opts.MonologueMin))
	}
	return fmt.Sprintf("%s talked for %s (%d messages, %s to %s)\n",
		paint(opts, colorSender, m.Sender),
		paint(opts, colorValue, fmtDuration(m.Duration)),
		m.MessageCount,
		m.From.Format(timeLayout), m.To.Format(timeLayout))
}

func hourly(msgs []parse.Message, opts Options) string {
	buckets, peak := analytics.HourlyDistribution(msgs)
	if peak == nil {
		return "(no activity)\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Most active: %s (%d messages)\n",
		paint(opts, colorValue, peak.Label), peak.Count)
	for _, bucket := range buckets {
		if bucket.Count == 0 {
			continue
		}
		bar := strings.Repeat("#", scaleBar(bucket.Count, peak.Count, 40))
		fmt.Fprintf(&b, "%s %4d %s\n", bucket.Label, bucket.Count,
			paint(opts, colorDim, bar))
	}
	return b.String()
}

// scaleBar maps count onto a bar of at most width characters, with a
// minimum of one for any non-zero count.
func scaleBar(count, max, width int) int {
	if count <= 0 || max <= 0 {
		return 0
	}
	n := count * width / max
	if n < 1 {
		n = 1
	}
	return n
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// intensity ramps a cell count against the grid peak.
var intensity = []rune{' ', '.', ':', '*', '#'}

func heatmap(msgs []parse.Message, opts Options) string {
	hm := analytics.WeeklyHeatmap(msgs)
	peak := hm.Peak()
	if peak == nil {
		return "(no activity)\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Peak: %s %s (%d messages)\n",
		paint(opts, colorValue, peak.Weekday.String()), analytics.HourLabel(peak.Hour), peak.Count)

	b.WriteString("     ")
	for h := 0; h < 24; h += 3 {
		fmt.Fprintf(&b, "%-3d", h)
	}
	b.WriteString("\n")
	for d := 0; d < 7; d++ {
		fmt.Fprintf(&b, "%s  ", weekdayNames[d])
		for h := 0; h < 24; h++ {
			level := scaleBar(hm[d][h], peak.Count, len(intensity)-1)
			b.WriteRune(intensity[level])
		}
		b.WriteString("\n")
	}

	perSender := analytics.WeeklyHeatmapPerSender(msgs)
	pad := senderColumn(analytics.Senders(msgs))
	for _, s := range analytics.Senders(msgs) {
		if p := perSender[s].Peak(); p != nil {
			fmt.Fprintf(&b, "%s  peak %s %s (%d)\n",
				paint(opts, colorSender, pad(s)),
				p.Weekday.String(), analytics.HourLabel(p.Hour), p.Count)
		}
	}
	return b.String()
}

func emoji(msgs []parse.Message, opts Options) string {
	top := analytics.MostUsedEmoji(msgs)
	senders := analytics.Senders(msgs)
	if len(senders) == 0 {
		return "(none)\n"
	}

	pad := senderColumn(senders)
	var b strings.Builder
	for _, s := range senders {
		t := top[s]
		if t.Count == 0 {
			fmt.Fprintf(&b, "%s  %s\n",
				paint(opts, colorSender, pad(s)),
				paint(opts, colorDim, "no emoji"))
			continue
		}
		fmt.Fprintf(&b, "%s  %s x%d\n",
			paint(opts, colorSender, pad(s)), t.Emoji, t.Count)
	}
	return b.String()
}

func streaks(msgs []parse.Message, opts Options) string {
	curr := analytics.CurrentStreak(msgs)
	longest := analytics.LongestStreak(msgs)
	if longest.Length == 0 {
		return "No active days.\n"
	}
	return fmt.Sprintf("Current: %s\nLongest: %s\n",
		fmtStreak(curr), fmtStreak(longest))
}

func fmtStreak(s analytics.Streak) string {
	if s.Length == 0 {
		return "0 days"
	}
	noun := "days"
	if s.Length == 1 {
		noun = "day"
	}
	return fmt.Sprintf("%d %s (%s to %s)", s.Length, noun,
		s.StartDay.Format(dayLayout), s.EndDay.Format(dayLayout))
}
