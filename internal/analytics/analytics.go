// Package analytics computes descriptive statistics over an ordered
// chat message sequence. Every function is pure: inputs are never
// mutated and results are recomputed per call.
package analytics

import (
	"sort"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// SortByTime returns a new slice sorted ascending by timestamp. The
// sort is stable so equal timestamps keep their original relative
// order; the input is left untouched.
func SortByTime(msgs []parse.Message) []parse.Message {
	sorted := make([]parse.Message, len(msgs))
	copy(sorted, msgs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// CountPerSender tallies messages per sender. Empty input yields an
// empty map.
func CountPerSender(msgs []parse.Message) map[string]int {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Sender]++
	}
	return counts
}

// Senders returns the distinct senders in first-seen order, for
// deterministic rendering of per-sender results.
func Senders(msgs []parse.Message) []string {
	seen := make(map[string]bool)
	var senders []string
	for _, m := range msgs {
		if !seen[m.Sender] {
			seen[m.Sender] = true
			senders = append(senders, m.Sender)
		}
	}
	return senders
}
