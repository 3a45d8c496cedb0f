package analytics

import (
	"time"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// Gap is the longest stretch of silence between two consecutive
// messages in chronological order.
type Gap struct {
	Duration time.Duration
	From     time.Time
	To       time.Time
}

// LongestGap finds the maximum gap between consecutive messages sorted
// by time. The comparison is strict, so the first-seen gap wins ties.
// Fewer than two messages yield no result.
func LongestGap(msgs []parse.Message) *Gap {
	if len(msgs) < 2 {
		return nil
	}

	sorted := SortByTime(msgs)
	var best *Gap
	for i := 1; i < len(sorted); i++ {
		d := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp)
		if best == nil || d > best.Duration {
			best = &Gap{
				Duration: d,
				From:     sorted[i-1].Timestamp,
				To:       sorted[i].Timestamp,
			}
		}
	}
	return best
}
