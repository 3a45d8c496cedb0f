package analytics

import (
	"time"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// ResponseStats accumulates reply gaps attributed to one sender.
type ResponseStats struct {
	Total time.Duration
	Count int
}

// Average returns Total/Count. Count is always positive for any sender
// present in the result map.
func (r ResponseStats) Average() time.Duration {
	return r.Total / time.Duration(r.Count)
}

// AverageResponseTime measures how quickly each sender replies. After
// sorting by time, every adjacent pair where the sender changes and the
// gap is non-negative attributes that gap to the later sender. Negative
// gaps from out-of-order source timestamps are excluded outright, not
// clamped. Senders with no attributed gaps are omitted.
func AverageResponseTime(msgs []parse.Message) map[string]ResponseStats {
	sorted := SortByTime(msgs)
	stats := make(map[string]ResponseStats)

	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if curr.Sender == prev.Sender {
			continue
		}
		gap := curr.Timestamp.Sub(prev.Timestamp)
		if gap < 0 {
			continue
		}
		s := stats[curr.Sender]
		s.Total += gap
		s.Count++
		stats[curr.Sender] = s
	}
	return stats
}
