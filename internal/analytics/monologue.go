package analytics

import (
	"time"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// Monologue is a run of consecutive messages from one sender spanning
// at least the qualifying threshold.
type Monologue struct {
	Sender       string
	From         time.Time
	To           time.Time
	Duration     time.Duration
	MessageCount int
}

// LongestMonologue scans chronological runs of same-sender messages.
// A run's duration is last-message time minus first-message time, and
// it qualifies only at or above minDuration. The strictly longest
// qualifying run wins; the first-seen run keeps ties. Returns nil when
// there are no messages or no run qualifies.
func LongestMonologue(msgs []parse.Message, minDuration time.Duration) *Monologue {
	if len(msgs) == 0 {
		return nil
	}

	sorted := SortByTime(msgs)
	var best *Monologue

	consider := func(run Monologue) {
		if run.Duration < minDuration {
			return
		}
		if best == nil || run.Duration > best.Duration {
			r := run
			best = &r
		}
	}

	run := Monologue{
		Sender:       sorted[0].Sender,
		From:         sorted[0].Timestamp,
		To:           sorted[0].Timestamp,
		MessageCount: 1,
	}
	for _, m := range sorted[1:] {
		if m.Sender == run.Sender {
			run.To = m.Timestamp
			run.Duration = run.To.Sub(run.From)
			run.MessageCount++
			continue
		}
		consider(run)
		run = Monologue{
			Sender:       m.Sender,
			From:         m.Timestamp,
			To:           m.Timestamp,
			MessageCount: 1,
		}
	}
	consider(run)

	return best
}
