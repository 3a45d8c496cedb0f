package analytics

import "github.com/gautham-gln/chatSummarizer/internal/parse"

// DayNight splits the corpus into daytime and nighttime activity.
// Percentages sum to exactly 100 for any non-empty input.
type DayNight struct {
	DayCount   int
	NightCount int
	DayPct     float64
	NightPct   float64
}

// DayVsNight classifies each message by its local hour: [dayStart,
// nightStart) counts as day, everything else as night. Zero messages
// yield a zero ratio rather than a division by zero.
func DayVsNight(msgs []parse.Message, dayStart, nightStart int) DayNight {
	var res DayNight
	for _, m := range msgs {
		h := m.Timestamp.Hour()
		if h >= dayStart && h < nightStart {
			res.DayCount++
		} else {
			res.NightCount++
		}
	}

	total := res.DayCount + res.NightCount
	if total == 0 {
		return res
	}
	res.DayPct = float64(res.DayCount) * 100 / float64(total)
	res.NightPct = 100 - res.DayPct
	return res
}
