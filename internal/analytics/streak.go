package analytics

import (
	"sort"
	"time"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// Streak is a run of consecutive calendar days that each saw at least
// one message. Bounds are midnights in the corpus timezone; a zero
// Length means no activity at all.
type Streak struct {
	Length   int
	StartDay time.Time
	EndDay   time.Time
}

// activeDays reduces messages to their distinct local calendar days,
// sorted ascending.
func activeDays(msgs []parse.Message) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, m := range msgs {
		t := m.Timestamp
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// nextDay reports whether b is exactly the calendar day after a.
// AddDate is used instead of a 24h offset so DST transitions don't
// break a run.
func nextDay(a, b time.Time) bool {
	return a.AddDate(0, 0, 1).Equal(b)
}

// CurrentStreak returns the trailing run of consecutive active days
// ending at the most recent one, scanning backward until the first gap.
func CurrentStreak(msgs []parse.Message) Streak {
	days := activeDays(msgs)
	if len(days) == 0 {
		return Streak{}
	}

	end := len(days) - 1
	start := end
	for start > 0 && nextDay(days[start-1], days[start]) {
		start--
	}
	return Streak{
		Length:   end - start + 1,
		StartDay: days[start],
		EndDay:   days[end],
	}
}

// LongestStreak returns the best run of consecutive active days
// anywhere in the corpus. The strictly longest run wins; the first run
// found keeps ties. Requires at least one active day for a result.
func LongestStreak(msgs []parse.Message) Streak {
	days := activeDays(msgs)
	if len(days) == 0 {
		return Streak{}
	}

	best := Streak{Length: 1, StartDay: days[0], EndDay: days[0]}
	curr := best
	for i := 1; i < len(days); i++ {
		if nextDay(days[i-1], days[i]) {
			curr.Length++
			curr.EndDay = days[i]
		} else {
			curr = Streak{Length: 1, StartDay: days[i], EndDay: days[i]}
		}
		if curr.Length > best.Length {
			best = curr
		}
	}
	return best
}
