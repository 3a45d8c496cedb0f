package analytics

import (
	"fmt"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// HourBucket is one half-open hour range of the daily distribution.
type HourBucket struct {
	Hour  int
	Label string // e.g. "09:00 - 10:00", wrapping "23:00 - 00:00"
	Count int
}

// HourLabel formats the half-open range label for an hour of day.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", hour, (hour+1)%24)
}

// HourlyDistribution buckets messages by local hour into 24 labeled
// ranges and picks the strictly most active one, scanning hours in
// ascending order so the earliest hour keeps ties. Zero messages yield
// a nil distribution and no peak bucket.
func HourlyDistribution(msgs []parse.Message) ([]HourBucket, *HourBucket) {
	if len(msgs) == 0 {
		return nil, nil
	}

	var counts [24]int
	for _, m := range msgs {
		counts[m.Timestamp.Hour()]++
	}

	buckets := make([]HourBucket, 24)
	var peak *HourBucket
	for h := 0; h < 24; h++ {
		buckets[h] = HourBucket{Hour: h, Label: HourLabel(h), Count: counts[h]}
		if peak == nil || buckets[h].Count > peak.Count {
			b := buckets[h]
			peak = &b
		}
	}
	return buckets, peak
}
