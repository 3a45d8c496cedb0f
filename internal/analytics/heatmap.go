package analytics

import (
	"time"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

// Heatmap is a fixed 7x24 grid of message counts keyed by weekday
// (Sunday first) and hour of day. All cells start at zero.
type Heatmap [7][24]int

// HeatmapCell identifies one grid cell and its count.
type HeatmapCell struct {
	Weekday time.Weekday
	Hour    int
	Count   int
}

// WeeklyHeatmap accumulates every message into the global grid.
func WeeklyHeatmap(msgs []parse.Message) Heatmap {
	var hm Heatmap
	for _, m := range msgs {
		hm[int(m.Timestamp.Weekday())][m.Timestamp.Hour()]++
	}
	return hm
}

// WeeklyHeatmapPerSender builds one grid per sender. A sender's grid is
// created empty on their first message.
func WeeklyHeatmapPerSender(msgs []parse.Message) map[string]*Heatmap {
	grids := make(map[string]*Heatmap)
	for _, m := range msgs {
		hm, ok := grids[m.Sender]
		if !ok {
			hm = &Heatmap{}
			grids[m.Sender] = hm
		}
		hm[int(m.Timestamp.Weekday())][m.Timestamp.Hour()]++
	}
	return grids
}

// Peak finds the strictly largest cell, scanning Sunday..Saturday then
// hour 0..23 so the first-seen cell keeps ties. An all-zero grid has no
// peak.
func (hm Heatmap) Peak() *HeatmapCell {
	var best *HeatmapCell
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			if hm[d][h] == 0 {
				continue
			}
			if best == nil || hm[d][h] > best.Count {
				best = &HeatmapCell{
					Weekday: time.Weekday(d),
					Hour:    h,
					Count:   hm[d][h],
				}
			}
		}
	}
	return best
}

// Total sums every cell of the grid.
func (hm Heatmap) Total() int {
	n := 0
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			n += hm[d][h]
		}
	}
	return n
}
