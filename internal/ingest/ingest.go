// Package ingest drives one batch import: read the export file,
// normalize, parse, then replace the stored batch. A second import
// never interleaves with the first because each CLI invocation runs a
// single import to completion before any analytics read.
package ingest

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gautham-gln/chatSummarizer/internal/normalize"
	"github.com/gautham-gln/chatSummarizer/internal/parse"
	"github.com/gautham-gln/chatSummarizer/internal/store"
)

type Stats struct {
	Lines    int
	Parsed   int
	Stored   int
	Warnings []parse.Warning
}

func (s Stats) String() string {
	return fmt.Sprintf("lines=%d parsed=%d stored=%d warnings=%d",
		s.Lines, s.Parsed, s.Stored, len(s.Warnings))
}

// ImportFile ingests one chat export into the store, replacing any
// previously imported batch. The write fully commits before any
// subsequent read, so analytics never observe a partial import.
func ImportFile(db *store.DB, loc *time.Location, path string) (Stats, error) {
	var stats Stats

	raw, err := os.ReadFile(path)
	if err != nil {
		return stats, fmt.Errorf("read %s: %w", path, err)
	}

	cleaned := normalize.Clean(string(raw))
	stats.Lines = strings.Count(cleaned, "\n") + 1

	res := parse.Parse(cleaned, loc)
	stats.Parsed = len(res.Messages)
	stats.Warnings = res.Warnings

	stored, err := db.ReplaceAll(res.Messages)
	if err != nil {
		return stats, fmt.Errorf("store messages: %w", err)
	}
	stats.Stored = stored

	return stats, nil
}
