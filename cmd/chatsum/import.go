package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gautham-gln/chatSummarizer/internal/analytics"
	"github.com/gautham-gln/chatSummarizer/internal/config"
	"github.com/gautham-gln/chatSummarizer/internal/ingest"
	"github.com/gautham-gln/chatSummarizer/internal/store"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import one exported chat log, replacing any previous import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			stats, err := ingest.ImportFile(db, loc, args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			for _, w := range stats.Warnings {
				fmt.Fprintf(os.Stderr, "  WARN: line %d: %v\n", w.LineNumber, w.Err)
			}

			fmt.Printf("Stored %d messages.\n", stats.Stored)

			msgs, err := db.ReadAll(loc)
			if err != nil {
				return fmt.Errorf("read messages: %w", err)
			}
			counts := analytics.CountPerSender(msgs)
			for _, s := range analytics.Senders(msgs) {
				fmt.Printf("  %s: %d\n", s, counts[s])
			}
			return nil
		},
	}
}
