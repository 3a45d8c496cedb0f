package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gautham-gln/chatSummarizer/internal/analytics"
	"github.com/gautham-gln/chatSummarizer/internal/config"
	"github.com/gautham-gln/chatSummarizer/internal/store"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, DB, and show store stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Timezone:  %s\n", cfg.Timezone)
			fmt.Printf("  Day/night: %02d:00 / %02d:00\n", cfg.DayStartHour, cfg.NightStartHour)
			fmt.Printf("  Monologue: %s\n", cfg.MonologueThreshold())

			loc, err := cfg.Location()
			if err != nil {
				fmt.Printf("  Timezone error: %v\n", err)
				return nil
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chatsum import' first)")
				return nil
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			count, err := db.Count()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}
			fmt.Printf("  Messages: %d\n", count)

			msgs, err := db.ReadAll(loc)
			if err != nil {
				return fmt.Errorf("read messages: %w", err)
			}
			fmt.Printf("  Senders:  %d\n", len(analytics.Senders(msgs)))

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}
}
