package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gautham-gln/chatSummarizer/internal/config"
	"github.com/gautham-gln/chatSummarizer/internal/store"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored messages and reinitialize the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if err := db.Reset(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}

			fmt.Println("Store reset.")
			return nil
		},
	}
}
