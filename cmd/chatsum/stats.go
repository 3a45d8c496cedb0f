package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gautham-gln/chatSummarizer/internal/config"
	"github.com/gautham-gln/chatSummarizer/internal/report"
	"github.com/gautham-gln/chatSummarizer/internal/store"
	"github.com/gautham-gln/chatSummarizer/internal/tui"
)

func statsCmd() *cobra.Command {
	var dayStart, nightStart int
	var monologueHours float64
	var plain bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute and display insights over the imported chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("day-start") {
				dayStart = cfg.DayStartHour
			}
			if !cmd.Flags().Changed("night-start") {
				nightStart = cfg.NightStartHour
			}
			minDuration := cfg.MonologueThreshold()
			if cmd.Flags().Changed("monologue-hours") {
				minDuration = time.Duration(monologueHours * float64(time.Hour))
			}

			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			msgs, err := db.ReadAll(loc)
			if err != nil {
				return fmt.Errorf("read messages: %w", err)
			}

			isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
			opts := report.Options{
				DayStart:     dayStart,
				NightStart:   nightStart,
				MonologueMin: minDuration,
				Color:        isTerminal,
			}

			// Interactive TUI when stdout is a terminal; plain text for pipes.
			if !plain && isTerminal {
				opts.Color = false
				return tui.Run(report.Sections(msgs, opts))
			}

			fmt.Print(report.Render(msgs, opts))
			return nil
		},
	}

	cmd.Flags().IntVar(&dayStart, "day-start", 6, "Hour daytime begins (0-23)")
	cmd.Flags().IntVar(&nightStart, "night-start", 18, "Hour nighttime begins (0-23)")
	cmd.Flags().Float64Var(&monologueHours, "monologue-hours", 3, "Minimum monologue duration in hours")
	cmd.Flags().BoolVar(&plain, "plain", false, "Force plain text output")

	return cmd
}
