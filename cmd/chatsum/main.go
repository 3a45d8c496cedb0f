package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "chatsum",
		Short:   "Chat insights - import exported chat logs and summarize them",
		Version: version,
	}

	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
