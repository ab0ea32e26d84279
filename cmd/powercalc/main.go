package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"retro-power/internal/record"
	"retro-power/internal/report"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "powercalc",
		Short:         "Retrospective power analysis for reported metrics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := record.Default()
			if err != nil {
				return fmt.Errorf("load metrics: %w", err)
			}

			rows, err := report.Build(metrics)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), rows)
		},
	}
}
