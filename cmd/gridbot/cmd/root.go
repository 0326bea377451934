package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridbot",
	Short: "A deterministic grid trading backtester",
	Long: `Gridbot replays a grid trading strategy over a historical candle series
and produces a complete trade ledger and performance summary.

It provides tools for:
  - Backtesting a grid strategy against candle CSV data
  - Generating deterministic synthetic candle series for experiments
  - Journaling finished runs to CSV or SQLite for later comparison`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}
