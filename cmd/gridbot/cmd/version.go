package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the gridbot CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridbot version %s\n", version)
		fmt.Println("A deterministic grid-trading backtest engine")
		fmt.Println("https://github.com/evogt/gridbot")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
