package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "optionpulse",
	Short: "Intraday market sentiment engine for index option sellers",
	Long: `OptionPulse

Scores intraday market sentiment from five indicator families (volatility
index, large-cap basket breadth, put/call open interest, advance/decline,
sector breadth) and turns the score into an option-selling recommendation.

Usage:
  go run ./cmd/optionpulse [command]

Examples:
  go run ./cmd/optionpulse api
  go run ./cmd/optionpulse score --advances 30 --declines 20
  go run ./cmd/optionpulse status`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
