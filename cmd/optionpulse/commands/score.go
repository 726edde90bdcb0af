package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nravi/optionpulse/internal/marketdata"
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Run one scoring pass and print the verdict",
	Long: `Fetches live indicator values, scores market sentiment and prints the
factor breakdown, the trade recommendation and the per-factor advisory.

Advance/decline counts have no automated source and must be passed as flags
to contribute to the score.

Example:
  go run ./cmd/optionpulse score
  go run ./cmd/optionpulse score --advances 32 --declines 18
  go run ./cmd/optionpulse score --vix 14.2 --pcr 1.15`,
	RunE: runScore,
}

var (
	scoreVIX      float64
	scorePCR      float64
	scoreAdvances int
	scoreDeclines int
	scoreTimeout  time.Duration
)

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().Float64Var(&scoreVIX, "vix", 0, "manual volatility index override")
	scoreCmd.Flags().Float64Var(&scorePCR, "pcr", 0, "manual put/call OI ratio override")
	scoreCmd.Flags().IntVar(&scoreAdvances, "advances", 0, "advancing issues count")
	scoreCmd.Flags().IntVar(&scoreDeclines, "declines", 0, "declining issues count")
	scoreCmd.Flags().DurationVar(&scoreTimeout, "timeout", 60*time.Second, "fetch timeout")
}

func runScore(cmd *cobra.Command, args []string) error {
	fmt.Println("=== OptionPulse Scoring Run ===")

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	overrides := marketdata.Overrides{}
	if cmd.Flags().Changed("vix") {
		v := scoreVIX
		overrides.VolatilityIndex = &v
	}
	if cmd.Flags().Changed("pcr") {
		v := scorePCR
		overrides.PutCallRatio = &v
	}
	if cmd.Flags().Changed("advances") {
		v := scoreAdvances
		overrides.Advances = &v
	}
	if cmd.Flags().Changed("declines") {
		v := scoreDeclines
		overrides.Declines = &v
	}

	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	outcome, err := rt.runner.Run(ctx, overrides)
	if err != nil {
		return fmt.Errorf("scoring run failed: %w", err)
	}

	printOutcome(outcome)
	return nil
}
