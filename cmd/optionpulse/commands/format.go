package commands

import (
	"fmt"

	"github.com/nravi/optionpulse/internal/pipeline"
)

// printOutcome prints the factor breakdown, verdict and advisory for one
// scoring run
func printOutcome(outcome *pipeline.Outcome) {
	report := outcome.Report

	fmt.Println()
	fmt.Println("───────────────────────────────────────────────")
	fmt.Printf("  Volatility : %s\n", report.Volatility.Label)
	if report.Volatility.Blocked {
		fmt.Println("  Filter     : BLOCKED, selling suppressed")
	} else if report.Volatility.Adjustment != 0 {
		fmt.Printf("  Filter     : %+.1f adjustment\n", report.Volatility.Adjustment)
	}
	fmt.Println("───────────────────────────────────────────────")

	for _, f := range report.Factors {
		fmt.Printf("  %-16s %5.1f  %-8s %s\n", f.Name, f.Points, f.Direction, f.Label)
	}

	fmt.Println("───────────────────────────────────────────────")
	fmt.Printf("  Score      : %.1f (raw %.1f, zone %s)\n", report.FinalScore, report.RawScore, outcome.GaugeZone)
	fmt.Printf("  Phase      : %s\n", outcome.MarketPhase)
	if outcome.PhaseWarning != "" {
		fmt.Printf("  Warning    : %s\n", outcome.PhaseWarning)
	}

	rec := outcome.Recommendation
	fmt.Println("───────────────────────────────────────────────")
	if rec.IsDirectional() {
		fmt.Printf("  Verdict    : %s (sell %s)\n", rec.Kind, rec.Side)
	} else {
		fmt.Printf("  Verdict    : %s\n", rec.Kind)
	}
	fmt.Printf("  Delta band : %s\n", rec.DeltaBand)
	fmt.Printf("  Message    : %s\n", rec.Message)

	fmt.Println("───────────────────────────────────────────────")
	fmt.Println("  Advisory:")
	for _, a := range outcome.Advisory.Advices {
		if a.DeltaBand != "" {
			fmt.Printf("    %-16s %s (%s)\n", a.Factor, a.Action, a.DeltaBand)
		} else {
			fmt.Printf("    %-16s %s\n", a.Factor, a.Action)
		}
	}
	fmt.Printf("  Votes: ")
	for action, n := range outcome.Advisory.Votes {
		fmt.Printf("%s=%d ", action, n)
	}
	fmt.Println()
	fmt.Println("───────────────────────────────────────────────")
}
