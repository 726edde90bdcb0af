package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show market phase and live indicator values",
	Long: `Prints the current market phase and the resolved live values for each
indicator family, without running a scoring pass.

Example:
  go run ./cmd/optionpulse status`,
	RunE: runStatus,
}

var statusTimeout time.Duration

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 60*time.Second, "fetch timeout")
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== OptionPulse Market Status ===")

	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	phase, warning := rt.clock.CurrentPhase()
	fmt.Printf("\nPhase: %s\n", phase)
	if warning != "" {
		fmt.Printf("Note:  %s\n", warning)
	}

	vix := rt.service.VolatilityIndex(ctx)
	fmt.Printf("\nVolatility index : %s\n", formatValue(vix, "%.2f"))

	ratio, oi := rt.service.OIRatio(ctx)
	fmt.Printf("Put/call OI ratio: %s\n", formatValue(ratio, "%.3f"))
	if oi != nil {
		expiry := time.Unix(oi.Expiry, 0).UTC().Format("2006-01-02")
		fmt.Printf("  Expiry %s, PUT OI %d, CALL OI %d, spot %.2f\n", expiry, oi.PutOI, oi.CallOI, oi.Spot)
	}

	fmt.Println("\nBasket changes:")
	printChanges(rt.service.BasketChanges(ctx))

	fmt.Println("\nSector changes:")
	printChanges(rt.service.SectorChanges(ctx))

	return nil
}

func printChanges(changes map[string]*float64) {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("  %-16s %s\n", k, formatValue(changes[k], "%+.2f%%"))
	}
}

func formatValue(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}
