package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/harbor/analysis"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [price...]",
	Short: "Run technical indicators over a price series",
	Long: `Run SMA, RSI, and support/resistance detection over a price series.

Prices are given oldest first. Indicators that need more data than
the series provides report that instead of failing.

Examples:
  harbor analyze 100 102 101 103 105 104 106 108 107 109
  harbor analyze 100 102 101 103 105 --period 3 --rsi-period 3
  harbor analyze 5 3 4 2 4 3 5 --window 1`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	prices := make([]float64, 0, len(args))
	for _, arg := range args {
		p, err := parseFloat(arg)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", arg, err)
		}
		prices = append(prices, p)
	}

	period, _ := cmd.Flags().GetInt("period")
	rsiPeriod, _ := cmd.Flags().GetInt("rsi-period")
	window, _ := cmd.Flags().GetInt("window")

	fmt.Println("📊 Price Analysis")
	fmt.Printf("   Samples: %d\n", len(prices))
	fmt.Println()

	sma := analysis.SMA(prices, period)
	if len(sma) == 0 {
		fmt.Printf("   SMA(%d): needs at least %d samples\n", period, period)
	} else {
		fmt.Printf("   SMA(%d): %.4f latest, %d values\n", period, sma[len(sma)-1], len(sma))
	}

	rsi := analysis.RSI(prices, rsiPeriod)
	if len(rsi) == 0 {
		fmt.Printf("   RSI(%d): needs at least %d samples\n", rsiPeriod, rsiPeriod+1)
	} else {
		fmt.Printf("   RSI(%d): %s\n", rsiPeriod, rsiString(rsi[len(rsi)-1]))
	}

	levels := analysis.SupportResistance(prices, window)
	fmt.Printf("   Support:    %s\n", formatLevels(levels.Support))
	fmt.Printf("   Resistance: %s\n", formatLevels(levels.Resistance))
	return nil
}

func rsiString(value float64) string {
	switch {
	case value >= 70:
		return color.RedString("%.2f (overbought)", value)
	case value <= 30:
		return color.GreenString("%.2f (oversold)", value)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

func formatLevels(levels []float64) string {
	if len(levels) == 0 {
		return "none found"
	}
	parts := make([]string, len(levels))
	for i, level := range levels {
		parts[i] = fmt.Sprintf("%.2f", level)
	}
	return strings.Join(parts, ", ")
}

func init() {
	analyzeCmd.Flags().Int("period", 5, "SMA window size")
	analyzeCmd.Flags().Int("rsi-period", analysis.DefaultRSIPeriod, "RSI period")
	analyzeCmd.Flags().Int("window", analysis.DefaultLevelWindow, "Support/resistance neighbor window")
}
