package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chinmay1088/harbor/api"
	"github.com/chinmay1088/harbor/defi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a market snapshot",
	Long: `Export a snapshot of Base market data for record keeping.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format

Data exported:
  • Tracked Base tokens with USD prices
  • Yield farming opportunities
  • Current gas prices

Examples:
  harbor export                 # Export to CSV (default)
  harbor export --json          # Export to JSON
  harbor export --csv --json    # Export to both formats`,
	RunE: runExport,
}

var (
	csvFlag  bool
	jsonFlag bool
)

func init() {
	exportCmd.Flags().BoolVar(&csvFlag, "csv", false, "Export to CSV format")
	exportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Export to JSON format")
}

func runExport(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if !csvFlag && !jsonFlag {
		csvFlag = true
	}

	fmt.Printf("🌐 Current Network: %s\n", strings.ToUpper(client.Network()))
	fmt.Println("📊 Exporting market snapshot...")
	fmt.Println()

	snapshot := &Snapshot{
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Network:    client.Network(),
	}
	bar := progressbar.NewOptions(100,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/3][reset] Collecting market data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	// collect market data; price failures are warnings, not fatal
	bar.Set(0)
	collectTokenQuotes(client, snapshot, bar)
	collectFarmListings(snapshot)
	bar.Add(10)
	collectGasQuote(client, snapshot)
	bar.Add(10)

	bar.Set(70)
	bar.Describe("[cyan][2/3][reset] Preparing export files...")
	exportDir, err := prepareExportDirectory()
	if err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	bar.Set(85)
	bar.Describe("[cyan][3/3][reset] Writing export files...")
	if err := writeExportFiles(snapshot, exportDir, bar); err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}

	bar.Set(100)
	bar.Describe("[green][✓][reset] Export completed!")
	fmt.Println()

	fmt.Println("📁 Export completed successfully!")
	fmt.Printf("📍 Files saved to: %s\n", exportDir)
	fmt.Println()
	fmt.Println("📊 Export Summary:")
	fmt.Printf("   Network: %s\n", strings.ToUpper(snapshot.Network))
	fmt.Printf("   Tokens:  %d\n", len(snapshot.Tokens))
	fmt.Printf("   Farms:   %d\n", len(snapshot.Farms))
	fmt.Println()
	fmt.Println("💡 You can import these files into spreadsheet applications or use them for record keeping.")

	return nil
}

// Snapshot is the exported document
type Snapshot struct {
	ExportDate string                    `json:"export_date"`
	Network    string                    `json:"network"`
	Tokens     []TokenQuote              `json:"tokens"`
	Farms      []defi.FarmingOpportunity `json:"farms"`
	Gas        *GasQuote                 `json:"gas,omitempty"`
}

// TokenQuote is one priced token in the snapshot
type TokenQuote struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	USDPrice string `json:"usd_price"`
}

// GasQuote is the gas section of the snapshot
type GasQuote struct {
	FastGwei     float64 `json:"fast_gwei"`
	StandardGwei float64 `json:"standard_gwei"`
	SafeGwei     float64 `json:"safe_gwei"`
}

func collectTokenQuotes(client *api.Client, snapshot *Snapshot, bar *progressbar.ProgressBar) {
	for _, symbol := range defi.TokenSymbols() {
		token, _ := defi.TokenBySymbol(symbol)
		quote := TokenQuote{Symbol: token.Symbol, Name: token.Name}
		if !token.IsNative {
			quote.Address = token.Address
		}

		if token.IsNative {
			price, err := client.GetPrice("ethereum")
			if err == nil {
				quote.USDPrice = "$" + price.USD.StringFixed(2)
			} else {
				fmt.Printf("⚠️  Warning: failed to price %s: %v\n", token.Symbol, err)
			}
		} else {
			price, err := client.GetTokenPrice(token.Address)
			if err == nil {
				quote.USDPrice = "$" + price.USD.StringFixed(4)
			} else {
				fmt.Printf("⚠️  Warning: failed to price %s: %v\n", token.Symbol, err)
			}
		}
		if quote.USDPrice == "" {
			quote.USDPrice = "N/A"
		}

		snapshot.Tokens = append(snapshot.Tokens, quote)
		bar.Add(10)
	}
}

func collectFarmListings(snapshot *Snapshot) {
	snapshot.Farms = defi.FarmingOpportunities()
}

func collectGasQuote(client *api.Client, snapshot *Snapshot) {
	gas, err := client.GasPrices()
	if err != nil {
		fmt.Printf("⚠️  Warning: failed to fetch gas prices: %v\n", err)
		return
	}
	snapshot.Gas = &GasQuote{
		FastGwei:     gas.FastGwei,
		StandardGwei: gas.StandardGwei,
		SafeGwei:     gas.SafeGwei,
	}
}

func prepareExportDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	exportDir := filepath.Join(homeDir, ".harbor", "exports")
	if err := os.MkdirAll(exportDir, 0700); err != nil {
		return "", err
	}

	return exportDir, nil
}

func writeExportFiles(snapshot *Snapshot, exportDir string, bar *progressbar.ProgressBar) error {
	timestamp := time.Now().Format("20060102_150405")

	if csvFlag {
		if err := writeCSVExport(snapshot, exportDir, timestamp); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
		bar.Add(5)
	}

	if jsonFlag {
		if err := writeJSONExport(snapshot, exportDir, timestamp); err != nil {
			return fmt.Errorf("failed to write JSON export: %w", err)
		}
		bar.Add(5)
	}

	return nil
}

func writeCSVExport(snapshot *Snapshot, exportDir, timestamp string) error {
	filename := filepath.Join(exportDir, fmt.Sprintf("harbor_%s_%s.csv", snapshot.Network, timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Network", "Data Type", "Details"}); err != nil {
		return err
	}

	for _, token := range snapshot.Tokens {
		detail := fmt.Sprintf("%s (%s): %s", token.Name, token.Symbol, token.USDPrice)
		if token.Address != "" {
			detail += " | Contract: " + token.Address
		}
		if err := writer.Write([]string{snapshot.Network, "Token", detail}); err != nil {
			return err
		}
	}

	for _, farm := range snapshot.Farms {
		if err := writer.Write([]string{
			snapshot.Network,
			"Farm",
			fmt.Sprintf("%s %s | APY: %.2f%% | TVL: $%.0f | Risk: %s | Pool: %s",
				farm.Protocol, farm.Pair, farm.APY, farm.TVLUSD, farm.RiskLevel, farm.PoolAddress),
		}); err != nil {
			return err
		}
	}

	if snapshot.Gas != nil {
		if err := writer.Write([]string{
			snapshot.Network,
			"Gas",
			fmt.Sprintf("Fast: %.4f gwei | Standard: %.4f gwei | Safe: %.4f gwei",
				snapshot.Gas.FastGwei, snapshot.Gas.StandardGwei, snapshot.Gas.SafeGwei),
		}); err != nil {
			return err
		}
	}

	return nil
}

func writeJSONExport(snapshot *Snapshot, exportDir, timestamp string) error {
	jsonFile := filepath.Join(exportDir, fmt.Sprintf("harbor_%s_%s.json", snapshot.Network, timestamp))

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(jsonFile, data, 0600)
}
