package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export balances and transaction history",
	Long: `Export the balances and the full transaction history of the wallet.

Transactions are fetched in block chunks; --rate limits how many requests
per second are sent to walletd.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format

Examples:
  walletd-cli export                       # Export to CSV (default)
  walletd-cli export --json                # Export to JSON
  walletd-cli export --csv --json --dir .  # Both formats into the current directory`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// ExportData is the content of an export
type ExportData struct {
	ExportDate   string            `json:"export_date"`
	Endpoint     string            `json:"endpoint"`
	BlockCount   uint64            `json:"block_count"`
	Balances     []BalanceData     `json:"balances"`
	Transactions []TransactionData `json:"transactions"`
}

type BalanceData struct {
	Address   string `json:"address"`
	Available string `json:"available"`
	Locked    string `json:"locked"`
}

type TransactionData struct {
	Hash       string `json:"hash"`
	BlockIndex uint64 `json:"block_index"`
	Timestamp  string `json:"timestamp"`
	Direction  string `json:"direction"`
	Amount     string `json:"amount"`
	Fee        string `json:"fee"`
	PaymentID  string `json:"payment_id,omitempty"`
	Coinbase   bool   `json:"coinbase"`
}

// exporter pulls export data from walletd
type exporter struct {
	client   *api.Client
	limiter  *rate.Limiter
	chunk    uint64
	decimals int32
	// progress is called with the number of blocks processed so far
	progress func(blocks uint64)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	csvFlag, _ := flags.GetBool("csv")
	jsonFlag, _ := flags.GetBool("json")
	if !csvFlag && !jsonFlag {
		csvFlag = true
	}
	chunk, _ := flags.GetUint64("chunk")
	if chunk == 0 {
		return fmt.Errorf("--chunk must be greater than zero")
	}
	perSecond, _ := flags.GetFloat64("rate")

	exportDir, _ := flags.GetString("dir")
	if exportDir == "" {
		exportDir = filepath.Join(s.manager.Dir(), "exports")
	}

	status, err := result[api.StatusResult](s.client.GetStatus(cmd.Context()))
	if err != nil {
		return err
	}

	fmt.Println("📊 Preparing export data...")
	bar := progressbar.NewOptions64(int64(status.KnownBlockCount),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Collecting transactions..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	e := &exporter{
		client:   s.client,
		limiter:  rate.NewLimiter(limit, 1),
		chunk:    chunk,
		decimals: s.profile.Decimals,
		progress: func(blocks uint64) { bar.Set64(int64(blocks)) },
	}

	exportData, err := e.collect(cmd.Context(), status.KnownBlockCount)
	if err != nil {
		return fmt.Errorf("failed to collect data: %w", err)
	}

	bar.Describe("[cyan][2/2][reset] Writing export files...")
	files, err := writeExportFiles(exportData, exportDir, csvFlag, jsonFlag)
	if err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}
	bar.Describe("[green][✓][reset] Export completed!")
	fmt.Println()
	fmt.Println()

	fmt.Println("📁 Export completed successfully!")
	for _, file := range files {
		fmt.Printf("📍 %s\n", file)
	}
	fmt.Println()
	fmt.Println("📊 Export Summary:")
	fmt.Printf("   Addresses: %d\n", len(exportData.Balances))
	fmt.Printf("   Transactions: %d\n", len(exportData.Transactions))
	return nil
}

// collect gathers balances and every transaction in blocks [0, blockCount)
func (e *exporter) collect(ctx context.Context, blockCount uint64) (*ExportData, error) {
	exportData := &ExportData{
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Endpoint:   e.client.Endpoint(),
		BlockCount: blockCount,
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	addresses, err := result[api.AddressesResult](e.client.GetAddresses(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	for _, address := range addresses.Addresses {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		balance, err := result[api.BalanceResult](e.client.GetBalance(ctx, address))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch balance of %s: %w", address, err)
		}
		exportData.Balances = append(exportData.Balances, BalanceData{
			Address:   address,
			Available: wallet.FormatAmount(balance.AvailableBalance, e.decimals),
			Locked:    wallet.FormatAmount(balance.LockedAmount, e.decimals),
		})
	}

	for first := uint64(0); first < blockCount; first += e.chunk {
		count := min(e.chunk, blockCount-first)

		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		transactions, err := fetchTransactions(ctx, e.client, api.TransactionQuery{
			FirstBlockIndex: first,
			BlockCount:      count,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch blocks %d-%d: %w", first, first+count-1, err)
		}

		for _, tx := range transactions {
			exportData.Transactions = append(exportData.Transactions, e.transactionData(tx))
		}

		if e.progress != nil {
			e.progress(first + count)
		}
	}

	return exportData, nil
}

func (e *exporter) transactionData(tx api.Transaction) TransactionData {
	direction := "IN"
	if tx.Amount < 0 {
		direction = "OUT"
	}

	var timestamp string
	if tx.Timestamp > 0 {
		timestamp = time.Unix(int64(tx.Timestamp), 0).UTC().Format("2006-01-02 15:04:05")
	}

	return TransactionData{
		Hash:       tx.TransactionHash,
		BlockIndex: tx.BlockIndex,
		Timestamp:  timestamp,
		Direction:  direction,
		Amount:     wallet.FormatSignedAmount(tx.Amount, e.decimals),
		Fee:        wallet.FormatAmount(tx.Fee, e.decimals),
		PaymentID:  tx.PaymentID,
		Coinbase:   tx.IsBase,
	}
}

// writeExportFiles writes the requested formats and returns the created paths
func writeExportFiles(exportData *ExportData, exportDir string, csvFlag, jsonFlag bool) ([]string, error) {
	if err := os.MkdirAll(exportDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	var files []string

	if csvFlag {
		filename := filepath.Join(exportDir, fmt.Sprintf("walletd_%s.csv", timestamp))
		if err := writeCSVFile(filename, exportData); err != nil {
			return files, fmt.Errorf("failed to write CSV export: %w", err)
		}
		files = append(files, filename)
	}

	if jsonFlag {
		filename := filepath.Join(exportDir, fmt.Sprintf("walletd_%s.json", timestamp))
		data, err := json.MarshalIndent(exportData, "", "  ")
		if err != nil {
			return files, fmt.Errorf("failed to marshal JSON export: %w", err)
		}
		if err := os.WriteFile(filename, data, 0600); err != nil {
			return files, fmt.Errorf("failed to write JSON export: %w", err)
		}
		files = append(files, filename)
	}

	return files, nil
}

func writeCSVFile(filename string, exportData *ExportData) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows := [][]string{{"Type", "Address / Hash", "Block", "Time", "Direction", "Amount", "Fee / Locked", "Payment ID"}}
	for _, balance := range exportData.Balances {
		rows = append(rows, []string{"Balance", balance.Address, "", "", "", balance.Available, balance.Locked, ""})
	}
	for _, tx := range exportData.Transactions {
		rows = append(rows, []string{
			"Transaction",
			tx.Hash,
			strconv.FormatUint(tx.BlockIndex, 10),
			tx.Timestamp,
			tx.Direction,
			tx.Amount,
			tx.Fee,
			tx.PaymentID,
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return file.Close()
}

func init() {
	exportCmd.Flags().Bool("csv", false, "Export to CSV format")
	exportCmd.Flags().Bool("json", false, "Export to JSON format")
	exportCmd.Flags().String("dir", "", "output directory (default ~/.walletd-cli/exports)")
	exportCmd.Flags().Uint64("chunk", 10000, "blocks per getTransactions request")
	exportCmd.Flags().Float64("rate", 5, "maximum requests per second (0 for unlimited)")
}
