package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var transactionsCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transactions"},
	Short:   "View transaction history",
	Long: `View wallet transactions.

Without --count the range runs up to the last block known to walletd.

Examples:
  walletd-cli tx                                  # List all transactions
  walletd-cli tx --first 1000 --count 500         # List a block range
  walletd-cli tx --address <address>              # Only one address
  walletd-cli tx hashes --payment-id <id>         # Hashes by payment id
  walletd-cli tx unconfirmed                      # Pool transactions
  walletd-cli tx show <hash>                      # One transaction`,
	Args: cobra.NoArgs,
	RunE: runTransactionList,
}

var transactionHashesCmd = &cobra.Command{
	Use:   "hashes",
	Short: "List transaction hashes grouped by block",
	Args:  cobra.NoArgs,
	RunE:  runTransactionHashes,
}

var unconfirmedCmd = &cobra.Command{
	Use:   "unconfirmed [address...]",
	Short: "List unconfirmed transaction hashes",
	RunE:  runUnconfirmed,
}

var transactionShowCmd = &cobra.Command{
	Use:   "show [hash]",
	Short: "Show a single transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransactionShow,
}

func addQueryFlags(flags *pflag.FlagSet) {
	flags.Uint64("first", 0, "index of the first block")
	flags.Uint64("count", 0, "number of blocks (default: up to the last known block)")
	flags.String("block-hash", "", "start at this block instead of --first")
	flags.StringSlice("address", nil, "only transactions of these addresses")
	flags.String("payment-id", "", "only transactions with this payment id")
}

// queryFromFlags builds a TransactionQuery, asking walletd for the chain
// height when no block count was given.
func queryFromFlags(cmd *cobra.Command, s *session) (api.TransactionQuery, error) {
	flags := cmd.Flags()
	first, _ := flags.GetUint64("first")
	count, _ := flags.GetUint64("count")
	blockHash, _ := flags.GetString("block-hash")
	addresses, _ := flags.GetStringSlice("address")
	paymentID, _ := flags.GetString("payment-id")

	if count == 0 {
		status, err := result[api.StatusResult](s.client.GetStatus(cmd.Context()))
		if err != nil {
			return api.TransactionQuery{}, err
		}
		if status.KnownBlockCount > first {
			count = status.KnownBlockCount - first
		} else {
			count = 1
		}
	}

	return api.TransactionQuery{
		BlockCount:      count,
		FirstBlockIndex: first,
		BlockHash:       blockHash,
		Addresses:       addresses,
		PaymentID:       paymentID,
	}, nil
}

func runTransactionList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	query, err := queryFromFlags(cmd, s)
	if err != nil {
		return err
	}

	transactions, err := fetchTransactions(cmd.Context(), s.client, query)
	if err != nil {
		return err
	}

	fmt.Println("📜 Transaction History")
	fmt.Println()
	if len(transactions) == 0 {
		fmt.Println("   No transactions found")
		return nil
	}

	for i, tx := range transactions {
		printTransaction(i+1, tx, s.profile.Decimals)
	}
	fmt.Printf("📊 Total: %d transactions\n", len(transactions))
	return nil
}

// fetchTransactions flattens the per-block groups of getTransactions
func fetchTransactions(ctx context.Context, client *api.Client, query api.TransactionQuery) ([]api.Transaction, error) {
	res, err := result[api.TransactionsResult](client.GetTransactions(ctx, query))
	if err != nil {
		return nil, err
	}

	var transactions []api.Transaction
	for _, item := range res.Items {
		transactions = append(transactions, item.Transactions...)
	}
	return transactions, nil
}

func printTransaction(n int, tx api.Transaction, decimals int32) {
	amount := wallet.FormatSignedAmount(tx.Amount, decimals)
	if tx.Amount < 0 {
		fmt.Printf("%d. 📤 %s\n", n, color.RedString(amount))
	} else {
		fmt.Printf("%d. 📥 %s\n", n, color.GreenString(amount))
	}

	fmt.Printf("   Hash:  %s\n", tx.TransactionHash)
	fmt.Printf("   Block: %d\n", tx.BlockIndex)
	if tx.Timestamp > 0 {
		fmt.Printf("   Time:  %s\n", time.Unix(int64(tx.Timestamp), 0).Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("   Fee:   %s\n", wallet.FormatAmount(tx.Fee, decimals))
	if tx.PaymentID != "" {
		fmt.Printf("   Payment ID: %s\n", tx.PaymentID)
	}
	if tx.IsBase {
		fmt.Println("   ⛏️  Coinbase")
	}
	for _, transfer := range tx.Transfers {
		if transfer.Address == "" {
			continue
		}
		fmt.Printf("   → %s %s\n", transfer.Address, wallet.FormatSignedAmount(transfer.Amount, decimals))
	}
	fmt.Println()
}

func runTransactionHashes(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	query, err := queryFromFlags(cmd, s)
	if err != nil {
		return err
	}

	hashes, err := result[api.TransactionHashesResult](s.client.GetTransactionHashes(cmd.Context(), query))
	if err != nil {
		return err
	}

	total := 0
	for _, item := range hashes.Items {
		if len(item.TransactionHashes) == 0 {
			continue
		}
		fmt.Printf("🧱 %s\n", item.BlockHash)
		for _, hash := range item.TransactionHashes {
			fmt.Printf("   %s\n", hash)
			total++
		}
	}
	fmt.Printf("📊 Total: %d transactions\n", total)
	return nil
}

func runUnconfirmed(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	hashes, err := result[api.HashesResult](s.client.GetUnconfirmedTransactionHashes(cmd.Context(), args...))
	if err != nil {
		return err
	}

	if len(hashes.TransactionHashes) == 0 {
		fmt.Println("✅ No unconfirmed transactions")
		return nil
	}

	fmt.Println("⏳ Unconfirmed transactions:")
	for _, hash := range hashes.TransactionHashes {
		fmt.Printf("   %s\n", hash)
	}
	return nil
}

func runTransactionShow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := result[api.TransactionResult](s.client.GetTransaction(cmd.Context(), args[0]))
	if err != nil {
		return err
	}

	printTransaction(1, res.Transaction, s.profile.Decimals)
	if res.Transaction.UnlockTime > 0 {
		fmt.Printf("🔒 Unlock time: %d\n", res.Transaction.UnlockTime)
	}
	if res.Transaction.Extra != "" {
		fmt.Printf("📎 Extra: %s\n", res.Transaction.Extra)
	}
	return nil
}

func init() {
	addQueryFlags(transactionsCmd.Flags())
	addQueryFlags(transactionHashesCmd.Flags())

	transactionsCmd.AddCommand(transactionHashesCmd)
	transactionsCmd.AddCommand(unconfirmedCmd)
	transactionsCmd.AddCommand(transactionShowCmd)
}
