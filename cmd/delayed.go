package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/api"
	"github.com/spf13/cobra"
)

var delayedCmd = &cobra.Command{
	Use:   "delayed",
	Short: "Manage delayed transactions",
	Long: `List, broadcast or delete transactions created with 'pay --delayed'.

Examples:
  walletd-cli delayed                # List delayed transactions
  walletd-cli delayed send <hash>    # Broadcast
  walletd-cli delayed delete <hash>  # Drop`,
	Args: cobra.NoArgs,
	RunE: runDelayedList,
}

var delayedSendCmd = &cobra.Command{
	Use:   "send [hash]",
	Short: "Broadcast a delayed transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelayedSend,
}

var delayedDeleteCmd = &cobra.Command{
	Use:   "delete [hash]",
	Short: "Delete a delayed transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelayedDelete,
}

func runDelayedList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	hashes, err := result[api.HashesResult](s.client.GetDelayedTransactionHashes(cmd.Context()))
	if err != nil {
		return err
	}

	if len(hashes.TransactionHashes) == 0 {
		fmt.Println("✅ No delayed transactions")
		return nil
	}

	fmt.Println("🕒 Delayed transactions:")
	for _, hash := range hashes.TransactionHashes {
		fmt.Printf("   %s\n", hash)
	}
	return nil
}

func runDelayedSend(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if err := done(s.client.SendDelayedTransaction(cmd.Context(), args[0])); err != nil {
		return err
	}

	fmt.Printf("✅ Transaction %s broadcast\n", args[0])
	return nil
}

func runDelayedDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if err := done(s.client.DeleteDelayedTransaction(cmd.Context(), args[0])); err != nil {
		return err
	}

	fmt.Printf("🗑️  Transaction %s deleted\n", args[0])
	return nil
}

func init() {
	delayedCmd.AddCommand(delayedSendCmd)
	delayedCmd.AddCommand(delayedDeleteCmd)
}
