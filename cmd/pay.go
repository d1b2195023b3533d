package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var payCmd = &cobra.Command{
	Use:   "pay [address] [amount]",
	Short: "Send coins",
	Long: `Send coins to one or more addresses.

Amounts are in coins, e.g. 1.5. Extra destinations can be added with --to.
With --delayed the transaction is created but not broadcast; use
'walletd-cli delayed send' to broadcast it later.

Examples:
  walletd-cli pay <address> 1.5
  walletd-cli pay <address> 1.5 --to <address2>=0.25 --fee 0.01
  walletd-cli pay <address> 10 --payment-id <id> --anonymity 5
  walletd-cli pay <address> 10 --delayed`,
	Args: cobra.ExactArgs(2),
	RunE: runPay,
}

func runPay(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	req, err := transferRequestFromFlags(cmd, args, s.profile.Decimals)
	if err != nil {
		return err
	}

	delayed, _ := cmd.Flags().GetBool("delayed")
	printTransferSummary(req, delayed, s.profile.Decimals)

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !getTransactionConfirmation(delayed) {
		fmt.Println("❌ Transaction cancelled by user")
		return nil
	}

	var sent api.TransactionHashResult
	if delayed {
		sent, err = result[api.TransactionHashResult](s.client.CreateDelayedTransaction(cmd.Context(), req))
	} else {
		sent, err = result[api.TransactionHashResult](s.client.SendTransaction(cmd.Context(), req))
	}
	if err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	if delayed {
		fmt.Println("✅ Delayed transaction created")
		fmt.Printf("🔗 Transaction hash: %s\n", color.GreenString(sent.TransactionHash))
		fmt.Printf("💡 Run 'walletd-cli delayed send %s' to broadcast it\n", sent.TransactionHash)
		return nil
	}

	fmt.Println("✅ Transaction sent")
	fmt.Printf("🔗 Transaction hash: %s\n", color.GreenString(sent.TransactionHash))
	return nil
}

func transferRequestFromFlags(cmd *cobra.Command, args []string, decimals int32) (api.TransferRequest, error) {
	flags := cmd.Flags()

	amount, err := wallet.ParseAmount(args[1], decimals)
	if err != nil {
		return api.TransferRequest{}, err
	}
	transfers := []api.Transfer{{Address: args[0], Amount: amount}}

	extraDestinations, _ := flags.GetStringSlice("to")
	for _, destination := range extraDestinations {
		address, value, ok := strings.Cut(destination, "=")
		if !ok || address == "" {
			return api.TransferRequest{}, fmt.Errorf("invalid destination %q, expected address=amount", destination)
		}
		amount, err := wallet.ParseAmount(value, decimals)
		if err != nil {
			return api.TransferRequest{}, err
		}
		transfers = append(transfers, api.Transfer{Address: address, Amount: amount})
	}

	feeStr, _ := flags.GetString("fee")
	fee, err := wallet.ParseAmount(feeStr, decimals)
	if err != nil {
		return api.TransferRequest{}, fmt.Errorf("invalid fee: %w", err)
	}

	anonymity, _ := flags.GetUint64("anonymity")
	unlockTime, _ := flags.GetUint64("unlock-time")
	from, _ := flags.GetStringSlice("from")
	extra, _ := flags.GetString("extra")
	paymentID, _ := flags.GetString("payment-id")
	changeAddress, _ := flags.GetString("change-address")

	return api.TransferRequest{
		Anonymity:     anonymity,
		Transfers:     transfers,
		Fee:           fee,
		Addresses:     from,
		UnlockTime:    unlockTime,
		Extra:         extra,
		PaymentID:     paymentID,
		ChangeAddress: changeAddress,
	}, nil
}

func printTransferSummary(req api.TransferRequest, delayed bool, decimals int32) {
	if delayed {
		fmt.Println("🕒 Creating Delayed Transaction")
	} else {
		fmt.Println("💸 Sending Transaction")
	}
	fmt.Println()

	var total uint64
	for _, transfer := range req.Transfers {
		fmt.Printf("   → %s  %s\n", transfer.Address, wallet.FormatAmount(transfer.Amount, decimals))
		total += transfer.Amount
	}
	fmt.Printf("   Fee:       %s\n", wallet.FormatAmount(req.Fee, decimals))
	fmt.Printf("   Total:     %s\n", color.CyanString(wallet.FormatAmount(total+req.Fee, decimals)))
	fmt.Printf("   Anonymity: %d\n", req.Anonymity)
	if req.PaymentID != "" {
		fmt.Printf("   Payment ID: %s\n", req.PaymentID)
	}
}

func getTransactionConfirmation(delayed bool) bool {
	fmt.Println()
	if delayed {
		fmt.Println("⚠️ The transaction will be stored in walletd and not broadcast until you send it.")
	} else {
		fmt.Println("🚨 By confirming this transaction funds will be sent to the addresses above.")
	}
	return confirm("Press y to confirm or n to stop")
}

func addPayFlags(flags *pflag.FlagSet) {
	flags.StringSlice("to", nil, "additional destination as address=amount (repeatable)")
	flags.String("fee", "0.01", "transaction fee in coins")
	flags.Uint64("anonymity", 3, "number of mixins")
	flags.StringSlice("from", nil, "only spend from these addresses")
	flags.Uint64("unlock-time", 0, "block height or timestamp before which the outputs cannot be spent")
	flags.String("extra", "", "extra data to attach to the transaction")
	flags.String("payment-id", "", "payment id")
	flags.String("change-address", "", "address receiving the change")
	flags.Bool("delayed", false, "create a delayed transaction instead of sending")
	flags.BoolP("yes", "y", false, "do not ask for confirmation")
}

func init() {
	addPayFlags(payCmd.Flags())
}
