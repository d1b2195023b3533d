package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check wallet balance",
	Long: `Check the balance of the whole container or of a single address.

Examples:
  walletd-cli balance             # Container balance
  walletd-cli balance <address>   # Balance of one address
  walletd-cli balance --all       # Balance of every address`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	fmt.Println("💰 Wallet Balance")
	fmt.Printf("🌐 Endpoint: %s\n", s.client.Endpoint())
	fmt.Println()

	if len(args) == 1 {
		return displayBalance(cmd, s, args[0])
	}

	all, _ := cmd.Flags().GetBool("all")
	if !all {
		return displayBalance(cmd, s, "")
	}

	addresses, err := result[api.AddressesResult](s.client.GetAddresses(cmd.Context()))
	if err != nil {
		return err
	}
	for _, address := range addresses.Addresses {
		if err := displayBalance(cmd, s, address); err != nil {
			fmt.Printf("❌ %s: Error - %v\n", address, err)
		}
	}
	return nil
}

func displayBalance(cmd *cobra.Command, s *session, address string) error {
	balance, err := result[api.BalanceResult](s.client.GetBalance(cmd.Context(), address))
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	if address == "" {
		fmt.Println("📦 Container")
	} else {
		fmt.Printf("📍 %s\n", address)
	}
	fmt.Printf("   Available: %s\n", color.GreenString(wallet.FormatAmount(balance.AvailableBalance, s.profile.Decimals)))
	if balance.LockedAmount > 0 {
		fmt.Printf("   Locked:    %s\n", color.YellowString(wallet.FormatAmount(balance.LockedAmount, s.profile.Decimals)))
	} else {
		fmt.Printf("   Locked:    %s\n", wallet.FormatAmount(balance.LockedAmount, s.profile.Decimals))
	}
	fmt.Println()
	return nil
}

func init() {
	balanceCmd.Flags().Bool("all", false, "show the balance of every address")
}
