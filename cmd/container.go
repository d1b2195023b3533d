package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the wallet container",
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Re-sync the wallet",
	Long: `Reset the wallet and re-sync it from the blockchain.

With --view-key the container is replaced by a new wallet built from the
given private view key.

Examples:
  walletd-cli reset
  walletd-cli reset --view-key <key>`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var viewKeyCmd = &cobra.Command{
	Use:   "viewkey",
	Short: "Show the private view key",
	Args:  cobra.NoArgs,
	RunE:  runViewKey,
}

var spendKeysCmd = &cobra.Command{
	Use:   "spendkeys [address]",
	Short: "Show the spend keys of an address",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpendKeys,
}

func runSave(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if err := done(s.client.Save(cmd.Context())); err != nil {
		return err
	}

	fmt.Println("✅ Wallet saved")
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	viewKey, _ := cmd.Flags().GetString("view-key")
	yes, _ := cmd.Flags().GetBool("yes")
	if viewKey != "" && !yes && !confirm("🚨 The current container will be replaced by a new wallet. Continue?") {
		fmt.Println("❌ Reset cancelled by user")
		return nil
	}

	if err := done(s.client.Reset(cmd.Context(), viewKey)); err != nil {
		return err
	}

	fmt.Println("✅ Wallet reset. walletd is re-synchronizing.")
	fmt.Println("💡 Use 'walletd-cli status --watch' to follow progress")
	return nil
}

func runViewKey(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	keys, err := result[api.ViewKeyResult](s.client.GetViewKey(cmd.Context()))
	if err != nil {
		return err
	}

	fmt.Printf("🔑 View secret key: %s\n", color.YellowString(keys.ViewSecretKey))
	return nil
}

func runSpendKeys(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	keys, err := result[api.SpendKeysResult](s.client.GetSpendKeys(cmd.Context(), args[0]))
	if err != nil {
		return err
	}

	fmt.Printf("📍 Address: %s\n", args[0])
	fmt.Printf("🔑 Spend secret key: %s\n", color.YellowString(keys.SpendSecretKey))
	fmt.Printf("🔑 Spend public key: %s\n", keys.SpendPublicKey)
	fmt.Println()
	fmt.Println("⚠️  Anyone with the secret key can spend from this address")
	return nil
}

func init() {
	resetCmd.Flags().String("view-key", "", "replace the container with a wallet built from this private view key")
	resetCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
