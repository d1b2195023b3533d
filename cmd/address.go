package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "List and manage wallet addresses",
	Long: `List the addresses of the wallet container, or create and delete them.

Examples:
  walletd-cli address                               # List addresses
  walletd-cli address create                        # New address with a generated key
  walletd-cli address create --secret-spend-key <k> # Import a spend address
  walletd-cli address create --public-spend-key <k> # Import a view-only address
  walletd-cli address delete <address>`,
	Args: cobra.NoArgs,
	RunE: runAddressList,
}

var addressCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an address in the container",
	Args:  cobra.NoArgs,
	RunE:  runAddressCreate,
}

var addressDeleteCmd = &cobra.Command{
	Use:   "delete [address]",
	Short: "Delete an address from the container",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddressDelete,
}

func runAddressList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	addresses, err := result[api.AddressesResult](s.client.GetAddresses(cmd.Context()))
	if err != nil {
		return err
	}

	fmt.Println("🔑 Wallet addresses:")
	fmt.Println()
	if len(addresses.Addresses) == 0 {
		fmt.Println("   No addresses in this container")
		return nil
	}
	for i, address := range addresses.Addresses {
		fmt.Printf("   %d. %s\n", i+1, address)
	}
	return nil
}

func runAddressCreate(cmd *cobra.Command, args []string) error {
	secretSpendKey, _ := cmd.Flags().GetString("secret-spend-key")
	publicSpendKey, _ := cmd.Flags().GetString("public-spend-key")
	if secretSpendKey != "" && publicSpendKey != "" {
		return fmt.Errorf("use either --secret-spend-key or --public-spend-key, not both")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	created, err := result[api.AddressResult](s.client.CreateAddress(cmd.Context(), secretSpendKey, publicSpendKey))
	if err != nil {
		return err
	}

	switch {
	case secretSpendKey != "":
		fmt.Println("✅ Spend address imported")
	case publicSpendKey != "":
		fmt.Println("✅ View-only address imported")
	default:
		fmt.Println("✅ Address created")
	}
	fmt.Printf("📍 Address: %s\n", color.GreenString(created.Address))
	fmt.Println("💡 Run 'walletd-cli save' to persist the container")
	return nil
}

func runAddressDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirm(fmt.Sprintf("🚨 Delete %s from the container?", args[0])) {
		fmt.Println("❌ Delete cancelled by user")
		return nil
	}

	if err := done(s.client.DeleteAddress(cmd.Context(), args[0])); err != nil {
		return err
	}

	fmt.Printf("✅ Address %s deleted\n", args[0])
	return nil
}

func init() {
	addressCreateCmd.Flags().String("secret-spend-key", "", "import a spend address from its private spend key")
	addressCreateCmd.Flags().String("public-spend-key", "", "import a view-only address from its public spend key")
	addressDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	addressCmd.AddCommand(addressCreateCmd)
	addressCmd.AddCommand(addressDeleteCmd)
}
