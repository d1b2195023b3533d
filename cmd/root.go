package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "walletd-cli",
	Short: "Command-line client for the walletd JSON-RPC interface",
	Long: `walletd-cli talks to a running walletd daemon over its JSON-RPC interface.
Every walletd method is available as a subcommand.

Features:
  • Balances, addresses and keys of the wallet container
  • Sending, delayed and fusion transactions
  • Transaction history and export
  • Mnemonic seed backup into an encrypted file
  • Encrypted storage of the RPC password

Examples:
  walletd-cli config set --host http://127.0.0.1 --port 8070
  walletd-cli login                        # Store the RPC password encrypted
  walletd-cli status                       # Show sync status
  walletd-cli balance                      # Show container balance
  walletd-cli pay <address> 1.5            # Send 1.5 coins
  walletd-cli export --json                # Export transactions`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("host", "", "walletd host including scheme (overrides the profile)")
	rootCmd.PersistentFlags().Int("port", 0, "walletd port (overrides the profile)")
	rootCmd.PersistentFlags().String("rpc-password", "", "walletd RPC password (overrides the stored password)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every request and response")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(viewKeyCmd)
	rootCmd.AddCommand(spendKeysCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(delayedCmd)
	rootCmd.AddCommand(fusionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("walletd-cli v%s\n", version)
	},
}
