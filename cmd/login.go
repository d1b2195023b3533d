package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/wallet"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the walletd RPC password encrypted",
	Long: `Store the walletd RPC password in an encrypted vault.

The password is encrypted with a passphrase of your choice and kept in
~/.walletd-cli/password.vault. Once unlocked it stays available for 30 minutes.

Example:
  walletd-cli login`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the stored RPC password for this session",
	Args:  cobra.NoArgs,
	RunE:  runUnlock,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the stored RPC password",
	Args:  cobra.NoArgs,
	RunE:  runLock,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored RPC password",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager, err := wallet.NewManager()
	if err != nil {
		return err
	}

	profile, err := resolveProfile(cmd, manager)
	if err != nil {
		return err
	}

	if manager.HasPassword() && !confirm("⚠️  A password is already stored. Replace it?") {
		fmt.Println("❌ Login cancelled by user")
		return nil
	}

	rpcPassword, err := readSecret("Enter the walletd RPC password: ")
	if err != nil {
		return err
	}

	passphrase, err := readSecret("Enter a passphrase to encrypt it: ")
	if err != nil {
		return err
	}
	if len(passphrase) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters long")
	}

	confirmPassphrase, err := readSecret("Confirm passphrase: ")
	if err != nil {
		return err
	}
	if passphrase != confirmPassphrase {
		return fmt.Errorf("passphrases do not match")
	}

	if err := manager.StorePassword(rpcPassword, passphrase, profile.Endpoint()); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}

	fmt.Println("✅ RPC password stored and unlocked")
	fmt.Printf("💡 The session is valid for %d minutes on %s\n", wallet.SessionDuration, profile.Endpoint())
	return nil
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager, err := wallet.NewManager()
	if err != nil {
		return err
	}

	if !manager.HasPassword() {
		return fmt.Errorf("no password stored. Run 'walletd-cli login' first")
	}

	profile, err := resolveProfile(cmd, manager)
	if err != nil {
		return err
	}

	endpoint := profile.Endpoint()
	if manager.IsUnlocked(endpoint) {
		fmt.Println("✅ Password store is already unlocked")
		return nil
	}

	passphrase, err := readSecret("Enter your passphrase: ")
	if err != nil {
		return err
	}

	if err := manager.Unlock(passphrase, endpoint); err != nil {
		return fmt.Errorf("failed to unlock: %w", err)
	}

	fmt.Println("✅ Password store unlocked")
	return nil
}

func runLock(cmd *cobra.Command, args []string) error {
	manager, err := wallet.NewManager()
	if err != nil {
		return err
	}

	manager.Lock()
	fmt.Println("🔒 Password store locked")
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	manager, err := wallet.NewManager()
	if err != nil {
		return err
	}

	if err := manager.ForgetPassword(); err != nil {
		return err
	}

	fmt.Println("🔒 Stored password removed. The walletd default password will be used.")
	return nil
}
