package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed [address]",
	Short: "Show or back up the mnemonic seed of an address",
	Long: `Show the mnemonic seed of a deterministic address.

With --out the seed is not printed; it is written to an encrypted file
instead, protected by a passphrase you choose.

Examples:
  walletd-cli seed <address>
  walletd-cli seed <address> --out seed.vault
  walletd-cli seed --open seed.vault`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("open"); path != "" {
		return openSeedBackup(path)
	}
	if len(args) != 1 {
		return fmt.Errorf("an address is required")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	seed, err := result[api.MnemonicSeedResult](s.client.GetMnemonicSeed(cmd.Context(), args[0]))
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		return writeSeedBackup(out, args[0], seed.MnemonicSeed)
	}

	fmt.Println("🔐 Mnemonic seed:")
	fmt.Println()
	fmt.Printf("   %s\n", color.YellowString(seed.MnemonicSeed))
	fmt.Println()
	fmt.Println("⚠️  IMPORTANT:")
	fmt.Println("   - Anyone with this seed can access the funds of this address")
	fmt.Println("   - Keep it offline and never share it with anyone")
	return nil
}

func writeSeedBackup(path, address, mnemonic string) error {
	passphrase, err := readSecret("Enter a passphrase for the backup: ")
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

	vault, err := crypto.NewVault(mnemonic, address, passphrase)
	if err != nil {
		return fmt.Errorf("failed to encrypt seed: %w", err)
	}
	if err := vault.Save(path); err != nil {
		return err
	}

	fmt.Printf("✅ Encrypted seed backup written to %s\n", path)
	return nil
}

func openSeedBackup(path string) error {
	vault, err := crypto.LoadVault(path)
	if err != nil {
		return err
	}

	passphrase, err := readSecret("Enter the backup passphrase: ")
	if err != nil {
		return err
	}

	data, err := vault.Open(passphrase)
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}

	fmt.Printf("📍 Address: %s\n", data.Label)
	fmt.Printf("🔐 Mnemonic seed: %s\n", color.YellowString(data.Secret))
	return nil
}

func init() {
	seedCmd.Flags().String("out", "", "write the seed to an encrypted file instead of printing it")
	seedCmd.Flags().String("open", "", "decrypt and show a seed backup")
}
