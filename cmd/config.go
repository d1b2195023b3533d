package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/walletd/wallet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the connection profile",
	Long: `Show the walletd connection profile or change it.

The profile is kept in ~/.walletd-cli/config.json.

Examples:
  walletd-cli config                                   # Show current profile
  walletd-cli config set --host http://10.0.0.2        # Change host
  walletd-cli config set --port 8070 --logging=false   # Change port and logging`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change profile values",
	Args:  cobra.NoArgs,
	RunE:  runConfigSet,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	manager, err := wallet.NewManager()
	if err != nil {
		return err
	}

	profile, err := manager.LoadProfile()
	if err != nil {
		return err
	}

	fmt.Println("⚙️  Connection profile")
	fmt.Println()
	fmt.Printf("   Endpoint: %s\n", color.CyanString(profile.Endpoint()))
	fmt.Printf("   Decimals: %d\n", profile.Decimals)
	if profile.Logging {
		fmt.Printf("   Logging:  %s\n", color.GreenString("on"))
	} else {
		fmt.Printf("   Logging:  %s\n", color.YellowString("off"))
	}

	endpoint := profile.Endpoint()
	switch {
	case !manager.HasPassword():
		fmt.Printf("   Password: %s\n", color.YellowString("walletd default"))
	case manager.IsUnlocked(endpoint):
		fmt.Printf("   Password: %s\n", color.GreenString("stored, unlocked"))
	default:
		fmt.Printf("   Password: %s\n", color.GreenString("stored, locked"))
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	manager, err := wallet.NewManager()
	if err != nil {
		return err
	}

	profile, err := manager.LoadProfile()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("host") && !flags.Changed("port") && !flags.Changed("logging") && !flags.Changed("decimals") {
		return fmt.Errorf("nothing to change. Use --host, --port, --logging or --decimals")
	}

	if flags.Changed("host") {
		host, _ := flags.GetString("host")
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			return fmt.Errorf("host must include the scheme, e.g. http://%s", host)
		}
		profile.Host = strings.TrimRight(host, "/")
	}
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		profile.Port = port
	}
	if flags.Changed("logging") {
		profile.Logging, _ = flags.GetBool("logging")
	}
	if flags.Changed("decimals") {
		decimals, _ := flags.GetInt32("decimals")
		if decimals < 0 || decimals > 18 {
			return fmt.Errorf("invalid number of decimals: %d", decimals)
		}
		profile.Decimals = decimals
	}

	if err := manager.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("✅ Profile saved. walletd endpoint: %s\n", color.CyanString(profile.Endpoint()))
	return nil
}

func init() {
	configSetCmd.Flags().Bool("logging", false, "log requests and responses")
	configSetCmd.Flags().Int32("decimals", wallet.DefaultDecimals, "decimal places of one coin")
	configCmd.AddCommand(configSetCmd)
}
