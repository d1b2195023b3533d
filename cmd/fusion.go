package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var fusionCmd = &cobra.Command{
	Use:   "fusion",
	Short: "Consolidate small outputs",
	Long: `Estimate or send fusion transactions, which merge many small outputs
below a threshold into fewer larger ones.

Examples:
  walletd-cli fusion estimate 100
  walletd-cli fusion send 100 --destination <address>`,
}

var fusionEstimateCmd = &cobra.Command{
	Use:   "estimate [threshold]",
	Short: "Count outputs that can be fused",
	Args:  cobra.ExactArgs(1),
	RunE:  runFusionEstimate,
}

var fusionSendCmd = &cobra.Command{
	Use:   "send [threshold]",
	Short: "Send a fusion transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runFusionSend,
}

func runFusionEstimate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	threshold, err := wallet.ParseAmount(args[0], s.profile.Decimals)
	if err != nil {
		return fmt.Errorf("invalid threshold: %w", err)
	}
	addresses, _ := cmd.Flags().GetStringSlice("address")

	estimate, err := result[api.FusionEstimateResult](s.client.EstimateFusion(cmd.Context(), threshold, addresses...))
	if err != nil {
		return err
	}

	fmt.Printf("🧮 Outputs below %s\n", wallet.FormatAmount(threshold, s.profile.Decimals))
	fmt.Printf("   Fusion ready: %s\n", color.GreenString("%d", estimate.FusionReadyCount))
	fmt.Printf("   Total outputs: %d\n", estimate.TotalOutputCount)
	return nil
}

func runFusionSend(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	threshold, err := wallet.ParseAmount(args[0], s.profile.Decimals)
	if err != nil {
		return fmt.Errorf("invalid threshold: %w", err)
	}
	anonymity, _ := cmd.Flags().GetUint64("anonymity")
	addresses, _ := cmd.Flags().GetStringSlice("address")
	destination, _ := cmd.Flags().GetString("destination")

	sent, err := result[api.TransactionHashResult](s.client.SendFusionTransaction(cmd.Context(), api.FusionRequest{
		Threshold:          threshold,
		Anonymity:          anonymity,
		Addresses:          addresses,
		DestinationAddress: destination,
	}))
	if err != nil {
		return fmt.Errorf("failed to send fusion transaction: %w", err)
	}

	fmt.Println("✅ Fusion transaction sent")
	fmt.Printf("🔗 Transaction hash: %s\n", color.GreenString(sent.TransactionHash))
	return nil
}

func init() {
	fusionEstimateCmd.Flags().StringSlice("address", nil, "only count outputs of these addresses")

	fusionSendCmd.Flags().Uint64("anonymity", 3, "number of mixins")
	fusionSendCmd.Flags().StringSlice("address", nil, "only fuse outputs of these addresses")
	fusionSendCmd.Flags().String("destination", "", "address receiving the fused outputs")

	fusionCmd.AddCommand(fusionEstimateCmd)
	fusionCmd.AddCommand(fusionSendCmd)
}
