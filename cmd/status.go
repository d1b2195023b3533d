package cmd

import (
	"fmt"
	"time"

	"github.com/chinmay1088/walletd/api"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show wallet synchronization status",
	Long: `Show the block count, known block count, last block hash and peer count
reported by walletd.

Examples:
  walletd-cli status            # Show status once
  walletd-cli status --watch    # Follow synchronization until caught up`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")
	if watch && interval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	status, err := result[api.StatusResult](s.client.GetStatus(cmd.Context()))
	if err != nil {
		return err
	}

	if watch && !status.Synced() {
		if status, err = watchSync(cmd, s, status, interval); err != nil {
			return err
		}
	}

	printStatus(s, status)
	return nil
}

func printStatus(s *session, status api.StatusResult) {
	fmt.Println("📡 walletd status")
	fmt.Printf("🌐 Endpoint: %s\n", s.client.Endpoint())
	fmt.Println()

	if status.Synced() {
		fmt.Printf("   Sync:         %s\n", color.GreenString("synchronized"))
	} else {
		fmt.Printf("   Sync:         %s\n", color.YellowString("synchronizing"))
	}
	fmt.Printf("   Blocks:       %d / %d\n", status.BlockCount, status.KnownBlockCount)
	fmt.Printf("   Last block:   %s\n", status.LastBlockHash)
	fmt.Printf("   Peers:        %d\n", status.PeerCount)
}

// watchSync polls getStatus until the wallet has caught up with the network
func watchSync(cmd *cobra.Command, s *session, status api.StatusResult, interval time.Duration) (api.StatusResult, error) {
	bar := progressbar.NewOptions64(int64(status.KnownBlockCount),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan]Synchronizing...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !status.Synced() {
		bar.ChangeMax64(int64(status.KnownBlockCount))
		bar.Set64(int64(status.BlockCount))

		select {
		case <-cmd.Context().Done():
			return status, cmd.Context().Err()
		case <-ticker.C:
		}

		next, err := result[api.StatusResult](s.client.GetStatus(cmd.Context()))
		if err != nil {
			return status, err
		}
		status = next
	}

	bar.ChangeMax64(int64(status.KnownBlockCount))
	bar.Set64(int64(status.BlockCount))
	bar.Describe("[green][✓][reset] Synchronized")
	fmt.Println()
	fmt.Println()

	return status, nil
}

func init() {
	statusCmd.Flags().Bool("watch", false, "follow synchronization until the wallet is caught up")
	statusCmd.Flags().Duration("interval", 2*time.Second, "polling interval for --watch")
}
