package cmd

import (
	"fmt"
	"strconv"

	"github.com/chinmay1088/walletd/api"
	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [first-block-index] [block-count]",
	Short: "List block hashes",
	Long: `List the hashes of blockCount blocks starting at firstBlockIndex.

Example:
  walletd-cli blocks 0 10`,
	Args: cobra.ExactArgs(2),
	RunE: runBlocks,
}

func runBlocks(cmd *cobra.Command, args []string) error {
	first, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid first block index: %w", err)
	}
	count, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid block count: %w", err)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	hashes, err := result[api.BlockHashesResult](s.client.GetBlockHashes(cmd.Context(), first, count))
	if err != nil {
		return err
	}

	for i, hash := range hashes.BlockHashes {
		fmt.Printf("%d\t%s\n", first+uint64(i), hash)
	}
	return nil
}
