package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/grants-insight/internal/report"
)

var (
	roundsChainId uint64

	roundsCmd = &cobra.Command{
		Use:   "rounds",
		Short: "Print the live rounds of a chain",
		Long:  "Lists rounds on a chain that are open now and have received votes, most voted first, as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunRounds(cmd, roundsChainId)
		},
	}
)

func init() {
	roundsCmd.Flags().Uint64Var(&roundsChainId, "chain-id", 0, "Chain to list rounds for")
	roundsCmd.MarkFlagRequired("chain-id")
}

func RunRounds(cmd *cobra.Command, chainId uint64) error {
	src, cache, err := newSource()
	if err != nil {
		return err
	}
	defer cache.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rounds, err := src.GetChainRounds(ctx, chainId)
	if err != nil {
		return fmt.Errorf("failed to fetch rounds for chain %d: %w", chainId, err)
	}

	out, err := json.MarshalIndent(report.LiveRounds(rounds, time.Now()), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
