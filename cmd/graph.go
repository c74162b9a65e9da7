package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/synapse-cli/internal/dataset"
	"github.com/xkilldash9x/synapse-cli/internal/knowledgegraph"
	"github.com/xkilldash9x/synapse-cli/internal/observability"
)

// newGraphCmd creates the `graph` command. It needs only the store and the
// dataset, so it works without any LLM credentials.
func newGraphCmd() *cobra.Command {
	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "Shows statistics for the seeded knowledge graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			store, err := knowledgegraph.NewInMemoryKG(logger)
			if err != nil {
				return fmt.Errorf("failed to initialize graph store: %w", err)
			}
			if err := dataset.Load(ctx, store, logger); err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			stats, err := store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to read graph statistics: %w", err)
			}

			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
	return graphCmd
}
