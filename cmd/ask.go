package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/synapse-cli/internal/observability"
)

// newAskCmd creates and configures the `ask` command.
func newAskCmd() *cobra.Command {
	askCmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Answers a single question from the knowledge graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Use the context passed from main (signal-aware).
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}

			question := strings.Join(args, " ")
			jsonOut, _ := cmd.Flags().GetBool("json")

			components, err := initializeQueryComponents(ctx, cfg, logger)
			if err != nil {
				if components != nil {
					components.Shutdown()
				}
				return fmt.Errorf("failed to initialize query components: %w", err)
			}
			defer components.Shutdown()

			out := cmd.OutOrStdout()

			if jsonOut {
				state, err := components.Pipeline.Run(ctx, question)
				if err != nil {
					return err
				}
				data, err := state.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, data)
				return nil
			}

			components.Pipeline.OnStage(newProgressHook(out))
			return runQuestion(ctx, components, question, out)
		},
	}

	// Output and traversal override flags.
	askCmd.Flags().Bool("json", false, "Print the final pipeline state as JSON instead of progress output")
	askCmd.Flags().IntP("depth", "d", 0, "Maximum traversal depth. (Overrides config/env)")

	return askCmd
}
