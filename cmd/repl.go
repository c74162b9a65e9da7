package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/synapse-cli/internal/observability"
)

// newREPLCmd creates the `repl` command, an interactive question loop over
// the seeded knowledge graph.
func newREPLCmd() *cobra.Command {
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Starts an interactive question loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := configFromContext(ctx)
			if err != nil {
				return err
			}

			components, err := initializeQueryComponents(ctx, cfg, logger)
			if err != nil {
				if components != nil {
					components.Shutdown()
				}
				return fmt.Errorf("failed to initialize query components: %w", err)
			}
			defer components.Shutdown()

			out := cmd.OutOrStdout()
			components.Pipeline.OnStage(newProgressHook(out))

			stats, err := components.Store.Stats(ctx)
			if err != nil {
				return fmt.Errorf("failed to read graph statistics: %w", err)
			}
			printStats(out, stats)
			fmt.Fprintln(out)
			printSampleQuestions(out, cfg.Demo().Questions)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Type 'quit' or 'exit' to stop. Type 'help' for sample questions.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "synapse-cli > ")
				if !scanner.Scan() {
					break // Exit on EOF (Ctrl+D)
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				switch strings.ToLower(line) {
				case "quit", "exit", "q":
					fmt.Fprintln(out, "Exiting synapse-cli.")
					return nil
				case "help":
					printSampleQuestions(out, cfg.Demo().Questions)
					continue
				case "stats":
					stats, err := components.Store.Stats(ctx)
					if err != nil {
						return fmt.Errorf("failed to read graph statistics: %w", err)
					}
					printStats(out, stats)
					continue
				}

				if err := runQuestion(ctx, components, line, out); err != nil {
					if errors.Is(err, context.Canceled) {
						fmt.Fprintln(out, "\nAborted.")
						return nil
					}
					// In interactive mode, print the error but do not exit
					// the loop.
					fmt.Fprintln(out, color.RedString("Error: %v", err))
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading from stdin: %w", err)
			}
			fmt.Fprintln(out, "Exiting synapse-cli.")
			return nil
		},
	}

	replCmd.Flags().IntP("depth", "d", 0, "Maximum traversal depth. (Overrides config/env)")

	return replCmd
}
