// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/internal/config"
	"github.com/xkilldash9x/synapse-cli/internal/observability"
)

// contextKey is a private type for values the cmd package stores on the
// command context.
type contextKey string

// configKey is where PersistentPreRunE stashes the loaded configuration for
// the subcommand RunE functions.
const configKey contextKey = "config"

// NewRootCommand builds the base command with all subcommands attached. Each
// call returns a fresh instance, so flag and config state never leaks between
// executions.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "synapse-cli",
		Short: "Synapse answers questions by walking a knowledge graph.",
		Long: `Synapse is a graph-RAG demo. It detects known entities in a question,
walks an in-memory knowledge graph around them, renders the edges it finds
into plain-text facts and asks a hosted LLM to answer from those facts alone.

Run it without arguments to watch the built-in demo questions get answered.`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// This runs before any command, setting up config and logging.
			// Provider API keys in a local .env must be visible to both viper
			// and the client factory, so load it first.
			_ = godotenv.Load()

			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(v, cfgFile); err != nil {
				return err
			}

			// Bind flags to their corresponding viper keys. This is the
			// idiomatic way to ensure that command-line flags correctly
			// override values from the config file and environment variables.
			if f := cmd.Flags().Lookup("depth"); f != nil {
				if err := v.BindPFlag("graph.max_depth", f); err != nil {
					return err
				}
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				// Initialize a fallback logger so the failure is visible.
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "synapse-cli"})
				return fmt.Errorf("failed to load config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Info("Starting synapse-cli", zap.String("version", Version))

			// Store the validated config on the command context for the
			// subcommand RunE functions.
			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
		RunE: runDemo,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./synapse-config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newGraphCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with the given signal-aware context. Exit
// codes are the caller's concern; a canceled context comes back unwrapped so
// the entry point can map Ctrl+C to a clean exit.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// configFromContext retrieves the configuration stored by PersistentPreRunE.
func configFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuration missing from command context")
	}
	return cfg, nil
}

// initializeConfig points viper at the config file search paths and the
// SYNAPSE_* environment.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".synapse"))
		}
		v.AddConfigPath("/etc/synapse")
		v.SetConfigName("synapse-config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SYNAPSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars
	}
	return nil
}

// runDemo is the bare `synapse-cli` invocation: load the dataset, show the
// graph, then run the configured demo questions through the pipeline.
func runDemo(cmd *cobra.Command, _ []string) error {
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

	for _, question := range cfg.Demo().Questions {
		if err := runQuestion(ctx, components, question, out); err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("Demo aborted", zap.Error(err))
			}
			return err
		}
	}
	return nil
}

// runQuestion pushes one question through the pipeline and prints the final
// answer. Progress lines come from the stage hook installed by the caller.
func runQuestion(ctx context.Context, components *queryComponents, question string, out io.Writer) error {
	fmt.Fprintln(out, color.GreenString("Question: %s", question))
	state, err := components.Pipeline.Run(ctx, question)
	if err != nil {
		return err
	}
	printAnswer(out, state.Answer)
	return nil
}
