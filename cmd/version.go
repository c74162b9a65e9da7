// File: cmd/version.go
package cmd

import "github.com/spf13/cobra"

// Version is the application version.
// This value is intended to be set at build time using ldflags.
// Example: go build -ldflags "-X github.com/xkilldash9x/synapse-cli/cmd.Version=1.0.0"
var Version = "1.0"

// newVersionCmd reports the version as a subcommand, for parity with the
// --version flag.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the synapse-cli version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("synapse-cli version %s\n", Version)
		},
	}
}
