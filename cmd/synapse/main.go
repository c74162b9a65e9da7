// File: cmd/synapse/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/synapse-cli/cmd"
	"github.com/xkilldash9x/synapse-cli/internal/observability"
)

const asciiArt = `
   (o)---(o)        "Answers come from edges,
     \   /           not from the model's memory."
      (o)
     /   \          [ synapse-cli v1.0 ]
   (o)---(o)        +---------------------+
                    | 13 nodes / 17 edges |
                    |  5 stage pipeline   |
                    +---------------------+

`

// osExit allows mocking os.Exit in tests.
var osExit = os.Exit

// main is the entry point of the application.
func main() {
	// Set up a context that listens for interrupt signals (SIGINT, SIGTERM)
	// for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The bare invocation is the demo run; give it the banner.
	if len(os.Args) == 1 {
		fmt.Print(asciiArt)
	}

	err := cmd.Execute(ctx)
	observability.Sync()
	osExit(exitCode(err))
}

// exitCode maps an execution error to the process exit status. A canceled
// context is the graceful Ctrl+C path and exits cleanly.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 0
	default:
		return 1
	}
}
