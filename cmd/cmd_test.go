// File: cmd/cmd_test.go
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/synapse-cli/internal/answer"
	"github.com/xkilldash9x/synapse-cli/internal/config"
)

// executeCommand runs a fresh root command with the given args, capturing
// combined output. A new instance per call keeps flag and viper state from
// leaking between tests.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testRootCmd := NewRootCommand()

	buf := new(bytes.Buffer)
	testRootCmd.SetOut(buf)
	testRootCmd.SetErr(buf)
	testRootCmd.SetArgs(args)
	err := testRootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// createTempConfig writes a config file for one test and returns its path.
// Every test config points the log file into the test's temp dir so runs do
// not litter the package directory.
func createTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "synapse-config.yaml")
	logPath := filepath.Join(dir, "synapse-test.log")

	full := fmt.Sprintf("logger:\n  log_file: %s\n%s", logPath, content)
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))
	return path
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	output, err := executeCommand(t, "ask")
	require.Error(t, err)
	assert.Contains(t, output, "Error: requires at least 1 arg(s), only received 0")
}

func TestRootCmd_RejectsUnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCmd_VersionFlag(t *testing.T) {
	// The version flag is handled before PersistentPreRunE, so no config or
	// credentials are involved.
	output, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", output)
}

func TestVersionCmd(t *testing.T) {
	cfgPath := createTempConfig(t, "")
	output, err := executeCommand(t, "--config", cfgPath, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "synapse-cli version 1.0")
}

// TestConfigPrecedence checks the flag > env > file > default ordering that
// viper is supposed to give us once the depth flag is bound.
func TestConfigPrecedence(t *testing.T) {
	configContent := `
graph:
  max_depth: 5
  include_incoming: false
llm:
  model: config-model
`
	configFile := createTempConfig(t, configContent)

	testRootCmd := NewRootCommand()

	// Find the ask command from our test rootCmd instance.
	var askCmd *cobra.Command
	for _, c := range testRootCmd.Commands() {
		if c.Use == "ask [question...]" {
			askCmd = c
			break
		}
	}
	require.NotNil(t, askCmd)

	// Intercept RunE so the test captures the loaded config instead of
	// running a real query.
	var captured *config.Config
	askCmd.RunE = func(cmd *cobra.Command, args []string) error {
		var err error
		captured, err = configFromContext(cmd.Context())
		return err
	}

	t.Setenv("SYNAPSE_LLM_MODEL", "env-model")

	testRootCmd.SetOut(new(bytes.Buffer))
	testRootCmd.SetErr(new(bytes.Buffer))
	testRootCmd.SetArgs([]string{"--config", configFile, "ask", "--depth", "1", "anything"})
	err := testRootCmd.ExecuteContext(context.Background())
	require.NoError(t, err)

	require.NotNil(t, captured)
	// Flag beats the config file.
	assert.Equal(t, 1, captured.Graph().MaxDepth)
	// Config file beats the default.
	assert.False(t, captured.Graph().IncludeIncoming)
	// Environment beats the config file.
	assert.Equal(t, "env-model", captured.LLM().Model)
}

func TestGraphCmd_PrintsStats(t *testing.T) {
	cfgPath := createTempConfig(t, "")
	output, err := executeCommand(t, "--config", cfgPath, "graph")
	require.NoError(t, err)

	assert.Contains(t, output, "Knowledge Graph Statistics")
	assert.Contains(t, output, "Total nodes: 13")
	assert.Contains(t, output, "Total edges: 17")
	assert.Contains(t, output, "People:      5")
	assert.Contains(t, output, "Companies:   8")
}

func TestRootDemo_MissingCredential(t *testing.T) {
	cfgPath := createTempConfig(t, "")
	t.Setenv("SYNAPSE_LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	_, err := executeCommand(t, "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize query components")
	assert.Contains(t, err.Error(), "missing API credential")
}

// TestREPLCmd_CommandLoop drives the repl with its built-in commands only, so
// the LLM client is constructed but never called.
func TestREPLCmd_CommandLoop(t *testing.T) {
	cfgPath := createTempConfig(t, "")
	t.Setenv("SYNAPSE_LLM_API_KEY", "test-api-key")

	testRootCmd := NewRootCommand()
	buf := new(bytes.Buffer)
	testRootCmd.SetOut(buf)
	testRootCmd.SetErr(buf)
	testRootCmd.SetIn(strings.NewReader("\nstats\nhelp\nquit\n"))
	testRootCmd.SetArgs([]string{"--config", cfgPath, "repl"})

	err := testRootCmd.ExecuteContext(context.Background())
	require.NoError(t, err)

	output := buf.String()
	// Stats print once at startup and once for the stats command.
	assert.Equal(t, 2, strings.Count(output, "Total nodes: 13"))
	// Samples print once at startup and once for help.
	assert.Equal(t, 2, strings.Count(output, "Sample questions"))
	assert.Contains(t, output, "synapse-cli > ")
	assert.Contains(t, output, "Exiting synapse-cli.")
}

// TestAskCmd_NoEntities exercises the full pipeline through the CLI with a
// question that matches nothing in the graph; the generator short-circuits
// before any network use.
func TestAskCmd_NoEntities(t *testing.T) {
	cfgPath := createTempConfig(t, "")
	t.Setenv("SYNAPSE_LLM_API_KEY", "test-api-key")

	output, err := executeCommand(t, "--config", cfgPath, "ask", "what", "is", "the", "weather")
	require.NoError(t, err)

	assert.Contains(t, output, "Question: what is the weather")
	assert.Contains(t, output, "Detected 0 entities")
	assert.Contains(t, output, "Answer generated")
	assert.Contains(t, output, "FINAL ANSWER")
	assert.Contains(t, output, answer.NoInformationAnswer)
}

func TestAskCmd_NoEntities_JSON(t *testing.T) {
	cfgPath := createTempConfig(t, "")
	t.Setenv("SYNAPSE_LLM_API_KEY", "test-api-key")

	output, err := executeCommand(t, "--config", cfgPath, "ask", "--json", "what", "is", "the", "weather")
	require.NoError(t, err)

	assert.Contains(t, output, `"query_id"`)
	assert.Contains(t, output, `"stage": "done"`)
	assert.Contains(t, output, answer.NoInformationAnswer)
	// JSON mode replaces the progress output entirely.
	assert.NotContains(t, output, "FINAL ANSWER")
}
