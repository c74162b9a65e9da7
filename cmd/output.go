package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/pipeline"
)

const divider = "----------------------------------------------------------------"

// printStats renders the graph statistics block shown by the demo, the graph
// command and the repl's `stats` command.
func printStats(out io.Writer, stats schemas.GraphStats) {
	fmt.Fprintln(out, color.CyanString("Knowledge Graph Statistics"))
	fmt.Fprintln(out, color.WhiteString(divider))
	fmt.Fprintf(out, "  Total nodes: %d\n", stats.NodeCount)
	fmt.Fprintf(out, "  Total edges: %d\n", stats.EdgeCount)
	fmt.Fprintf(out, "  People:      %d\n", stats.NodesByType[schemas.NodePerson])
	fmt.Fprintf(out, "  Companies:   %d\n", stats.NodesByType[schemas.NodeCompany])
}

// printSampleQuestions lists the configured demo questions.
func printSampleQuestions(out io.Writer, questions []string) {
	fmt.Fprintln(out, color.CyanString("Sample questions"))
	fmt.Fprintln(out, color.WhiteString(divider))
	for i, q := range questions {
		fmt.Fprintf(out, "  %d. %s\n", i+1, q)
	}
}

// printAnswer renders the final answer block.
func printAnswer(out io.Writer, answer string) {
	fmt.Fprintln(out, color.WhiteString(divider))
	fmt.Fprintln(out, color.CyanString("FINAL ANSWER"))
	fmt.Fprintln(out, color.WhiteString(divider))
	fmt.Fprintln(out, answer)
	fmt.Fprintln(out)
}

// newProgressHook returns a pipeline stage hook printing one line per
// completed stage: the step summary plus what that stage actually matched.
func newProgressHook(out io.Writer) pipeline.StageHook {
	return func(stage pipeline.Stage, state *pipeline.State) {
		if len(state.Steps) == 0 {
			return
		}
		line := state.Steps[len(state.Steps)-1]

		switch stage {
		case pipeline.StageDetectEntities:
			if names := entityNames(state.Entities); len(names) > 0 {
				line = fmt.Sprintf("%s: %s", line, strings.Join(names, ", "))
			}
		case pipeline.StageRetrieveNodes:
			if ids := nodeIDs(state.StartNodes); len(ids) > 0 {
				line = fmt.Sprintf("%s: %s", line, strings.Join(ids, ", "))
			}
		}
		fmt.Fprintln(out, color.WhiteString("  - %s", line))
	}
}

func entityNames(entities []schemas.EntityMatch) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, fmt.Sprintf("%s (%s)", e.Name, e.Type))
	}
	return names
}

func nodeIDs(nodes []schemas.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}
