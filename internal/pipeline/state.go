// File: internal/pipeline/state.go
package pipeline

import (
	"fmt"

	json "github.com/json-iterator/go"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
)

// Stage identifies one step of the query pipeline.
type Stage string

const (
	StageDetectEntities Stage = "detect_entities"
	StageRetrieveNodes  Stage = "retrieve_nodes"
	StageTraverse       Stage = "traverse"
	StageBuildContext   Stage = "build_context"
	StageGenerateAnswer Stage = "generate_answer"
	StageDone           Stage = "done"
)

// StageHook is invoked after each stage completes, with the state as it
// stands at that point. The CLI uses it to print per-step progress; nothing
// in the pipeline depends on what the hook does.
type StageHook func(stage Stage, state *State)

// State accumulates everything one question produces on its way through the
// pipeline. The pipeline is its only writer; after Run returns, the state is
// inert and safe to serialize or inspect.
type State struct {
	QueryID    string                     `json:"query_id"`
	Question   string                     `json:"question"`
	Stage      Stage                      `json:"stage"`
	Entities   []schemas.EntityMatch      `json:"entities"`
	Intents    []schemas.RelationshipType `json:"intents"`
	StartNodes []schemas.Node             `json:"start_nodes"`
	Traversal  schemas.TraversalResult    `json:"traversal"`
	Context    schemas.ContextDocument    `json:"context"`
	Answer     string                     `json:"answer"`
	Steps      []string                   `json:"steps"`
}

// addStep records a one-line trace of a completed stage.
func (s *State) addStep(line string) {
	s.Steps = append(s.Steps, line)
}

// ToJSON renders the state as indented JSON for the `ask --json` output.
func (s *State) ToJSON() (string, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize pipeline state: %w", err)
	}
	return string(out), nil
}
