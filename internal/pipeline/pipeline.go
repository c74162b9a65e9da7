// File: internal/pipeline/pipeline.go
// Description: The five-stage query pipeline. It is injected with fully
// configured components, making it decoupled and testable.

package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/answer"
	"github.com/xkilldash9x/synapse-cli/internal/facts"
	"github.com/xkilldash9x/synapse-cli/internal/llmutil"
	"github.com/xkilldash9x/synapse-cli/internal/traversal"
)

// uuidNewString is swappable in tests for deterministic query IDs.
var uuidNewString = uuid.NewString

// QuestionAnalyzer is the detector surface the pipeline consumes: entity
// detection plus the advisory intent scan.
type QuestionAnalyzer interface {
	schemas.EntityDetector
	schemas.IntentExtractor
}

// Pipeline runs one question through the fixed stage sequence
// DetectEntities -> RetrieveNodes -> Traverse -> BuildContext ->
// GenerateAnswer -> Done. Stages never run out of order, concurrently, or
// skipped; the first failing stage halts the run.
type Pipeline struct {
	logger    *zap.Logger
	analyzer  QuestionAnalyzer
	store     schemas.GraphStore
	traverser *traversal.Traverser
	builder   *facts.Builder
	generator *answer.Generator
	onStage   StageHook
}

// New creates a Pipeline with its dependencies provided up front.
func New(
	logger *zap.Logger,
	analyzer QuestionAnalyzer,
	store schemas.GraphStore,
	traverser *traversal.Traverser,
	builder *facts.Builder,
	generator *answer.Generator,
) (*Pipeline, error) {
	if analyzer == nil ||
		store == nil ||
		traverser == nil ||
		builder == nil ||
		generator == nil {
		return nil, fmt.Errorf("cannot initialize pipeline with nil components")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		logger:    logger.Named("pipeline"),
		analyzer:  analyzer,
		store:     store,
		traverser: traverser,
		builder:   builder,
		generator: generator,
	}, nil
}

// OnStage registers a hook called after each completed stage. Pass nil to
// remove it. Not safe to call while a run is in flight.
func (p *Pipeline) OnStage(hook StageHook) {
	p.onStage = hook
}

// Run executes the pipeline for one question and returns the final state.
// On failure the returned state holds everything produced up to the failing
// stage, and the error names that stage.
func (p *Pipeline) Run(ctx context.Context, question string) (*State, error) {
	state := &State{
		QueryID:  uuidNewString(),
		Question: question,
		Steps:    make([]string, 0, 5),
	}

	p.logger.Info("Pipeline run starting",
		zap.String("query_id", state.QueryID),
		zap.String("question", llmutil.TruncateForLog(question, 120)),
	)

	stages := []struct {
		stage Stage
		run   func(context.Context, *State) error
	}{
		{StageDetectEntities, p.detectEntities},
		{StageRetrieveNodes, p.retrieveNodes},
		{StageTraverse, p.traverse},
		{StageBuildContext, p.buildContext},
		{StageGenerateAnswer, p.generateAnswer},
	}

	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("pipeline aborted before stage '%s': %w", s.stage, err)
		}

		state.Stage = s.stage
		if err := s.run(ctx, state); err != nil {
			p.logger.Error("Pipeline stage failed",
				zap.String("query_id", state.QueryID),
				zap.String("stage", string(s.stage)),
				zap.Error(err),
			)
			return state, fmt.Errorf("stage '%s' failed: %w", s.stage, err)
		}

		p.logger.Debug("Pipeline stage complete",
			zap.String("query_id", state.QueryID),
			zap.String("stage", string(s.stage)),
		)
		if p.onStage != nil {
			p.onStage(s.stage, state)
		}
	}

	state.Stage = StageDone
	p.logger.Info("Pipeline run complete",
		zap.String("query_id", state.QueryID),
		zap.Int("entities", len(state.Entities)),
		zap.Int("facts", len(state.Context.Facts)),
	)
	return state, nil
}

// detectEntities scans the question for known entity names and, advisory
// only, the relationship types it seems to ask about.
func (p *Pipeline) detectEntities(_ context.Context, state *State) error {
	state.Entities = p.analyzer.Detect(state.Question)
	state.Intents = p.analyzer.Intents(state.Question)
	state.addStep(fmt.Sprintf("Detected %d entities", len(state.Entities)))
	return nil
}

// retrieveNodes resolves every detected entity to its graph node. Detector
// candidates derive from the dataset, so a miss here means the store and the
// detector disagree about the world; that is an error, not a soft skip.
func (p *Pipeline) retrieveNodes(ctx context.Context, state *State) error {
	state.StartNodes = make([]schemas.Node, 0, len(state.Entities))
	for _, entity := range state.Entities {
		node, err := p.store.GetNodeByName(ctx, entity.Name)
		if err != nil {
			return fmt.Errorf("failed to retrieve node for entity '%s': %w", entity.Name, err)
		}
		state.StartNodes = append(state.StartNodes, node)
	}
	state.addStep(fmt.Sprintf("Matched %d graph nodes", len(state.StartNodes)))
	return nil
}

// traverse walks the neighborhood of the start nodes.
func (p *Pipeline) traverse(ctx context.Context, state *State) error {
	startIDs := make([]string, 0, len(state.StartNodes))
	for _, node := range state.StartNodes {
		startIDs = append(startIDs, node.ID)
	}

	result, err := p.traverser.Traverse(ctx, startIDs)
	if err != nil {
		return err
	}
	state.Traversal = result
	state.addStep(fmt.Sprintf("Visited %d nodes, collected %d edges",
		len(result.VisitedIDs), len(result.Edges)))
	return nil
}

// buildContext renders the traversed edges into the deduplicated fact list.
func (p *Pipeline) buildContext(ctx context.Context, state *State) error {
	doc, err := p.builder.BuildContext(ctx, state.Traversal, state.Entities)
	if err != nil {
		return err
	}
	state.Context = doc
	state.addStep(fmt.Sprintf("Collected %d unique facts", len(doc.Facts)))
	return nil
}

// generateAnswer submits the context and question to the model.
func (p *Pipeline) generateAnswer(ctx context.Context, state *State) error {
	answerText, err := p.generator.Generate(ctx, state.Question, state.Context)
	if err != nil {
		return err
	}
	state.Answer = answerText
	state.addStep("Answer generated")
	return nil
}
