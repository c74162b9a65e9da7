package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/answer"
	"github.com/xkilldash9x/synapse-cli/internal/config"
	"github.com/xkilldash9x/synapse-cli/internal/dataset"
	"github.com/xkilldash9x/synapse-cli/internal/detector"
	"github.com/xkilldash9x/synapse-cli/internal/facts"
	"github.com/xkilldash9x/synapse-cli/internal/knowledgegraph"
	"github.com/xkilldash9x/synapse-cli/internal/llmclient"
	"github.com/xkilldash9x/synapse-cli/internal/observability"
	"github.com/xkilldash9x/synapse-cli/internal/pipeline"
	"github.com/xkilldash9x/synapse-cli/internal/traversal"
)

// queryComponents holds initialized services for the question-answering
// commands.
type queryComponents struct {
	Store     *knowledgegraph.InMemoryKG
	Analyzer  *detector.NameMatchDetector
	LLMClient schemas.LLMClient
	Pipeline  *pipeline.Pipeline
}

// Shutdown gracefully closes all components.
func (qc *queryComponents) Shutdown() {
	if qc.LLMClient != nil {
		if err := qc.LLMClient.Close(); err != nil {
			observability.GetLogger().Warn("Error during LLM client shutdown", zap.Error(err))
		}
	}
}

// initializeQueryComponents handles dependency injection for the ask, repl
// and demo paths. On failure the partially built components are still
// returned so the caller can shut them down.
func initializeQueryComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*queryComponents, error) {
	components := &queryComponents{}

	// 1. Graph store and dataset
	store, err := knowledgegraph.NewInMemoryKG(logger)
	if err != nil {
		return components, fmt.Errorf("failed to initialize graph store: %w", err)
	}
	if err := dataset.Load(ctx, store, logger); err != nil {
		return components, fmt.Errorf("failed to load dataset: %w", err)
	}
	components.Store = store

	// 2. Entity detection
	analyzer, err := detector.NewNameMatchDetector(dataset.Nodes(), dataset.Aliases(), logger)
	if err != nil {
		return components, fmt.Errorf("failed to initialize entity detector: %w", err)
	}
	components.Analyzer = analyzer

	// 3. Traversal and context building
	traverser, err := traversal.NewTraverser(store, cfg.Graph(), logger)
	if err != nil {
		return components, fmt.Errorf("failed to initialize graph traverser: %w", err)
	}
	builder, err := facts.NewBuilder(store, logger)
	if err != nil {
		return components, fmt.Errorf("failed to initialize context builder: %w", err)
	}

	// 4. LLM client and answer generator
	llmClient, err := llmclient.NewClient(cfg.LLM(), logger)
	if err != nil {
		return components, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	components.LLMClient = llmClient

	generator, err := answer.NewGenerator(llmClient, cfg.LLM(), logger)
	if err != nil {
		return components, fmt.Errorf("failed to initialize answer generator: %w", err)
	}

	// 5. Pipeline
	pipe, err := pipeline.New(logger, analyzer, store, traverser, builder, generator)
	if err != nil {
		return components, fmt.Errorf("failed to create pipeline: %w", err)
	}
	components.Pipeline = pipe

	return components, nil
}
