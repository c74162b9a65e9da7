// internal/answer/answer.go
package answer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/config"
	"github.com/xkilldash9x/synapse-cli/internal/llmutil"
)

// NoInformationAnswer is returned without consulting the model when the
// context document carries no facts at all.
const NoInformationAnswer = "I couldn't find any relevant information in the knowledge graph to answer your question."

// systemPrompt pins the grounding rules for every answer: the model may use
// only the supplied facts and must admit when they are insufficient.
const systemPrompt = `You are a helpful assistant answering questions based on a knowledge graph.
Use ONLY the provided context to answer. Be concise and direct.
If the context doesn't contain enough information, say so.`

// Generator turns a question and its assembled context document into the
// final natural-language answer.
type Generator struct {
	logger *zap.Logger
	llm    schemas.LLMClient
	opts   schemas.GenerationOptions
}

// NewGenerator wires a generator to an LLM client. Generation parameters
// (temperature, top_p, max tokens) come from the LLM configuration.
func NewGenerator(llm schemas.LLMClient, cfg config.LLMConfig, logger *zap.Logger) (*Generator, error) {
	if llm == nil {
		return nil, fmt.Errorf("an LLM client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		logger: logger.Named("AnswerGenerator"),
		llm:    llm,
		opts: schemas.GenerationOptions{
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
			MaxTokens:   cfg.MaxTokens,
		},
	}, nil
}

// Generate produces the answer for a question. An empty context document
// short-circuits to the canned no-information reply; the model is never
// consulted in that case.
func (g *Generator) Generate(ctx context.Context, question string, doc schemas.ContextDocument) (string, error) {
	if doc.Empty() {
		g.logger.Info("No context available, skipping LLM call")
		return NoInformationAnswer, nil
	}

	req := schemas.GenerationRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   buildUserPrompt(question, doc),
		Options:      g.opts,
	}

	answerText, err := g.llm.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	g.logger.Debug("Answer generated",
		zap.Int("fact_count", len(doc.Facts)),
		zap.String("answer_preview", llmutil.TruncateForLog(answerText, 120)),
	)
	return answerText, nil
}

// buildUserPrompt lays out the rendered context and the question in the fixed
// shape the system prompt refers to.
func buildUserPrompt(question string, doc schemas.ContextDocument) string {
	return fmt.Sprintf("Context from knowledge graph:\n%s\n\nQuestion: %s\n\nAnswer:", doc.String(), question)
}
