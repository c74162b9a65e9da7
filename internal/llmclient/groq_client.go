// internal/llmclient/groq_client.go
package llmclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/config"
)

// defaultGroqBaseURL is Groq's OpenAI-compatible API surface.
const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient implements schemas.LLMClient against the Groq chat completion
// API. Groq speaks the OpenAI wire protocol, so the client rides on the
// standard OpenAI SDK with a swapped base URL.
type GroqClient struct {
	client  *openai.Client
	model   string
	baseURL string
	logger  *zap.Logger
}

var _ schemas.LLMClient = (*GroqClient)(nil)

// NewGroqClient initializes the client.
func NewGroqClient(cfg config.LLMConfig, logger *zap.Logger) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Groq API Key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = defaultGroqBaseURL
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	if cfg.APITimeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.APITimeout}
	}

	return &GroqClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		baseURL: clientCfg.BaseURL,
		logger:  logger.Named("llm_client.groq"),
	}, nil
}

// Generate sends the prompts as a chat completion and returns the first
// choice's content. Errors are terminal; there is no retry.
func (c *GroqClient) Generate(ctx context.Context, req schemas.GenerationRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: float32(req.Options.Temperature),
	}
	if req.Options.TopP > 0 {
		chatReq.TopP = float32(req.Options.TopP)
	}
	if req.Options.MaxTokens > 0 {
		chatReq.MaxTokens = req.Options.MaxTokens
	}

	startTime := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	duration := time.Since(startTime)

	if err != nil {
		return "", fmt.Errorf("groq API request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq API returned no choices")
	}

	c.logger.Info("LLM generation complete (Groq)",
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// Close releases nothing; the underlying SDK keeps no resources that need
// explicit teardown.
func (c *GroqClient) Close() error {
	return nil
}
