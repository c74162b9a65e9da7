// -- internal/llmclient/factory.go --
package llmclient

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/synapse-cli/api/schemas"
	"github.com/xkilldash9x/synapse-cli/internal/config"
)

// NewClient is a factory function that creates an LLMClient based on the
// configuration. A missing credential fails here, before any client is built
// and long before any network call is attempted.
func NewClient(cfg config.LLMConfig, logger *zap.Logger) (schemas.LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf(
			"missing API credential for LLM provider '%s': set %s (or SYNAPSE_LLM_API_KEY)",
			cfg.Provider, cfg.Provider.CredentialEnvVar(),
		)
	}

	switch cfg.Provider {
	case config.ProviderGroq:
		return NewGroqClient(cfg, logger)
	case config.ProviderGemini:
		return NewGeminiClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown or unsupported LLM provider configured: '%s'. Supported: [%s, %s]",
			cfg.Provider, config.ProviderGroq, config.ProviderGemini)
	}
}
