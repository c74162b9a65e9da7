package llmclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xkilldash9x/synapse-cli/internal/config"
)

// -- Test Cases: Factory Initialization (NewClient) --

// Verifies that the factory selects the Groq client for the groq provider.
func TestNewClient_SelectsGroq(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := setupTestLogger(t)

	cfg := getValidLLMConfig()
	cfg.Provider = config.ProviderGroq

	client, err := NewClient(cfg, logger)

	require.NoError(t, err, "NewClient should succeed for a valid configuration")
	require.NotNil(t, client)
	t.Cleanup(func() { client.Close() })

	groqClient, ok := client.(*GroqClient)
	assert.True(t, ok, "The created client should be of type *GroqClient")
	if ok {
		assert.Equal(t, "test-model", groqClient.model)
		assert.Equal(t, defaultGroqBaseURL, groqClient.baseURL)
	}
}

// Verifies that the factory selects the Gemini client for the gemini provider.
func TestNewClient_SelectsGemini(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := setupTestLogger(t)

	cfg := getValidLLMConfig()
	cfg.Provider = config.ProviderGemini

	client, err := NewClient(cfg, logger)

	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { client.Close() })

	geminiClient, ok := client.(*GeminiClient)
	assert.True(t, ok, "The created client should be of type *GeminiClient")
	if ok {
		assert.Equal(t, "test-api-key", geminiClient.apiKey)
	}
}

// Verifies the fail-fast behavior for a missing credential: the factory must
// refuse to build a client before any network interaction could happen, and
// the diagnostic must name the environment variable to set.
func TestNewClient_Failure_MissingCredential(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := setupTestLogger(t)

	tests := []struct {
		name        string
		provider    config.LLMProvider
		expectedEnv string
	}{
		{name: "groq", provider: config.ProviderGroq, expectedEnv: "GROQ_API_KEY"},
		{name: "gemini", provider: config.ProviderGemini, expectedEnv: "GEMINI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getValidLLMConfig()
			cfg.Provider = tt.provider
			cfg.APIKey = ""

			client, err := NewClient(cfg, logger)

			assert.Error(t, err)
			assert.Nil(t, client)
			assert.Contains(t, err.Error(), "missing API credential for LLM provider")
			assert.Contains(t, err.Error(), tt.expectedEnv)
			assert.Contains(t, err.Error(), "SYNAPSE_LLM_API_KEY")
		})
	}
}

// Verifies the factory returns an error for unknown providers.
func TestNewClient_Failure_UnsupportedProvider(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := setupTestLogger(t)

	cfg := getValidLLMConfig()
	cfg.Provider = "unsupported-provider-xyz"

	client, err := NewClient(cfg, logger)

	assert.Error(t, err, "NewClient should fail for an unsupported provider")
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unknown or unsupported LLM provider configured: 'unsupported-provider-xyz'")
	// Ensure the error message guides the user by listing supported options
	assert.Contains(t, err.Error(), string(config.ProviderGroq), "Error message should list supported providers")
	assert.Contains(t, err.Error(), string(config.ProviderGemini), "Error message should list supported providers")
}
