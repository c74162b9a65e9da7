// File: internal/config/config_test.go
package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "warn", cfg.Logger().ConsoleLevel)
	assert.Equal(t, "synapse-cli", cfg.Logger().ServiceName)
	assert.Equal(t, "synapse.log", cfg.Logger().LogFile)
	assert.Equal(t, 2, cfg.Graph().MaxDepth)
	assert.True(t, cfg.Graph().IncludeIncoming)
	assert.Equal(t, ProviderGroq, cfg.LLM().Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM().Model)
	assert.Equal(t, 30*time.Second, cfg.LLM().APITimeout)
	assert.Zero(t, cfg.LLM().Temperature)
	assert.Len(t, cfg.Demo().Questions, 5)
	assert.Equal(t, "What companies did Elon Musk found?", cfg.Demo().Questions[0])
}

func TestLLMProviderCredentialEnvVar(t *testing.T) {
	assert.Equal(t, "GROQ_API_KEY", ProviderGroq.CredentialEnvVar())
	assert.Equal(t, "GEMINI_API_KEY", ProviderGemini.CredentialEnvVar())
	// Unknown providers fall back to the default provider's variable; the
	// validator rejects them before the value is ever used.
	assert.Equal(t, "GROQ_API_KEY", LLMProvider("mystery").CredentialEnvVar())
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("should accept the default configuration", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("should reject an unknown provider", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.llm.Provider = "openai"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.provider must be one of 'groq' or 'gemini'")
	})

	t.Run("should reject an empty model", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.llm.Model = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.model is a required configuration field")
	})

	t.Run("should reject a non-positive API timeout", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.llm.APITimeout = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.api_timeout must be a positive duration")
	})

	t.Run("should reject an out-of-range temperature", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.llm.Temperature = 2.5
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.temperature must be between 0.0 and 2.0")
	})

	t.Run("should reject a negative traversal depth", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.graph.MaxDepth = -1
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "graph.max_depth must not be negative")
	})

	t.Run("should reject an empty demo question list", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.demo.Questions = nil
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "demo.questions must contain at least one question")
	})
}

// -- Factory Function Tests --

func TestNewConfigFromViper(t *testing.T) {
	t.Run("should load YAML values over defaults", func(t *testing.T) {
		yamlBytes := []byte(`
logger:
  level: debug
  log_file: /var/log/synapse.log
graph:
  max_depth: 1
  include_incoming: false
llm:
  model: llama-3.3-70b-versatile
`)
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")
		err := v.ReadConfig(bytes.NewBuffer(yamlBytes))
		require.NoError(t, err)

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logger().Level)
		assert.Equal(t, "/var/log/synapse.log", cfg.Logger().LogFile)
		assert.Equal(t, 1, cfg.Graph().MaxDepth)
		assert.False(t, cfg.Graph().IncludeIncoming)
		assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM().Model)
		// A default survives where the YAML is silent.
		assert.Equal(t, ProviderGroq, cfg.LLM().Provider)
	})

	t.Run("should surface validation failures", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("llm.provider", "chatgpt") // Intentionally invalid

		cfg, err := NewConfigFromViper(v)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("should bind the explicit API key variable", func(t *testing.T) {
		t.Setenv("SYNAPSE_LLM_API_KEY", "sk-explicit")
		t.Setenv("GROQ_API_KEY", "sk-conventional")

		v := viper.New()
		SetDefaults(v)
		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		// The explicit variable wins over the provider convention.
		assert.Equal(t, "sk-explicit", cfg.LLM().APIKey)
	})

	t.Run("should fall back to the provider's conventional variable", func(t *testing.T) {
		t.Setenv("SYNAPSE_LLM_API_KEY", "")
		t.Setenv("GROQ_API_KEY", "gsk_from_env")

		v := viper.New()
		SetDefaults(v)
		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		assert.Equal(t, "gsk_from_env", cfg.LLM().APIKey)
	})

	t.Run("should pick the gemini variable for the gemini provider", func(t *testing.T) {
		t.Setenv("SYNAPSE_LLM_API_KEY", "")
		t.Setenv("GROQ_API_KEY", "gsk_wrong_provider")
		t.Setenv("GEMINI_API_KEY", "AIza_from_env")

		v := viper.New()
		SetDefaults(v)
		v.Set("llm.provider", "gemini")
		v.Set("llm.model", "gemini-2.5-flash")

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		assert.Equal(t, ProviderGemini, cfg.LLM().Provider)
		assert.Equal(t, "AIza_from_env", cfg.LLM().APIKey)
	})
}
