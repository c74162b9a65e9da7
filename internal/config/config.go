// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Graph() GraphConfig
	LLM() LLMConfig
	Demo() DemoConfig
}

// Config holds the entire application configuration. It uses private fields
// to enforce read-only access through the Interface's getter methods; the
// graph, detector, and pipeline all receive it fully built and never write
// back.
type Config struct {
	logger LoggerConfig
	graph  GraphConfig
	llm    LLMConfig
	demo   DemoConfig
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig { return c.logger }
func (c *Config) Graph() GraphConfig   { return c.graph }
func (c *Config) LLM() LLMConfig       { return c.llm }
func (c *Config) Demo() DemoConfig     { return c.demo }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level        string      `mapstructure:"level" yaml:"level"`
	ConsoleLevel string      `mapstructure:"console_level" yaml:"console_level"`
	Format       string      `mapstructure:"format" yaml:"format"`
	AddSource    bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName  string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile      string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize      int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups   int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge       int         `mapstructure:"max_age" yaml:"max_age"`
	Compress     bool        `mapstructure:"compress" yaml:"compress"`
	Colors       ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// GraphConfig tunes the traversal over the in-memory knowledge graph.
type GraphConfig struct {
	// MaxDepth bounds the breadth-first walk; 0 visits only the start nodes.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
	// IncludeIncoming also expands along edges pointing at a visited node.
	IncludeIncoming bool `mapstructure:"include_incoming" yaml:"include_incoming"`
}

// LLMProvider defines the supported LLM providers.
type LLMProvider string

const (
	ProviderGroq   LLMProvider = "groq"
	ProviderGemini LLMProvider = "gemini"
)

// CredentialEnvVar returns the environment variable holding the API key for
// this provider.
func (p LLMProvider) CredentialEnvVar() string {
	switch p {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "GROQ_API_KEY"
	}
}

// LLMConfig defines the configuration for the single hosted model one run
// talks to.
type LLMConfig struct {
	Provider    LLMProvider   `mapstructure:"provider" yaml:"provider"`
	Model       string        `mapstructure:"model" yaml:"model"`
	APIKey      string        `mapstructure:"api_key" yaml:"-"`
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint"`
	APITimeout  time.Duration `mapstructure:"api_timeout" yaml:"api_timeout"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature"`
	TopP        float64       `mapstructure:"top_p" yaml:"top_p"`
	MaxTokens   int           `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// DemoConfig holds the questions the bare `synapse-cli` invocation runs.
type DemoConfig struct {
	Questions []string `mapstructure:"questions" yaml:"questions"`
}

// fileConfig mirrors Config with exported fields so viper can unmarshal into
// it; NewConfigFromViper copies the result into the read-only Config.
type fileConfig struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Graph  GraphConfig  `mapstructure:"graph"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Demo   DemoConfig   `mapstructure:"demo"`
}

// DefaultDemoQuestions are the sample questions used when the config file
// does not override demo.questions.
var DefaultDemoQuestions = []string{
	"What companies did Elon Musk found?",
	"Who leads OpenAI?",
	"What is the relationship between Microsoft and OpenAI?",
	"Tell me about NVIDIA",
	"Who founded DeepMind?",
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to build default config: %v", err))
	}
	return cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	// The console stays quiet below warn so pipeline output is readable;
	// the log file keeps the full level.
	v.SetDefault("logger.console_level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "synapse-cli")
	v.SetDefault("logger.log_file", "synapse.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Graph --
	v.SetDefault("graph.max_depth", 2)
	v.SetDefault("graph.include_incoming", true)

	// -- LLM --
	v.SetDefault("llm.provider", string(ProviderGroq))
	v.SetDefault("llm.model", "llama-3.1-8b-instant")
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.api_timeout", "30s")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.top_p", 0.0)
	v.SetDefault("llm.max_tokens", 1024)

	// -- Demo --
	v.SetDefault("demo.questions", DefaultDemoQuestions)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var fc fileConfig

	// Bind environment variables for sensitive data.
	v.BindEnv("llm.api_key", "SYNAPSE_LLM_API_KEY")

	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg := &Config{
		logger: fc.Logger,
		graph:  fc.Graph,
		llm:    fc.LLM,
		demo:   fc.Demo,
	}

	// Fall back to the provider's conventional variable (GROQ_API_KEY or
	// GEMINI_API_KEY) when no explicit key was configured.
	if cfg.llm.APIKey == "" {
		cfg.llm.APIKey = os.Getenv(cfg.llm.Provider.CredentialEnvVar())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for required fields and sane values. The
// API key is deliberately not validated here: commands that never reach the
// LLM (graph, version) must work without one, and the client factory performs
// its own fail-fast check before any network use.
func (c *Config) Validate() error {
	switch c.llm.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be one of 'groq' or 'gemini', got '%s'", c.llm.Provider)
	}
	if c.llm.Model == "" {
		return fmt.Errorf("llm.model is a required configuration field")
	}
	if c.llm.APITimeout <= 0 {
		return fmt.Errorf("llm.api_timeout must be a positive duration")
	}
	if c.llm.Temperature < 0 || c.llm.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0.0 and 2.0")
	}
	if c.graph.MaxDepth < 0 {
		return fmt.Errorf("graph.max_depth must not be negative")
	}
	if len(c.demo.Questions) == 0 {
		return fmt.Errorf("demo.questions must contain at least one question")
	}
	return nil
}
