package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 30s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
// Gemini is the default provider; it is what the hosted app runs on.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// envOr overwrites *dst when the environment variable is set.
func envOr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from LEXBOT_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOr(&cfg.Provider, "LEXBOT_LLM_PROVIDER")
	envOr(&cfg.Gemini.APIKey, "LEXBOT_GEMINI_API_KEY")
	envOr(&cfg.Gemini.Model, "LEXBOT_GEMINI_MODEL")
	envOr(&cfg.OpenAI.APIKey, "LEXBOT_OPENAI_API_KEY")
	envOr(&cfg.OpenAI.Model, "LEXBOT_OPENAI_MODEL")
	envOr(&cfg.OpenAI.BaseURL, "LEXBOT_OPENAI_BASE_URL")
	envOr(&cfg.Anthropic.APIKey, "LEXBOT_ANTHROPIC_API_KEY")
	envOr(&cfg.Anthropic.Model, "LEXBOT_ANTHROPIC_MODEL")
	envOr(&cfg.OpenRouter.APIKey, "LEXBOT_OPENROUTER_API_KEY")
	envOr(&cfg.OpenRouter.Model, "LEXBOT_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for
// the first provider whose key is found. Returns (Config{}, false) if
// none found.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envVar   string
		provider string
		key      func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envVar); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("LEXBOT_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("LEXBOT_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("LEXBOT_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("LEXBOT_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
