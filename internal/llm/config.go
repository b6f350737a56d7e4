package llm

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Providers lists every supported provider name.
func Providers() []string {
	return []string{ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter, ProviderMock}
}

// Config holds all LLM provider configuration.
type Config struct {
	Provider string `koanf:"provider" yaml:"provider"`

	Anthropic  AnthropicConfig  `koanf:"anthropic" yaml:"anthropic"`
	OpenAI     OpenAIConfig     `koanf:"openai" yaml:"openai"`
	Gemini     GeminiConfig     `koanf:"gemini" yaml:"gemini"`
	OpenRouter OpenRouterConfig `koanf:"openrouter" yaml:"openrouter"`
	Retry      RetryConfig      `koanf:"retry" yaml:"retry"`

	// Timeout bounds a single tutor call including retries.
	Timeout time.Duration `koanf:"timeout" yaml:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `koanf:"api_key" yaml:"api_key,omitempty"`
	Model  string `koanf:"model" yaml:"model"` // Default: "claude-haiku"
}

type OpenAIConfig struct {
	APIKey  string `koanf:"api_key" yaml:"api_key,omitempty"`
	Model   string `koanf:"model" yaml:"model"`                 // Default: "gpt-mini"
	BaseURL string `koanf:"base_url" yaml:"base_url,omitempty"` // OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string `koanf:"api_key" yaml:"api_key,omitempty"`
	Model  string `koanf:"model" yaml:"model"` // Default: "gemini-flash"
}

type OpenRouterConfig struct {
	APIKey  string `koanf:"api_key" yaml:"api_key,omitempty"`
	Model   string `koanf:"model" yaml:"model"`
	BaseURL string `koanf:"base_url" yaml:"base_url,omitempty"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts" yaml:"max_attempts"`
	InitialWait time.Duration `koanf:"initial_wait" yaml:"initial_wait"`
	MaxWait     time.Duration `koanf:"max_wait" yaml:"max_wait"`
	Multiplier  float64       `koanf:"multiplier" yaml:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from ADAPTUTOR_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "ADAPTUTOR_LLM_PROVIDER")
	set(&cfg.Anthropic.APIKey, "ADAPTUTOR_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "ADAPTUTOR_ANTHROPIC_MODEL")
	set(&cfg.OpenAI.APIKey, "ADAPTUTOR_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "ADAPTUTOR_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "ADAPTUTOR_OPENAI_BASE_URL")
	set(&cfg.Gemini.APIKey, "ADAPTUTOR_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "ADAPTUTOR_GEMINI_MODEL")
	set(&cfg.OpenRouter.APIKey, "ADAPTUTOR_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "ADAPTUTOR_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig checks standard API key env vars in priority order
// (Anthropic, OpenAI, Gemini, OpenRouter) and fills base for the first
// provider whose key is found. Returns (base, false) if none is found.
func DiscoverConfig(base Config) (Config, bool) {
	cfg := base

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return base, false
}

// apiKey returns the key configured for the selected provider and
// whether that provider needs one at all.
func (c Config) apiKey() (key string, required bool) {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic.APIKey, true
	case ProviderOpenAI:
		return c.OpenAI.APIKey, true
	case ProviderGemini:
		return c.Gemini.APIKey, true
	case ProviderOpenRouter:
		return c.OpenRouter.APIKey, true
	}
	return "", false
}

// Validate checks that the provider is known, has its API key and that
// the retry policy allows at least one attempt.
func (c Config) Validate() error {
	if !slices.Contains(Providers(), c.Provider) {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key, required := c.apiKey(); required && strings.TrimSpace(key) == "" {
		return fmt.Errorf("an API key is required for the %s provider (set llm.%s.api_key or ADAPTUTOR_%s_API_KEY)",
			c.Provider, c.Provider, strings.ToUpper(c.Provider))
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("llm.retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
