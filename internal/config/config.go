// Package config loads layered adaptutor configuration: built-in defaults,
// then a .env file, then a YAML file, then ADAPTUTOR_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/prompts"
)

// EnvPrefix prefixes every environment override. A double underscore
// nests, so ADAPTUTOR_LLM__PROVIDER sets llm.provider.
const EnvPrefix = "ADAPTUTOR_"

// DefaultPath is the config file read when none is given.
const DefaultPath = "adaptutor.yaml"

// Config is the full application configuration.
type Config struct {
	LLM    llm.Config   `koanf:"llm" yaml:"llm"`
	Server ServerConfig `koanf:"server" yaml:"server"`
	Engine EngineConfig `koanf:"engine" yaml:"engine"`

	// DB is the SQLite path. Empty means the platform default.
	DB string `koanf:"db" yaml:"db,omitempty"`

	// Templates is an optional YAML file overlaid on the built-in prompt
	// templates.
	Templates string `koanf:"templates" yaml:"templates,omitempty"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string        `koanf:"addr" yaml:"addr"`
	AllowAllOrigins bool          `koanf:"allow_all_origins" yaml:"allow_all_origins"`
	AllowedOrigins  []string      `koanf:"allowed_origins" yaml:"allowed_origins,omitempty"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// EngineConfig tunes analysis and composition.
type EngineConfig struct {
	RecentWindow      int     `koanf:"recent_window" yaml:"recent_window"`
	DefaultMode       string  `koanf:"default_mode" yaml:"default_mode"`
	DefaultSubject    string  `koanf:"default_subject" yaml:"default_subject"`
	Complexity        string  `koanf:"complexity" yaml:"complexity"`
	ResponseLength    string  `koanf:"response_length" yaml:"response_length"`
	MixedGapThreshold float64 `koanf:"mixed_gap_threshold" yaml:"mixed_gap_threshold"`
	MixedBlendWeight  float64 `koanf:"mixed_blend_weight" yaml:"mixed_blend_weight"`
	TutorMaxTokens    int     `koanf:"tutor_max_tokens" yaml:"tutor_max_tokens"`
	TutorTemperature  float64 `koanf:"tutor_temperature" yaml:"tutor_temperature"`
}

// Load builds a Config from defaults, the given dotenv files, the YAML file
// at path and the environment, in that order. Missing files are skipped.
func Load(path string, dotenv ...string) (*Config, error) {
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if !k.Exists("llm.provider") {
		if found, ok := llm.DiscoverConfig(cfg.LLM); ok {
			cfg.LLM = found
		}
	}
	fillAPIKey(&cfg.LLM)

	return cfg, nil
}

// envKey maps ADAPTUTOR_LLM__ANTHROPIC__MODEL to llm.anthropic.model.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// fillAPIKey takes the selected provider's key from its conventional
// environment variable when the config leaves it empty.
func fillAPIKey(c *llm.Config) {
	v := os.Getenv(APIKeyEnvVar(c.Provider))
	if v == "" {
		return
	}
	switch c.Provider {
	case llm.ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			c.Anthropic.APIKey = v
		}
	case llm.ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			c.OpenAI.APIKey = v
		}
	case llm.ProviderGemini:
		if c.Gemini.APIKey == "" {
			c.Gemini.APIKey = v
		}
	case llm.ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			c.OpenRouter.APIKey = v
		}
	}
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider string) string {
	switch provider {
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case llm.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case llm.ProviderGemini:
		return "GEMINI_API_KEY"
	case llm.ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	default:
		return ""
	}
}

// Save writes the configuration to the given YAML file path. API keys are
// left out.
func (c *Config) Save(path string) error {
	out := *c
	out.LLM.Anthropic.APIKey = ""
	out.LLM.OpenAI.APIKey = ""
	out.LLM.Gemini.APIKey = ""
	out.LLM.OpenRouter.APIKey = ""

	data, err := yamlv3.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validComplexity = []string{prompts.ComplexitySimple, prompts.ComplexityModerate, prompts.ComplexityComplex}
	validLength     = []string{prompts.LengthBrief, prompts.LengthAdaptive, prompts.LengthDetailed}
	validModes      = []string{prompts.ModeSocratic, prompts.ModeExplanatory, prompts.ModeGuidedPractice, prompts.ModeReview}
)

// Validate checks that the configuration contains valid values. It does
// not require API keys; call c.LLM.Validate before talking to a provider.
func (c *Config) Validate() error {
	if !slices.Contains(llm.Providers(), c.LLM.Provider) {
		return fmt.Errorf("invalid llm.provider %q: must be one of %s", c.LLM.Provider, strings.Join(llm.Providers(), ", "))
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}

	e := c.Engine
	if e.RecentWindow < 1 {
		return fmt.Errorf("engine.recent_window must be at least 1, got %d", e.RecentWindow)
	}
	if !slices.Contains(validModes, e.DefaultMode) {
		return fmt.Errorf("invalid engine.default_mode %q: must be one of %s", e.DefaultMode, strings.Join(validModes, ", "))
	}
	if !slices.Contains(validComplexity, e.Complexity) {
		return fmt.Errorf("invalid engine.complexity %q: must be one of %s", e.Complexity, strings.Join(validComplexity, ", "))
	}
	if !slices.Contains(validLength, e.ResponseLength) {
		return fmt.Errorf("invalid engine.response_length %q: must be one of %s", e.ResponseLength, strings.Join(validLength, ", "))
	}
	if e.MixedGapThreshold < 0 || e.MixedGapThreshold > 100 {
		return fmt.Errorf("engine.mixed_gap_threshold must be within [0, 100], got %g", e.MixedGapThreshold)
	}
	if e.MixedBlendWeight < 0 || e.MixedBlendWeight > 1 {
		return fmt.Errorf("engine.mixed_blend_weight must be within [0, 1], got %g", e.MixedBlendWeight)
	}
	if e.TutorMaxTokens < 1 {
		return fmt.Errorf("engine.tutor_max_tokens must be positive")
	}
	if e.TutorTemperature < 0 || e.TutorTemperature > 1 {
		return fmt.Errorf("engine.tutor_temperature must be within [0, 1], got %g", e.TutorTemperature)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
