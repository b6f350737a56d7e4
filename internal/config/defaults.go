package config

import (
	"time"

	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/prompts"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: llm.DefaultConfig(),
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Engine: EngineConfig{
			RecentWindow:      20,
			DefaultMode:       prompts.ModeExplanatory,
			DefaultSubject:    prompts.SubjectGeneral,
			Complexity:        prompts.ComplexityModerate,
			ResponseLength:    prompts.LengthAdaptive,
			MixedGapThreshold: learnstyle.DefaultMixedGapThreshold,
			MixedBlendWeight:  learnstyle.DefaultMixedBlendWeight,
			TutorMaxTokens:    1024,
			TutorTemperature:  0.4,
		},
	}
}
