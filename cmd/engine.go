package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/prompts"
	"github.com/abhisek/adaptutor/internal/store"
)

// deps are the collaborators a command builds around the engine.
type deps struct {
	engine *engine.Engine
	store  *store.Store
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
}

// llmMode says how a command treats the language model.
type llmMode int

const (
	llmNone     llmMode = iota // never configured
	llmOptional                // configured when possible, warn otherwise
	llmRequired                // configuration errors are fatal
)

// buildEngine opens the store and wires the engine from cfg.
func buildEngine(ctx context.Context, cmd *cobra.Command, mode llmMode) (*deps, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{store: st}
	repo := st.EventRepo()

	opts := []engine.Option{
		engine.WithConfig(cfg.Engine),
		engine.WithAnalysisWriter(repo),
		engine.WithLogger(logger),
	}

	if cfg.Templates != "" {
		ts, err := prompts.LoadFile(cfg.Templates)
		if err != nil {
			d.Close()
			return nil, err
		}
		opts = append(opts, engine.WithComposer(prompts.NewComposer(ts)))
	}

	if mode != llmNone {
		provider, err := llm.NewProvider(ctx, cfg.LLM, repo, logger)
		switch {
		case err == nil:
			opts = append(opts, engine.WithProvider(provider, cfg.LLM.Timeout))
			logger.Debug("language model configured",
				zap.String("provider", cfg.LLM.Provider),
				zap.String("model", provider.ModelID()))
		case mode == llmRequired:
			d.Close()
			return nil, fmt.Errorf("language model not configured: %w", err)
		default:
			logger.Warn("language model not configured, tutor replies unavailable", zap.Error(err))
		}
	}

	d.engine = engine.New(opts...)
	return d, nil
}
