// Package app assembles the resolver from configuration. The API server and
// the intentctl CLI share it.
package app

import (
	"context"
	"fmt"
	"net/http"

	"smartfactory-assistant/config"
	"smartfactory-assistant/internal/intent"
	"smartfactory-assistant/internal/intent/keyword"
	"smartfactory-assistant/internal/intent/payload"
	"smartfactory-assistant/internal/intent/registry"
	"smartfactory-assistant/internal/intent/semantic"
	"smartfactory-assistant/internal/intent/slot"
	intentUC "smartfactory-assistant/internal/intent/usecase"
	"smartfactory-assistant/internal/reasoning"
	reasoningUC "smartfactory-assistant/internal/reasoning/usecase"
	"smartfactory-assistant/pkg/datemath"
	"smartfactory-assistant/pkg/llmprovider"
	"smartfactory-assistant/pkg/log"
)

// App is the assembled resolver.
type App struct {
	Registry *registry.Registry
	Intent   intent.UseCase
	// Reasoning is nil unless the reasoning routes are served.
	Reasoning reasoning.UseCase
}

// Build loads the catalogue and wires every component. A catalogue error is fatal.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	reg, err := loadRegistry(cfg.Intent.CataloguePath)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Catalogue %s loaded with %d actions", reg.Version(), len(reg.All()))

	dates, err := datemath.NewParser(cfg.Intent.Timezone)
	if err != nil {
		return nil, err
	}

	var llm *llmprovider.Manager
	if cfg.NeedsLLM() {
		if llm, err = newLLM(ctx, cfg, l); err != nil {
			return nil, err
		}
	}

	var reasoner semantic.Reasoner
	if cfg.Intent.SemanticEnabled {
		switch cfg.Intent.SemanticMode {
		case config.SemanticModeLocal:
			reasoner = semantic.NewLLMReasoner(l, llm)
			l.Info(ctx, "Semantic fallback: in-process LLM reasoner")
		default:
			reasoner = semantic.NewRemoteReasoner(l, cfg.Intent.ReasoningURL, &http.Client{})
			l.Infof(ctx, "Semantic fallback: remote reasoner at %s", cfg.Intent.ReasoningURL)
		}
	} else {
		l.Info(ctx, "Semantic fallback disabled, keyword resolution only")
	}

	payloadCache, err := semantic.NewCache[intent.Payload](cfg.Intent.CacheSize, cfg.Intent.CacheTTL)
	if err != nil {
		return nil, err
	}

	var matcher intentUC.SemanticMatcher
	if reasoner != nil {
		verdictCache, err := semantic.NewCache[semantic.Verdict](cfg.Intent.CacheSize, cfg.Intent.CacheTTL)
		if err != nil {
			return nil, err
		}
		matcher = semantic.NewMatcher(l, reasoner, reg, verdictCache, cfg.Intent.SemanticTimeout)
	}

	ucCfg := intentUC.DefaultConfig()
	ucCfg.HighConfidence = cfg.Intent.HighConfidence
	ucCfg.FallbackBelow = cfg.Intent.FallbackBelow
	ucCfg.UsabilityFloor = cfg.Intent.UsabilityFloor
	ucCfg.SemanticEnabled = cfg.Intent.SemanticEnabled

	a := &App{
		Registry: reg,
		Intent: intentUC.New(l, ucCfg, reg,
			keyword.New(reg, keyword.WithThreshold(cfg.Intent.FuzzyThreshold)),
			slot.New(dates),
			matcher,
			payload.New(l, reasoner, reg, payloadCache, cfg.Intent.SemanticTimeout),
		),
	}

	if cfg.Reasoning.ServeRoutes {
		a.Reasoning = reasoningUC.New(l, semantic.NewLLMReasoner(l, llm), ucCfg.MaxInputLen)
	}
	return a, nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default()
	}
	return registry.LoadFile(path)
}

func newLLM(ctx context.Context, cfg *config.Config, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("initialize llm providers: %w", err)
	}
	mc, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	return llmprovider.NewManager(providers, mc, l), nil
}
