package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/greenlens/esg-cli/internal/backendmock"
	"github.com/greenlens/esg-cli/internal/pipeline"
	"github.com/greenlens/esg-cli/internal/registry"
	"github.com/greenlens/esg-cli/internal/store"
	"github.com/greenlens/esg-cli/internal/validate"
	"github.com/greenlens/esg-cli/pkg/anthropic"
)

// pipelineEnv bundles the wired components a command needs.
type pipelineEnv struct {
	Registry *registry.Registry
	Pipeline *pipeline.Pipeline
	Store    store.Store
}

// Close releases the store connection.
func (e *pipelineEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initPipeline wires registry, backend, validation engine and store from the
// loaded configuration.
func initPipeline(ctx context.Context) (*pipelineEnv, error) {
	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}

	engine := validate.NewEngine(validate.Config{
		LowConfidence:      cfg.Validation.LowConfidence,
		ScopeBalanceFactor: cfg.Validation.ScopeBalanceFactor,
		BoardRatioFactor:   cfg.Validation.BoardRatioFactor,
	})

	p := &pipeline.Pipeline{
		Registry: reg,
		Backend:  newBackend(),
		Engine:   engine,
		Store:    st,
		Opts: pipeline.ExtractOptions{
			Concurrency: cfg.Pipeline.Concurrency,
			CallTimeout: time.Duration(cfg.Pipeline.CallTimeoutSecs) * time.Second,
			TopChunks:   cfg.Pipeline.TopChunks,
		},
	}

	return &pipelineEnv{Registry: reg, Pipeline: p, Store: st}, nil
}

func loadRegistry() (*registry.Registry, error) {
	if cfg.Catalog.Path != "" {
		return registry.LoadFile(cfg.Catalog.Path)
	}
	return registry.Default(), nil
}

func openStore(ctx context.Context) (store.Store, error) {
	var st store.Store
	var err error

	switch cfg.Store.Driver {
	case "sqlite", "":
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func newBackend() pipeline.Backend {
	if cfg.Anthropic.Mock {
		return backendmock.New()
	}
	client := anthropic.NewClient(cfg.Anthropic.Key)
	return pipeline.NewAnthropicBackend(
		client,
		cfg.Anthropic.Model,
		int64(cfg.Anthropic.MaxTokens),
		cfg.Anthropic.RatePerS,
		cfg.Anthropic.Burst,
	)
}
