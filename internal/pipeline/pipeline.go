// Package pipeline orchestrates the extract-validate-score flow over one
// sustainability report.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/registry"
	"github.com/greenlens/esg-cli/internal/scorer"
	"github.com/greenlens/esg-cli/internal/store"
	"github.com/greenlens/esg-cli/internal/validate"
)

// Pipeline wires the extraction backend, validation engine and score
// aggregation behind a single Run call. Store is optional; without one the
// result is returned but not persisted.
type Pipeline struct {
	Registry *registry.Registry
	Backend  Backend
	Engine   *validate.Engine
	Store    store.Store
	Opts     ExtractOptions
}

// Run extracts every defined metric from the report pages, validates the
// candidates and scores the result. When a Store is configured the run is
// recorded up front and its result persisted on completion; persistence
// failures fail the run.
func (p *Pipeline) Run(ctx context.Context, company string, pages []model.Page) (*model.RunResult, error) {
	if len(pages) == 0 {
		return nil, eris.New("pipeline: no report pages")
	}

	var run *model.Run
	if p.Store != nil {
		var err error
		run, err = p.Store.CreateRun(ctx, company)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: create run")
		}
		if err := p.Store.UpdateRunStatus(ctx, run.ID, model.RunStatusRunning); err != nil {
			return nil, eris.Wrap(err, "pipeline: mark running")
		}
	}

	start := time.Now()
	extractions := Extract(ctx, p.Registry, pages, p.Backend, p.Opts)
	verdicts := p.Engine.Validate(extractions, p.Registry)
	scores := scorer.Score(extractions, verdicts, p.Registry)

	result := &model.RunResult{
		Records:    assembleRecords(p.Registry, extractions, verdicts),
		Scores:     scores,
		DurationMS: time.Since(start).Milliseconds(),
	}

	zap.L().Info("pipeline: run complete",
		zap.String("company", company),
		zap.Int("pages", len(pages)),
		zap.Int("metrics", p.Registry.Len()),
		zap.Float64("overall", scores.Overall),
		zap.Int64("duration_ms", result.DurationMS),
	)

	if p.Store != nil {
		if err := p.Store.UpdateRunResult(ctx, run.ID, result); err != nil {
			if stErr := p.Store.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); stErr != nil {
				zap.L().Warn("pipeline: mark failed", zap.String("run", run.ID), zap.Error(stErr))
			}
			return nil, eris.Wrap(err, "pipeline: persist result")
		}
	}
	return result, nil
}

// assembleRecords joins extractions and verdicts per metric, in registry
// order. Extractions and verdicts both come back in that order already; the
// maps guard against a future reordering upstream.
func assembleRecords(reg *registry.Registry, extractions []model.Extraction, verdicts []model.Verdict) []model.MetricRecord {
	extByID := make(map[string]model.Extraction, len(extractions))
	for _, e := range extractions {
		extByID[e.MetricID] = e
	}
	verdictByID := make(map[string]model.Verdict, len(verdicts))
	for _, v := range verdicts {
		verdictByID[v.MetricID] = v
	}

	defs := reg.All()
	records := make([]model.MetricRecord, 0, len(defs))
	for _, def := range defs {
		rec := model.MetricRecord{
			Metric:  def,
			Verdict: verdictByID[def.ID],
		}
		if e, ok := extByID[def.ID]; ok && e.Kind == model.ExtractionFound {
			rec.Candidate = e.Candidate
		}
		records = append(records, rec)
	}
	return records
}
