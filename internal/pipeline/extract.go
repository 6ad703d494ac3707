package pipeline

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/parser"
	"github.com/greenlens/esg-cli/internal/registry"
)

// ExtractOptions tunes the orchestration fan-out.
type ExtractOptions struct {
	// Concurrency bounds parallel backend calls. Parallelism is a
	// performance knob only; the result set is identical for any value >= 1.
	Concurrency int
	// CallTimeout bounds one backend call. A timeout degrades to that
	// metric's backend-error outcome without aborting the run.
	CallTimeout time.Duration
	// TopChunks is how many pages are selected per metric prompt.
	TopChunks int
}

func (o ExtractOptions) withDefaults() ExtractOptions {
	if o.Concurrency <= 0 {
		o.Concurrency = 4
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = 120 * time.Second
	}
	if o.TopChunks <= 0 {
		o.TopChunks = 3
	}
	return o
}

// Extract runs one backend call per defined metric and parses the results
// into tagged per-metric outcomes, one per metric, in registry order.
//
// Metrics are processed independently: a backend or parser failure on one
// metric is recorded as that metric's outcome and never aborts the others.
// Each metric owns its output slot exclusively; slots are merged only after
// every extraction completed or timed out, so the final sequence does not
// depend on completion order.
func Extract(ctx context.Context, reg *registry.Registry, pages []model.Page, backend Backend, opts ExtractOptions) []model.Extraction {
	opts = opts.withDefaults()
	defs := reg.All()
	slots := make([]model.Extraction, len(defs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, def := range defs {
		g.Go(func() error {
			slots[i] = extractOne(gCtx, def, pages, backend, opts)
			return nil
		})
	}
	_ = g.Wait()

	return slots
}

// extractOne handles a single metric end to end: chunk selection, one
// backend call, response parsing.
func extractOne(ctx context.Context, def model.MetricDefinition, pages []model.Page, backend Backend, opts ExtractOptions) model.Extraction {
	selected := selectChunks(pages, def, opts.TopChunks)
	if len(selected) == 0 {
		return model.NotFound(def.ID)
	}
	prompt := buildPrompt(def, selected)

	callCtx, cancel := context.WithTimeout(ctx, opts.CallTimeout)
	defer cancel()

	raw, err := backend.Call(callCtx, prompt)
	if err != nil {
		zap.L().Warn("extract: backend call failed",
			zap.String("metric", def.ID),
			zap.Error(err),
		)
		return model.BackendFailure(def.ID, err.Error())
	}

	ext, err := parser.Parse(raw, def)
	if err != nil {
		// Malformed parser input is a defect, but one metric's defect must
		// not cost the rest of the run. Log loudly, degrade locally.
		zap.L().Error("extract: parser rejected backend response",
			zap.String("metric", def.ID),
			zap.Error(err),
		)
		return model.BackendFailure(def.ID, "unparseable response: "+err.Error())
	}
	return ext
}

// selectChunks picks the pages most likely to mention the metric, scored by
// keyword overlap with its Korean/English names, GRI code and unit. Ties
// keep page order, so selection is deterministic. Zero-overlap runs fall
// back to the first pages rather than skipping the metric: retrieval is an
// economy measure, not a correctness gate.
func selectChunks(pages []model.Page, def model.MetricDefinition, top int) []model.Page {
	if len(pages) <= top {
		return pages
	}

	keywords := chunkKeywords(def)
	type scored struct {
		page  model.Page
		order int
		score int
	}
	ranked := make([]scored, len(pages))
	for i, p := range pages {
		lower := strings.ToLower(p.Text)
		score := 0
		for _, kw := range keywords {
			score += strings.Count(lower, kw)
		}
		ranked[i] = scored{page: p, order: i, score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	picked := ranked[:top]
	// Re-emit in document order so the prompt reads front to back.
	sort.Slice(picked, func(i, j int) bool { return picked[i].order < picked[j].order })

	out := make([]model.Page, len(picked))
	for i, s := range picked {
		out[i] = s.page
	}
	return out
}

// chunkKeywords derives lowercase retrieval keywords for a metric.
func chunkKeywords(def model.MetricDefinition) []string {
	var kws []string
	for _, tok := range strings.Fields(def.NameKR) {
		tok = strings.Trim(tok, "()")
		if utf8.RuneCountInString(tok) >= 2 {
			kws = append(kws, strings.ToLower(tok))
		}
	}
	for _, tok := range strings.Fields(def.NameEN) {
		if len(tok) >= 3 {
			kws = append(kws, strings.ToLower(tok))
		}
	}
	if def.GRICode != "" {
		kws = append(kws, strings.ToLower(def.GRICode))
	}
	if def.Unit != "" {
		kws = append(kws, strings.ToLower(def.Unit))
	}
	return kws
}
