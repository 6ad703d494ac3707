// Package validate applies the deterministic rule set over a full candidate
// set. Rules run in a fixed order per metric; the first terminal rule wins.
// Re-running validation on the same candidate set always yields the same
// verdicts.
package validate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/registry"
)

// Engine evaluates the rule chain.
type Engine struct {
	cfg   Config
	rules []rule
}

// rule is a pure function over the candidate context. A nil return means
// "not my verdict, next rule decides".
type rule struct {
	id   string
	eval func(def model.MetricDefinition, ctx *ruleContext) *model.Verdict
}

// ruleContext is the read-only cross-metric view shared by all rules for
// one validation pass.
type ruleContext struct {
	cfg        Config
	extraction map[string]model.Extraction
	candidates map[string]*model.Candidate
	defs       map[string]model.MetricDefinition
	// consistency maps metric id -> the consistency rule it violated.
	// Computed once per pass from the full candidate set.
	consistency map[string]consistencyHit
}

type consistencyHit struct {
	ruleID string
	reason string
}

// NewEngine builds an engine with the given calibration config.
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg.withDefaults()}
	e.rules = []rule{
		{id: "presence", eval: rulePresence},
		{id: "unit_match", eval: ruleUnitMatch},
		{id: "range", eval: ruleRange},
		{id: "consistency", eval: ruleConsistency},
		{id: "low_confidence", eval: ruleLowConfidence},
		{id: "pass", eval: rulePass},
	}
	return e
}

// Validate produces exactly one verdict per defined metric, in registry
// order. Extractions for metrics outside the registry are ignored.
func (e *Engine) Validate(extractions []model.Extraction, reg *registry.Registry) []model.Verdict {
	ctx := e.buildContext(extractions, reg)

	defs := reg.All()
	verdicts := make([]model.Verdict, 0, len(defs))
	for _, def := range defs {
		verdicts = append(verdicts, e.evaluate(def, ctx))
	}
	return verdicts
}

func (e *Engine) buildContext(extractions []model.Extraction, reg *registry.Registry) *ruleContext {
	ctx := &ruleContext{
		cfg:        e.cfg,
		extraction: make(map[string]model.Extraction),
		candidates: make(map[string]*model.Candidate),
		defs:       make(map[string]model.MetricDefinition),
	}
	for _, d := range reg.All() {
		ctx.defs[d.ID] = d
	}
	for _, ext := range extractions {
		if !reg.Has(ext.MetricID) {
			zap.L().Warn("validate: extraction for undefined metric dropped",
				zap.String("metric", ext.MetricID))
			continue
		}
		ctx.extraction[ext.MetricID] = ext
		if ext.Kind == model.ExtractionFound && ext.Candidate != nil {
			ctx.candidates[ext.MetricID] = ext.Candidate
		}
	}
	ctx.consistency = evalConsistency(ctx)
	return ctx
}

// evaluate runs the rule chain for one metric. A panicking rule must not
// cost the metric its verdict, so the chain is recovered into the
// RULE_ERROR sentinel.
func (e *Engine) evaluate(def model.MetricDefinition, ctx *ruleContext) (v model.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("validate: rule panicked",
				zap.String("metric", def.ID),
				zap.Any("panic", r),
			)
			v = model.Verdict{
				MetricID: def.ID,
				Status:   model.VerdictRuleError,
				RuleID:   "rule_error",
				Reason:   fmt.Sprintf("rule evaluation failed: %v", r),
			}
		}
	}()

	for _, r := range e.rules {
		if verdict := r.eval(def, ctx); verdict != nil {
			return *verdict
		}
	}
	// Unreachable: rulePass always decides.
	return model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictRuleError,
		RuleID:   "rule_error",
		Reason:   "no rule decided",
	}
}
