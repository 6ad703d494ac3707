package validate

import (
	"fmt"

	"github.com/greenlens/esg-cli/internal/model"
)

// rulePresence: no candidate -> NOT_FOUND. The reason distinguishes a
// backend failure from a value genuinely absent in the text.
func rulePresence(def model.MetricDefinition, ctx *ruleContext) *model.Verdict {
	if _, ok := ctx.candidates[def.ID]; ok {
		return nil
	}
	reason := "value absent in text"
	if ext, ok := ctx.extraction[def.ID]; ok && ext.Kind == model.ExtractionBackendError {
		reason = "backend error: " + ext.Reason
	}
	return &model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictNotFound,
		RuleID:   "presence",
		Reason:   reason,
	}
}

// ruleUnitMatch: a unit_mismatch flag from the parser is a hard failure.
func ruleUnitMatch(def model.MetricDefinition, ctx *ruleContext) *model.Verdict {
	c := ctx.candidates[def.ID]
	if !c.UnitMismatch {
		return nil
	}
	return &model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictFail,
		RuleID:   "unit_match",
		Reason:   fmt.Sprintf("unit mismatch: reported %q, expected %s", c.UnitReported, def.Unit),
	}
}

// ruleRange: value outside the metric's physical plausibility bounds.
func ruleRange(def model.MetricDefinition, ctx *ruleContext) *model.Verdict {
	c := ctx.candidates[def.ID]
	if def.ValidRange.Contains(c.Value) {
		return nil
	}
	return &model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictFail,
		RuleID:   "range",
		Reason: fmt.Sprintf("out of physical range: %g not in [%g, %g]",
			c.Value, def.ValidRange.Min, def.ValidRange.Max),
	}
}

// ruleConsistency: cross-metric plausibility heuristics. Never escalates
// past WARNING; the hit set is precomputed once per pass in evalConsistency.
func ruleConsistency(def model.MetricDefinition, ctx *ruleContext) *model.Verdict {
	hit, ok := ctx.consistency[def.ID]
	if !ok {
		return nil
	}
	return &model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictWarning,
		RuleID:   hit.ruleID,
		Reason:   hit.reason,
	}
}

// ruleLowConfidence: clean value, weak evidence.
func ruleLowConfidence(def model.MetricDefinition, ctx *ruleContext) *model.Verdict {
	c := ctx.candidates[def.ID]
	if c.Confidence >= ctx.cfg.LowConfidence {
		return nil
	}
	return &model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictWarning,
		RuleID:   "low_confidence",
		Reason:   fmt.Sprintf("low extraction confidence: %.2f < %.2f", c.Confidence, ctx.cfg.LowConfidence),
	}
}

// rulePass is the terminal rule.
func rulePass(def model.MetricDefinition, _ *ruleContext) *model.Verdict {
	return &model.Verdict{
		MetricID: def.ID,
		Status:   model.VerdictPass,
		RuleID:   "pass",
		Reason:   "all checks passed",
	}
}
