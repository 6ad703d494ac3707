package validate

import (
	"fmt"
)

// Metric ids referenced by the cross-metric rules. With a substituted
// catalog that lacks these ids the rules simply never fire.
const (
	metricScope1      = "E01"
	metricScope2      = "E02"
	metricScope3      = "E03"
	metricWaste       = "E06"
	metricRecycling   = "E07"
	metricFemaleStaff = "S02"
	metricFemaleBoard = "G03"
)

// evalConsistency computes the set of consistency violations from the full
// candidate set. A rule only fires when every metric it references has a
// PASS-eligible candidate (present, unit ok, in range), and it implicates
// only the metrics it directly governs.
func evalConsistency(ctx *ruleContext) map[string]consistencyHit {
	hits := make(map[string]consistencyHit)

	// Scope balance: direct emissions dwarfing the value chain is
	// implausible for any reporting company.
	if s1, s2, s3, ok := eligible3(ctx, metricScope1, metricScope2, metricScope3); ok {
		if s3 > 0 && s1+s2 > ctx.cfg.ScopeBalanceFactor*s3 {
			reason := fmt.Sprintf(
				"scope balance: Scope 1+2 (%g) exceeds %gx Scope 3 (%g)",
				s1+s2, ctx.cfg.ScopeBalanceFactor, s3)
			implicate(hits, "scope_balance", reason, metricScope1, metricScope2, metricScope3)
		}
	}

	// Board composition: a female board ratio far above the female
	// employee ratio usually means one of the two was misread.
	if board, staff, ok := eligible2(ctx, metricFemaleBoard, metricFemaleStaff); ok {
		if staff > 0 && board > ctx.cfg.BoardRatioFactor*staff {
			reason := fmt.Sprintf(
				"board composition: female board ratio %g%% exceeds %gx female employee ratio %g%%",
				board, ctx.cfg.BoardRatioFactor, staff)
			implicate(hits, "board_composition", reason, metricFemaleBoard, metricFemaleStaff)
		}
	}

	// Recycling without waste: a recycling rate over zero waste generated
	// cannot both be right.
	if rate, waste, ok := eligible2(ctx, metricRecycling, metricWaste); ok {
		if rate > 0 && waste == 0 {
			reason := fmt.Sprintf(
				"recycling without waste: recycling rate %g%% with zero waste generated", rate)
			implicate(hits, "recycling_without_waste", reason, metricRecycling, metricWaste)
		}
	}

	return hits
}

func implicate(hits map[string]consistencyHit, ruleID, reason string, ids ...string) {
	for _, id := range ids {
		// Keep the first rule that implicated a metric; rule order here is
		// fixed, so this stays deterministic across runs.
		if _, exists := hits[id]; !exists {
			hits[id] = consistencyHit{ruleID: ruleID, reason: reason}
		}
	}
}

// eligibleValue returns the candidate value when the metric is
// PASS-eligible: candidate present, no unit mismatch, inside valid range.
func eligibleValue(ctx *ruleContext, id string) (float64, bool) {
	c, ok := ctx.candidates[id]
	if !ok || c.UnitMismatch {
		return 0, false
	}
	def, ok := ctx.defs[id]
	if !ok || !def.ValidRange.Contains(c.Value) {
		return 0, false
	}
	return c.Value, true
}

func eligible2(ctx *ruleContext, a, b string) (float64, float64, bool) {
	va, ok := eligibleValue(ctx, a)
	if !ok {
		return 0, 0, false
	}
	vb, ok := eligibleValue(ctx, b)
	if !ok {
		return 0, 0, false
	}
	return va, vb, true
}

func eligible3(ctx *ruleContext, a, b, c string) (float64, float64, float64, bool) {
	va, vb, ok := eligible2(ctx, a, b)
	if !ok {
		return 0, 0, 0, false
	}
	vc, ok := eligibleValue(ctx, c)
	if !ok {
		return 0, 0, 0, false
	}
	return va, vb, vc, true
}
