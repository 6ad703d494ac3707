// Package scorer aggregates verdicts and confidences into coverage and
// quality scores. Purely computational and deterministic: identical inputs
// produce bit-identical reports.
package scorer

import (
	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/registry"
)

// Score computes per-category coverage and quality plus the overall score.
//
// Coverage is candidates-found over metrics-expected. Quality is the mean
// of confidence x verdict weight over metrics with a candidate (NOT_FOUND
// is excluded from quality but counts against coverage). Overall is the
// coverage-weighted average of category qualities, so an empty category
// pulls both numerator and denominator down instead of being dropped or
// treated as perfect. Categories with zero expected metrics are excluded
// entirely; nothing here can divide by zero.
func Score(extractions []model.Extraction, verdicts []model.Verdict, reg *registry.Registry) model.ScoreReport {
	hasCandidate := make(map[string]*model.Candidate)
	for _, ext := range extractions {
		if ext.Kind == model.ExtractionFound && ext.Candidate != nil {
			hasCandidate[ext.MetricID] = ext.Candidate
		}
	}
	verdictByID := make(map[string]model.Verdict, len(verdicts))
	for _, v := range verdicts {
		verdictByID[v.MetricID] = v
	}

	var report model.ScoreReport
	var overallNum, overallDen float64

	for _, cat := range model.Categories {
		defs := reg.ByCategory(cat)
		if len(defs) == 0 {
			continue
		}

		found := 0
		qualitySum := 0.0
		for _, def := range defs {
			c, ok := hasCandidate[def.ID]
			if !ok {
				continue
			}
			found++
			qualitySum += c.Confidence * verdictByID[def.ID].Status.Weight()
		}

		cs := model.CategoryScore{
			Category: cat,
			Expected: len(defs),
			Found:    found,
			Coverage: float64(found) / float64(len(defs)),
		}
		if found > 0 {
			cs.Quality = qualitySum / float64(found)
		}
		report.Categories = append(report.Categories, cs)

		overallNum += cs.Coverage * cs.Quality
		overallDen += cs.Coverage
	}

	if overallDen > 0 {
		report.Overall = overallNum / overallDen
	}
	return report
}
