package model

// MetricRecord joins one metric's definition, candidate and verdict.
// This plus the ScoreReport is the full contract handed to the dashboard
// collaborator.
type MetricRecord struct {
	Metric    MetricDefinition `json:"metric"`
	Candidate *Candidate       `json:"candidate,omitempty"`
	Verdict   Verdict          `json:"verdict"`
}

// CategoryScore holds the aggregate for one pillar.
type CategoryScore struct {
	Category Category `json:"category"`
	Expected int      `json:"expected"`
	Found    int      `json:"found"`
	Coverage float64  `json:"coverage"`
	Quality  float64  `json:"quality"`
}

// ScoreReport aggregates coverage and quality per category plus an overall
// score. Recomputed fresh each run, never mutated incrementally.
type ScoreReport struct {
	Categories []CategoryScore `json:"categories"`
	Overall    float64         `json:"overall"`
}

// Coverage returns the pillar's score entry, or nil when the category was
// excluded (zero expected metrics).
func (r *ScoreReport) Coverage(c Category) *CategoryScore {
	for i := range r.Categories {
		if r.Categories[i].Category == c {
			return &r.Categories[i]
		}
	}
	return nil
}
