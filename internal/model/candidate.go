package model

// Candidate is one extracted value for one metric, with provenance.
// Produced by the response parser; validation attaches verdicts without
// mutating it.
type Candidate struct {
	MetricID     string  `json:"metric_id"`
	Value        float64 `json:"value"`
	UnitReported string  `json:"unit_reported"`
	UnitMismatch bool    `json:"unit_mismatch,omitempty"`
	Confidence   float64 `json:"confidence"`
	SourceQuote  string  `json:"source_quote"`
	// PageNumber is nil when the backend cited no page.
	PageNumber *int `json:"page_number,omitempty"`
}

// ExtractionKind tags the outcome of one metric's extraction attempt.
type ExtractionKind string

const (
	// ExtractionFound means the parser located a usable candidate value.
	ExtractionFound ExtractionKind = "found"
	// ExtractionNotFound means the text simply did not state the metric.
	ExtractionNotFound ExtractionKind = "not_found"
	// ExtractionBackendError means the backend call failed or timed out.
	// Distinct from not_found so scoring can treat the two differently.
	ExtractionBackendError ExtractionKind = "backend_error"
)

// Extraction is the tagged per-metric outcome of the orchestrator.
// Candidate is non-nil exactly when Kind is ExtractionFound.
type Extraction struct {
	MetricID  string         `json:"metric_id"`
	Kind      ExtractionKind `json:"kind"`
	Candidate *Candidate     `json:"candidate,omitempty"`
	// Reason carries the backend failure description for backend_error
	// outcomes; empty otherwise.
	Reason string `json:"reason,omitempty"`
}

// Found builds a found outcome for the candidate's metric.
func Found(c Candidate) Extraction {
	return Extraction{MetricID: c.MetricID, Kind: ExtractionFound, Candidate: &c}
}

// NotFound builds a not-found outcome for a metric.
func NotFound(metricID string) Extraction {
	return Extraction{MetricID: metricID, Kind: ExtractionNotFound}
}

// BackendFailure builds a backend-error outcome for a metric.
func BackendFailure(metricID, reason string) Extraction {
	return Extraction{MetricID: metricID, Kind: ExtractionBackendError, Reason: reason}
}
