package model

import "time"

// Page is one pre-segmented chunk of report text from the PDF-parsing
// collaborator. Chunk boundaries are page-aligned; clean sentence boundaries
// are not assumed.
type Page struct {
	Number int    `json:"page"`
	Text   string `json:"text"`
}

// RunStatus tracks the lifecycle of a stored extraction run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// RunResult is the persisted outcome of one pipeline run.
type RunResult struct {
	Records []MetricRecord `json:"records"`
	Scores  ScoreReport    `json:"scores"`
	// DurationMS is wall time of the extraction phase.
	DurationMS int64 `json:"duration_ms"`
}

// Run is one extraction of one report.
type Run struct {
	ID        string     `json:"id"`
	Company   string     `json:"company"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
