package model

// VerdictStatus is the validation outcome for one metric.
type VerdictStatus string

const (
	VerdictPass    VerdictStatus = "PASS"
	VerdictWarning VerdictStatus = "WARNING"
	VerdictFail    VerdictStatus = "FAIL"
	// VerdictNotFound marks a metric with no candidate. Absence is not a
	// violation, so this is distinct from FAIL.
	VerdictNotFound VerdictStatus = "NOT_FOUND"
	// VerdictRuleError is the sentinel for a rule implementation that
	// panicked. The metric keeps a verdict rather than being dropped.
	VerdictRuleError VerdictStatus = "RULE_ERROR"
)

// Verdict is the immutable validation result for one metric.
type Verdict struct {
	MetricID string        `json:"metric_id"`
	Status   VerdictStatus `json:"status"`
	RuleID   string        `json:"rule_id"`
	Reason   string        `json:"reason"`
}

// Weight maps a verdict status onto its fixed quality weight.
// NOT_FOUND carries no weight because it is excluded from quality averages.
func (s VerdictStatus) Weight() float64 {
	switch s {
	case VerdictPass:
		return 1.0
	case VerdictWarning:
		return 0.5
	default:
		return 0.0
	}
}
