package pipeline

import (
	"fmt"
	"strings"

	"github.com/greenlens/esg-cli/internal/model"
)

// FormatReport generates a human-readable assessment report.
func FormatReport(company string, result *model.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# ESG Assessment: %s\n\n", company)

	// Summary.
	found := 0
	for _, rec := range result.Records {
		if rec.Candidate != nil {
			found++
		}
	}
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Overall score: %.1f\n", result.Scores.Overall)
	fmt.Fprintf(&b, "- Metrics found: %d/%d\n", found, len(result.Records))
	fmt.Fprintf(&b, "- Extraction time: %dms\n\n", result.DurationMS)

	// Category breakdown.
	b.WriteString("## Categories\n")
	for _, cs := range result.Scores.Categories {
		fmt.Fprintf(&b, "- %s (%s): coverage %.0f%% (%d/%d), quality %.1f\n",
			cs.Category.Name(), cs.Category, cs.Coverage*100, cs.Found, cs.Expected, cs.Quality)
	}
	b.WriteString("\n")

	// Per-metric detail.
	b.WriteString("## Metrics\n")
	for _, rec := range result.Records {
		fmt.Fprintf(&b, "- **%s** %s [%s]", rec.Metric.ID, rec.Metric.NameKR, rec.Verdict.Status)
		if rec.Candidate != nil {
			fmt.Fprintf(&b, ": %s %s (conf %.0f%%)",
				formatValue(rec.Candidate.Value), rec.Metric.Unit, rec.Candidate.Confidence*100)
			if rec.Candidate.PageNumber != nil {
				fmt.Fprintf(&b, " p.%d", *rec.Candidate.PageNumber)
			}
		}
		b.WriteString("\n")
		if rec.Verdict.Status != model.VerdictPass && rec.Verdict.Reason != "" {
			fmt.Fprintf(&b, "  %s\n", rec.Verdict.Reason)
		}
	}

	return b.String()
}

// formatValue trims trailing zeros so counts print as integers.
func formatValue(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
