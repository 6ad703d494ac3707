// Package export writes run results as tabular files for spreadsheet
// consumers.
package export

import (
	"fmt"
	"strconv"

	"github.com/greenlens/esg-cli/internal/model"
)

// columns defines the ordered output columns, shared by CSV and XLSX.
var columns = []string{
	"Metric ID",
	"Name (KR)",
	"Name (EN)",
	"Category",
	"GRI",
	"Value",
	"Unit",
	"Confidence",
	"Verdict",
	"Rule",
	"Reason",
	"Page",
	"Source Quote",
}

// buildRow maps one metric record to an output row.
func buildRow(rec model.MetricRecord) []string {
	row := []string{
		rec.Metric.ID,
		rec.Metric.NameKR,
		rec.Metric.NameEN,
		rec.Metric.Category.Name(),
		rec.Metric.GRICode,
		"", // Value
		rec.Metric.Unit,
		"", // Confidence
		string(rec.Verdict.Status),
		rec.Verdict.RuleID,
		rec.Verdict.Reason,
		"", // Page
		"", // Source Quote
	}
	if c := rec.Candidate; c != nil {
		row[5] = strconv.FormatFloat(c.Value, 'f', -1, 64)
		row[7] = fmt.Sprintf("%.2f", c.Confidence)
		if c.PageNumber != nil {
			row[11] = strconv.Itoa(*c.PageNumber)
		}
		row[12] = c.SourceQuote
	}
	return row
}
