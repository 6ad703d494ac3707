package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/greenlens/esg-cli/internal/model"
)

// WriteXLSX writes the run result as a workbook: one Metrics sheet, one
// Scores sheet.
func WriteXLSX(result *model.RunResult, outputPath string) error {
	f := xlsx.NewFile()

	metrics, err := f.AddSheet("Metrics")
	if err != nil {
		return eris.Wrap(err, "xlsx export: add metrics sheet")
	}
	writeRow(metrics, columns)
	for _, rec := range result.Records {
		writeRow(metrics, buildRow(rec))
	}

	scores, err := f.AddSheet("Scores")
	if err != nil {
		return eris.Wrap(err, "xlsx export: add scores sheet")
	}
	writeRow(scores, []string{"Category", "Expected", "Found", "Coverage", "Quality"})
	for _, cs := range result.Scores.Categories {
		writeRow(scores, []string{
			cs.Category.Name(),
			fmt.Sprintf("%d", cs.Expected),
			fmt.Sprintf("%d", cs.Found),
			fmt.Sprintf("%.3f", cs.Coverage),
			fmt.Sprintf("%.1f", cs.Quality),
		})
	}
	writeRow(scores, []string{"Overall", "", "", "", fmt.Sprintf("%.1f", result.Scores.Overall)})

	if err := f.Save(outputPath); err != nil {
		return eris.Wrap(err, "xlsx export: save file")
	}
	return nil
}

func writeRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}
