package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/greenlens/esg-cli/internal/model"
)

// WriteCSV writes one row per metric record to a CSV file.
func WriteCSV(records []model.MetricRecord, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "csv export: create file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return eris.Wrap(err, "csv export: write header")
	}
	for _, rec := range records {
		if err := w.Write(buildRow(rec)); err != nil {
			return eris.Wrap(err, "csv export: write row")
		}
	}
	return w.Error()
}
