package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/greenlens/esg-cli/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export a stored run as CSV or XLSX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initPipeline(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		run, err := env.Store.GetRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if run.Result == nil {
			return eris.Errorf("run %s has no result to export", run.ID)
		}

		out := exportOut
		if out == "" {
			out = run.ID + "." + exportFormat
		}

		switch exportFormat {
		case "csv":
			return export.WriteCSV(run.Result.Records, out)
		case "xlsx":
			return export.WriteXLSX(run.Result, out)
		default:
			return eris.Errorf("unknown export format: %s", exportFormat)
		}
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format (csv, xlsx)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default <run-id>.<format>)")
	rootCmd.AddCommand(exportCmd)
}
