package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/pipeline"
)

var (
	extractCompany string
	extractJSONOut bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <pages.json>",
	Short: "Extract, validate and score ESG metrics from report text",
	Long:  "Reads pre-segmented report pages from a JSON file ([{\"page\": 1, \"text\": \"...\"}]), runs one extraction per defined metric, validates the candidates and prints the scored assessment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := readPages(args[0])
		if err != nil {
			return err
		}

		env, err := initPipeline(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Pipeline.Run(cmd.Context(), extractCompany, pages)
		if err != nil {
			return err
		}

		if extractJSONOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}
		fmt.Println(pipeline.FormatReport(extractCompany, result))
		return nil
	},
}

// readPages loads and sanity-checks the page file.
func readPages(path string) ([]model.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read pages file %s", path)
	}
	var pages []model.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, eris.Wrapf(err, "parse pages file %s", path)
	}
	if len(pages) == 0 {
		return nil, eris.Errorf("pages file %s is empty", path)
	}
	return pages, nil
}

func init() {
	extractCmd.Flags().StringVar(&extractCompany, "company", "", "company name recorded with the run")
	extractCmd.Flags().BoolVar(&extractJSONOut, "json", false, "print the raw result as JSON instead of the report")
	rootCmd.AddCommand(extractCmd)
}
