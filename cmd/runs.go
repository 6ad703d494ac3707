package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenlens/esg-cli/internal/model"
	"github.com/greenlens/esg-cli/internal/pipeline"
	"github.com/greenlens/esg-cli/internal/store"
)

var (
	runsStatus  string
	runsCompany string
	runsLimit   int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect stored extraction runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initPipeline(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		runs, err := env.Store.ListRuns(cmd.Context(), store.RunFilter{
			Status:  model.RunStatus(runsStatus),
			Company: runsCompany,
			Limit:   runsLimit,
		})
		if err != nil {
			return err
		}

		for _, r := range runs {
			line := fmt.Sprintf("%s  %-8s  %s  %s", r.ID, r.Status, r.CreatedAt.Format("2006-01-02 15:04"), r.Company)
			if r.Result != nil {
				line += fmt.Sprintf("  overall=%.1f", r.Result.Scores.Overall)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run as a report",
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
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}
		fmt.Println(pipeline.FormatReport(run.Company, run.Result))
		return nil
	},
}

func init() {
	runsListCmd.Flags().StringVar(&runsStatus, "status", "", "filter by status (queued, running, complete, failed)")
	runsListCmd.Flags().StringVar(&runsCompany, "company", "", "filter by company")
	runsListCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
	runsCmd.AddCommand(runsListCmd, runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}
