package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docshelf/internal/document"
	"docshelf/internal/pipeline"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var restrict string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show corpus health without changing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, cls, logger, err := ctx.ensureStack()
			if err != nil {
				return err
			}

			p, err := pipeline.New(cfg, cls, nil, logger)
			if err != nil {
				return err
			}
			planned, err := p.BuildPlan(pipeline.Options{
				Restrict: restrict,
				Persona:  ctx.persona(),
			})
			if err != nil {
				return err
			}

			var stats document.Stats
			stats.TallyAnalyses(planned.Analyses)
			stats.DuplicatesFound = len(planned.Plan.Duplicates)

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Scanned", strconv.Itoa(stats.Scanned)},
				{"Detected", strconv.Itoa(stats.Detected)},
				{"High confidence", strconv.Itoa(stats.HighConfidence)},
				{"Medium confidence", strconv.Itoa(stats.MediumConfidence)},
				{"Low confidence", strconv.Itoa(stats.LowConfidence)},
				{"Misplaced (auto)", strconv.Itoa(len(planned.Plan.AutoMoves))},
				{"Misplaced (suggested)", strconv.Itoa(len(planned.Plan.SuggestedMoves))},
				{"Duplicates flagged", strconv.Itoa(stats.DuplicatesFound)},
				{"Stale references", strconv.Itoa(len(planned.Plan.BrokenRefs))},
				{"Detection accuracy", formatPercent(stats.DetectionAccuracy())},
			}
			fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, 2))

			renderPlan(out, cfg.Paths.Root, planned.Plan)
			renderFaults(out, cfg.Paths.Root, planned.Faults)
			return nil
		},
	}

	cmd.Flags().StringVar(&restrict, "path", "", "Restrict the report to documents under this path")
	return cmd
}
