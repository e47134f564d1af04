package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docshelf/internal/mover"
	"docshelf/internal/pipeline"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var auto bool
	var restrict string

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Move documents to their canonical locations",
		Long: `Scans the corpus, classifies every document, and moves the misplaced ones.
High-confidence moves are applied automatically; medium-confidence moves are
confirmed one at a time. A full backup of every document to be moved is taken
before the first move.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, cls, logger, err := ctx.ensureStack()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			confirmer, note := chooseConfirmer(auto, cmd)
			if note != "" && !dryRun {
				fmt.Fprintln(out, note)
			}

			p, err := pipeline.New(cfg, cls, confirmer, logger)
			if err != nil {
				return err
			}
			summary, err := p.Organize(pipeline.Options{
				DryRun:   dryRun,
				Auto:     auto,
				Restrict: restrict,
				Persona:  ctx.persona(),
			})
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintln(out, "Dry run; no documents were moved.")
				renderPlan(out, cfg.Paths.Root, summary.Plan)
			}
			renderSummary(out, summary)
			renderFaults(out, cfg.Paths.Root, summary.Faults)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the plan without moving anything")
	cmd.Flags().BoolVar(&auto, "auto", false, "Apply suggested moves without confirmation")
	cmd.Flags().StringVar(&restrict, "path", "", "Restrict the run to documents under this path")
	return cmd
}

// chooseConfirmer picks how suggested moves are approved. Without a terminal
// the suggested bucket is deferred rather than silently applied.
func chooseConfirmer(auto bool, cmd *cobra.Command) (mover.Confirmer, string) {
	if auto {
		return mover.AutoApprove, ""
	}
	if mover.StdinIsInteractive() {
		return mover.NewPromptConfirmer(os.Stdin, cmd.OutOrStdout()), ""
	}
	skip := mover.ConfirmerFunc(func(string) (mover.Decision, error) {
		return mover.DecisionSkip, nil
	})
	return skip, "No terminal attached; suggested moves are deferred. Re-run with --auto to apply them."
}
