package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docshelf/internal/config"
	"docshelf/internal/document"
	"docshelf/internal/scanner"
	"docshelf/internal/services/classifier"
	"docshelf/internal/triage"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var restrict string

	cmd := &cobra.Command{
		Use:   "detect [path]...",
		Short: "Classify documents without moving them",
		Long: `Classifies the configured corpus, or the given files and directories, and
prints each document's detected type, confidence, and proposed location.
Nothing is moved.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, cls, logger, err := ctx.ensureStack()
			if err != nil {
				return err
			}

			paths, err := detectCandidates(cfg, args, restrict)
			if err != nil {
				return err
			}

			engine := triage.NewEngine(cls, logger)
			result := engine.Analyze(paths, classifier.Context{AgentPersona: ctx.persona()})

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(result.Analyses))
			for _, a := range result.Analyses {
				canonical := ""
				if a.NeedsMove {
					canonical = displayPath(cfg.Paths.Root, a.CanonicalPath)
				}
				rows = append(rows, []string{
					displayPath(cfg.Paths.Root, a.Path),
					a.DocType,
					formatConfidence(a.Confidence),
					string(document.BucketFor(a.Confidence)),
					canonical,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Document", "Type", "Confidence", "Tier", "Proposed Location"}, rows, 3))

			renderFaults(out, cfg.Paths.Root, result.Faults)
			return nil
		},
	}

	cmd.Flags().StringVar(&restrict, "path", "", "Restrict detection to documents under this path")
	return cmd
}

// detectCandidates resolves the documents to classify: the configured scan
// paths when no arguments are given, otherwise the named files plus the
// expanded contents of named directories.
func detectCandidates(cfg *config.Config, args []string, restrict string) ([]string, error) {
	if len(args) == 0 {
		return scanner.Scan(scanner.Options{
			Paths:      cfg.Scan.Paths,
			SkipDirs:   cfg.Scan.SkipDirs,
			Extensions: cfg.Scan.Extensions,
			Restrict:   restrict,
		})
	}

	var paths []string
	for _, arg := range args {
		abs, err := absolutePath(arg)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if info.IsDir() {
			expanded, err := scanner.Scan(scanner.Options{
				Paths:      []string{abs},
				SkipDirs:   cfg.Scan.SkipDirs,
				Extensions: cfg.Scan.Extensions,
				Restrict:   restrict,
			})
			if err != nil {
				return nil, err
			}
			paths = append(paths, expanded...)
			continue
		}
		paths = append(paths, abs)
	}
	return paths, nil
}
