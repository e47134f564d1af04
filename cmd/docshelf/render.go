package main

import (
	"fmt"
	"io"
	"strconv"

	"docshelf/internal/document"
	"docshelf/internal/pipeline"
	"docshelf/internal/services"
)

// renderPlan prints the migration plan bucket by bucket. Empty buckets are
// omitted.
func renderPlan(out io.Writer, root string, plan *document.MigrationPlan) {
	if plan.TotalMoves() == 0 && len(plan.ManualReview) == 0 &&
		len(plan.Duplicates) == 0 && len(plan.BrokenRefs) == 0 {
		fmt.Fprintln(out, "Nothing to do; every document is already in place.")
		return
	}

	renderMoveBucket(out, root, "Automatic moves", plan.AutoMoves)
	renderMoveBucket(out, root, "Suggested moves (confirmation required)", plan.SuggestedMoves)

	if len(plan.ManualReview) > 0 {
		rows := make([][]string, 0, len(plan.ManualReview))
		for _, a := range plan.ManualReview {
			rows = append(rows, []string{
				displayPath(root, a.Path),
				a.DocType,
				formatConfidence(a.Confidence),
			})
		}
		fmt.Fprintln(out, "Manual review")
		fmt.Fprintln(out, renderTable([]string{"Document", "Type", "Confidence"}, rows, 3))
	}

	if len(plan.Duplicates) > 0 {
		rows := make([][]string, 0, len(plan.Duplicates))
		for _, g := range plan.Duplicates {
			rows = append(rows, []string{
				g.Type,
				displayPath(root, g.First.Path),
				displayPath(root, g.Second.Path),
			})
		}
		fmt.Fprintln(out, "Possible duplicates")
		fmt.Fprintln(out, renderTable([]string{"Type", "Document", "Similar To"}, rows))
	}

	if len(plan.BrokenRefs) > 0 {
		rows := make([][]string, 0, len(plan.BrokenRefs))
		for _, e := range plan.BrokenRefs {
			rows = append(rows, []string{
				displayPath(root, e.File),
				e.OldBase,
				e.NewBase(),
			})
		}
		fmt.Fprintln(out, "References to update after moving")
		fmt.Fprintln(out, renderTable([]string{"Referencing File", "Old Name", "New Name"}, rows))
	}
}

func renderMoveBucket(out io.Writer, root, title string, moves []document.Analysis) {
	if len(moves) == 0 {
		return
	}
	rows := make([][]string, 0, len(moves))
	for _, a := range moves {
		rows = append(rows, []string{
			displayPath(root, a.Path),
			displayPath(root, a.CanonicalPath),
			a.DocType,
			formatConfidence(a.Confidence),
		})
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, renderTable([]string{"From", "To", "Type", "Confidence"}, rows, 4))
}

// renderSummary prints the run counters after an organize pass.
func renderSummary(out io.Writer, summary *pipeline.Summary) {
	s := summary.Stats
	rows := [][]string{
		{"Scanned", strconv.Itoa(s.Scanned)},
		{"Detected", strconv.Itoa(s.Detected)},
		{"High confidence", strconv.Itoa(s.HighConfidence)},
		{"Medium confidence", strconv.Itoa(s.MediumConfidence)},
		{"Low confidence", strconv.Itoa(s.LowConfidence)},
		{"Moved", strconv.Itoa(s.Moved)},
		{"Renamed", strconv.Itoa(s.Renamed)},
		{"Skipped", strconv.Itoa(s.SkippedMoves)},
		{"Failed", strconv.Itoa(s.FailedMoves)},
		{"Duplicates flagged", strconv.Itoa(s.DuplicatesFound)},
		{"References updated", strconv.Itoa(s.ReferencesUpdated)},
		{"Detection accuracy", formatPercent(s.DetectionAccuracy())},
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, 2))

	if summary.BackupDir != "" {
		fmt.Fprintf(out, "Backup: %s\n", summary.BackupDir)
	}
	if summary.Aborted {
		fmt.Fprintln(out, "Run aborted by request; remaining suggested moves were left in place.")
	}
}

// renderFaults prints per-item failures. Faults never stop a run, so they
// are surfaced at the end where they will be seen.
func renderFaults(out io.Writer, root string, faults []services.Fault) {
	if len(faults) == 0 {
		return
	}
	rows := make([][]string, 0, len(faults))
	for _, f := range faults {
		rows = append(rows, []string{
			f.Stage,
			displayPath(root, f.Path),
			f.Err.Error(),
		})
	}
	fmt.Fprintf(out, "%d document(s) had problems:\n", len(faults))
	fmt.Fprintln(out, renderTable([]string{"Stage", "Document", "Error"}, rows))
}
