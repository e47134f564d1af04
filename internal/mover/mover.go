// Package mover applies planned moves to the filesystem. Each move walks a
// small state machine: pending, optionally confirmed, then applied, skipped,
// or failed. A failed move never stops the remaining items.
package mover

import (
	"log/slog"
	"path/filepath"

	"docshelf/internal/document"
	"docshelf/internal/fileutil"
	"docshelf/internal/logging"
	"docshelf/internal/services"
)

const stageName = "mover"

// AppliedMove records one relocation that actually happened.
type AppliedMove struct {
	From string
	To   string
}

// Result is the immutable outcome of executing one bucket.
type Result struct {
	Applied []AppliedMove
	Renamed int
	Skipped int
	Aborted bool
	Faults  []services.Fault
}

// Executor moves documents to their canonical paths.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor builds a move executor.
func NewExecutor(logger *slog.Logger) *Executor {
	return &Executor{logger: logging.WithComponent(logger, stageName)}
}

// ExecuteAuto applies every move without confirmation.
func (e *Executor) ExecuteAuto(moves []document.Analysis) Result {
	var result Result
	for _, a := range moves {
		e.apply(a, &result)
	}
	return result
}

// ExecuteConfirmed asks the confirmer before each move. Abort stops the
// remaining items in this bucket; already-applied moves stay in place.
func (e *Executor) ExecuteConfirmed(moves []document.Analysis, confirmer Confirmer) Result {
	if confirmer == nil {
		confirmer = AutoApprove
	}
	var result Result
	for _, a := range moves {
		decision, err := confirmer.Confirm(document.DescribeMove(a))
		if err != nil {
			result.Faults = append(result.Faults, services.NewFault(stageName, a.Path,
				services.Wrap(services.ErrMove, stageName, "confirm move", a.Path, err)))
			continue
		}
		switch decision {
		case DecisionAbort:
			result.Aborted = true
			e.logger.Info("remaining moves aborted", logging.Int("remaining", len(moves)-len(result.Applied)-result.Skipped-len(result.Faults)))
			return result
		case DecisionSkip:
			result.Skipped++
			e.logger.Info("move skipped", logging.String(logging.FieldPath, a.Path))
		default:
			e.apply(a, &result)
		}
	}
	return result
}

// apply performs one move: ensure the destination directory, rename (with
// cross-device fallback), update counters. Failures are isolated.
func (e *Executor) apply(a document.Analysis, result *Result) {
	src, dst := a.Path, a.CanonicalPath
	if err := fileutil.MoveFile(src, dst); err != nil {
		wrapped := services.Wrap(services.ErrMove, stageName, "move document", src, err)
		e.logger.Error("move failed",
			logging.String(logging.FieldPath, src),
			logging.String("destination", dst),
			logging.Error(err),
		)
		result.Faults = append(result.Faults, services.NewFault(stageName, src, wrapped))
		return
	}

	result.Applied = append(result.Applied, AppliedMove{From: src, To: dst})
	if filepath.Base(src) != filepath.Base(dst) {
		result.Renamed++
	}
	e.logger.Info("document moved",
		logging.String("from", src),
		logging.String("to", dst),
	)
}

// AppliedMap flattens results into an old-path to new-path map for the
// reference rewriter.
func AppliedMap(results ...Result) map[string]string {
	m := make(map[string]string)
	for _, r := range results {
		for _, applied := range r.Applied {
			m[applied.From] = applied.To
		}
	}
	return m
}
