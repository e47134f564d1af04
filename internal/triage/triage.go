// Package triage turns the candidate document set into classification
// analyses and buckets them by confidence into the migration plan.
package triage

import (
	"log/slog"
	"os"
	"time"

	"docshelf/internal/document"
	"docshelf/internal/logging"
	"docshelf/internal/services"
	"docshelf/internal/services/classifier"
)

const stageName = "triage"

// Engine drives the classifier over scanned documents.
type Engine struct {
	classifier classifier.Classifier
	logger     *slog.Logger
}

// Result is the immutable output of an analysis pass.
type Result struct {
	Analyses []document.Analysis
	Faults   []services.Fault
}

// NewEngine constructs a triage engine around an injected classifier.
func NewEngine(c classifier.Classifier, logger *slog.Logger) *Engine {
	return &Engine{classifier: c, logger: logging.WithComponent(logger, stageName)}
}

// Analyze classifies every candidate document. Unreadable documents yield a
// degenerate error analysis plus a fault; they stay in the result so they are
// counted as scanned.
func (e *Engine) Analyze(paths []string, ctx classifier.Context) Result {
	result := Result{Analyses: make([]document.Analysis, 0, len(paths))}
	for _, path := range paths {
		analysis, err := e.analyzeDocument(path, ctx)
		if err != nil {
			result.Faults = append(result.Faults, services.NewFault(stageName, path, err))
		}
		result.Analyses = append(result.Analyses, analysis)
	}
	return result
}

func (e *Engine) analyzeDocument(path string, ctx classifier.Context) (document.Analysis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("document unreadable",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return document.Analysis{
			Path:       path,
			DocType:    document.TypeError,
			Confidence: 0,
		}, services.Wrap(services.ErrRead, stageName, "read document", path, err)
	}

	analysis := document.Analysis{
		Path: path,
		Size: int64(len(content)),
	}
	if info, statErr := os.Stat(path); statErr == nil {
		analysis.CreatedAt = info.ModTime()
	} else {
		analysis.CreatedAt = time.Now()
	}

	analysis.DocType, analysis.Confidence = e.classifier.Detect(path, content, ctx)

	if analysis.DocType != document.TypeUncertain && analysis.Confidence >= document.DetectFloor {
		canonical, resolveErr := e.classifier.ResolveCanonicalPath(analysis.DocType, path, content)
		if resolveErr != nil {
			e.logger.Warn("canonical path resolution failed",
				logging.String(logging.FieldPath, path),
				logging.String(logging.FieldDocType, analysis.DocType),
				logging.Error(resolveErr),
			)
		} else {
			analysis.CanonicalPath = canonical
			analysis.NeedsMove = canonical != path
		}
	}

	e.logger.Debug("document analyzed",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldDocType, analysis.DocType),
		logging.Int(logging.FieldConfidence, analysis.Confidence),
		logging.String(logging.FieldBucket, string(document.BucketFor(analysis.Confidence))),
		logging.Bool("needs_move", analysis.NeedsMove),
	)
	return analysis, nil
}

// BucketMoves appends every analysis needing a move to its confidence bucket
// on the plan builder.
func BucketMoves(builder *document.PlanBuilder, analyses []document.Analysis) {
	for _, a := range analyses {
		builder.AddMove(a)
	}
}
