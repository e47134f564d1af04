// Package duplicates flags same-typed documents whose filenames look like
// variants of one another. The check is a loose first-pass heuristic meant
// for human review, not ground truth.
package duplicates

import (
	"log/slog"
	"sort"

	"docshelf/internal/document"
	"docshelf/internal/logging"
	"docshelf/internal/textutil"
)

const basisFilename = "filename"

// Options tunes the similarity heuristic.
type Options struct {
	LengthSlack int
	MatchRatio  float64
}

// DefaultOptions mirrors the accepted tradeoff: names within 2 bytes of each
// other with more than 70% aligned characters.
func DefaultOptions() Options {
	return Options{LengthSlack: 2, MatchRatio: 0.7}
}

// Detect pairs similar filenames within each detected type. Uncertain and
// error analyses never participate. Groups are deduplicated by unordered
// pair, so swapping the inputs yields the same groups.
func Detect(analyses []document.Analysis, opts Options, logger *slog.Logger) []document.DuplicateGroup {
	logger = logging.WithComponent(logger, "duplicates")

	byType := make(map[string][]document.Analysis)
	for _, a := range analyses {
		if !a.Classified() {
			continue
		}
		byType[a.DocType] = append(byType[a.DocType], a)
	}

	types := make([]string, 0, len(byType))
	for name := range byType {
		types = append(types, name)
	}
	sort.Strings(types)

	builder := document.NewPlanBuilder()
	var groups []document.DuplicateGroup
	for _, docType := range types {
		docs := byType[docType]
		if len(docs) < 2 {
			continue
		}
		for i, first := range docs {
			for _, second := range docs[i+1:] {
				if !textutil.NamesSimilar(first.Path, second.Path, opts.LengthSlack, opts.MatchRatio) {
					continue
				}
				group := document.DuplicateGroup{
					Type:   docType,
					First:  first,
					Second: second,
					Basis:  basisFilename,
				}
				if builder.AddDuplicate(group) {
					groups = append(groups, group)
					logger.Debug("duplicate pair",
						logging.String(logging.FieldDocType, docType),
						logging.String("first", first.Path),
						logging.String("second", second.Path),
					)
				}
			}
		}
	}
	return groups
}
