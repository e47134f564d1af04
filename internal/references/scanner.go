// Package references finds textual mentions of documents that are about to
// move and rewrites them after the moves have been applied.
package references

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docshelf/internal/document"
	"docshelf/internal/logging"
	"docshelf/internal/services"
)

const scanStage = "references"

// ScanResult holds the pending edits plus the documents that could not be
// read. Broken-reference detection is best effort: a read failure skips the
// document but is still surfaced.
type ScanResult struct {
	Edits  []document.ReferenceEdit
	Faults []services.Fault
}

// Scan reads every analyzed document and tests whether it mentions, verbatim,
// the basename or full path of any pending move. Manual-review items are not
// pending moves; documents that are themselves moving still participate as
// referencing files.
func Scan(analyses []document.Analysis, plan *document.MigrationPlan, logger *slog.Logger) ScanResult {
	logger = logging.WithComponent(logger, scanStage)

	moveMap := plan.MoveMap()
	if len(moveMap) == 0 {
		return ScanResult{}
	}
	oldPaths := make([]string, 0, len(moveMap))
	for old := range moveMap {
		oldPaths = append(oldPaths, old)
	}
	sort.Strings(oldPaths)

	var result ScanResult
	for _, a := range analyses {
		if a.IsError() {
			continue
		}
		content, err := os.ReadFile(a.Path)
		if err != nil {
			result.Faults = append(result.Faults, services.NewFault(scanStage, a.Path,
				services.Wrap(services.ErrRead, scanStage, "read document", a.Path, err)))
			continue
		}
		text := string(content)
		for _, oldPath := range oldPaths {
			oldBase := filepath.Base(oldPath)
			if !strings.Contains(text, oldBase) && !strings.Contains(text, oldPath) {
				continue
			}
			result.Edits = append(result.Edits, document.ReferenceEdit{
				File:    a.Path,
				OldPath: oldPath,
				NewPath: moveMap[oldPath],
				OldBase: oldBase,
			})
			logger.Debug("stale reference found",
				logging.String("file", a.Path),
				logging.String("target", oldBase),
			)
		}
	}
	return result
}
