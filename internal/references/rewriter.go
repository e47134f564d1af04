package references

import (
	"log/slog"
	"os"
	"strings"

	"docshelf/internal/document"
	"docshelf/internal/logging"
	"docshelf/internal/services"
)

const rewriteStage = "rewrite"

// RewriteResult summarizes a rewrite pass.
type RewriteResult struct {
	Updated int
	Faults  []services.Fault
}

// Rewrite applies reference edits after moves have run. Only edits whose
// target move actually applied are rewritten; the substitution is a global
// basename replacement and the file is written back in full, last writer
// wins. Referencing files that moved themselves are followed to their new
// location. Per-edit failures are logged and collected, never fatal.
func Rewrite(edits []document.ReferenceEdit, applied map[string]string, logger *slog.Logger) RewriteResult {
	logger = logging.WithComponent(logger, rewriteStage)

	var result RewriteResult
	for _, edit := range edits {
		newPath, ok := applied[edit.OldPath]
		if !ok {
			continue // move skipped or failed; the old reference is still valid
		}

		file := edit.File
		if moved, ok := applied[file]; ok {
			file = moved
		}

		content, err := os.ReadFile(file)
		if err != nil {
			wrapped := services.Wrap(services.ErrRewrite, rewriteStage, "read referencing file", file, err)
			logger.Warn("reference rewrite skipped", logging.String("file", file), logging.Error(err))
			result.Faults = append(result.Faults, services.NewFault(rewriteStage, file, wrapped))
			continue
		}

		newBase := document.ReferenceEdit{NewPath: newPath}.NewBase()
		text := string(content)
		if !strings.Contains(text, edit.OldBase) {
			continue // already rewritten by an earlier edit against this file
		}
		rewritten := strings.ReplaceAll(text, edit.OldBase, newBase)
		if err := os.WriteFile(file, []byte(rewritten), 0o644); err != nil {
			wrapped := services.Wrap(services.ErrRewrite, rewriteStage, "write referencing file", file, err)
			logger.Warn("reference rewrite failed", logging.String("file", file), logging.Error(err))
			result.Faults = append(result.Faults, services.NewFault(rewriteStage, file, wrapped))
			continue
		}

		result.Updated++
		logger.Info("references updated",
			logging.String("file", file),
			logging.String("old", edit.OldBase),
			logging.String("new", newBase),
		)
	}
	return result
}
