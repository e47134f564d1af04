package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRead marks a document that could not be read.
	ErrRead = errors.New("read error")
	// ErrClassifier marks classifier construction or contract failures.
	ErrClassifier = errors.New("classifier unavailable")
	// ErrConfiguration marks invalid or missing configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrBackup marks a failed pre-move snapshot.
	ErrBackup = errors.New("backup error")
	// ErrMove marks an individual move that could not be applied.
	ErrMove = errors.New("move error")
	// ErrRewrite marks a reference rewrite that could not be written.
	ErrRewrite = errors.New("rewrite error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error must halt the whole run. Only a missing
// classifier and an incomplete backup qualify; per-document errors are
// collected and the run continues.
func IsFatal(err error) bool {
	return errors.Is(err, ErrClassifier) || errors.Is(err, ErrBackup) || errors.Is(err, ErrConfiguration)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
