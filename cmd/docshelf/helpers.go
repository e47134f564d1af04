package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// absolutePath expands and absolutizes a user-supplied path argument.
func absolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

// displayPath shortens an absolute path to be relative to the corpus root
// when possible.
func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func formatConfidence(confidence int) string {
	return fmt.Sprintf("%d%%", confidence)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
