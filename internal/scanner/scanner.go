// Package scanner enumerates the candidate documents for a run: a directory
// walk over the configured scan paths with a skip list and an extension
// filter.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Options controls a corpus scan.
type Options struct {
	// Paths are the absolute directories to walk. Overlapping paths are fine;
	// results are deduplicated.
	Paths []string
	// SkipDirs lists directory names that are pruned wherever they appear.
	SkipDirs []string
	// Extensions whitelists file extensions (lowercase, with dot).
	Extensions []string
	// Restrict, when set, keeps only documents under this path prefix.
	Restrict string
}

// Scan walks the configured paths and returns the candidate document set in
// sorted order. Missing scan paths are skipped; other walk errors abort.
func Scan(opts Options) ([]string, error) {
	skip := make(map[string]struct{}, len(opts.SkipDirs))
	for _, name := range opts.SkipDirs {
		skip[name] = struct{}{}
	}
	ext := make(map[string]struct{}, len(opts.Extensions))
	for _, e := range opts.Extensions {
		ext[strings.ToLower(e)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var documents []string
	for _, root := range opts.Paths {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return fs.SkipAll
				}
				return err
			}
			if entry.IsDir() {
				if _, ok := skip[entry.Name()]; ok && path != root {
					return fs.SkipDir
				}
				return nil
			}
			if len(ext) > 0 {
				if _, ok := ext[strings.ToLower(filepath.Ext(path))]; !ok {
					return nil
				}
			}
			if opts.Restrict != "" && !underPath(opts.Restrict, path) {
				return nil
			}
			if _, ok := seen[path]; ok {
				return nil
			}
			seen[path] = struct{}{}
			documents = append(documents, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(documents)
	return documents, nil
}

func underPath(prefix, path string) bool {
	if prefix == path {
		return true
	}
	rel, err := filepath.Rel(prefix, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
