package testsupport

import (
	"fmt"
	"path/filepath"

	"docshelf/internal/document"
	"docshelf/internal/services/classifier"
)

// StubDetection is the scripted answer for one document basename.
type StubDetection struct {
	DocType    string
	Confidence int
	Canonical  string
}

// StubClassifier answers Detect/ResolveCanonicalPath from a basename-keyed
// script. Unknown documents come back uncertain.
type StubClassifier struct {
	ByBase     map[string]StubDetection
	ResolveErr error
}

var _ classifier.Classifier = (*StubClassifier)(nil)

func (s *StubClassifier) Detect(path string, content []byte, ctx classifier.Context) (string, int) {
	if d, ok := s.ByBase[filepath.Base(path)]; ok {
		return d.DocType, d.Confidence
	}
	return document.TypeUncertain, 0
}

func (s *StubClassifier) ResolveCanonicalPath(docType, path string, content []byte) (string, error) {
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	if d, ok := s.ByBase[filepath.Base(path)]; ok && d.Canonical != "" {
		return d.Canonical, nil
	}
	return "", fmt.Errorf("no canonical path scripted for %s", path)
}
