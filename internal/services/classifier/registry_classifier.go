package classifier

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"docshelf/internal/document"
	"docshelf/internal/registry"
)

// Signal weights for the registry-backed detector. A filename pattern match
// is the strongest signal; content markers accumulate; an agent hint nudges.
const (
	filenameMatchScore   = 45
	extraFilenameScore   = 5
	contentMarkerScore   = 20
	contentMarkerCeiling = 40
	agentHintScore       = 10

	// Below this score the detection is reported as uncertain.
	uncertainFloor = 40
)

// RegistryClassifier scores documents against the detection signals declared
// in the document registry.
type RegistryClassifier struct {
	reg  *registry.Registry
	root string
}

// New builds a registry-backed classifier rooted at the project root.
func New(reg *registry.Registry, root string) (*RegistryClassifier, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("project root is required")
	}
	return &RegistryClassifier{reg: reg, root: root}, nil
}

// Detect scores every registered type and returns the best match. Types are
// visited in sorted order so ties resolve deterministically.
func (c *RegistryClassifier) Detect(docPath string, content []byte, ctx Context) (string, int) {
	base := strings.ToLower(filepath.Base(docPath))
	text := strings.ToLower(string(content))
	persona := strings.ToLower(strings.TrimSpace(ctx.AgentPersona))

	bestType := document.TypeUncertain
	bestScore := 0
	for _, name := range c.reg.TypeNames() {
		score := scoreType(c.reg.DocumentTypes[name].Detection, base, text, persona)
		if score > bestScore {
			bestType = name
			bestScore = score
		}
	}

	if bestScore < uncertainFloor {
		return document.TypeUncertain, bestScore
	}
	if bestScore > 100 {
		bestScore = 100
	}
	return bestType, bestScore
}

func scoreType(det registry.Detection, base, text, persona string) int {
	score := 0

	filenameMatches := 0
	for _, pattern := range det.FilenamePatterns {
		ok, err := path.Match(strings.ToLower(pattern), base)
		if err == nil && ok {
			filenameMatches++
		}
	}
	if filenameMatches > 0 {
		score += filenameMatchScore + (filenameMatches-1)*extraFilenameScore
	}

	markerScore := 0
	for _, marker := range det.ContentMarkers {
		marker = strings.ToLower(strings.TrimSpace(marker))
		if marker == "" {
			continue
		}
		if strings.Contains(text, marker) {
			markerScore += contentMarkerScore
			if markerScore >= contentMarkerCeiling {
				markerScore = contentMarkerCeiling
				break
			}
		}
	}
	score += markerScore

	if persona != "" {
		for _, hint := range det.AgentHints {
			if strings.ToLower(strings.TrimSpace(hint)) == persona {
				score += agentHintScore
				break
			}
		}
	}
	return score
}

// ResolveCanonicalPath maps a detected type to the absolute path the document
// should occupy: the type's registry location under the project root, with
// the filename taken from the naming pattern when one is declared.
func (c *RegistryClassifier) ResolveCanonicalPath(docType, docPath string, content []byte) (string, error) {
	if docType == document.TypeUncertain || docType == document.TypeError {
		return "", fmt.Errorf("cannot resolve canonical path for %q", docType)
	}
	dt, ok := c.reg.DocumentTypes[docType]
	if !ok {
		return "", fmt.Errorf("unknown document type %q", docType)
	}

	name := canonicalName(dt.NamingPattern, docPath)
	return filepath.Join(c.root, filepath.FromSlash(dt.Location), name), nil
}

// canonicalName applies the registry naming pattern to the current filename.
// An empty pattern keeps the basename; a "{name}" placeholder is replaced by
// the current stem; anything else is a literal canonical filename.
func canonicalName(pattern, docPath string) string {
	base := filepath.Base(docPath)
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return base
	}
	if strings.Contains(pattern, "{name}") {
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		return strings.ReplaceAll(pattern, "{name}", stem)
	}
	return pattern
}
