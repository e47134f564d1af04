// Package registry loads the document registry: the mapping from document
// type names to canonical locations and detection signals, plus the
// enforcement policy and the fallback for uncertain documents.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

// Detection lists the signals used to recognize a document type.
type Detection struct {
	FilenamePatterns []string `json:"filename_patterns"`
	ContentMarkers   []string `json:"content_markers"`
	AgentHints       []string `json:"agent_hints"`
}

// DocType describes where documents of one type belong and how to detect them.
type DocType struct {
	Location      string    `json:"location"`
	NamingPattern string    `json:"naming_pattern"`
	Detection     Detection `json:"detection"`
}

// Enforcement captures the registry-wide placement policy.
type Enforcement struct {
	Level         string `json:"level"`
	AllowOverride bool   `json:"allow_override"`
	OverrideFlag  string `json:"override_flag"`
}

// UncertainHandling configures where unclassifiable documents default to.
type UncertainHandling struct {
	DefaultLocation string `json:"default_location"`
	Prompt          string `json:"prompt"`
}

// Registry is the parsed document registry file.
type Registry struct {
	Version           string             `json:"version"`
	DocumentTypes     map[string]DocType `json:"document_types"`
	Enforcement       Enforcement        `json:"enforcement"`
	UncertainHandling UncertainHandling  `json:"uncertain_handling"`
}

// Load reads and validates a registry file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate ensures the registry is usable for classification.
func (r *Registry) Validate() error {
	if len(r.DocumentTypes) == 0 {
		return fmt.Errorf("registry defines no document types")
	}
	for name, dt := range r.DocumentTypes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("registry contains an unnamed document type")
		}
		if strings.TrimSpace(dt.Location) == "" {
			return fmt.Errorf("document type %q has no location", name)
		}
		for _, pattern := range dt.Detection.FilenamePatterns {
			if _, err := path.Match(pattern, "probe"); err != nil {
				return fmt.Errorf("document type %q has invalid filename pattern %q: %w", name, pattern, err)
			}
		}
	}
	return nil
}

// TypeNames returns the defined type names in sorted order so iteration is
// deterministic.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.DocumentTypes))
	for name := range r.DocumentTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
