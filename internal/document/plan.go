package document

import (
	"path/filepath"
	"strings"
)

// DuplicateGroup pairs two same-typed documents whose filenames look like
// variants of each other. The pair is unordered: Key treats (A,B) and (B,A)
// as the same group.
type DuplicateGroup struct {
	Type   string
	First  Analysis
	Second Analysis
	Basis  string
}

// Key returns a canonical identity for deduplicating groups across runs.
func (g DuplicateGroup) Key() string {
	a, b := g.First.Path, g.Second.Path
	if b < a {
		a, b = b, a
	}
	return g.Type + "\x00" + a + "\x00" + b
}

// ReferenceEdit records one textual reference that will go stale when the
// referenced document moves. One edit exists per (referencing file, pending
// move) combination.
type ReferenceEdit struct {
	File    string
	OldPath string
	NewPath string
	OldBase string
}

// NewBase returns the basename the reference should be rewritten to.
func (e ReferenceEdit) NewBase() string {
	return filepath.Base(e.NewPath)
}

// MigrationPlan is the read-only output of plan construction: the three
// disjoint confidence buckets plus duplicate groups and pending reference
// edits. Built once per run; execution never mutates it.
type MigrationPlan struct {
	AutoMoves      []Analysis
	SuggestedMoves []Analysis
	ManualReview   []Analysis
	Duplicates     []DuplicateGroup
	BrokenRefs     []ReferenceEdit
}

// PendingMoves returns the documents that are actually about to move: the
// auto and suggested buckets. Manual-review items are excluded because their
// placement is not yet decided.
func (p *MigrationPlan) PendingMoves() []Analysis {
	out := make([]Analysis, 0, len(p.AutoMoves)+len(p.SuggestedMoves))
	out = append(out, p.AutoMoves...)
	out = append(out, p.SuggestedMoves...)
	return out
}

// MoveMap maps each pending move's current path to its planned destination.
func (p *MigrationPlan) MoveMap() map[string]string {
	moves := p.PendingMoves()
	m := make(map[string]string, len(moves))
	for _, a := range moves {
		m[a.Path] = a.CanonicalPath
	}
	return m
}

// TotalMoves counts the documents in the auto and suggested buckets.
func (p *MigrationPlan) TotalMoves() int {
	return len(p.AutoMoves) + len(p.SuggestedMoves)
}

// PlanBuilder accumulates plan entries during construction and produces a
// fully-formed MigrationPlan. Duplicate groups are deduplicated by Key.
type PlanBuilder struct {
	auto      []Analysis
	suggested []Analysis
	manual    []Analysis
	groups    []DuplicateGroup
	groupKeys map[string]struct{}
	refs      []ReferenceEdit
}

// NewPlanBuilder returns an empty builder.
func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{groupKeys: make(map[string]struct{})}
}

// AddMove buckets an analysis by confidence. Error analyses and documents
// that do not need a move are ignored.
func (b *PlanBuilder) AddMove(a Analysis) {
	if a.IsError() || !a.NeedsMove {
		return
	}
	switch BucketFor(a.Confidence) {
	case BucketAuto:
		b.auto = append(b.auto, a)
	case BucketSuggested:
		b.suggested = append(b.suggested, a)
	default:
		b.manual = append(b.manual, a)
	}
}

// AddDuplicate records a duplicate group unless an equal group (same type and
// unordered pair) is already present.
func (b *PlanBuilder) AddDuplicate(g DuplicateGroup) bool {
	key := g.Key()
	if _, ok := b.groupKeys[key]; ok {
		return false
	}
	b.groupKeys[key] = struct{}{}
	b.groups = append(b.groups, g)
	return true
}

// AddReference records a pending reference edit.
func (b *PlanBuilder) AddReference(e ReferenceEdit) {
	b.refs = append(b.refs, e)
}

// Build returns the finished plan. The builder's slices are copied so later
// builder use cannot alias the returned plan.
func (b *PlanBuilder) Build() *MigrationPlan {
	return &MigrationPlan{
		AutoMoves:      append([]Analysis(nil), b.auto...),
		SuggestedMoves: append([]Analysis(nil), b.suggested...),
		ManualReview:   append([]Analysis(nil), b.manual...),
		Duplicates:     append([]DuplicateGroup(nil), b.groups...),
		BrokenRefs:     append([]ReferenceEdit(nil), b.refs...),
	}
}

// DescribeMove renders "old-base -> new-base" for prompts and plan output.
func DescribeMove(a Analysis) string {
	return strings.Join([]string{filepath.Base(a.Path), filepath.Base(a.CanonicalPath)}, " -> ")
}
