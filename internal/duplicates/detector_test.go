package duplicates_test

import (
	"testing"

	"docshelf/internal/document"
	"docshelf/internal/duplicates"
	"docshelf/internal/logging"
)

func analysis(path, docType string) document.Analysis {
	return document.Analysis{Path: path, DocType: docType, Confidence: 80}
}

func TestDetectSeparatorVariants(t *testing.T) {
	analyses := []document.Analysis{
		analysis("docs/test-plan-v1.md", "test_plan"),
		analysis("docs/testplanv1.md", "test_plan"),
		analysis("docs/architecture.md", "test_plan"),
	}

	groups := duplicates.Detect(analyses, duplicates.DefaultOptions(), logging.NewNop())
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d: %+v", len(groups), groups)
	}
	g := groups[0]
	if g.Type != "test_plan" || g.Basis != "filename" {
		t.Errorf("group = %+v", g)
	}
}

func TestDetectSymmetry(t *testing.T) {
	a := analysis("docs/release-notes.md", "note")
	b := analysis("docs/release-nodes.md", "note")

	forward := duplicates.Detect([]document.Analysis{a, b}, duplicates.DefaultOptions(), logging.NewNop())
	reverse := duplicates.Detect([]document.Analysis{b, a}, duplicates.DefaultOptions(), logging.NewNop())

	if len(forward) != 1 || len(reverse) != 1 {
		t.Fatalf("forward=%d reverse=%d, want 1/1", len(forward), len(reverse))
	}
	if forward[0].Key() != reverse[0].Key() {
		t.Fatalf("group keys differ: %q vs %q", forward[0].Key(), reverse[0].Key())
	}
}

func TestDetectIgnoresCrossTypePairs(t *testing.T) {
	analyses := []document.Analysis{
		analysis("docs/test-plan.md", "test_plan"),
		analysis("docs/test-plan-copy.md", "session_note"),
	}
	if groups := duplicates.Detect(analyses, duplicates.DefaultOptions(), logging.NewNop()); len(groups) != 0 {
		t.Fatalf("cross-type pair flagged: %+v", groups)
	}
}

func TestDetectExcludesUncertainAndError(t *testing.T) {
	analyses := []document.Analysis{
		analysis("docs/mystery-a.md", document.TypeUncertain),
		analysis("docs/mystery-b.md", document.TypeUncertain),
		analysis("docs/broken-a.md", document.TypeError),
		analysis("docs/broken-b.md", document.TypeError),
	}
	if groups := duplicates.Detect(analyses, duplicates.DefaultOptions(), logging.NewNop()); len(groups) != 0 {
		t.Fatalf("sentinel types must not form groups: %+v", groups)
	}
}

func TestDetectTunableThresholds(t *testing.T) {
	a := analysis("docs/release-notes.md", "note")
	b := analysis("docs/release-nodes.md", "note")

	// A ratio the pair cannot meet suppresses the group.
	strict := duplicates.Options{LengthSlack: 2, MatchRatio: 0.99}
	if groups := duplicates.Detect([]document.Analysis{a, b}, strict, logging.NewNop()); len(groups) != 0 {
		t.Fatalf("strict ratio should suppress group: %+v", groups)
	}
}

func TestDetectMultipleGroupsPerType(t *testing.T) {
	analyses := []document.Analysis{
		analysis("docs/test-plan-v1.md", "test_plan"),
		analysis("docs/testplanv1.md", "test_plan"),
		analysis("docs/qa-checklist.md", "test_plan"),
		analysis("docs/qa_checklist.md", "test_plan"),
	}
	groups := duplicates.Detect(analyses, duplicates.DefaultOptions(), logging.NewNop())
	// test-plan pair, qa-checklist pair, and the cross pairs that the
	// containment rule happens to admit are all deduplicated by key.
	keys := make(map[string]struct{})
	for _, g := range groups {
		if _, ok := keys[g.Key()]; ok {
			t.Fatalf("duplicate group emitted twice: %+v", g)
		}
		keys[g.Key()] = struct{}{}
	}
	if len(groups) < 2 {
		t.Fatalf("expected at least the two obvious pairs, got %+v", groups)
	}
}
