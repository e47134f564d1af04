package triage_test

import (
	"os"
	"path/filepath"
	"testing"

	"docshelf/internal/document"
	"docshelf/internal/logging"
	"docshelf/internal/services/classifier"
	"docshelf/internal/testsupport"
	"docshelf/internal/triage"
)

func TestAnalyzeBucketsByConfidence(t *testing.T) {
	root := t.TempDir()
	auto := filepath.Join(root, "auto.md")
	suggested := filepath.Join(root, "suggested.md")
	manual := filepath.Join(root, "manual.md")
	settled := filepath.Join(root, "settled.md")
	for _, p := range []string{auto, suggested, manual, settled} {
		testsupport.WriteDoc(t, p, "content")
	}

	stub := &testsupport.StubClassifier{ByBase: map[string]testsupport.StubDetection{
		"auto.md":      {DocType: "test_plan", Confidence: 90, Canonical: filepath.Join(root, "docs", "auto.md")},
		"suggested.md": {DocType: "test_plan", Confidence: 70, Canonical: filepath.Join(root, "docs", "suggested.md")},
		"manual.md":    {DocType: "test_plan", Confidence: 55, Canonical: filepath.Join(root, "docs", "manual.md")},
		"settled.md":   {DocType: "test_plan", Confidence: 95, Canonical: settled},
	}}

	engine := triage.NewEngine(stub, logging.NewNop())
	result := engine.Analyze([]string{auto, suggested, manual, settled}, classifier.Context{})
	if len(result.Faults) != 0 {
		t.Fatalf("unexpected faults: %v", result.Faults)
	}

	builder := document.NewPlanBuilder()
	triage.BucketMoves(builder, result.Analyses)
	plan := builder.Build()

	if len(plan.AutoMoves) != 1 || plan.AutoMoves[0].Path != auto {
		t.Errorf("auto bucket = %+v", plan.AutoMoves)
	}
	if len(plan.SuggestedMoves) != 1 || plan.SuggestedMoves[0].Path != suggested {
		t.Errorf("suggested bucket = %+v", plan.SuggestedMoves)
	}
	if len(plan.ManualReview) != 1 || plan.ManualReview[0].Path != manual {
		t.Errorf("manual bucket = %+v", plan.ManualReview)
	}
	// settled.md resolves to its current path, so it needs no move.
	if plan.TotalMoves() != 2 {
		t.Errorf("TotalMoves = %d, want 2", plan.TotalMoves())
	}
}

func TestAnalyzeEveryMoveInExactlyOneBucket(t *testing.T) {
	root := t.TempDir()
	stub := &testsupport.StubClassifier{ByBase: map[string]testsupport.StubDetection{}}
	var paths []string
	for i, confidence := range []int{95, 90, 89, 70, 69, 50} {
		name := filepath.Join(root, string(rune('a'+i))+".md")
		testsupport.WriteDoc(t, name, "content")
		stub.ByBase[filepath.Base(name)] = testsupport.StubDetection{
			DocType:    "test_plan",
			Confidence: confidence,
			Canonical:  filepath.Join(root, "docs", filepath.Base(name)),
		}
		paths = append(paths, name)
	}

	engine := triage.NewEngine(stub, logging.NewNop())
	result := engine.Analyze(paths, classifier.Context{})

	builder := document.NewPlanBuilder()
	triage.BucketMoves(builder, result.Analyses)
	plan := builder.Build()

	total := len(plan.AutoMoves) + len(plan.SuggestedMoves) + len(plan.ManualReview)
	if total != len(paths) {
		t.Fatalf("buckets hold %d items, want %d", total, len(paths))
	}
	if len(plan.AutoMoves) != 2 || len(plan.SuggestedMoves) != 2 || len(plan.ManualReview) != 2 {
		t.Fatalf("bucket sizes = %d/%d/%d, want 2/2/2",
			len(plan.AutoMoves), len(plan.SuggestedMoves), len(plan.ManualReview))
	}
}

func TestAnalyzeUnreadableDocument(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "missing.md")

	engine := triage.NewEngine(&testsupport.StubClassifier{}, logging.NewNop())
	result := engine.Analyze([]string{missing}, classifier.Context{})

	if len(result.Analyses) != 1 {
		t.Fatalf("expected the error analysis to be retained, got %d", len(result.Analyses))
	}
	a := result.Analyses[0]
	if !a.IsError() || a.Confidence != 0 {
		t.Fatalf("degenerate analysis = %+v", a)
	}
	if len(result.Faults) != 1 || result.Faults[0].Path != missing {
		t.Fatalf("faults = %v", result.Faults)
	}

	// Error analyses are counted as scanned but never bucketed.
	var stats document.Stats
	stats.TallyAnalyses(result.Analyses)
	if stats.Scanned != 1 || stats.Detected != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	builder := document.NewPlanBuilder()
	triage.BucketMoves(builder, result.Analyses)
	if builder.Build().TotalMoves() != 0 {
		t.Fatal("error analysis must not be bucketed")
	}
}

func TestAnalyzeDeclinedClassification(t *testing.T) {
	root := t.TempDir()
	doc := filepath.Join(root, "weak.md")
	testsupport.WriteDoc(t, doc, "content")

	// Confidence below the detection floor: no canonical path is resolved.
	stub := &testsupport.StubClassifier{ByBase: map[string]testsupport.StubDetection{
		"weak.md": {DocType: "test_plan", Confidence: 45, Canonical: filepath.Join(root, "docs", "weak.md")},
	}}
	engine := triage.NewEngine(stub, logging.NewNop())
	result := engine.Analyze([]string{doc}, classifier.Context{})

	a := result.Analyses[0]
	if a.CanonicalPath != "" || a.NeedsMove {
		t.Fatalf("expected declined classification, got %+v", a)
	}
}

func TestAnalyzeRecordsSize(t *testing.T) {
	root := t.TempDir()
	doc := filepath.Join(root, "sized.md")
	if err := os.WriteFile(doc, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := triage.NewEngine(&testsupport.StubClassifier{}, logging.NewNop())
	result := engine.Analyze([]string{doc}, classifier.Context{})
	if result.Analyses[0].Size != 5 {
		t.Fatalf("size = %d, want 5", result.Analyses[0].Size)
	}
	if result.Analyses[0].CreatedAt.IsZero() {
		t.Fatal("expected creation time")
	}
}
