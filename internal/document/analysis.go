// Package document holds the data model shared by the pipeline stages: the
// per-document analysis record, the migration plan with its confidence
// buckets, duplicate groups, reference edits, and the derived run counters.
package document

import "time"

// Sentinel doc_type values produced by the classifier adapter.
const (
	// TypeUncertain signals that no document type matched with confidence.
	TypeUncertain = "uncertain"
	// TypeError marks a degenerate analysis for an unreadable document.
	TypeError = "error"
)

// Confidence thresholds for triage. Boundaries are closed on the lower side:
// exactly 90 is auto, exactly 70 is suggested.
const (
	AutoThreshold    = 90
	SuggestThreshold = 70
	// DetectFloor is the minimum confidence at which a canonical path is
	// resolved at all; below it the classifier is treated as having declined.
	DetectFloor = 50
)

// Bucket identifies one of the three confidence tiers of the migration plan.
type Bucket string

const (
	BucketAuto      Bucket = "auto"
	BucketSuggested Bucket = "suggested"
	BucketManual    Bucket = "manual-review"
)

// BucketFor maps a confidence score to its tier.
func BucketFor(confidence int) Bucket {
	switch {
	case confidence >= AutoThreshold:
		return BucketAuto
	case confidence >= SuggestThreshold:
		return BucketSuggested
	default:
		return BucketManual
	}
}

// Analysis is the immutable classification record for one scanned document.
type Analysis struct {
	Path          string
	DocType       string
	Confidence    int
	CanonicalPath string
	NeedsMove     bool
	Size          int64
	CreatedAt     time.Time
}

// IsError reports whether this is a degenerate analysis for an unreadable
// document. Error analyses are counted as scanned but never bucketed.
func (a Analysis) IsError() bool {
	return a.DocType == TypeError
}

// Classified reports whether the classifier produced a usable (non-error)
// type detection for this document.
func (a Analysis) Classified() bool {
	return !a.IsError() && a.DocType != TypeUncertain
}
