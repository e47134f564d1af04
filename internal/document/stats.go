package document

// Stats is a derived aggregate over a run. It is never a source of truth:
// every counter can be recomputed from the analyses, the plan, and the
// execution results.
type Stats struct {
	Scanned           int
	Detected          int
	HighConfidence    int
	MediumConfidence  int
	LowConfidence     int
	Moved             int
	Renamed           int
	SkippedMoves      int
	FailedMoves       int
	DuplicatesFound   int
	ReferencesUpdated int
	Faults            int
}

// TallyAnalyses fills the scan and confidence-tier counters from a completed
// analysis set. Error analyses count as scanned but not detected.
func (s *Stats) TallyAnalyses(analyses []Analysis) {
	for _, a := range analyses {
		s.Scanned++
		if a.IsError() {
			continue
		}
		s.Detected++
		switch BucketFor(a.Confidence) {
		case BucketAuto:
			s.HighConfidence++
		case BucketSuggested:
			s.MediumConfidence++
		default:
			s.LowConfidence++
		}
	}
}

// DetectionAccuracy returns the share of detected documents that landed in
// the high or medium tier, as a percentage. Zero when nothing was detected.
func (s *Stats) DetectionAccuracy() float64 {
	if s.Detected == 0 {
		return 0
	}
	return float64(s.HighConfidence+s.MediumConfidence) / float64(s.Detected) * 100
}
