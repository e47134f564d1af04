package services

import "fmt"

// Fault records a per-item failure that was skipped over so the run could
// continue. Stages return faults alongside their results instead of silently
// swallowing errors; the pipeline aggregates them into the final summary.
type Fault struct {
	Stage string
	Path  string
	Err   error
}

// NewFault builds a fault record for the given stage and path.
func NewFault(stage, path string, err error) Fault {
	return Fault{Stage: stage, Path: path, Err: err}
}

func (f Fault) String() string {
	return fmt.Sprintf("%s: %s: %v", f.Stage, f.Path, f.Err)
}
