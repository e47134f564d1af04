// Package services defines the error taxonomy shared by the pipeline stages
// and the structured fault records that per-item failures are collected into.
//
// Two markers halt a run: ErrClassifier (the tool cannot function without the
// classifier) and ErrBackup (mutating anything without a complete pre-image
// would break the integrity guarantee). Everything else is isolated to the
// offending document and reported in the final summary.
package services
