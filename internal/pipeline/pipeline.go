// Package pipeline wires the stages into the full organize run: scan,
// triage, duplicate detection, reference scanning, backup, move execution,
// and reference rewriting. Buckets run in a fixed sequence and the
// filesystem is the only shared mutable resource, guarded by a run lock.
package pipeline

import (
	"log/slog"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"docshelf/internal/backup"
	"docshelf/internal/config"
	"docshelf/internal/document"
	"docshelf/internal/duplicates"
	"docshelf/internal/logging"
	"docshelf/internal/mover"
	"docshelf/internal/references"
	"docshelf/internal/scanner"
	"docshelf/internal/services"
	"docshelf/internal/services/classifier"
	"docshelf/internal/triage"
)

// Options selects the behavior of one run.
type Options struct {
	// DryRun builds and reports the plan without mutating anything.
	DryRun bool
	// Auto applies the suggested bucket without per-item confirmation.
	Auto bool
	// Restrict limits the scan to documents under this path.
	Restrict string
	// Persona is passed through to the classifier as an agent hint.
	Persona string
}

// PlanResult is the read-only outcome of plan construction.
type PlanResult struct {
	Analyses []document.Analysis
	Plan     *document.MigrationPlan
	Faults   []services.Fault
}

// Summary aggregates a full run for reporting. Stats are derived from the
// stage results; the stages themselves return immutable values.
type Summary struct {
	RunID     string
	Plan      *document.MigrationPlan
	Analyses  []document.Analysis
	Stats     document.Stats
	BackupDir string
	Applied   []mover.AppliedMove
	Aborted   bool
	Faults    []services.Fault
}

// Pipeline runs the document organization stages in order.
type Pipeline struct {
	cfg        *config.Config
	classifier classifier.Classifier
	confirmer  mover.Confirmer
	logger     *slog.Logger
}

// New assembles a pipeline. The confirmer is consulted for suggested-bucket
// moves when the run is not in auto mode.
func New(cfg *config.Config, c classifier.Classifier, confirmer mover.Confirmer, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "assemble", "configuration is required", nil)
	}
	if c == nil {
		return nil, services.Wrap(services.ErrClassifier, "pipeline", "assemble", "classifier is required", nil)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{cfg: cfg, classifier: c, confirmer: confirmer, logger: logger}, nil
}

// BuildPlan scans the corpus, classifies every candidate, and assembles the
// migration plan with duplicate groups and pending reference edits.
func (p *Pipeline) BuildPlan(opts Options) (*PlanResult, error) {
	paths, err := scanner.Scan(scanner.Options{
		Paths:      p.cfg.Scan.Paths,
		SkipDirs:   p.cfg.Scan.SkipDirs,
		Extensions: p.cfg.Scan.Extensions,
		Restrict:   opts.Restrict,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "scan", "walk corpus", "", err)
	}
	p.logger.Info("scan complete", logging.Int("documents", len(paths)))

	engine := triage.NewEngine(p.classifier, p.logger)
	triaged := engine.Analyze(paths, classifier.Context{AgentPersona: opts.Persona})

	builder := document.NewPlanBuilder()
	triage.BucketMoves(builder, triaged.Analyses)

	faults := append([]services.Fault(nil), triaged.Faults...)

	if p.cfg.Duplicates.Enabled {
		groups := duplicates.Detect(triaged.Analyses, duplicates.Options{
			LengthSlack: p.cfg.Duplicates.LengthSlack,
			MatchRatio:  p.cfg.Duplicates.MatchRatio,
		}, p.logger)
		for _, g := range groups {
			builder.AddDuplicate(g)
		}
	}

	// Reference scanning needs the move buckets, so the plan is built in two
	// steps: buckets plus duplicates first, then the edits are attached.
	interim := builder.Build()
	refs := references.Scan(triaged.Analyses, interim, p.logger)
	faults = append(faults, refs.Faults...)
	for _, edit := range refs.Edits {
		builder.AddReference(edit)
	}

	return &PlanResult{
		Analyses: triaged.Analyses,
		Plan:     builder.Build(),
		Faults:   faults,
	}, nil
}

// Organize runs the full pipeline. Order is fixed: backup, auto moves,
// suggested moves, reference rewriting. Only classifier and backup failures
// halt; everything else degrades per item and lands in Summary.Faults.
func (p *Pipeline) Organize(opts Options) (*Summary, error) {
	runID := uuid.NewString()
	logger := p.logger.With(logging.String(logging.FieldRunID, runID))

	if !opts.DryRun {
		unlock, err := p.acquireLock()
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	planned, err := p.BuildPlan(opts)
	if err != nil {
		return nil, err
	}
	summary := &Summary{
		RunID:    runID,
		Plan:     planned.Plan,
		Analyses: planned.Analyses,
		Faults:   planned.Faults,
	}
	summary.Stats.TallyAnalyses(planned.Analyses)
	summary.Stats.DuplicatesFound = len(planned.Plan.Duplicates)

	if opts.DryRun || planned.Plan.TotalMoves() == 0 {
		summary.Stats.Faults = len(summary.Faults)
		return summary, nil
	}

	// Complete pre-image before the first mutation; failure here is fatal.
	mgr := backup.NewManager(p.cfg.Paths.Root, p.cfg.Paths.BackupDir, logger)
	snapshot, err := mgr.Snapshot(runID, planned.Plan.PendingMoves())
	if err != nil {
		return nil, err
	}
	summary.BackupDir = snapshot.Dir

	exec := mover.NewExecutor(logger)
	autoResult := exec.ExecuteAuto(planned.Plan.AutoMoves)

	var suggestedResult mover.Result
	if opts.Auto {
		suggestedResult = exec.ExecuteAuto(planned.Plan.SuggestedMoves)
	} else {
		suggestedResult = exec.ExecuteConfirmed(planned.Plan.SuggestedMoves, p.confirmer)
	}

	applied := mover.AppliedMap(autoResult, suggestedResult)
	rewrite := references.Rewrite(planned.Plan.BrokenRefs, applied, logger)

	summary.Applied = append(append([]mover.AppliedMove(nil), autoResult.Applied...), suggestedResult.Applied...)
	summary.Aborted = suggestedResult.Aborted
	summary.Faults = append(summary.Faults, autoResult.Faults...)
	summary.Faults = append(summary.Faults, suggestedResult.Faults...)
	summary.Faults = append(summary.Faults, rewrite.Faults...)

	summary.Stats.Moved = len(summary.Applied)
	summary.Stats.Renamed = autoResult.Renamed + suggestedResult.Renamed
	summary.Stats.SkippedMoves = autoResult.Skipped + suggestedResult.Skipped
	summary.Stats.FailedMoves = len(autoResult.Faults) + len(suggestedResult.Faults)
	summary.Stats.ReferencesUpdated = rewrite.Updated
	summary.Stats.Faults = len(summary.Faults)

	logger.Info("organize complete",
		logging.Int("moved", summary.Stats.Moved),
		logging.Int("renamed", summary.Stats.Renamed),
		logging.Int("references_updated", summary.Stats.ReferencesUpdated),
		logging.Int("faults", summary.Stats.Faults),
	)
	return summary, nil
}

// acquireLock guards against two organize runs interleaving moves over the
// same corpus. The lock file lives with the backups.
func (p *Pipeline) acquireLock() (func(), error) {
	if err := os.MkdirAll(p.cfg.Paths.BackupDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "prepare lock", p.cfg.Paths.BackupDir, err)
	}
	lock := flock.New(p.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "acquire lock", p.cfg.LockPath(), err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "pipeline", "acquire lock",
			"another docshelf run is already in progress", nil)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			p.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}, nil
}
