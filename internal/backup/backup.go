// Package backup snapshots every document slated for mutation before any
// move executes. The snapshot is all-or-nothing: a single failed copy aborts
// the run, because the migration's integrity guarantee rests on the backup
// being a complete pre-image.
package backup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"docshelf/internal/document"
	"docshelf/internal/fileutil"
	"docshelf/internal/logging"
	"docshelf/internal/services"
)

const stageName = "backup"

// Manager creates pre-move snapshots under the backup root.
type Manager struct {
	root       string
	backupRoot string
	logger     *slog.Logger
	now        func() time.Time
}

// Result describes a completed snapshot.
type Result struct {
	Dir    string
	Copied int
}

// NewManager builds a backup manager. root is the project root the relative
// snapshot layout is derived from.
func NewManager(root, backupRoot string, logger *slog.Logger) *Manager {
	return &Manager{
		root:       root,
		backupRoot: backupRoot,
		logger:     logging.WithComponent(logger, stageName),
		now:        time.Now,
	}
}

// Snapshot copies every pending move into a fresh timestamped directory,
// preserving each document's path relative to the project root. Every copy is
// hash-verified. Any failure is fatal and tagged ErrBackup; nothing has moved
// yet when it fires.
func (m *Manager) Snapshot(runID string, moves []document.Analysis) (Result, error) {
	dir := filepath.Join(m.backupRoot, snapshotName(m.now(), runID))

	if err := m.preflight(moves); err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, services.Wrap(services.ErrBackup, stageName, "create snapshot dir", dir, err)
	}

	result := Result{Dir: dir}
	for _, a := range moves {
		rel, err := filepath.Rel(m.root, a.Path)
		if err != nil || strings.HasPrefix(rel, "..") {
			// Documents outside the root keep their full path shape.
			rel = strings.TrimPrefix(filepath.ToSlash(a.Path), "/")
			rel = filepath.FromSlash(rel)
		}
		dst := filepath.Join(dir, rel)
		if err := fileutil.CopyFileVerified(a.Path, dst); err != nil {
			return Result{}, services.Wrap(services.ErrBackup, stageName, "copy document", a.Path, err)
		}
		result.Copied++
	}

	m.logger.Info("backup complete",
		logging.String("dir", dir),
		logging.Int("documents", result.Copied),
	)
	return result, nil
}

// preflight verifies the backup root is writable and has room for the
// snapshot before the first byte is copied.
func (m *Manager) preflight(moves []document.Analysis) error {
	if err := os.MkdirAll(m.backupRoot, 0o755); err != nil {
		return services.Wrap(services.ErrBackup, stageName, "create backup root", m.backupRoot, err)
	}
	if err := unix.Access(m.backupRoot, unix.W_OK|unix.X_OK); err != nil {
		return services.Wrap(services.ErrBackup, stageName, "check backup root access", m.backupRoot, err)
	}

	var required uint64
	for _, a := range moves {
		if a.Size > 0 {
			required += uint64(a.Size)
		}
	}
	var fs unix.Statfs_t
	if err := unix.Statfs(m.backupRoot, &fs); err != nil {
		return services.Wrap(services.ErrBackup, stageName, "check free space", m.backupRoot, err)
	}
	free := fs.Bavail * uint64(fs.Bsize)
	if free < required {
		return services.Wrap(services.ErrBackup, stageName, "check free space",
			fmt.Sprintf("need %d bytes, %d available in %s", required, free, m.backupRoot), nil)
	}
	return nil
}

func snapshotName(ts time.Time, runID string) string {
	name := "run-" + ts.Format("2006-01-02-15-04-05")
	runID = strings.TrimSpace(runID)
	if len(runID) >= 8 {
		name += "-" + runID[:8]
	} else if runID != "" {
		name += "-" + runID
	}
	return name
}
