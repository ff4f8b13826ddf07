package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/offmylawn101/slopwatch/internal/core/domain/vote"
	"github.com/sirupsen/logrus"
)

// SnapshotFileRepository persists the vote store as a single JSON document on
// disk. Writes go through a temp file and rename, so a crash mid-write leaves
// the previous document intact.
type SnapshotFileRepository struct {
	path   string
	logger *logrus.Logger
}

func NewSnapshotFileRepository(path string, logger *logrus.Logger) *SnapshotFileRepository {
	return &SnapshotFileRepository{path: path, logger: logger}
}

// Load reads the snapshot document. A missing file is not an error: it means
// no prior state and yields an empty snapshot.
func (r *SnapshotFileRepository) Load(ctx context.Context) (*vote.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		if r.logger != nil {
			r.logger.WithField("path", r.path).Debug("no snapshot file, starting empty")
		}
		return vote.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap vote.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save writes the full snapshot document atomically.
func (r *SnapshotFileRepository) Save(ctx context.Context, snap *vote.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// Path returns the snapshot file location.
func (r *SnapshotFileRepository) Path() string {
	return r.path
}
