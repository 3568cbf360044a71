// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps the ordered collection of scanned and imported
// contacts and persists it through a snapshot port.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/cardscan/pkg/types"
)

// Snapshotter is the persistence port for the history collection. Save
// writes the full ordered collection; Load restores it. A Load that finds
// no prior snapshot returns an empty collection, not an error.
type Snapshotter interface {
	Load() ([]types.HistoryItem, error)
	Save(items []types.HistoryItem) error
}

const snapshotFile = "history.json"

// FileSnapshot persists the collection as a JSON array in a single file.
// Timestamps serialize as RFC 3339 text.
type FileSnapshot struct {
	dir string
}

// NewFileSnapshot returns a snapshot backed by dir/history.json, creating
// dir if needed.
func NewFileSnapshot(dir string) (*FileSnapshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	return &FileSnapshot{dir: dir}, nil
}

// Load reads the snapshot file. A missing file yields an empty collection.
// A malformed file is logged and treated as empty history rather than
// aborting startup.
func (f *FileSnapshot) Load() ([]types.HistoryItem, error) {
	data, err := os.ReadFile(f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history snapshot: %w", err)
	}

	var items []types.HistoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		fmt.Fprintf(os.Stderr, "warning: discarding malformed history snapshot: %v\n", err)
		return nil, nil
	}
	return items, nil
}

// Save writes the full collection, replacing any previous snapshot. The
// write goes to a temporary file in the same directory and is renamed into
// place, so an interrupted save never corrupts the existing snapshot.
func (f *FileSnapshot) Save(items []types.HistoryItem) error {
	if items == nil {
		items = []types.HistoryItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history snapshot: %w", err)
	}

	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing history snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing history snapshot: %w", err)
	}
	return nil
}

func (f *FileSnapshot) path() string {
	return filepath.Join(f.dir, snapshotFile)
}

// NewSnapshotter constructs the snapshot backend selected by cfg.
func NewSnapshotter(cfg types.HistoryConfig) (Snapshotter, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "history"
	}
	switch cfg.Backend {
	case types.BackendSQLite:
		return NewSQLiteSnapshot(dir)
	case types.BackendFile, "":
		return NewFileSnapshot(dir)
	}
	return nil, fmt.Errorf("unsupported history backend %q: use file or sqlite", cfg.Backend)
}
