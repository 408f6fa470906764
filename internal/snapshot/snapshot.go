// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot reads and writes the publications snapshot file.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/pubsync/pkg/types"
)

// Defaults reproduce the reference sync job.
const (
	DefaultPath      = "src/data/publications.json"
	DefaultUpdatedBy = "github-actions"
)

// New builds the envelope for items. Count always equals len(items), and a
// nil slice is written as an empty list.
func New(orcid, updatedBy string, items []types.Publication) types.Snapshot {
	if items == nil {
		items = []types.Publication{}
	}
	return types.Snapshot{
		ORCID:     orcid,
		UpdatedBy: updatedBy,
		Count:     len(items),
		Items:     items,
	}
}

// Marshal renders snap as 2-space indented JSON.
func Marshal(snap types.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}
	return data, nil
}

// Write creates path's parent directory if needed and overwrites path with
// the rendered snapshot. The write is not atomic.
func Write(path string, snap types.Snapshot) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Read parses a snapshot file and checks that count matches the items.
func Read(path string) (types.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return types.Snapshot{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if snap.Count != len(snap.Items) {
		return types.Snapshot{}, fmt.Errorf("%s: count %d does not match %d items", path, snap.Count, len(snap.Items))
	}
	return snap, nil
}
