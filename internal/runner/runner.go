// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner executes one sync: fetch, extract, build, and write the
// snapshot. The snapshot file is only touched after every earlier stage
// has succeeded.
package runner

import (
	"context"
	"fmt"

	"github.com/pdiddy/pubsync/internal/logger"
	"github.com/pdiddy/pubsync/internal/orcid"
	"github.com/pdiddy/pubsync/internal/publications"
	"github.com/pdiddy/pubsync/internal/snapshot"
	"github.com/pdiddy/pubsync/pkg/types"
)

// WorksFetcher retrieves the raw works document for a researcher.
type WorksFetcher interface {
	FetchWorks(ctx context.Context, id string) (*orcid.WorksResponse, error)
}

// Summary describes a completed sync.
type Summary struct {
	Path              string
	Count             int
	Extracted         int
	DuplicatesRemoved int
}

// String renders the one-line human summary.
func (s Summary) String() string {
	return fmt.Sprintf("Wrote %s with %d items.", s.Path, s.Count)
}

// Sync runs the pipeline for cfg.ORCID and writes cfg.OutputPath.
func Sync(ctx context.Context, f WorksFetcher, cfg types.SyncConfig) (Summary, error) {
	works, err := f.FetchWorks(ctx, cfg.ORCID)
	if err != nil {
		return Summary{}, fmt.Errorf("fetching works for %s: %w", cfg.ORCID, err)
	}

	raw := orcid.Extract(works)
	res := publications.Build(raw)
	logger.S.Infow("built publications",
		"extracted", res.Extracted,
		"duplicates_removed", res.DuplicatesRemoved,
		"items", len(res.Items))

	snap := snapshot.New(cfg.ORCID, cfg.UpdatedBy, res.Items)
	if err := snapshot.Write(cfg.OutputPath, snap); err != nil {
		return Summary{}, err
	}

	return Summary{
		Path:              cfg.OutputPath,
		Count:             snap.Count,
		Extracted:         res.Extracted,
		DuplicatesRemoved: res.DuplicatesRemoved,
	}, nil
}
