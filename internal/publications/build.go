// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import "github.com/pdiddy/pubsync/pkg/types"

// Result holds the built publication list and pipeline counts.
type Result struct {
	Items             []types.Publication
	Extracted         int
	DuplicatesRemoved int
}

// Build normalizes, deduplicates, and sorts raw records.
func Build(raw []types.RawRecord) Result {
	pubs := make([]types.Publication, len(raw))
	for i, r := range raw {
		pubs[i] = Normalize(r)
	}
	kept, removed := Deduplicate(pubs)
	Sort(kept)
	return Result{
		Items:             kept,
		Extracted:         len(raw),
		DuplicatesRemoved: removed,
	}
}
