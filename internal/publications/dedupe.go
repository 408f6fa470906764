// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import (
	"strings"

	"github.com/pdiddy/pubsync/pkg/types"
)

// identity is the deduplication key. hasYear distinguishes a nil year
// from year 0.
type identity struct {
	title   string
	hasYear bool
	year    int
	kind    string
}

func identityOf(p types.Publication) identity {
	k := identity{
		title: strings.ToLower(p.Title),
		kind:  strings.ToLower(p.Type),
	}
	if p.Year != nil {
		k.hasYear = true
		k.year = *p.Year
	}
	return k
}

// Deduplicate keeps the first publication for each (lower-cased title,
// year, lower-cased type) and drops the rest, preserving first-appearance
// order. It returns the kept records and the number removed.
func Deduplicate(pubs []types.Publication) ([]types.Publication, int) {
	seen := make(map[identity]struct{}, len(pubs))
	kept := make([]types.Publication, 0, len(pubs))
	for _, p := range pubs {
		k := identityOf(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, p)
	}
	return kept, len(pubs) - len(kept)
}
