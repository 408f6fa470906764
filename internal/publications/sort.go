// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publications

import (
	"sort"
	"strings"

	"github.com/pdiddy/pubsync/pkg/types"
)

// Less orders dated publications before undated ones, newer years first,
// and breaks ties by case-insensitive title. Remaining ties fall through
// type, DOI, URL, and exact title so that the order is total and does not
// depend on input order.
func Less(a, b types.Publication) bool {
	switch {
	case a.Year != nil && b.Year == nil:
		return true
	case a.Year == nil && b.Year != nil:
		return false
	case a.Year != nil && *a.Year != *b.Year:
		return *a.Year > *b.Year
	}
	if at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title); at != bt {
		return at < bt
	}
	if at, bt := strings.ToLower(a.Type), strings.ToLower(b.Type); at != bt {
		return at < bt
	}
	if a.DOI != b.DOI {
		return a.DOI < b.DOI
	}
	if a.URL != b.URL {
		return a.URL < b.URL
	}
	return a.Title < b.Title
}

// Sort orders pubs in place using Less. Equal elements keep their
// relative order.
func Sort(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return Less(pubs[i], pubs[j])
	})
}
