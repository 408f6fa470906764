// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publications turns raw registry records into the deduplicated,
// deterministically ordered publication list written to the snapshot.
package publications

import (
	"strconv"
	"strings"

	"github.com/pdiddy/pubsync/pkg/types"
)

// CleanText collapses every whitespace run (spaces, tabs, newlines) into a
// single space and trims the ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseYear accepts raw only when it is non-empty and made entirely of
// ASCII digits. Anything else (partial dates, "202a", "2020.0", and
// non-ASCII digits such as fullwidth "２０２０") is nil.
func ParseYear(raw string) *int {
	if raw == "" {
		return nil
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return nil
		}
	}
	y, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &y
}

// Normalize converts a raw record into a Publication.
func Normalize(r types.RawRecord) types.Publication {
	title := CleanText(r.Title)
	if title == "" {
		title = types.UntitledPlaceholder
	}
	return types.Publication{
		Title: title,
		Year:  ParseYear(r.Year),
		Type:  strings.ToLower(CleanText(r.Type)),
		DOI:   r.DOI,
		URL:   r.URL,
	}
}
