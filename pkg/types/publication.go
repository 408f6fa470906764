// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubsync pipeline.
// Implements: fetch/extract (RawRecord), normalize/dedupe/sort (Publication),
// and persist (Snapshot).
package types

// UntitledPlaceholder replaces titles that are empty after cleaning.
const UntitledPlaceholder = "Untitled"

// RawRecord is one work summary flattened out of the registry response,
// before any normalization. Fields hold the source text as found; empty
// strings mean the field was absent.
type RawRecord struct {
	// Title is the work title value.
	Title string

	// Year is the raw publication-date year value (may be partial or garbled).
	Year string

	// Type is the registry work type (e.g. "journal-article").
	Type string

	// DOI is the selected DOI value, empty when no DOI identifier was found.
	DOI string

	// URL is the selected external link: the DOI link when a DOI was found,
	// otherwise the first non-empty external-id URL.
	URL string
}

// Publication is a normalized publication record as written to the snapshot.
type Publication struct {
	// Title is the cleaned display title; never empty.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, nil when absent or non-numeric.
	Year *int `json:"year" yaml:"year"`

	// Type is the lower-cased work type, possibly empty.
	Type string `json:"type" yaml:"type"`

	// DOI is the DOI string, empty if none was found.
	DOI string `json:"doi" yaml:"doi"`

	// URL is a single representative link, empty if none was found.
	URL string `json:"url" yaml:"url"`
}

// Snapshot is the envelope written to the output file.
type Snapshot struct {
	// ORCID is the researcher identifier the snapshot was fetched for.
	ORCID string `json:"orcid" yaml:"orcid"`

	// UpdatedBy is a fixed provenance tag (e.g. "github-actions").
	UpdatedBy string `json:"updated_by" yaml:"updated_by"`

	// Count is len(Items).
	Count int `json:"count" yaml:"count"`

	// Items holds the deduplicated, sorted publications.
	Items []Publication `json:"items" yaml:"items"`
}
