// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import (
	"bytes"
	"encoding/json"
)

// Registry JSON structures for the /works endpoint. Every nested container
// is a pointer or slice and every accessor is nil-safe, so a missing or null
// key at any depth reads as the empty value instead of failing the decode.

// WorksResponse is the top-level /works document.
type WorksResponse struct {
	Groups []*WorkGroup `json:"group"`
}

// WorkGroup bundles summaries the registry considers the same work.
type WorkGroup struct {
	Summaries []*WorkSummary `json:"work-summary"`
}

// WorkSummary is one bibliographic entry.
type WorkSummary struct {
	Title           *TitleContainer  `json:"title"`
	PublicationDate *PublicationDate `json:"publication-date"`
	Type            FlexString       `json:"type"`
	ExternalIDs     *ExternalIDs     `json:"external-ids"`
}

// TitleContainer wraps the title value.
type TitleContainer struct {
	Title *ValueField `json:"title"`
}

// PublicationDate holds a possibly partial date.
type PublicationDate struct {
	Year  *ValueField `json:"year"`
	Month *ValueField `json:"month"`
	Day   *ValueField `json:"day"`
}

// ExternalIDs wraps the external identifier list.
type ExternalIDs struct {
	IDs []*ExternalID `json:"external-id"`
}

// ExternalID is a typed identifier attached to a work.
type ExternalID struct {
	Type  FlexString  `json:"external-id-type"`
	Value FlexString  `json:"external-id-value"`
	URL   *ValueField `json:"external-id-url"`
}

// ValueField is the registry's {"value": ...} wrapper.
type ValueField struct {
	Value FlexString `json:"value"`
}

// String returns the wrapped value, or "" when v is nil.
func (v *ValueField) String() string {
	if v == nil {
		return ""
	}
	return string(v.Value)
}

// FlexString decodes a JSON string or number as text. null, booleans,
// objects, and arrays decode to "" without error.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*f = FlexString(data)
	default:
		*f = ""
	}
	return nil
}

// TitleText returns the summary title value.
func (s *WorkSummary) TitleText() string {
	if s == nil || s.Title == nil {
		return ""
	}
	return s.Title.Title.String()
}

// YearText returns the raw publication year value.
func (s *WorkSummary) YearText() string {
	if s == nil || s.PublicationDate == nil {
		return ""
	}
	return s.PublicationDate.Year.String()
}

// TypeText returns the work type.
func (s *WorkSummary) TypeText() string {
	if s == nil {
		return ""
	}
	return string(s.Type)
}

// Identifiers returns the external identifier list, possibly empty.
func (s *WorkSummary) Identifiers() []*ExternalID {
	if s == nil || s.ExternalIDs == nil {
		return nil
	}
	return s.ExternalIDs.IDs
}
