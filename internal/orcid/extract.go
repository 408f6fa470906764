// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orcid

import (
	"strings"

	"github.com/pdiddy/pubsync/internal/publications"
	"github.com/pdiddy/pubsync/pkg/types"
)

// doiResolverBase prefixes bare DOIs that carry no URL of their own.
const doiResolverBase = "https://doi.org/"

// Extract flattens every work summary in every group into a RawRecord, in
// source order. Missing containers yield empty fields, never errors.
func Extract(works *WorksResponse) []types.RawRecord {
	if works == nil {
		return nil
	}
	var records []types.RawRecord
	for _, g := range works.Groups {
		if g == nil {
			continue
		}
		for _, ws := range g.Summaries {
			if ws == nil {
				continue
			}
			doi, link := SelectLink(ws.Identifiers())
			records = append(records, types.RawRecord{
				Title: ws.TitleText(),
				Year:  ws.YearText(),
				Type:  ws.TypeText(),
				DOI:   doi,
				URL:   link,
			})
		}
	}
	return records
}

// SelectLink scans ids once. The first identifier of type "doi" with a
// non-empty value ends the scan and yields that DOI plus its own URL, or a
// doi.org link when it has none. Until then the first non-empty URL of any
// identifier is held as the fallback link, returned with an empty DOI if no
// DOI turns up. When several DOIs are present the first one wins.
func SelectLink(ids []*ExternalID) (doi, link string) {
	for _, ext := range ids {
		if ext == nil {
			continue
		}
		kind := strings.ToLower(string(ext.Type))
		value := publications.CleanText(string(ext.Value))
		u := ext.URL.String()

		if kind == "doi" && value != "" {
			if u == "" {
				u = doiResolverBase + value
			}
			return value, u
		}
		if u != "" && link == "" {
			link = u
		}
	}
	return "", link
}
