// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubsync/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML form, consumable by Pandoc
// and reference managers.
type CSLItem struct {
	ID     string   `yaml:"id"`
	Type   string   `yaml:"type"`
	Title  string   `yaml:"title"`
	Issued *CSLDate `yaml:"issued,omitempty"`
	DOI    string   `yaml:"DOI,omitempty"`
	URL    string   `yaml:"URL,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps ORCID work types onto CSL item types.
var cslTypes = map[string]string{
	"journal-article":     "article-journal",
	"conference-paper":    "paper-conference",
	"conference-abstract": "paper-conference",
	"conference-poster":   "paper-conference",
	"book":                "book",
	"edited-book":         "book",
	"book-chapter":        "chapter",
	"dissertation-thesis": "thesis",
	"dissertation":        "thesis",
	"preprint":            "article",
	"working-paper":       "article",
	"report":              "report",
	"data-set":            "dataset",
	"software":            "software",
	"magazine-article":    "article-magazine",
	"newspaper-article":   "article-newspaper",
	"website":             "webpage",
}

// FormatCSL writes the snapshot items as a CSL-YAML list to w.
func FormatCSL(snap types.Snapshot, w io.Writer) error {
	items := make([]CSLItem, len(snap.Items))
	used := make(map[string]bool, len(snap.Items))
	for i, p := range snap.Items {
		items[i] = toCSLItem(p)
		// Citation keys must be unique within a bibliography.
		key := items[i].ID
		for n := 2; used[key]; n++ {
			key = fmt.Sprintf("%s-%d", items[i].ID, n)
		}
		used[key] = true
		items[i].ID = key
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(p types.Publication) CSLItem {
	item := CSLItem{
		ID:    citationKey(p),
		Type:  cslType(p.Type),
		Title: p.Title,
		DOI:   p.DOI,
		URL:   p.URL,
	}
	if p.Year != nil {
		item.Issued = &CSLDate{DateParts: [][]int{{*p.Year}}}
	}
	return item
}

func cslType(orcidType string) string {
	if t, ok := cslTypes[orcidType]; ok {
		return t
	}
	return "article"
}

// citationKey derives a stable key: the DOI when present, otherwise the
// first title words joined with the year, e.g. "a-study-on-x-2020".
func citationKey(p types.Publication) string {
	if p.DOI != "" {
		return strings.ToLower(p.DOI)
	}
	words := strings.FieldsFunc(strings.ToLower(p.Title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) > 4 {
		words = words[:4]
	}
	key := strings.Join(words, "-")
	if key == "" {
		key = "untitled"
	}
	if p.Year != nil {
		key = fmt.Sprintf("%s-%d", key, *p.Year)
	}
	return key
}
