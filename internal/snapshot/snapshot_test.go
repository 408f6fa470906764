// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubsync/pkg/types"
)

func year(y int) *int { return &y }

func sampleItems() []types.Publication {
	return []types.Publication{
		{Title: "A Study on X", Year: year(2020), Type: "journal-article", DOI: "10.1/XYZ", URL: "https://doi.org/10.1/XYZ"},
		{Title: "Untitled", Year: nil, Type: "other", URL: "https://example.test/x"},
	}
}

func TestNew(t *testing.T) {
	snap := New("0009-0001-9788-1259", DefaultUpdatedBy, sampleItems())
	assert.Equal(t, 2, snap.Count)
	assert.Equal(t, "github-actions", snap.UpdatedBy)

	empty := New("0009-0001-9788-1259", DefaultUpdatedBy, nil)
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Items)
}

func TestMarshal_Layout(t *testing.T) {
	data, err := Marshal(New("0009-0001-9788-1259", "github-actions", sampleItems()))
	require.NoError(t, err)

	want := `{
  "orcid": "0009-0001-9788-1259",
  "updated_by": "github-actions",
  "count": 2,
  "items": [
    {
      "title": "A Study on X",
      "year": 2020,
      "type": "journal-article",
      "doi": "10.1/XYZ",
      "url": "https://doi.org/10.1/XYZ"
    },
    {
      "title": "Untitled",
      "year": null,
      "type": "other",
      "doi": "",
      "url": "https://example.test/x"
    }
  ]
}`
	assert.Equal(t, want, string(data))
}

func TestMarshal_EmptyItemsIsList(t *testing.T) {
	data, err := Marshal(New("id", "tag", nil))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"items": []`)
}

func TestWrite_CreatesDirsAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "data", "publications.json")
	snap := New("0009-0001-9788-1259", DefaultUpdatedBy, sampleItems())

	require.NoError(t, Write(path, snap))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
	assert.Equal(t, got.Count, len(got.Items))

	var raw map[string]any
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 2, raw["count"])
	assert.Len(t, raw["items"], 2)
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publications.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644))

	require.NoError(t, Write(path, New("id", "tag", nil)))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.Items)
}

func TestWrite_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Write(filepath.Join(blocker, "publications.json"), New("id", "tag", nil))
	assert.Error(t, err)
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = Read(bad)
	assert.Error(t, err)

	mismatch := filepath.Join(dir, "mismatch.json")
	require.NoError(t, os.WriteFile(mismatch, []byte(`{"orcid":"x","updated_by":"y","count":3,"items":[]}`), 0o644))
	_, err = Read(mismatch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count 3")
}

// --- CSL ---

func TestFormatCSL(t *testing.T) {
	items := append(sampleItems(),
		types.Publication{Title: "Untitled", Year: nil, Type: "other"},
		types.Publication{Title: "Preprint: Methods & Results", Year: year(2024), Type: "preprint"},
	)

	var buf bytes.Buffer
	require.NoError(t, FormatCSL(New("id", "tag", items), &buf))

	var got []CSLItem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)

	assert.Equal(t, "10.1/xyz", got[0].ID)
	assert.Equal(t, "article-journal", got[0].Type)
	assert.Equal(t, "10.1/XYZ", got[0].DOI)
	require.NotNil(t, got[0].Issued)
	assert.Equal(t, [][]int{{2020}}, got[0].Issued.DateParts)

	assert.Equal(t, "untitled", got[1].ID)
	assert.Nil(t, got[1].Issued)
	assert.Equal(t, "untitled-2", got[2].ID, "keys are made unique")

	assert.Equal(t, "preprint-methods-results-2024", got[3].ID)
	assert.Equal(t, "article", got[3].Type)
}

func TestFormatCSL_SuffixDoesNotCollideWithNaturalKey(t *testing.T) {
	items := []types.Publication{
		{Title: "Untitled", Type: "other"},
		{Title: "Untitled", Type: "report"},
		{Title: "Untitled 2", Type: "other"},
		{Title: "Untitled", Type: "dataset"},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatCSL(New("id", "tag", items), &buf))

	var got []CSLItem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)

	seen := make(map[string]bool)
	for _, item := range got {
		assert.False(t, seen[item.ID], "duplicate citation key %q", item.ID)
		seen[item.ID] = true
	}
	assert.Equal(t, []string{"untitled", "untitled-2", "untitled-2-2", "untitled-3"},
		[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestCSLType(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"journal-article", "article-journal"},
		{"book-chapter", "chapter"},
		{"data-set", "dataset"},
		{"", "article"},
		{"something-new", "article"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cslType(tt.in))
		})
	}
}
