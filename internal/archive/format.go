// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubsync/pkg/types"
)

// FormatTable writes publications as a human-readable table to w.
func FormatTable(pubs []types.Publication, w io.Writer) {
	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-4s  %-60s  %-18s  %s\n", "#", "Year", "Title", "Type", "DOI")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, p := range pubs {
		year := ""
		if p.Year != nil {
			year = fmt.Sprintf("%d", *p.Year)
		}
		fmt.Fprintf(w, "%-4d  %-4s  %-60s  %-18s  %s\n",
			i+1, year, truncate(p.Title, 60), truncate(p.Type, 18), p.DOI)
	}
	fmt.Fprintf(w, "\n%d publications\n", len(pubs))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
