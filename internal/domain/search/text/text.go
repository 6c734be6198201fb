// Package text projects records onto their searchable surface and normalizes
// the fragments for comparison.
package text

import (
	"strings"

	"golang.org/x/text/cases"
)

// Searchable is implemented by any record that can be searched.
// The order of the returned fragments is significant: earlier fields weigh
// more when results are ranked.
type Searchable interface {
	SearchableText() []string
}

// Fragment is one non-blank piece of a record's searchable surface.
type Fragment struct {
	// Position is the declared index of the field, counting blank fields too.
	Position int
	// Text is the trimmed field value.
	Text string
}

// Project returns the trimmed, non-blank fragments of r in declared order.
func Project(r Searchable) []Fragment {
	raw := r.SearchableText()
	out := make([]Fragment, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, Fragment{Position: i, Text: s})
	}
	return out
}

// Fold trims s and, unless caseSensitive is set, applies Unicode simple case
// folding. Internal whitespace is preserved.
func Fold(s string, caseSensitive bool) string {
	s = strings.TrimSpace(s)
	if caseSensitive || s == "" {
		return s
	}
	// Casers carry state and are not safe for concurrent use.
	return cases.Fold().String(s)
}

// Folder folds many strings with a single caser. Not safe for concurrent use.
type Folder struct {
	caseSensitive bool
	caser         cases.Caser
}

// NewFolder returns a Folder for one search call.
func NewFolder(caseSensitive bool) *Folder {
	f := &Folder{caseSensitive: caseSensitive}
	if !caseSensitive {
		f.caser = cases.Fold()
	}
	return f
}

// Fold trims s and folds it unless the folder is case sensitive.
func (f *Folder) Fold(s string) string {
	s = strings.TrimSpace(s)
	if f.caseSensitive || s == "" {
		return s
	}
	return f.caser.String(s)
}
