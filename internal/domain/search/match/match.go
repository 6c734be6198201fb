// Package match decides whether a query matches a record's fragments.
package match

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/glassdex/internal/domain/search/distance"
	"github.com/kailas-cloud/glassdex/internal/domain/search/options"
	"github.com/kailas-cloud/glassdex/internal/domain/search/text"
)

// Kind is the quality of a fragment match, ordered from worst to best.
type Kind int

// Match kinds.
const (
	None Kind = iota
	// Approximate is a whole-field match within the fuzzy tolerance.
	Approximate
	// Substring means the fragment contains the query.
	Substring
	// Full means the whole fragment equals the query.
	Full
)

func (k Kind) String() string {
	switch k {
	case Approximate:
		return "approximate"
	case Substring:
		return "substring"
	case Full:
		return "full"
	default:
		return "none"
	}
}

// Hit is one matched fragment.
type Hit struct {
	Kind     Kind
	Position int
	Text     string
	// Start and End are rune offsets of the match in the folded fragment.
	// Approximate hits span the whole fragment.
	Start, End int
}

// Matcher applies one query under one set of options.
// It caches the folded query and is not safe for concurrent use.
type Matcher struct {
	query     string
	queryLen  int
	folder    *text.Folder
	fuzzy     bool
	tolerance int
}

// New prepares a matcher. The query is trimmed; internal whitespace is kept.
func New(query string, opts options.Options) *Matcher {
	f := text.NewFolder(opts.CaseSensitive())
	q := f.Fold(query)
	tol, fuzzy := opts.FuzzyTolerance()
	return &Matcher{
		query:     q,
		queryLen:  utf8.RuneCountInString(q),
		folder:    f,
		fuzzy:     fuzzy,
		tolerance: tol,
	}
}

// Empty reports whether the trimmed query is blank.
func (m *Matcher) Empty() bool { return m.query == "" }

// Query returns the normalized query.
func (m *Matcher) Query() string { return m.query }

// Fragment tests a single fragment.
func (m *Matcher) Fragment(fr text.Fragment) (Hit, bool) {
	if m.Empty() {
		return Hit{}, false
	}
	folded := m.folder.Fold(fr.Text)
	if folded == "" {
		return Hit{}, false
	}
	hit := Hit{Position: fr.Position, Text: fr.Text}

	if m.fuzzy {
		if !distance.Within(m.query, folded, m.tolerance) {
			return Hit{}, false
		}
		hit.Kind = Approximate
		if folded == m.query {
			hit.Kind = Full
		}
		hit.End = utf8.RuneCountInString(folded)
		return hit, true
	}

	if folded == m.query {
		hit.Kind = Full
		hit.End = m.queryLen
		return hit, true
	}
	idx := strings.Index(folded, m.query)
	if idx < 0 {
		return Hit{}, false
	}
	hit.Kind = Substring
	hit.Start = utf8.RuneCountInString(folded[:idx])
	hit.End = hit.Start + m.queryLen
	return hit, true
}

// Any reports whether any fragment of r matches. It stops at the first hit.
func (m *Matcher) Any(r text.Searchable) bool {
	for _, fr := range text.Project(r) {
		if _, ok := m.Fragment(fr); ok {
			return true
		}
	}
	return false
}

// Hits returns every matched fragment of r in declared order.
func (m *Matcher) Hits(r text.Searchable) []Hit {
	var hits []Hit
	for _, fr := range text.Project(r) {
		if h, ok := m.Fragment(fr); ok {
			hits = append(hits, h)
		}
	}
	return hits
}
