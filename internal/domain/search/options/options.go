package options

import "github.com/kailas-cloud/glassdex/internal/domain/search/mode"

// DefaultFuzzyTolerance is the edit distance used by the Fuzzy preset.
const DefaultFuzzyTolerance = 2

// Options configures a single search call. The zero value equals Default().
type Options struct {
	caseSensitive    bool
	exactMatch       bool
	fuzzyTolerance   *int
	highlightMatches bool
}

// New creates search options. A nil tolerance disables fuzzy matching;
// a negative tolerance is clamped to zero.
func New(caseSensitive, exactMatch bool, fuzzyTolerance *int, highlightMatches bool) Options {
	o := Options{
		caseSensitive:    caseSensitive,
		exactMatch:       exactMatch,
		highlightMatches: highlightMatches,
	}
	if fuzzyTolerance != nil {
		o = o.WithFuzzyTolerance(*fuzzyTolerance)
	}
	return o
}

// Default is case-insensitive partial matching without fuzziness.
func Default() Options { return Options{} }

// Exact is case-insensitive matching that requires the query as an exact substring.
func Exact() Options { return Options{exactMatch: true} }

// Fuzzy is case-insensitive whole-field matching within DefaultFuzzyTolerance edits.
func Fuzzy() Options { return Default().WithFuzzyTolerance(DefaultFuzzyTolerance) }

// ForMode returns the preset for m. Unknown modes fall back to Default.
func ForMode(m mode.Mode) Options {
	switch m {
	case mode.Exact:
		return Exact()
	case mode.Fuzzy:
		return Fuzzy()
	default:
		return Default()
	}
}

// WithFuzzyTolerance returns a copy with fuzzy matching at the given tolerance.
// Negative tolerances are clamped to zero.
func (o Options) WithFuzzyTolerance(n int) Options {
	if n < 0 {
		n = 0
	}
	o.fuzzyTolerance = &n
	return o
}

// WithCaseSensitive returns a copy with the case rule set.
func (o Options) WithCaseSensitive(v bool) Options {
	o.caseSensitive = v
	return o
}

// WithHighlight returns a copy that records match spans.
func (o Options) WithHighlight(v bool) Options {
	o.highlightMatches = v
	return o
}

// CaseSensitive reports whether comparisons respect case.
func (o Options) CaseSensitive() bool { return o.caseSensitive }

// ExactMatch reports whether the exact preset was requested.
func (o Options) ExactMatch() bool { return o.exactMatch }

// FuzzyTolerance returns the edit distance limit and whether fuzzy matching is on.
func (o Options) FuzzyTolerance() (int, bool) {
	if o.fuzzyTolerance == nil {
		return 0, false
	}
	return *o.fuzzyTolerance, true
}

// HighlightMatches reports whether match spans should be recorded.
func (o Options) HighlightMatches() bool { return o.highlightMatches }

// Mode returns the effective matching strategy. Fuzzy wins over exact.
func (o Options) Mode() mode.Mode {
	if o.fuzzyTolerance != nil {
		return mode.Fuzzy
	}
	if o.exactMatch {
		return mode.Exact
	}
	return mode.Partial
}
