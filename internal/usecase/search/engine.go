// Package search filters and ranks in-memory record collections by text.
//
// Every function is pure: inputs are never modified, no state is kept
// between calls, and calls on independent inputs may run concurrently.
package search

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/glassdex/internal/domain/search/match"
	"github.com/kailas-cloud/glassdex/internal/domain/search/options"
	"github.com/kailas-cloud/glassdex/internal/domain/search/relevance"
	"github.com/kailas-cloud/glassdex/internal/domain/search/result"
	"github.com/kailas-cloud/glassdex/internal/domain/search/text"
)

// Filter returns the records matching query under opts, in input order.
// A blank query returns records unchanged.
//
// Partial and exact modes match when any fragment contains the query.
// Fuzzy mode matches when the whole fragment is within the tolerance of the
// whole query; case is folded before the distance is computed unless the
// options are case sensitive.
func Filter[T text.Searchable](records []T, query string, opts options.Options) []T {
	m := match.New(query, opts)
	if m.Empty() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if m.Any(r) {
			out = append(out, r)
		}
	}
	return out
}

// FuzzyFilter is Filter with case-insensitive fuzzy matching at tolerance.
// A negative tolerance is clamped to zero.
func FuzzyFilter[T text.Searchable](records []T, query string, tolerance int) []T {
	return Filter(records, query, options.Default().WithFuzzyTolerance(tolerance))
}

// FilterWithMultipleTerms returns records in which every term is found using
// the default partial rule. Blank terms are ignored; no terms returns records
// unchanged.
func FilterWithMultipleTerms[T text.Searchable](records []T, terms []string) []T {
	matchers := make([]*match.Matcher, 0, len(terms))
	for _, term := range terms {
		if m := match.New(term, options.Default()); !m.Empty() {
			matchers = append(matchers, m)
		}
	}
	if len(matchers) == 0 {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		fragments := text.Project(r)
		if matchesAll(fragments, matchers) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(fragments []text.Fragment, matchers []*match.Matcher) bool {
	for _, m := range matchers {
		found := false
		for _, fr := range fragments {
			if _, ok := m.Fragment(fr); ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SplitTerms breaks a free-text query into whitespace-separated terms.
func SplitTerms(query string) []string {
	return strings.Fields(query)
}

// WeightedSearch ranks records matching query with the default options.
// fieldWeights maps matched fragment text to a positive multiplier; nil means
// every fragment weighs 1.
func WeightedSearch[T text.Searchable](records []T, query string, fieldWeights map[string]float64) []result.Weighted[T] {
	return WeightedSearchWithOptions(records, query, options.Default(), fieldWeights)
}

// WeightedSearchWithOptions ranks records matching query under opts.
// Results are ordered by relevance descending; equal scores keep input order.
// Non-matching records are absent. A blank query returns every record with
// zero relevance in input order.
func WeightedSearchWithOptions[T text.Searchable](
	records []T, query string, opts options.Options, fieldWeights map[string]float64,
) []result.Weighted[T] {
	m := match.New(query, opts)
	if m.Empty() {
		out := make([]result.Weighted[T], len(records))
		for i, r := range records {
			out[i] = result.New(r, 0, nil)
		}
		return out
	}

	scorer := relevance.New(fieldWeights, opts.CaseSensitive())
	out := make([]result.Weighted[T], 0, len(records))
	for _, r := range records {
		hits := m.Hits(r)
		if len(hits) == 0 {
			continue
		}
		var hl []result.Highlight
		if opts.HighlightMatches() {
			hl = result.HighlightsFromHits(hits)
		}
		out = append(out, result.New(r, scorer.Score(hits), hl))
	}

	return SortByRelevance(out)
}

// SortByRelevance orders ws by relevance descending in place and returns it.
// Equal scores keep their relative order.
func SortByRelevance[T any](ws []result.Weighted[T]) []result.Weighted[T] {
	slices.SortStableFunc(ws, func(a, b result.Weighted[T]) int {
		switch {
		case a.Relevance() > b.Relevance():
			return -1
		case a.Relevance() < b.Relevance():
			return 1
		default:
			return 0
		}
	})
	return ws
}
