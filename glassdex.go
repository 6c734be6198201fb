// Package glassdex exposes the catalog query core for use on any record type:
// substring, exact and fuzzy text filtering, weighted relevance search,
// facet filters and stable multi-key sorting.
//
// Records opt in by implementing the capabilities the operation needs.
// Searchable is enough for text search:
//
//	type rod struct{ Name, Color string }
//
//	func (r rod) SearchableText() []string { return []string{r.Name, r.Color} }
//
//	hits := glassdex.WeightedSearch(rods, "cobalt", nil)
//
// For a ready-made catalog service with manufacturer enablement and
// persistence see pkg/sdk.
package glassdex

import (
	"github.com/kailas-cloud/glassdex/internal/domain/search/distance"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/options"
	"github.com/kailas-cloud/glassdex/internal/domain/search/order"
	"github.com/kailas-cloud/glassdex/internal/domain/search/result"
	"github.com/kailas-cloud/glassdex/internal/domain/search/text"
	"github.com/kailas-cloud/glassdex/internal/usecase/search"
)

type (
	// Searchable records expose ordered text fields; earlier fields weigh more.
	Searchable = text.Searchable
	// Options configure matching. Build with DefaultOptions, ExactOptions or FuzzyOptions.
	Options = options.Options
	// Weighted is a search hit with its relevance score and highlights.
	Weighted[T any] = result.Weighted[T]
	// Highlight marks a matched span inside one field.
	Highlight = result.Highlight

	// Set is a hash set used by facet filters.
	Set[T comparable] = filter.Set[T]
	// Range bounds a numeric facet.
	Range = filter.Range
	// Thresholds split quantities into stock bands.
	Thresholds = filter.Thresholds
	// Bands selects stock bands.
	Bands = filter.Bands
	// ClassLookup resolves compatibility classes by manufacturer.
	ClassLookup = filter.ClassLookup

	// Sortable records can be ordered by any SortKey.
	Sortable = order.Sortable
	// SortKey names a sort field.
	SortKey = order.Key
	// SortOptions tune Sort.
	SortOptions = order.Options
)

// Sort keys.
const (
	SortByName         = order.Name
	SortByCode         = order.Code
	SortByManufacturer = order.Manufacturer
	SortByQuantity     = order.Quantity
	SortByType         = order.Type
)

// DefaultOptions is case-insensitive partial matching.
func DefaultOptions() Options { return options.Default() }

// ExactOptions is case-insensitive exact-substring matching.
func ExactOptions() Options { return options.Exact() }

// FuzzyOptions matches whole fields within the default edit distance.
func FuzzyOptions() Options { return options.Fuzzy() }

// Levenshtein returns the unit-cost edit distance between a and b in runes.
func Levenshtein(a, b string) int { return distance.Levenshtein(a, b) }

// Filter keeps records matching query. A blank query returns records unchanged.
func Filter[T Searchable](records []T, query string, opts Options) []T {
	return search.Filter(records, query, opts)
}

// FuzzyFilter keeps records with a field within tolerance edits of query.
func FuzzyFilter[T Searchable](records []T, query string, tolerance int) []T {
	return search.FuzzyFilter(records, query, tolerance)
}

// FilterAll keeps records matching every term.
func FilterAll[T Searchable](records []T, terms []string) []T {
	return search.FilterWithMultipleTerms(records, terms)
}

// WeightedSearch ranks records matching query by relevance.
func WeightedSearch[T Searchable](records []T, query string, fieldWeights map[string]float64) []Weighted[T] {
	return search.WeightedSearch(records, query, fieldWeights)
}

// WeightedSearchWithOptions is WeightedSearch with explicit matching options.
func WeightedSearchWithOptions[T Searchable](
	records []T, query string, opts Options, fieldWeights map[string]float64,
) []Weighted[T] {
	return search.WeightedSearchWithOptions(records, query, opts, fieldWeights)
}

// NewSet builds a Set from values.
func NewSet[T comparable](values ...T) Set[T] { return filter.NewSet(values...) }

// NewRange validates numeric bounds. Pass nil for an open side.
func NewRange(gt, gte, lt, lte *float64) (Range, error) { return filter.NewRange(gt, gte, lt, lte) }

// Sort returns a stably ordered copy of records.
func Sort[T Sortable](records []T, key SortKey, opts SortOptions) []T {
	return order.Sort(records, key, opts)
}
