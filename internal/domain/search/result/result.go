package result

import "github.com/kailas-cloud/glassdex/internal/domain/search/match"

// Highlight marks a matched span inside one fragment of a record.
type Highlight struct {
	// Position is the declared field index of the fragment.
	Position int
	// Start and End are rune offsets into the folded fragment.
	Start, End int
}

// Weighted is a single ranked hit.
type Weighted[T any] struct {
	record     T
	relevance  float64
	highlights []Highlight
}

// New creates a weighted result. Negative relevance is clamped to zero.
func New[T any](record T, relevance float64, highlights []Highlight) Weighted[T] {
	if relevance < 0 {
		relevance = 0
	}
	return Weighted[T]{record: record, relevance: relevance, highlights: highlights}
}

// Record returns the matched record.
func (w Weighted[T]) Record() T { return w.record }

// Relevance returns the relevance score. Only its ordering is meaningful.
func (w Weighted[T]) Relevance() float64 { return w.relevance }

// Highlights returns the matched spans, or nil when highlighting was off.
func (w Weighted[T]) Highlights() []Highlight { return w.highlights }

// HighlightsFromHits converts match hits into highlight spans.
func HighlightsFromHits(hits []match.Hit) []Highlight {
	if len(hits) == 0 {
		return nil
	}
	out := make([]Highlight, len(hits))
	for i, h := range hits {
		out[i] = Highlight{Position: h.Position, Start: h.Start, End: h.End}
	}
	return out
}

// Records strips scores, keeping order.
func Records[T any](ws []Weighted[T]) []T {
	out := make([]T, len(ws))
	for i, w := range ws {
		out[i] = w.record
	}
	return out
}
