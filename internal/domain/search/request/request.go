// Package request holds the validated form of a catalog query.
package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/mode"
	"github.com/kailas-cloud/glassdex/internal/domain/search/options"
	"github.com/kailas-cloud/glassdex/internal/domain/search/order"
)

// Query parameter limits.
const (
	// MaxQueryLength is the maximum allowed query length in bytes.
	MaxQueryLength = 1024
	MaxTerms       = 16
	MaxTolerance   = 8
	DefaultLimit   = 50
	MaxLimit       = 500
)

// Params are the raw, user-supplied query parameters.
type Params struct {
	Query         string
	Terms         []string
	Mode          mode.Mode
	Tolerance     *int
	CaseSensitive bool
	Highlight     bool
	// Ranked orders results by relevance instead of by SortKey.
	Ranked       bool
	FieldWeights map[string]float64

	Tags    []string
	Types   []string
	Classes []string
	// Stock lists band names; empty means every band.
	Stock    []string
	Quantity filter.Range

	SortKey       string
	SortDirection string

	Limit  int
	Offset int
}

// Request is a validated catalog query.
type Request struct {
	query        string
	terms        []string
	opts         options.Options
	ranked       bool
	fieldWeights map[string]float64

	tags     filter.Set[string]
	types    filter.Set[string]
	classes  filter.Set[string]
	stock    filter.Bands
	quantity filter.Range

	sortKey   order.Key
	direction order.Direction

	limit  int
	offset int
}

// New validates and normalizes query parameters.
// Defaults: mode=partial, sort=name asc, limit=50, every stock band.
// Errors wrap domain.ErrInvalidQuery.
func New(p Params) (Request, error) {
	q := strings.TrimSpace(p.Query)
	if len(q) > MaxQueryLength {
		return Request{}, invalid("query too long (max %d chars)", MaxQueryLength)
	}

	terms := make([]string, 0, len(p.Terms))
	for _, t := range p.Terms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) > MaxTerms {
		return Request{}, invalid("too many terms (max %d)", MaxTerms)
	}

	m := p.Mode
	if m == "" {
		m = mode.Partial
		if p.Tolerance != nil {
			m = mode.Fuzzy
		}
	}
	if !m.IsValid() {
		return Request{}, invalid("invalid search mode: %q", m)
	}
	opts, err := searchOptions(m, p)
	if err != nil {
		return Request{}, err
	}

	stock, err := parseBands(p.Stock)
	if err != nil {
		return Request{}, err
	}

	key, err := order.ParseKey(p.SortKey)
	if err != nil {
		return Request{}, invalid("%v", err)
	}
	dir, err := order.ParseDirection(p.SortDirection)
	if err != nil {
		return Request{}, invalid("%v", err)
	}

	for field, w := range p.FieldWeights {
		if w <= 0 {
			return Request{}, invalid("field weight for %q must be positive", field)
		}
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if p.Offset < 0 {
		return Request{}, invalid("offset must not be negative")
	}

	return Request{
		query:        q,
		terms:        terms,
		opts:         opts,
		ranked:       p.Ranked,
		fieldWeights: p.FieldWeights,
		tags:         filter.NewStringSet(p.Tags...),
		types:        filter.NewStringSet(p.Types...),
		classes:      filter.NewStringSet(p.Classes...),
		stock:        stock,
		quantity:     p.Quantity,
		sortKey:      key,
		direction:    dir,
		limit:        limit,
		offset:       p.Offset,
	}, nil
}

func searchOptions(m mode.Mode, p Params) (options.Options, error) {
	opts := options.ForMode(m).
		WithCaseSensitive(p.CaseSensitive).
		WithHighlight(p.Highlight)
	if m != mode.Fuzzy {
		return opts, nil
	}
	if p.Tolerance != nil {
		if *p.Tolerance > MaxTolerance {
			return options.Options{}, invalid("tolerance too large (max %d)", MaxTolerance)
		}
		opts = opts.WithFuzzyTolerance(*p.Tolerance)
	}
	return opts, nil
}

func parseBands(names []string) (filter.Bands, error) {
	if len(names) == 0 {
		return filter.AllBands(), nil
	}
	var b filter.Bands
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		band, err := filter.ParseBand(n)
		if err != nil {
			return filter.Bands{}, invalid("%v", err)
		}
		switch band {
		case filter.Unavailable:
			b.Unavailable = true
		case filter.Low:
			b.Low = true
		case filter.Sufficient:
			b.Sufficient = true
		}
	}
	return b, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidQuery, fmt.Sprintf(format, args...))
}

// Query returns the trimmed free-text query.
func (r *Request) Query() string { return r.query }

// Terms returns the conjunctive terms.
func (r *Request) Terms() []string { return r.terms }

// Options returns the search options.
func (r *Request) Options() options.Options { return r.opts }

// Mode returns the search mode.
func (r *Request) Mode() mode.Mode { return r.opts.Mode() }

// Ranked reports whether results are ordered by relevance.
func (r *Request) Ranked() bool { return r.ranked }

// FieldWeights returns the per-fragment weight overrides.
func (r *Request) FieldWeights() map[string]float64 { return r.fieldWeights }

// Tags returns the selected tags.
func (r *Request) Tags() filter.Set[string] { return r.tags }

// Types returns the selected item types.
func (r *Request) Types() filter.Set[string] { return r.types }

// Classes returns the selected compatibility classes.
func (r *Request) Classes() filter.Set[string] { return r.classes }

// Stock returns the selected stock bands.
func (r *Request) Stock() filter.Bands { return r.stock }

// Quantity returns the quantity range.
func (r *Request) Quantity() filter.Range { return r.quantity }

// SortKey returns the sort key.
func (r *Request) SortKey() order.Key { return r.sortKey }

// Direction returns the sort direction.
func (r *Request) Direction() order.Direction { return r.direction }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Offset returns the number of results to skip.
func (r *Request) Offset() int { return r.offset }
