package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/match"
	"github.com/kailas-cloud/glassdex/internal/domain/search/mode"
	"github.com/kailas-cloud/glassdex/internal/domain/search/order"
	"github.com/kailas-cloud/glassdex/internal/domain/search/request"
	"github.com/kailas-cloud/glassdex/internal/domain/search/result"
	"github.com/kailas-cloud/glassdex/internal/logger"
	"github.com/kailas-cloud/glassdex/internal/metrics"
	"github.com/kailas-cloud/glassdex/internal/usecase/search"
)

// Page is one window of query results.
type Page struct {
	Hits   []result.Weighted[item.Item]
	Total  int
	Offset int
	Limit  int
}

// Query runs the facet filters, the text search and then either relevance
// ranking or the requested sort, and returns one page.
func (s *Service) Query(ctx context.Context, req request.Request) (Page, error) {
	start := time.Now()
	m := req.Mode()

	st := s.snapshot.Load()
	if st == nil {
		metrics.QueriesTotal.WithLabelValues(string(m), "unavailable").Inc()
		return Page{}, domain.ErrCatalogUnavailable
	}

	candidates := s.applyFacets(st.catalog.Items(), st.classes, req)
	if terms := req.Terms(); len(terms) > 0 {
		candidates = search.FilterWithMultipleTerms(candidates, terms)
	}

	var (
		ranked []result.Weighted[item.Item]
		err    error
	)
	if req.Ranked() && req.Query() != "" {
		ranked, err = s.rank(ctx, candidates, req)
	} else {
		ranked, err = s.filterAndSort(ctx, candidates, req)
	}
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(string(m), "canceled").Inc()
		return Page{}, fmt.Errorf("query: %w", err)
	}

	page := paginate(ranked, req.Offset(), req.Limit())
	if req.Options().HighlightMatches() && !req.Ranked() && req.Query() != "" {
		page.Hits = highlight(page.Hits, req)
	}

	elapsed := time.Since(start)
	metrics.QueriesTotal.WithLabelValues(string(m), "ok").Inc()
	metrics.QueryDuration.WithLabelValues(string(m)).Observe(elapsed.Seconds())
	metrics.QueryResults.WithLabelValues(string(m)).Observe(float64(page.Total))

	logger.FromContext(ctx).Debug("Catalog query",
		zap.String("mode", string(m)),
		zap.Int("candidates", len(candidates)),
		zap.Int("total", page.Total),
		zap.Duration("elapsed", elapsed),
	)
	return page, nil
}

// applyFacets narrows items by enablement and the request's facets. classes
// holds every class the snapshot's items resolve to.
func (s *Service) applyFacets(items []item.Item, classes filter.Set[string], req request.Request) []item.Item {
	return filter.Apply(items,
		filter.ManufacturerFunc[item.Item](s.enablement.Enabled()),
		filter.TagsFunc[item.Item](req.Tags()),
		filter.TypesFunc[item.Item](req.Types()),
		filter.ClassificationFunc[item.Item](req.Classes(), classes, s.registry),
		filter.StockFunc[item.Item](req.Stock(), s.cfg.Thresholds),
		func(in []item.Item) []item.Item { return filter.ByQuantityRange(in, req.Quantity()) },
	)
}

func (s *Service) filterAndSort(ctx context.Context, items []item.Item, req request.Request) ([]result.Weighted[item.Item], error) {
	matched := items
	if req.Query() != "" {
		var err error
		matched, err = scan(ctx, s, items, req.Mode(), func(chunk []item.Item) []item.Item {
			return search.Filter(chunk, req.Query(), req.Options())
		})
		if err != nil {
			return nil, err
		}
	}
	sorted := order.Sort(matched, req.SortKey(), order.Options{Direction: req.Direction(), Lookup: s.registry})

	out := make([]result.Weighted[item.Item], len(sorted))
	for i, it := range sorted {
		out[i] = result.New(it, 0, nil)
	}
	return out, nil
}

func (s *Service) rank(ctx context.Context, items []item.Item, req request.Request) ([]result.Weighted[item.Item], error) {
	ranked, err := scan(ctx, s, items, req.Mode(), func(chunk []item.Item) []result.Weighted[item.Item] {
		return search.WeightedSearchWithOptions(chunk, req.Query(), req.Options(), req.FieldWeights())
	})
	if err != nil {
		return nil, err
	}
	// Chunks are ranked independently; a stable re-sort of their in-order
	// concatenation equals ranking the whole input at once.
	return search.SortByRelevance(ranked), nil
}

func paginate(all []result.Weighted[item.Item], offset, limit int) Page {
	p := Page{Total: len(all), Offset: offset, Limit: limit}
	if offset >= len(all) {
		p.Hits = []result.Weighted[item.Item]{}
		return p
	}
	end := min(offset+limit, len(all))
	p.Hits = all[offset:end]
	return p
}

func highlight(hits []result.Weighted[item.Item], req request.Request) []result.Weighted[item.Item] {
	m := match.New(req.Query(), req.Options())
	out := make([]result.Weighted[item.Item], len(hits))
	for i, h := range hits {
		out[i] = result.New(h.Record(), h.Relevance(), result.HighlightsFromHits(m.Hits(h.Record())))
	}
	return out
}

// parallelModes lists modes whose per-item cost justifies chunked scans.
var parallelModes = map[mode.Mode]bool{mode.Fuzzy: true}
