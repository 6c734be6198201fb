package glassdex

import (
	"fmt"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/mode"
	"github.com/kailas-cloud/glassdex/internal/domain/search/order"
	"github.com/kailas-cloud/glassdex/internal/domain/search/request"
	"github.com/kailas-cloud/glassdex/internal/domain/search/result"
	cataloguc "github.com/kailas-cloud/glassdex/internal/usecase/catalog"
)

func toInternalRequest(q Query) (request.Request, error) {
	p := request.Params{
		Query:         q.Text,
		Terms:         q.Terms,
		Mode:          mode.Mode(q.Mode),
		Tolerance:     q.Tolerance,
		CaseSensitive: q.CaseSensitive,
		Highlight:     q.Highlight,
		FieldWeights:  q.FieldWeights,
		Tags:          q.Tags,
		Types:         q.Types,
		Classes:       q.Classes,
		Stock:         q.Stock,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}

	if q.Sort == SortRelevance {
		p.Ranked = true
	} else {
		p.SortKey = string(q.Sort)
	}
	if q.Descending {
		p.SortDirection = string(order.Descending)
	}

	if q.MinQuantity != nil || q.MaxQuantity != nil {
		r, err := filter.NewRange(nil, q.MinQuantity, nil, q.MaxQuantity)
		if err != nil {
			return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
		}
		p.Quantity = r
	}

	return request.New(p)
}

func fromInternalItem(i item.Item) Item {
	out := Item{
		ID:           i.ID(),
		Manufacturer: i.Manufacturer(),
		Code:         i.Code(),
		Name:         i.Name(),
		Description:  i.Description(),
		Tags:         i.Tags(),
		Synonyms:     i.Synonyms(),
		COE:          i.COE(),
		Type:         i.Type(),
		StockType:    i.StockType(),
		Status:       i.Status(),
		URL:          i.URL(),
		ImageURL:     i.ImageURL(),
		StableID:     i.StableID(),
	}
	if q, ok := i.Quantity(); ok {
		out.Quantity = &q
	}
	return out
}

func fromInternalHit(w result.Weighted[item.Item]) Hit {
	h := Hit{Item: fromInternalItem(w.Record()), Relevance: w.Relevance()}
	if hl := w.Highlights(); len(hl) > 0 {
		h.Highlights = make([]Highlight, len(hl))
		for i, x := range hl {
			h.Highlights[i] = Highlight{Field: x.Position, Start: x.Start, End: x.End}
		}
	}
	return h
}

func fromInternalPage(p cataloguc.Page) Page {
	hits := make([]Hit, len(p.Hits))
	for i, w := range p.Hits {
		hits[i] = fromInternalHit(w)
	}
	return Page{Hits: hits, Total: p.Total, Offset: p.Offset, Limit: p.Limit}
}
