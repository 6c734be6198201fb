package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/mode"
	"github.com/kailas-cloud/glassdex/internal/domain/search/request"
)

// sortRelevance is the sort value that switches to relevance ranking.
const sortRelevance = "relevance"

// requestFromQuery maps GET /items query parameters onto a validated request.
//
//	q, term*, mode, tolerance, case_sensitive, highlight,
//	sort (name|code|manufacturer|quantity|type|relevance), order (asc|desc),
//	weight* (text:factor), tag*, type*, coe*, stock*,
//	qty_gt, qty_gte, qty_lt, qty_lte, limit, offset
//
// Repeated parameters also accept comma-separated values.
func requestFromQuery(v url.Values) (request.Request, error) {
	p := request.Params{
		Query:   v.Get("q"),
		Terms:   v["term"],
		Mode:    mode.Mode(strings.ToLower(strings.TrimSpace(v.Get("mode")))),
		Tags:    list(v, "tag"),
		Types:   list(v, "type"),
		Classes: list(v, "coe"),
		Stock:   list(v, "stock"),
	}

	var err error
	if p.Tolerance, err = optInt(v, "tolerance"); err != nil {
		return request.Request{}, err
	}
	if p.CaseSensitive, err = optBool(v, "case_sensitive"); err != nil {
		return request.Request{}, err
	}
	if p.Highlight, err = optBool(v, "highlight"); err != nil {
		return request.Request{}, err
	}

	sortKey := strings.TrimSpace(v.Get("sort"))
	if strings.EqualFold(sortKey, sortRelevance) {
		p.Ranked = true
	} else {
		p.SortKey = sortKey
	}
	p.SortDirection = v.Get("order")

	if p.FieldWeights, err = weights(v["weight"]); err != nil {
		return request.Request{}, err
	}
	if p.Quantity, err = quantityRange(v); err != nil {
		return request.Request{}, err
	}

	if n, err := optInt(v, "limit"); err != nil {
		return request.Request{}, err
	} else if n != nil {
		p.Limit = *n
	}
	if n, err := optInt(v, "offset"); err != nil {
		return request.Request{}, err
	} else if n != nil {
		p.Offset = *n
	}

	return request.New(p)
}

func list(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func optInt(v url.Values, key string) (*int, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, badParam(key, s)
	}
	return &n, nil
}

func optFloat(v url.Values, key string) (*float64, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, badParam(key, s)
	}
	return &f, nil
}

func optBool(v url.Values, key string) (bool, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, badParam(key, s)
	}
	return b, nil
}

// weights parses "text:factor" pairs.
func weights(raw []string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(raw))
	for _, pair := range raw {
		i := strings.LastIndex(pair, ":")
		if i <= 0 {
			return nil, badParam("weight", pair)
		}
		w, err := strconv.ParseFloat(pair[i+1:], 64)
		if err != nil {
			return nil, badParam("weight", pair)
		}
		out[pair[:i]] = w
	}
	return out, nil
}

func quantityRange(v url.Values) (filter.Range, error) {
	var bounds [4]*float64
	for i, key := range []string{"qty_gt", "qty_gte", "qty_lt", "qty_lte"} {
		f, err := optFloat(v, key)
		if err != nil {
			return filter.Range{}, err
		}
		bounds[i] = f
	}
	if bounds == [4]*float64{} {
		return filter.Range{}, nil
	}
	r, err := filter.NewRange(bounds[0], bounds[1], bounds[2], bounds[3])
	if err != nil {
		return filter.Range{}, fmt.Errorf("%w: quantity: %w", domain.ErrInvalidQuery, err)
	}
	return r, nil
}

func badParam(key, value string) error {
	return fmt.Errorf("%w: invalid %s %q", domain.ErrInvalidQuery, key, value)
}
