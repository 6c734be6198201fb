package chi

import (
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/search/result"
	cataloguc "github.com/kailas-cloud/glassdex/internal/usecase/catalog"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	ErrorCodeBadRequest           ErrorCode = "bad_request"
	ErrorCodeValidationFailed     ErrorCode = "validation_failed"
	ErrorCodeUnauthorized         ErrorCode = "unauthorized"
	ErrorCodeNotFound             ErrorCode = "not_found"
	ErrorCodeItemNotFound         ErrorCode = "item_not_found"
	ErrorCodeManufacturerNotFound ErrorCode = "manufacturer_not_found"
	ErrorCodeCatalogUnavailable   ErrorCode = "catalog_unavailable"
	ErrorCodeUnavailable          ErrorCode = "unavailable"
	ErrorCodeInternalError        ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Item is the JSON form of a catalog item.
type Item struct {
	ID           string   `json:"id"`
	Manufacturer string   `json:"manufacturer"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags"`
	Synonyms     []string `json:"synonyms,omitempty"`
	COE          string   `json:"coe,omitempty"`
	Type         string   `json:"type,omitempty"`
	StockType    string   `json:"stock_type,omitempty"`
	Status       string   `json:"status"`
	URL          string   `json:"url,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	StableID     string   `json:"stable_id,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
}

// Highlight is one matched span.
type Highlight struct {
	Field int `json:"field"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// Hit is an item with its relevance and highlights.
type Hit struct {
	Item       Item        `json:"item"`
	Relevance  float64     `json:"relevance,omitempty"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

// ItemListResponse is a page of query hits.
type ItemListResponse struct {
	Items   []Hit `json:"items"`
	Total   int   `json:"total"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"has_more"`
}

// QuantityRequest is the body of PUT /items/{id}/quantity.
type QuantityRequest struct {
	Quantity *float64 `json:"quantity"`
}

// Manufacturer is a registry entry with enablement state.
type Manufacturer struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Classes []string `json:"classes"`
	Enabled bool     `json:"enabled"`
	Items   int      `json:"items"`
}

// ManufacturerListResponse lists manufacturers.
type ManufacturerListResponse struct {
	Items []Manufacturer `json:"items"`
}

// ReloadResponse summarizes a catalog reload.
type ReloadResponse struct {
	Items   int    `json:"items"`
	Skipped int    `json:"skipped"`
	Source  string `json:"source"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string            `json:"status"`
	Checks       map[string]string `json:"checks"`
	CatalogItems int               `json:"catalog_items"`
	Version      string            `json:"version"`
}

func itemToDTO(it item.Item) Item {
	out := Item{
		ID:           it.ID(),
		Manufacturer: it.Manufacturer(),
		Code:         it.Code(),
		Name:         it.Name(),
		Description:  it.Description(),
		Tags:         it.Tags(),
		Synonyms:     it.Synonyms(),
		COE:          it.COE(),
		Type:         it.Type(),
		StockType:    it.StockType(),
		Status:       it.Status(),
		URL:          it.URL(),
		ImageURL:     it.ImageURL(),
		StableID:     it.StableID(),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if q, ok := it.Quantity(); ok {
		out.Quantity = &q
	}
	return out
}

func hitToDTO(w result.Weighted[item.Item]) Hit {
	h := Hit{Item: itemToDTO(w.Record()), Relevance: w.Relevance()}
	if hl := w.Highlights(); len(hl) > 0 {
		h.Highlights = make([]Highlight, len(hl))
		for i, x := range hl {
			h.Highlights[i] = Highlight{Field: x.Position, Start: x.Start, End: x.End}
		}
	}
	return h
}

func pageToDTO(p cataloguc.Page) ItemListResponse {
	items := make([]Hit, len(p.Hits))
	for i, w := range p.Hits {
		items[i] = hitToDTO(w)
	}
	return ItemListResponse{
		Items:   items,
		Total:   p.Total,
		Offset:  p.Offset,
		Limit:   p.Limit,
		HasMore: p.Offset+len(p.Hits) < p.Total,
	}
}

func manufacturerToDTO(m cataloguc.ManufacturerSummary) Manufacturer {
	classes := m.Classes
	if classes == nil {
		classes = []string{}
	}
	return Manufacturer{
		Code:    m.Code,
		Name:    m.Name,
		Classes: classes,
		Enabled: m.Enabled,
		Items:   m.Items,
	}
}
