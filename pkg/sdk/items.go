package glassdex

import (
	"context"
	"fmt"
	"time"
)

// ItemService queries catalog items.
type ItemService struct {
	svc catalogUseCase
	obs *observer
}

// Search runs q against the loaded catalog.
func (s *ItemService) Search(ctx context.Context, q Query) (page Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search", start, err) }()

	req, err := toInternalRequest(q)
	if err != nil {
		return Page{}, fmt.Errorf("search: %w", err)
	}
	p, err := s.svc.Query(ctx, req)
	if err != nil {
		return Page{}, fmt.Errorf("search: %w", err)
	}
	s.obs.searched(p.Total)
	return fromInternalPage(p), nil
}

// Get returns one item by ID ("MANUFACTURER-CODE").
func (s *ItemService) Get(ctx context.Context, id string) (it Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("get", start, err) }()

	i, err := s.svc.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("get item: %w", err)
	}
	return fromInternalItem(i), nil
}

// SetQuantity records the on-hand quantity. nil clears it.
// Requires WithInventory.
func (s *ItemService) SetQuantity(ctx context.Context, id string, q *float64) (it Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("set_quantity", start, err) }()

	i, err := s.svc.SetQuantity(ctx, id, q)
	if err != nil {
		return Item{}, fmt.Errorf("set quantity: %w", err)
	}
	return fromInternalItem(i), nil
}
