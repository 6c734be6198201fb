// Package catalog holds a loaded catalog snapshot.
package catalog

import (
	"time"

	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
)

// Catalog is an immutable set of items with export metadata.
type Catalog struct {
	version   string
	generated time.Time
	items     []item.Item
	byID      map[string]int
	skipped   int
}

// New builds a Catalog. Items keep their order; a repeated ID keeps the first
// occurrence and counts the rest as skipped, together with invalid.
func New(version string, generated time.Time, items []item.Item, invalid int) Catalog {
	c := Catalog{
		version:   version,
		generated: generated,
		items:     make([]item.Item, 0, len(items)),
		byID:      make(map[string]int, len(items)),
		skipped:   invalid,
	}
	for _, it := range items {
		id := it.ID()
		if _, dup := c.byID[id]; dup {
			c.skipped++
			continue
		}
		c.byID[id] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

// Version is the export format version.
func (c Catalog) Version() string { return c.version }

// Generated is when the export was produced; zero when unknown.
func (c Catalog) Generated() time.Time { return c.generated }

// Items returns the items in export order. Callers must not modify the slice.
func (c Catalog) Items() []item.Item { return c.items }

// Len returns the number of items.
func (c Catalog) Len() int { return len(c.items) }

// Skipped is the number of export entries dropped as invalid or duplicate.
func (c Catalog) Skipped() int { return c.skipped }

// Get returns the item with id.
func (c Catalog) Get(id string) (item.Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return item.Item{}, false
	}
	return c.items[i], true
}

// WithQuantities returns a copy whose items carry on-hand amounts from q,
// keyed by item ID. Items missing from q lose any previous quantity.
func (c Catalog) WithQuantities(q map[string]float64) Catalog {
	out := c
	out.items = make([]item.Item, len(c.items))
	for i, it := range c.items {
		if v, ok := q[it.ID()]; ok {
			out.items[i] = it.WithQuantity(&v)
		} else {
			out.items[i] = it.WithQuantity(nil)
		}
	}
	return out
}

// Manufacturers returns the distinct manufacturer codes in first-seen order.
func (c Catalog) Manufacturers() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range c.items {
		if _, ok := seen[it.Manufacturer()]; !ok {
			seen[it.Manufacturer()] = struct{}{}
			out = append(out, it.Manufacturer())
		}
	}
	return out
}

// WithItem returns a copy with the item with the same ID replaced.
// ok is false when no such item exists.
func (c Catalog) WithItem(it item.Item) (Catalog, bool) {
	i, ok := c.byID[it.ID()]
	if !ok {
		return c, false
	}
	out := c
	out.items = make([]item.Item, len(c.items))
	copy(out.items, c.items)
	out.items[i] = it
	return out, true
}
