package catalog

import (
	"context"

	domcat "github.com/kailas-cloud/glassdex/internal/domain/catalog"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/manufacturer"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
)

// Source loads a full catalog snapshot.
type Source interface {
	Load(ctx context.Context) (domcat.Catalog, error)
	Describe() string
}

// Inventory supplies on-hand quantities keyed by item ID.
type Inventory interface {
	Quantities(ctx context.Context) (map[string]float64, error)
	SetQuantity(ctx context.Context, id string, q *float64) error
}

// Enablement reports which manufacturers are visible.
type Enablement interface {
	Enabled() filter.Set[string]
}

// Registry resolves manufacturer metadata and compatibility classes.
type Registry interface {
	ClassesOf(manufacturer string) []string
	PrimaryClass(manufacturer string) (string, bool)
	Classes() []string
	All() []manufacturer.Manufacturer
}
