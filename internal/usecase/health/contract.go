package health

import (
	"context"

	domcat "github.com/kailas-cloud/glassdex/internal/domain/catalog"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogState exposes the loaded catalog snapshot.
type CatalogState interface {
	Snapshot() (domcat.Catalog, bool)
}
