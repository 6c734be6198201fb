package chi

import (
	"context"

	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/search/request"
	cataloguc "github.com/kailas-cloud/glassdex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/glassdex/internal/usecase/health"
)

// CatalogService is the query surface the HTTP layer consumes.
type CatalogService interface {
	Query(ctx context.Context, req request.Request) (cataloguc.Page, error)
	Get(ctx context.Context, id string) (item.Item, error)
	SetQuantity(ctx context.Context, id string, q *float64) (item.Item, error)
	Manufacturers(ctx context.Context) []cataloguc.ManufacturerSummary
	Reload(ctx context.Context) (cataloguc.ReloadStats, error)
}

// EnablementService toggles manufacturer visibility.
type EnablementService interface {
	Enable(ctx context.Context, code string) error
	Disable(ctx context.Context, code string) error
	EnableAll(ctx context.Context) error
	DisableAll(ctx context.Context) error
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}
