package glassdex

import "github.com/kailas-cloud/glassdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound            = domain.ErrNotFound
	ErrItemNotFound        = domain.ErrItemNotFound
	ErrInvalidQuery        = domain.ErrInvalidQuery
	ErrUnknownManufacturer = domain.ErrUnknownManufacturer
	ErrCatalogUnavailable  = domain.ErrCatalogUnavailable
	ErrUnsupportedFormat   = domain.ErrUnsupportedFormat
)
