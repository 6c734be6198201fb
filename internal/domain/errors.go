package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrItemNotFound signals a catalog item that does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidQuery signals a malformed catalog query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidItem signals an item that fails validation.
	ErrInvalidItem = errors.New("invalid item")
	// ErrUnknownManufacturer signals a manufacturer code missing from the registry.
	ErrUnknownManufacturer = errors.New("unknown manufacturer")
	// ErrCatalogUnavailable signals that no catalog snapshot is loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrUnsupportedFormat signals a catalog export with an unknown version.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
