package enablement

import "context"

// Repository persists the enabled manufacturer codes.
type Repository interface {
	// Load returns the saved codes; ok is false when nothing was ever saved.
	Load(ctx context.Context) (codes []string, ok bool, err error)
	// Save replaces the saved codes.
	Save(ctx context.Context, codes []string) error
	// Add and Remove change one code of an already saved set.
	Add(ctx context.Context, code string) error
	Remove(ctx context.Context, code string) error
}

// Registry reports which manufacturer codes exist.
type Registry interface {
	Has(code string) bool
	Codes() []string
}
