package glassdex

import (
	"context"
	"fmt"
	"time"
)

// ManufacturerService lists manufacturers and toggles their visibility.
type ManufacturerService struct {
	catalog    catalogUseCase
	enablement enablementUseCase
	obs        *observer
}

// List returns every registered manufacturer.
func (s *ManufacturerService) List(ctx context.Context) []Manufacturer {
	all := s.catalog.Manufacturers(ctx)
	out := make([]Manufacturer, len(all))
	for i, m := range all {
		out[i] = Manufacturer{
			Code:    m.Code,
			Name:    m.Name,
			Classes: m.Classes,
			Enabled: m.Enabled,
			Items:   m.Items,
		}
	}
	return out
}

// Enable makes a manufacturer's items visible.
func (s *ManufacturerService) Enable(ctx context.Context, code string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("enable", start, err) }()

	if err = s.enablement.Enable(ctx, code); err != nil {
		return fmt.Errorf("enable %s: %w", code, err)
	}
	return nil
}

// Disable hides a manufacturer's items.
func (s *ManufacturerService) Disable(ctx context.Context, code string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("disable", start, err) }()

	if err = s.enablement.Disable(ctx, code); err != nil {
		return fmt.Errorf("disable %s: %w", code, err)
	}
	return nil
}

// EnableAll makes every manufacturer visible.
func (s *ManufacturerService) EnableAll(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("enable_all", start, err) }()

	if err = s.enablement.EnableAll(ctx); err != nil {
		return fmt.Errorf("enable all: %w", err)
	}
	return nil
}

// DisableAll hides every manufacturer; searches return nothing until one is
// enabled again.
func (s *ManufacturerService) DisableAll(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("disable_all", start, err) }()

	if err = s.enablement.DisableAll(ctx); err != nil {
		return fmt.Errorf("disable all: %w", err)
	}
	return nil
}
