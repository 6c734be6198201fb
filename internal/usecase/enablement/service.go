// Package enablement tracks which manufacturers are visible in the catalog.
package enablement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kailas-cloud/glassdex/internal/domain"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
)

// ErrClosed is returned by mutations after Close.
var ErrClosed = errors.New("enablement service closed")

// Service owns the enabled-manufacturer set. Safe for concurrent use.
type Service struct {
	registry Registry
	repo     Repository

	mu      sync.RWMutex
	enabled filter.Set[string]
	closed  bool
	// saved is true once repo holds a full set; single changes are then
	// written incrementally.
	saved bool
}

// New creates a Service. The initial set comes from repo when something was
// saved, else from initial; an empty initial list enables every registered
// manufacturer. repo can be nil for memory-only operation.
func New(ctx context.Context, registry Registry, initial []string, repo Repository) (*Service, error) {
	s := &Service{registry: registry, repo: repo}

	codes := initial
	if repo != nil {
		saved, ok, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load enablement: %w", err)
		}
		if ok {
			s.enabled = s.known(saved)
			s.saved = true
			return s, nil
		}
	}
	if len(codes) == 0 {
		codes = registry.Codes()
	}
	for _, c := range codes {
		if !registry.Has(c) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownManufacturer, c)
		}
	}
	s.enabled = s.known(codes)
	return s, nil
}

// known normalizes codes and drops unregistered ones.
func (s *Service) known(codes []string) filter.Set[string] {
	out := filter.NewSet[string]()
	for _, c := range codes {
		c = normalize(c)
		if c != "" && s.registry.Has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Enabled returns a snapshot of the enabled codes.
func (s *Service) Enabled() filter.Set[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled.Clone()
}

// IsEnabled reports whether code is enabled.
func (s *Service) IsEnabled(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled.Contains(normalize(code))
}

// Enable turns a manufacturer on.
func (s *Service) Enable(ctx context.Context, code string) error {
	return s.update(ctx, code, true)
}

// Disable turns a manufacturer off.
func (s *Service) Disable(ctx context.Context, code string) error {
	return s.update(ctx, code, false)
}

// EnableAll turns every registered manufacturer on.
func (s *Service) EnableAll(ctx context.Context) error {
	return s.replace(ctx, filter.NewSet(s.registry.Codes()...))
}

// DisableAll turns every manufacturer off. Nothing passes the catalog
// manufacturer filter afterwards.
func (s *Service) DisableAll(ctx context.Context) error {
	return s.replace(ctx, filter.NewSet[string]())
}

func (s *Service) update(ctx context.Context, code string, enable bool) error {
	c := normalize(code)
	if !s.registry.Has(c) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownManufacturer, code)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	next := s.enabled.Clone()
	if enable {
		next[c] = struct{}{}
	} else {
		delete(next, c)
	}
	if s.repo == nil || !s.saved {
		return s.commit(ctx, next)
	}

	var err error
	if enable {
		err = s.repo.Add(ctx, c)
	} else {
		err = s.repo.Remove(ctx, c)
	}
	if err != nil {
		return fmt.Errorf("persist enablement: %w", err)
	}
	s.enabled = next
	return nil
}

func (s *Service) replace(ctx context.Context, next filter.Set[string]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.commit(ctx, next)
}

// commit persists next and swaps it in. Caller holds mu.
func (s *Service) commit(ctx context.Context, next filter.Set[string]) error {
	if s.repo != nil {
		if err := s.repo.Save(ctx, filter.Sorted(next)); err != nil {
			return fmt.Errorf("persist enablement: %w", err)
		}
		s.saved = true
	}
	s.enabled = next
	return nil
}

// Close stops accepting mutations. Reads keep working.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func normalize(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }
