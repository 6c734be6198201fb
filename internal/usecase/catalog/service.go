// Package catalog serves queries over an in-memory catalog snapshot.
package catalog

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/glassdex/internal/domain"
	domcat "github.com/kailas-cloud/glassdex/internal/domain/catalog"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/logger"
	"github.com/kailas-cloud/glassdex/internal/metrics"
)

// Scan tuning defaults.
const (
	DefaultChunkSize   = 1024
	DefaultParallelMin = 4096
)

// Config tunes the service.
type Config struct {
	Thresholds filter.Thresholds
	// Workers is the pool size for chunked scans; 0 uses GOMAXPROCS.
	Workers int
	// ChunkSize is the number of items per pool task.
	ChunkSize int
	// ParallelMin is the smallest candidate set scanned on the pool.
	// Negative disables chunked scans.
	ParallelMin int
	// HideDiscontinued drops discontinued items at load time.
	HideDiscontinued bool
}

// ReloadStats summarizes a successful reload.
type ReloadStats struct {
	Items   int
	Skipped int
	Source  string
}

// Service answers catalog queries. Safe for concurrent use.
type Service struct {
	source     Source
	inventory  Inventory
	enablement Enablement
	registry   Registry
	cfg        Config
	pool       *ants.Pool

	snapshot atomic.Pointer[state]
	reloadMu sync.Mutex
}

// state is one published catalog with the compatibility classes its items
// resolve to.
type state struct {
	catalog domcat.Catalog
	classes filter.Set[string]
}

// New creates a catalog service. inventory can be nil. Call Reload before
// querying and Close when done.
func New(source Source, inventory Inventory, enablement Enablement, registry Registry, cfg Config) (*Service, error) {
	if cfg.Thresholds == (filter.Thresholds{}) {
		cfg.Thresholds = filter.DefaultThresholds()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ParallelMin == 0 {
		cfg.ParallelMin = DefaultParallelMin
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create scan pool: %w", err)
	}

	return &Service{
		source:     source,
		inventory:  inventory,
		enablement: enablement,
		registry:   registry,
		cfg:        cfg,
		pool:       pool,
	}, nil
}

// Close releases the scan pool.
func (s *Service) Close() {
	s.pool.Release()
}

// Reload replaces the snapshot from the source. On failure the previous
// snapshot stays in place.
func (s *Service) Reload(ctx context.Context) (ReloadStats, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	ctx = logger.With(ctx, zap.String("source", s.source.Describe()))
	log := logger.FromContext(ctx)

	c, err := s.source.Load(ctx)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		log.Error("Catalog load failed", zap.Error(err))
		return ReloadStats{}, fmt.Errorf("load catalog: %w", err)
	}

	if s.inventory != nil {
		q, err := s.inventory.Quantities(ctx)
		if err != nil {
			metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
			log.Error("Inventory load failed", zap.Error(err))
			return ReloadStats{}, fmt.Errorf("load inventory: %w", err)
		}
		c = c.WithQuantities(q)
	}

	if s.cfg.HideDiscontinued {
		kept := make([]item.Item, 0, c.Len())
		for _, it := range c.Items() {
			if !it.Discontinued() {
				kept = append(kept, it)
			}
		}
		c = domcat.New(c.Version(), c.Generated(), kept, c.Skipped())
	}

	s.snapshot.Store(&state{catalog: c, classes: filter.ClassUniverse(c.Items(), s.registry)})

	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	metrics.CatalogItems.Set(float64(c.Len()))
	metrics.CatalogSkippedItems.Set(float64(c.Skipped()))

	stats := ReloadStats{Items: c.Len(), Skipped: c.Skipped(), Source: s.source.Describe()}
	log.Info("Catalog loaded",
		zap.String("version", c.Version()),
		zap.Int("items", stats.Items),
		zap.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

// Snapshot returns the current catalog. ok is false before the first
// successful Reload.
func (s *Service) Snapshot() (domcat.Catalog, bool) {
	st := s.snapshot.Load()
	if st == nil {
		return domcat.Catalog{}, false
	}
	return st.catalog, true
}

// Get returns one item by ID, regardless of manufacturer enablement.
func (s *Service) Get(_ context.Context, id string) (item.Item, error) {
	c, ok := s.Snapshot()
	if !ok {
		return item.Item{}, domain.ErrCatalogUnavailable
	}
	it, found := c.Get(id)
	if !found {
		return item.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// SetQuantity records an on-hand amount and applies it to the snapshot.
// nil clears the quantity.
func (s *Service) SetQuantity(ctx context.Context, id string, q *float64) (item.Item, error) {
	if s.inventory == nil {
		return item.Item{}, fmt.Errorf("inventory: %w", domain.ErrNotFound)
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	st := s.snapshot.Load()
	if st == nil {
		return item.Item{}, domain.ErrCatalogUnavailable
	}
	it, found := st.catalog.Get(id)
	if !found {
		return item.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	if err := s.inventory.SetQuantity(ctx, id, q); err != nil {
		return item.Item{}, fmt.Errorf("set quantity: %w", err)
	}

	updated := it.WithQuantity(q)
	next, _ := st.catalog.WithItem(updated)
	s.snapshot.Store(&state{catalog: next, classes: st.classes})

	logger.FromContext(ctx).Debug("Quantity updated", zap.String("id", id))
	return updated, nil
}

// ManufacturerSummary describes a manufacturer for listings.
type ManufacturerSummary struct {
	Code    string
	Name    string
	Classes []string
	Enabled bool
	Items   int
}

// Manufacturers lists registered manufacturers with enablement and item counts.
func (s *Service) Manufacturers(_ context.Context) []ManufacturerSummary {
	counts := make(map[string]int)
	if c, ok := s.Snapshot(); ok {
		for _, it := range c.Items() {
			counts[it.Manufacturer()]++
		}
	}
	enabled := s.enablement.Enabled()
	metrics.EnabledManufacturers.Set(float64(enabled.Len()))

	all := s.registry.All()
	out := make([]ManufacturerSummary, len(all))
	for i, m := range all {
		out[i] = ManufacturerSummary{
			Code:    m.Code(),
			Name:    m.Name(),
			Classes: m.Classes(),
			Enabled: enabled.Contains(m.Code()),
			Items:   counts[m.Code()],
		}
	}
	return out
}
