package glassdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbRedis "github.com/kailas-cloud/glassdex/internal/db/redis"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/item"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/manufacturer"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	"github.com/kailas-cloud/glassdex/internal/domain/search/request"
	catalogrepo "github.com/kailas-cloud/glassdex/internal/repository/catalog"
	enablementrepo "github.com/kailas-cloud/glassdex/internal/repository/enablement"
	cataloguc "github.com/kailas-cloud/glassdex/internal/usecase/catalog"
	enablementuc "github.com/kailas-cloud/glassdex/internal/usecase/enablement"
	healthuc "github.com/kailas-cloud/glassdex/internal/usecase/health"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "glassdex:"
)

// Internal interfaces for substitution in tests.
type catalogUseCase interface {
	Query(ctx context.Context, req request.Request) (cataloguc.Page, error)
	Get(ctx context.Context, id string) (item.Item, error)
	SetQuantity(ctx context.Context, id string, q *float64) (item.Item, error)
	Manufacturers(ctx context.Context) []cataloguc.ManufacturerSummary
	Reload(ctx context.Context) (cataloguc.ReloadStats, error)
}

type enablementUseCase interface {
	Enable(ctx context.Context, code string) error
	Disable(ctx context.Context, code string) error
	EnableAll(ctx context.Context) error
	DisableAll(ctx context.Context) error
}

// Client is the glassdex SDK entry point.
type Client struct {
	closers    []func()
	catalog    catalogUseCase
	enablement enablementUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client, connects to the store when one is configured and
// loads the catalog. The provided context bounds the initial load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.file == "" && !cfg.storeCatalog {
		return nil, errors.New("glassdex: catalog source required (use WithFile or WithStoreCatalog)")
	}
	if (cfg.storeCatalog || cfg.inventory) && len(cfg.addrs) == 0 {
		return nil, errors.New("glassdex: store address required (use WithValkey or WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	c := &Client{obs: obs}
	if err := c.wire(ctx, cfg); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) wire(ctx context.Context, cfg *clientConfig) error {
	var store *dbRedis.Store
	if len(cfg.addrs) > 0 {
		s, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.addrs, Password: cfg.password})
		if err != nil {
			return fmt.Errorf("glassdex: create store: %w", err)
		}
		c.closers = append(c.closers, s.Close)
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			return fmt.Errorf("glassdex: store not ready: %w", err)
		}
		store = s
	}

	registry, err := buildRegistry(cfg.manufacturers)
	if err != nil {
		return err
	}

	var repo enablementuc.Repository
	if store != nil {
		repo = enablementrepo.New(store, cfg.keyPrefix+"manufacturers:enabled")
	}
	enablement, err := enablementuc.New(ctx, registry, cfg.enabled, repo)
	if err != nil {
		return fmt.Errorf("glassdex: enablement: %w", err)
	}
	c.closers = append(c.closers, enablement.Close)

	var source cataloguc.Source
	if cfg.storeCatalog {
		source = catalogrepo.NewStoreSource(store, cfg.keyPrefix+"catalog")
	} else {
		source = catalogrepo.NewFileSource(cfg.file)
	}

	// Nil interface, not a typed nil pointer.
	var inventory cataloguc.Inventory
	if cfg.inventory {
		inventory = catalogrepo.NewInventory(store, cfg.keyPrefix+"inventory")
	}

	catalog, err := cataloguc.New(source, inventory, enablement, registry, cataloguc.Config{
		Thresholds:       filter.Thresholds{Low: cfg.lowStock},
		Workers:          cfg.workers,
		HideDiscontinued: cfg.hideDiscontinued,
	})
	if err != nil {
		return fmt.Errorf("glassdex: %w", err)
	}
	c.closers = append(c.closers, catalog.Close)

	if _, err := catalog.Reload(ctx); err != nil {
		return fmt.Errorf("glassdex: %w", err)
	}

	c.catalog = catalog
	c.enablement = enablement
	if store != nil {
		c.healthSvc = healthuc.New(catalog, store)
	} else {
		c.healthSvc = healthuc.New(catalog, nil)
	}
	return nil
}

func buildRegistry(overrides []manufacturerOverride) (*manufacturer.Registry, error) {
	ms := manufacturer.Defaults()
	for _, o := range overrides {
		m, err := manufacturer.New(o.code, o.name, o.classes)
		if err != nil {
			return nil, fmt.Errorf("glassdex: manufacturer %q: %w", o.code, err)
		}
		ms = append(ms, m)
	}
	return manufacturer.NewRegistry(ms...), nil
}

// Close releases all resources.
func (c *Client) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Reload re-reads the catalog source. On failure the previous catalog stays
// in service.
func (c *Client) Reload(ctx context.Context) (stats ReloadStats, err error) {
	start := time.Now()
	defer func() { c.obs.observe("reload", start, err) }()

	s, err := c.catalog.Reload(ctx)
	if err != nil {
		return ReloadStats{}, fmt.Errorf("reload: %w", err)
	}
	return ReloadStats{Items: s.Items, Skipped: s.Skipped, Source: s.Source}, nil
}

// Items returns the item query service.
func (c *Client) Items() *ItemService {
	return &ItemService{svc: c.catalog, obs: c.obs}
}

// Manufacturers returns the manufacturer service.
func (c *Client) Manufacturers() *ManufacturerService {
	return &ManufacturerService{catalog: c.catalog, enablement: c.enablement, obs: c.obs}
}

// Search is shorthand for c.Items().Search.
func (c *Client) Search(ctx context.Context, q Query) (Page, error) {
	return c.Items().Search(ctx, q)
}
