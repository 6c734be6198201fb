// Package catalog loads catalog exports and inventory quantities.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/kailas-cloud/glassdex/internal/db"
	"github.com/kailas-cloud/glassdex/internal/domain"
	domcat "github.com/kailas-cloud/glassdex/internal/domain/catalog"
)

// Default store keys.
const (
	DefaultCatalogKey   = "glassdex:catalog"
	DefaultInventoryKey = "glassdex:inventory"
)

// FileSource reads an export document from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file.
func (s *FileSource) Load(_ context.Context) (domcat.Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domcat.Catalog{}, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, s.path)
		}
		return domcat.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Describe names the source for logs.
func (s *FileSource) Describe() string { return "file:" + s.path }

// kvStore is the consumer interface for the stored export (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// StoreSource reads an export document from a single Valkey/Redis key.
type StoreSource struct {
	store kvStore
	key   string
}

// NewStoreSource creates a StoreSource. An empty key uses DefaultCatalogKey.
func NewStoreSource(s kvStore, key string) *StoreSource {
	if key == "" {
		key = DefaultCatalogKey
	}
	return &StoreSource{store: s, key: key}
}

// Load fetches and decodes the stored export.
func (s *StoreSource) Load(ctx context.Context) (domcat.Catalog, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcat.Catalog{}, fmt.Errorf("%w: key %s", domain.ErrCatalogUnavailable, s.key)
		}
		return domcat.Catalog{}, fmt.Errorf("get catalog: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Publish stores c under the source key, replacing the previous export.
func (s *StoreSource) Publish(ctx context.Context, c domcat.Catalog) error {
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		return err
	}
	if err := s.store.Set(ctx, s.key, buf.Bytes()); err != nil {
		return fmt.Errorf("set catalog: %w", err)
	}
	return nil
}

// Describe names the source for logs.
func (s *StoreSource) Describe() string { return "store:" + s.key }

// hashStore is the consumer interface for inventory (ISP).
type hashStore interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HDel(ctx context.Context, key string, fields ...string) error
}

// Inventory keeps on-hand quantities in a hash keyed by item ID.
type Inventory struct {
	store hashStore
	key   string
}

// NewInventory creates an Inventory. An empty key uses DefaultInventoryKey.
func NewInventory(s hashStore, key string) *Inventory {
	if key == "" {
		key = DefaultInventoryKey
	}
	return &Inventory{store: s, key: key}
}

// Quantities returns every recorded quantity. Unparseable entries are skipped.
func (i *Inventory) Quantities(ctx context.Context) (map[string]float64, error) {
	raw, err := i.store.HGetAll(ctx, i.key)
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	out := make(map[string]float64, len(raw))
	for id, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			continue
		}
		out[id] = f
	}
	return out, nil
}

// SetQuantity records the amount for id; nil clears it.
func (i *Inventory) SetQuantity(ctx context.Context, id string, q *float64) error {
	if q == nil {
		if err := i.store.HDel(ctx, i.key, id); err != nil {
			return fmt.Errorf("clear quantity: %w", err)
		}
		return nil
	}
	if *q < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	v := strconv.FormatFloat(*q, 'f', -1, 64)
	if err := i.store.HSet(ctx, i.key, map[string]string{id: v}); err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return nil
}
