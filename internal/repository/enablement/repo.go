// Package enablement persists the set of enabled manufacturers.
package enablement

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/glassdex/internal/db"
)

// DefaultKey is the set holding enabled manufacturer codes.
const DefaultKey = "glassdex:manufacturers:enabled"

// store is the consumer interface for enablement (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SReplace(ctx context.Context, key string, members []string) error
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
}

// Repo implements usecase/enablement.Repository.
type Repo struct {
	store store
	key   string
}

// New creates an enablement repository. An empty key uses DefaultKey.
func New(s store, key string) *Repo {
	if key == "" {
		key = DefaultKey
	}
	return &Repo{store: s, key: key}
}

// markerKey records that a choice was saved, so an empty set is not mistaken
// for "never configured".
func (r *Repo) markerKey() string { return r.key + ":saved" }

// Load returns the saved codes. ok is false when nothing was ever saved.
func (r *Repo) Load(ctx context.Context) (codes []string, ok bool, err error) {
	if _, err := r.store.Get(ctx, r.markerKey()); err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load enablement marker: %w", err)
	}
	codes, err = r.store.SMembers(ctx, r.key)
	if err != nil {
		return nil, false, fmt.Errorf("load enabled manufacturers: %w", err)
	}
	return codes, true, nil
}

// Save replaces the saved codes.
func (r *Repo) Save(ctx context.Context, codes []string) error {
	if err := r.store.SReplace(ctx, r.key, codes); err != nil {
		return fmt.Errorf("save enabled manufacturers: %w", err)
	}
	if err := r.store.Set(ctx, r.markerKey(), []byte("1")); err != nil {
		return fmt.Errorf("save enablement marker: %w", err)
	}
	return nil
}

// Add puts one code into the saved set.
func (r *Repo) Add(ctx context.Context, code string) error {
	if err := r.store.SAdd(ctx, r.key, code); err != nil {
		return fmt.Errorf("enable manufacturer %s: %w", code, err)
	}
	return nil
}

// Remove drops one code from the saved set.
func (r *Repo) Remove(ctx context.Context, code string) error {
	if err := r.store.SRem(ctx, r.key, code); err != nil {
		return fmt.Errorf("disable manufacturer %s: %w", code, err)
	}
	return nil
}
