// Package redis is the Valkey/Redis store behind the catalog blob, the
// inventory hash and the enabled-manufacturer set.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/glassdex/internal/db"
)

var _ db.Store = (*Store)(nil)

// Readiness polling bounds for WaitForReady.
const (
	readyPollMin = 100 * time.Millisecond
	readyPollMax = 2 * time.Second
)

// Config holds connection parameters. Addrs is required; the rest is optional.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

func (c Config) clientOption() rueidis.ClientOption {
	return rueidis.ClientOption{
		InitAddress: c.Addrs,
		Username:    c.Username,
		Password:    c.Password,
		SelectDB:    c.DB,
		// Reads are served from the in-memory snapshot.
		DisableCache: true,
	}
}

// Store keeps glassdex state in plain keys, hashes and sets.
type Store struct {
	client rueidis.Client
}

// NewStore connects to the configured nodes.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, errors.New("store: at least one address is required")
	}
	client, err := rueidis.NewClient(cfg.clientOption())
	if err != nil {
		return nil, fmt.Errorf("store: connect %v: %w", cfg.Addrs, err)
	}
	return &Store{client: client}, nil
}

// Ping round-trips a PING.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.do(ctx, s.b().Ping().Build()).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the connections.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady pings with a doubling interval until the store answers or
// timeout passes. The last ping error is reported on timeout.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	wait := readyPollMin
	var last error
	for {
		select {
		case <-ctx.Done():
			if last != nil {
				return fmt.Errorf("store not ready after %s: %w", timeout, last)
			}
			return fmt.Errorf("store not ready after %s: %w", timeout, ctx.Err())
		case <-time.After(wait):
		}
		if last = s.Ping(ctx); last == nil {
			return nil
		}
		wait = min(wait*2, readyPollMax)
	}
}

func (s *Store) do(ctx context.Context, cmd rueidis.Completed) rueidis.RedisResult {
	return s.client.Do(ctx, cmd)
}

func (s *Store) b() rueidis.Builder {
	return s.client.B()
}
