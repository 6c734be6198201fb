// glassdex-import publishes a catalog export into Valkey/Redis so that
// glassdex servers with catalog.source=store can load it.
//
// Usage:
//
//	glassdex-import -file data/catalog.json -seed-inventory
//
// Env vars:
//
//	VALKEY_ADDR     address (default: localhost:6379)
//	VALKEY_PASSWORD password
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/glassdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/glassdex/internal/logger"
	catalogrepo "github.com/kailas-cloud/glassdex/internal/repository/catalog"
)

type options struct {
	file          string
	addr          string
	password      string
	prefix        string
	seedInventory bool
	timeout       time.Duration
}

func main() {
	opts := parseFlags()

	logger, err := logpkg.New("local", "info")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := run(logpkg.ContextWithLogger(ctx, logger), opts); err != nil {
		cancel()
		logger.Fatal("Import failed", zap.Error(err))
	}
}

func parseFlags() options {
	o := options{}
	flag.StringVar(&o.file, "file", "data/catalog.json", "catalog export to publish")
	flag.StringVar(&o.addr, "addr", envOr("VALKEY_ADDR", "localhost:6379"), "Valkey/Redis address")
	flag.StringVar(&o.password, "password", os.Getenv("VALKEY_PASSWORD"), "Valkey/Redis password")
	flag.StringVar(&o.prefix, "prefix", "glassdex:", "key prefix, must match database.key_prefix")
	flag.BoolVar(&o.seedInventory, "seed-inventory", false, "copy export quantities into the inventory hash")
	flag.DurationVar(&o.timeout, "timeout", 10*time.Second, "readiness timeout")
	flag.Parse()
	return o
}

func run(ctx context.Context, o options) error {
	log := logpkg.FromContext(ctx)
	start := time.Now()

	c, err := catalogrepo.NewFileSource(o.file).Load(ctx)
	if err != nil {
		return err
	}
	log.Info("Export read",
		zap.String("file", o.file),
		zap.Int("items", c.Len()),
		zap.Int("skipped", c.Skipped()),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{Addrs: []string{o.addr}, Password: o.password})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer store.Close()
	if err := store.WaitForReady(ctx, o.timeout); err != nil {
		return fmt.Errorf("store not ready: %w", err)
	}

	if err := catalogrepo.NewStoreSource(store, o.prefix+"catalog").Publish(ctx, c); err != nil {
		return err
	}

	seeded := 0
	if o.seedInventory {
		inv := catalogrepo.NewInventory(store, o.prefix+"inventory")
		for _, it := range c.Items() {
			q, ok := it.Quantity()
			if !ok {
				continue
			}
			if err := inv.SetQuantity(ctx, it.ID(), &q); err != nil {
				return fmt.Errorf("seed %s: %w", it.ID(), err)
			}
			seeded++
		}
	}

	log.Info("Catalog published",
		zap.Int("items", c.Len()),
		zap.Int("inventory_seeded", seeded),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
