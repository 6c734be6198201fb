package glassdex

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type manufacturerOverride struct {
	code    string
	name    string
	classes []string
}

type clientConfig struct {
	file         string
	storeCatalog bool
	inventory    bool

	addrs     []string
	password  string
	keyPrefix string

	enabled       []string
	manufacturers []manufacturerOverride

	lowStock         float64
	workers          int
	hideDiscontinued bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithFile loads the catalog from an export file.
func WithFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.file = path
	})
}

// WithValkey connects to a Valkey instance. The connection persists
// manufacturer enablement and backs WithStoreCatalog and WithInventory.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis connects to a Redis instance. See WithValkey.
func WithRedis(addr, password string) Option {
	return WithValkey(addr, password)
}

// WithStoreCatalog loads the catalog export from the store instead of a file.
// Requires WithValkey or WithRedis.
func WithStoreCatalog() Option {
	return optionFunc(func(c *clientConfig) {
		c.storeCatalog = true
	})
}

// WithInventory overlays on-hand quantities kept in the store.
// Requires WithValkey or WithRedis.
func WithInventory() Option {
	return optionFunc(func(c *clientConfig) {
		c.inventory = true
	})
}

// WithKeyPrefix sets the store key prefix. Default: "glassdex:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithEnabled sets the manufacturers enabled on first start.
// Default: every registered manufacturer.
func WithEnabled(codes ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.enabled = append(c.enabled, codes...)
	})
}

// WithManufacturer adds a manufacturer or overrides a built-in one.
func WithManufacturer(code, name string, classes ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.manufacturers = append(c.manufacturers, manufacturerOverride{code: code, name: name, classes: classes})
	})
}

// WithLowStock sets the largest quantity still counted as low stock. Default: 5.
func WithLowStock(q float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.lowStock = q
	})
}

// WithWorkers sets the fuzzy scan pool size. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.workers = n
	})
}

// WithHideDiscontinued drops discontinued items at load time.
func WithHideDiscontinued() Option {
	return optionFunc(func(c *clientConfig) {
		c.hideDiscontinued = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
