package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the glassdex API configuration.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Database      DatabaseConfig      `yaml:"database"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Manufacturers ManufacturersConfig `yaml:"manufacturers"`
	Auth          AuthConfig          `yaml:"auth"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds the optional Valkey/Redis connection settings.
// With no addrs the service runs from the catalog file alone.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
	KeyPrefix        string   `yaml:"key_prefix"`
}

// Enabled reports whether a store is configured.
func (d DatabaseConfig) Enabled() bool { return len(d.Addrs) > 0 }

// CatalogConfig holds catalog source and query settings.
type CatalogConfig struct {
	Source            string  `yaml:"source"` // file, store
	File              string  `yaml:"file"`
	LowStockThreshold float64 `yaml:"low_stock_threshold"`
	HideDiscontinued  bool    `yaml:"hide_discontinued"`
	Inventory         bool    `yaml:"inventory"` // overlay quantities from the store
	Workers           int     `yaml:"workers"`
	ChunkSize         int     `yaml:"chunk_size"`
	ParallelMin       int     `yaml:"parallel_min"`
}

// ManufacturersConfig holds registry overrides and the initial enabled set.
type ManufacturersConfig struct {
	Enabled   []string                      `yaml:"enabled"` // empty = all
	Overrides map[string]ManufacturerConfig `yaml:"overrides"`
}

// ManufacturerConfig overrides or adds one registry entry.
type ManufacturerConfig struct {
	Name    string   `yaml:"name"`
	Classes []string `yaml:"classes"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes raw YAML, expanding env variables, then applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Database.KeyPrefix == "" {
		c.Database.KeyPrefix = "glassdex:"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "file"
	}
	if c.Catalog.LowStockThreshold <= 0 {
		c.Catalog.LowStockThreshold = 5
	}
	if c.Catalog.ChunkSize <= 0 {
		c.Catalog.ChunkSize = 1024
	}
	if c.Catalog.ParallelMin == 0 {
		c.Catalog.ParallelMin = 4096
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Catalog.Source {
	case "file":
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog.file is required when catalog.source is \"file\"")
		}
	case "store":
		if !c.Database.Enabled() {
			return fmt.Errorf("database.addrs is required when catalog.source is \"store\"")
		}
	default:
		return fmt.Errorf("catalog.source must be \"file\" or \"store\", got %q", c.Catalog.Source)
	}
	if c.Catalog.Inventory && !c.Database.Enabled() {
		return fmt.Errorf("database.addrs is required when catalog.inventory is set")
	}
	if c.Catalog.Workers < 0 {
		return fmt.Errorf("catalog.workers must be >= 0, got %d", c.Catalog.Workers)
	}
	for code, m := range c.Manufacturers.Overrides {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("manufacturers.overrides: empty manufacturer code")
		}
		for _, cl := range m.Classes {
			if strings.TrimSpace(cl) == "" {
				return fmt.Errorf("manufacturers.overrides.%s.classes: empty class", code)
			}
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
