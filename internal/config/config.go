// Package config loads storefront configuration from a .env file, the
// environment, and command line flags, in ascending precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	CatalogAddress      string
	DatabaseURI         string
	StorePath           string
	OrderPollInterval   time.Duration
	WorkerPoolSize      int
	ShutdownTimeout     time.Duration
	MaxOrdersBatch      int
	AllowDuplicateItems bool
}

const (
	defaultRunAddress        = ":8080"
	defaultCatalogAddress    = "http://localhost:3005"
	defaultOrderPollInterval = 3 * time.Second
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultMaxOrdersBatch    = 32
)

// Load parses configuration from flags and environment variables. A
// .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		CatalogAddress:      getString(lookup, "CATALOG_ADDRESS", defaultCatalogAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		StorePath:           getString(lookup, "STORE_PATH", ""),
		OrderPollInterval:   getDuration(lookup, "ORDER_POLL_INTERVAL", defaultOrderPollInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxOrdersBatch:      getInt(lookup, "POLL_BATCH_SIZE", defaultMaxOrdersBatch),
		AllowDuplicateItems: getBool(lookup, "ALLOW_DUPLICATE_ITEMS", true),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.OrderPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.CatalogAddress, "r", cfg.CatalogAddress, "Product catalog base URL")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.StorePath, "store", cfg.StorePath, "SQLite store file path")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent finalizer workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between pending-order polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxOrdersBatch, "poll-batch", cfg.MaxOrdersBatch, "Maximum orders per polling batch")
	fs.BoolVar(&cfg.AllowDuplicateItems, "allow-duplicates", cfg.AllowDuplicateItems, "Allow duplicate type/variant rows in a bulk order")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.OrderPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxOrdersBatch <= 0 {
		cfg.MaxOrdersBatch = defaultMaxOrdersBatch
	}

	if cfg.OrderPollInterval <= 0 {
		cfg.OrderPollInterval = defaultOrderPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.CatalogAddress == "" {
		return nil, fmt.Errorf("catalog address must be provided")
	}

	if cfg.DatabaseURI != "" && cfg.StorePath != "" {
		return nil, fmt.Errorf("database URI and store path are mutually exclusive")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
