package runtime

import (
	"context"
	"fmt"
	"path/filepath"

	cfgpkg "github.com/andrewmaci/KebabManager/internal/config"
	"github.com/andrewmaci/KebabManager/internal/events"
	"github.com/andrewmaci/KebabManager/internal/metrics"
	"github.com/andrewmaci/KebabManager/internal/order"
	"github.com/andrewmaci/KebabManager/internal/order/memory"
	orderpebble "github.com/andrewmaci/KebabManager/internal/order/pebble"
	"github.com/andrewmaci/KebabManager/internal/order/postgres"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger *logpkg.Logger
}

// Runtime wires the order store, the event hub, and metrics for a single
// process. It is constructed once at startup and shared by reference with
// every request handler.
type Runtime struct {
	store   order.Store
	hub     *events.Hub
	metrics *metrics.Metrics
	config  cfgpkg.Config
	logger  *logpkg.Logger
}

// Open validates the configuration, opens the configured store backend, and
// builds the hub.
func Open(opts Options) (*Runtime, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger()
	}

	var store order.Store
	var err error
	switch cfg.Store {
	case cfgpkg.StoreMemory:
		store = memory.New()
	case cfgpkg.StorePebble:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = cfgpkg.DefaultDataDir()
		}
		store, err = orderpebble.Open(filepath.Join(dataDir, "orders"))
	case cfgpkg.StorePostgres:
		store, err = postgres.Open(cfg.DatabaseURL)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	m := metrics.New()
	return &Runtime{
		store:   store,
		hub:     events.NewHub(cfg.SubscriberBuffer, logger, m),
		metrics: m,
		config:  cfg,
		logger:  logger,
	}, nil
}

// Close shuts the hub down first so session loops drain and exit, then
// closes the store.
func (r *Runtime) Close() error {
	r.hub.Close()
	return r.store.Close()
}

// CheckHealth probes the store backend when it supports probing.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if hc, ok := r.store.(interface{ CheckHealth() error }); ok {
		return hc.CheckHealth()
	}
	return nil
}

// Store returns the order store.
func (r *Runtime) Store() order.Store { return r.store }

// Hub returns the event hub.
func (r *Runtime) Hub() *events.Hub { return r.hub }

// Metrics returns the process metrics.
func (r *Runtime) Metrics() *metrics.Metrics { return r.metrics }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the process logger.
func (r *Runtime) Logger() *logpkg.Logger { return r.logger }
