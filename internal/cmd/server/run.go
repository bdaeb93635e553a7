package serverrun

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cfgpkg "github.com/andrewmaci/KebabManager/internal/config"
	"github.com/andrewmaci/KebabManager/internal/runtime"
	httpserver "github.com/andrewmaci/KebabManager/internal/server/http"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

type Options struct {
	HTTPAddr   string
	ConfigPath string
	Config     cfgpkg.Config
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context.
	// We layer a local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config
	if opts.ConfigPath != "" {
		loaded, err := cfgpkg.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfgpkg.FromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	procLogger, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		// Fall back to a sane default
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(cfg.LogLevel); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	// Redirect stdlib logs (e.g., Pebble) to our logger
	logpkg.RedirectStdLog(procLogger)

	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: procLogger})
	if err != nil {
		return err
	}
	defer rt.Close()

	procLogger.Info("Starting kebab order server",
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("store", cfg.Store),
		logpkg.Str("level", cfg.LogLevel),
		logpkg.Str("format", cfg.LogFormat),
		logpkg.Int("sub_buf", cfg.SubscriberBuffer),
	)

	hsrv := httpserver.New(rt)
	errCh := make(chan error, 1)
	go func() {
		errCh <- hsrv.ListenAndServe(sctx, opts.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil && sctx.Err() == nil {
			return err
		}
	case <-sctx.Done():
		// Close the hub first so open stream sessions drain, then shut
		// the server down before the runtime so in-flight requests never
		// see a closed store.
		rt.Hub().Close()
		hsrv.Close()
		<-errCh
	}
	return nil
}
