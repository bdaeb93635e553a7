package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	clientcmd "github.com/andrewmaci/KebabManager/internal/cmd/client"
	serverrun "github.com/andrewmaci/KebabManager/internal/cmd/server"
	cfgpkg "github.com/andrewmaci/KebabManager/internal/config"
	logpkg "github.com/andrewmaci/KebabManager/pkg/log"
)

func main() {
	// Respect KEBAB_LOG_LEVEL for CLI output before any config is loaded.
	level := os.Getenv("KEBAB_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
	)

	// Redirect standard library logs (used by Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "kebabmanager",
		Short: "Kebab order manager CLI",
		Long:  "Kebab order manager is a single-binary order service. This CLI manages the server and basic operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the order server (HTTP API and event stream)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			httpAddr, _ := cmd.Flags().GetString("http")
			configPath, _ := cmd.Flags().GetString("config")
			store, _ := cmd.Flags().GetString("store")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			databaseURL, _ := cmd.Flags().GetString("database-url")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			subBuf, _ := cmd.Flags().GetInt("sub-buf")

			cfg := cfgpkg.Default()
			if store != "" {
				cfg.Store = store
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if databaseURL != "" {
				cfg.DatabaseURL = databaseURL
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}
			if subBuf > 0 {
				cfg.SubscriberBuffer = subBuf
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				HTTPAddr:   httpAddr,
				ConfigPath: configPath,
				Config:     cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("http", ":8000", "HTTP listen address")
	serverStartCmd.Flags().String("config", "", "Path to a JSON config file (flags are ignored when set)")
	serverStartCmd.Flags().String("store", os.Getenv("KEBAB_STORE"), "Order store backend: memory|pebble|postgres")
	serverStartCmd.Flags().String("data-dir", "", "Data directory for the pebble store (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("database-url", os.Getenv("KEBAB_DATABASE_URL"), "Postgres connection URL (required with --store=postgres)")
	serverStartCmd.Flags().String("log-level", os.Getenv("KEBAB_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("KEBAB_LOG_FORMAT"), "Log format: text|json (default text)")
	serverStartCmd.Flags().Int("sub-buf", func() int {
		v, _ := strconv.Atoi(os.Getenv("KEBAB_SUB_BUF"))
		return v
	}(), "Event queue size per stream subscriber")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// order commands (thin HTTP clients)
	rootCmd.AddCommand(clientcmd.NewOrderCommand(apiURL))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("KEBAB_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8000"
}
