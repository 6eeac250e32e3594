package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/showdata/internal/config"
	"github.com/vmunix/showdata/internal/tmdb"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "showdata",
	Short: "Collect Netflix TV show metadata from TMDB",
	Long: `showdata - Netflix TV show dataset builder

Pages through TMDB's discover endpoint for one network, enriches every
show with a detail lookup, writes a flat CSV dataset and prints summary
statistics.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("showdata {{.Version}}\n")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// loadConfig resolves the config from --config or the search path and
// applies the --log-level override.
func loadConfig() (*config.Config, error) {
	cfg, _, err := config.Resolve(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := validateOverrides(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// validateOverrides re-checks cfg after command-line flags have changed it.
func validateOverrides(cfg *config.Config) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.Error{Path: "command-line flags", Errors: errs}
	}
	return nil
}

func newTMDBClient(cfg *config.Config) *tmdb.Client {
	return tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
		tmdb.WithCache(cfg.TMDB.CacheSize, cfg.TMDB.CacheTTL),
	)
}
