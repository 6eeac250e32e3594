package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vmunix/showdata/internal/collector"
	"github.com/vmunix/showdata/internal/config"
	"github.com/vmunix/showdata/internal/dataset"
	"github.com/vmunix/showdata/internal/metadata"
	"github.com/vmunix/showdata/internal/report"
)

var (
	collectPages      int
	collectOutput     string
	collectPositional bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Build the show dataset",
	Long: `Fetches the discover catalog, enriches every show with a detail lookup,
writes the merged CSV and prints summary statistics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyCollectFlags(cmd, cfg); err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
		return runCollect(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
	},
}

func init() {
	collectCmd.Flags().IntVar(&collectPages, "pages", config.DefaultPages, "Discover pages to fetch")
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", config.DefaultOutputPath, "Output CSV path")
	collectCmd.Flags().BoolVar(&collectPositional, "positional", false, "Pair details with catalog rows by position after dropping failures")
	rootCmd.AddCommand(collectCmd)
}

// applyCollectFlags overrides cfg with any collect flags set on the command
// line and validates the result.
func applyCollectFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("pages") {
		cfg.Collect.Pages = collectPages
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = collectOutput
	}
	if cmd.Flags().Changed("positional") {
		cfg.Merge.Positional = collectPositional
	}
	return validateOverrides(cfg)
}

func runCollect(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	client := newTMDBClient(cfg)

	var api collector.TMDB = client
	if cfg.Cache.Path != "" {
		cache, closeDB, err := openCache(cfg)
		if err != nil {
			return err
		}
		defer closeDB()
		api = metadata.NewTMDBService(client, cache, cfg.Cache.TTL, logger.With("component", "cache"))
	}

	c := collector.New(api, collector.Config{
		NetworkID:    cfg.TMDB.NetworkID,
		SortBy:       cfg.TMDB.SortBy,
		Append:       cfg.TMDB.Append,
		RequestDelay: cfg.TMDB.RequestDelay,
	}, logger.With("component", "collector"))

	logger.Info("fetching catalog", "network_id", cfg.TMDB.NetworkID, "pages", cfg.Collect.Pages)
	catalog, err := c.FetchCatalog(ctx, cfg.Collect.Pages)
	if err != nil {
		return err
	}
	logger.Info("catalog complete", "shows", len(catalog))

	logger.Info("fetching details", "shows", len(catalog), "request_delay", cfg.TMDB.RequestDelay)
	enriched, err := c.Enrich(ctx, catalog)
	if err != nil {
		return err
	}
	logger.Info("details complete", "succeeded", enriched.Succeeded(), "failed", enriched.Failed)

	mode := collector.MergeAligned
	if cfg.Merge.Positional {
		mode = collector.MergePositional
	}
	records := collector.Merge(catalog, enriched.Details, mode)

	if err := dataset.WriteCSV(cfg.Output.Path, records); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	logger.Info("dataset written", "path", cfg.Output.Path, "rows", len(records), "merge", mode)

	return report.Print(out, report.Summarize(records, enriched.Failed), records)
}
