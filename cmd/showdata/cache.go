package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/showdata/internal/config"
	"github.com/vmunix/showdata/internal/metadata"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Response cache maintenance",
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired cache entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cache, closeDB, err := openCache(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		ctx := cmd.Context()
		removed, err := cache.Prune(ctx)
		if err != nil {
			return err
		}
		remaining, err := cache.Len(ctx)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries, %d remaining\n", removed, remaining)
		return nil
	},
}

var cacheForgetCmd = &cobra.Command{
	Use:   "forget <tmdb-id>...",
	Short: "Drop cached details so the next collect refetches them",
	Long: `Removes the cached detail payload of each show for the configured
append list. Use it after a show's TMDB entry has been corrected.`,
	Example: "  showdata cache forget 66732 93405",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cache, closeDB, err := openCache(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		svc := metadata.NewTMDBService(newTMDBClient(cfg), cache, cfg.Cache.TTL, nil)
		return runCacheForget(cmd.Context(), svc, cfg.TMDB.Append, args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cachePruneCmd)
	cacheCmd.AddCommand(cacheForgetCmd)
}

func openCache(cfg *config.Config) (*metadata.Cache, func(), error) {
	if cfg.Cache.Path == "" {
		return nil, nil, errors.New("cache is disabled (set cache.path)")
	}
	cache, db, err := metadata.Open(cfg.Cache.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	return cache, func() { _ = db.Close() }, nil
}

func runCacheForget(ctx context.Context, svc *metadata.TMDBService, appendTo, args []string, out io.Writer) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid TMDB id %q", arg)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		if err := svc.Invalidate(ctx, id, appendTo); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Forgot show %d\n", id)
	}
	return nil
}
