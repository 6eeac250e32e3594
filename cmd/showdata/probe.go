package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/showdata/internal/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe <id|name>",
	Short: "Dump one show's full detail payload",
	Long: `Fetches the detail payload for one show with every sub-resource expanded,
prints it indented and lists the shape of each top-level key.

A non-numeric argument is searched for and the closest title is probed.`,
	Example: `  showdata probe 66732
  showdata probe "Squid Game"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With("component", "probe")
		return runProbe(cmd.Context(), newTMDBClient(cfg), args[0], cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(ctx context.Context, api probe.API, arg string, out io.Writer, logger *slog.Logger) error {
	showID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		match, err := probe.Resolve(ctx, api, arg)
		if err != nil {
			return err
		}
		logger.Info("resolved show", "query", arg, "tmdb_id", match.ID, "name", match.Name, "score", match.Score)
		showID = match.ID
	}

	raw, err := probe.Fetch(ctx, api, showID)
	if err != nil {
		return err
	}
	if err := probe.Describe(out, raw); err != nil {
		return fmt.Errorf("describe show %d: %w", showID, err)
	}
	return nil
}
