package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/showdata/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without calling TMDB.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	out := cmd.OutOrStdout()

	cfg, resolved, err := config.Resolve(path)
	var configErr *config.Error
	switch {
	case errors.As(err, &configErr):
		_, _ = fmt.Fprintf(out, "Validating %s...\n\n", configErr.Source())
		printConfigErrors(out, configErr)
		return fmt.Errorf("configuration invalid")
	case err != nil:
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Validating %s...\n\n", (&config.Error{Path: resolved}).Source())

	printConfigSummary(out, cfg)
	_, _ = fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		_, _ = fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			_, _ = fmt.Fprintf(w, "  - %s\n", m)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		_, _ = fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", err)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(w, "Configuration Summary:")
	_, _ = fmt.Fprintf(w, "  TMDB:     %s (network %d, %s)\n", cfg.TMDB.BaseURL, cfg.TMDB.NetworkID, cfg.TMDB.SortBy)
	_, _ = fmt.Fprintf(w, "  Append:   %s\n", strings.Join(cfg.TMDB.Append, ","))
	_, _ = fmt.Fprintf(w, "  Delay:    %s (timeout %s)\n", cfg.TMDB.RequestDelay, cfg.TMDB.Timeout)
	_, _ = fmt.Fprintf(w, "  Memory:   %d details (ttl %s)\n", cfg.TMDB.CacheSize, cfg.TMDB.CacheTTL)
	_, _ = fmt.Fprintf(w, "  Pages:    %d\n", cfg.Collect.Pages)
	_, _ = fmt.Fprintf(w, "  Output:   %s\n", cfg.Output.Path)

	merge := "aligned"
	if cfg.Merge.Positional {
		merge = "positional"
	}
	_, _ = fmt.Fprintf(w, "  Merge:    %s\n", merge)

	if cfg.Cache.Path != "" {
		_, _ = fmt.Fprintf(w, "  Cache:    %s (ttl %s)\n", cfg.Cache.Path, cfg.Cache.TTL)
	} else {
		_, _ = fmt.Fprintln(w, "  Cache:    disabled")
	}
	_, _ = fmt.Fprintf(w, "  Log:      %s\n", cfg.LogLevel)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, configForce); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
