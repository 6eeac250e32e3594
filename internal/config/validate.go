package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	// TMDB validation
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		errs = append(errs, "tmdb.api_key: required (or set "+APIKeyEnv+")")
	}
	if u, err := url.Parse(c.TMDB.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("tmdb.base_url: must be an absolute URL, got %q", c.TMDB.BaseURL))
	}
	if c.TMDB.NetworkID < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.network_id: must be positive, got %d", c.TMDB.NetworkID))
	}
	if c.TMDB.RequestDelay < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.request_delay: must not be negative, got %s", c.TMDB.RequestDelay))
	}
	if c.TMDB.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.timeout: must not be negative, got %s", c.TMDB.Timeout))
	}
	if c.TMDB.CacheSize < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.cache_size: must not be negative, got %d", c.TMDB.CacheSize))
	}
	if c.TMDB.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("tmdb.cache_ttl: must not be negative, got %s", c.TMDB.CacheTTL))
	}
	for _, name := range c.TMDB.Append {
		if strings.TrimSpace(name) == "" || strings.Contains(name, ",") {
			errs = append(errs, fmt.Sprintf("tmdb.append: invalid sub-resource %q", name))
		}
	}

	if c.Collect.Pages < 1 || c.Collect.Pages > 500 {
		errs = append(errs, fmt.Sprintf("collect.pages: must be between 1 and 500, got %d", c.Collect.Pages))
	}

	if strings.TrimSpace(c.Output.Path) == "" {
		errs = append(errs, "output.path: required")
	}

	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl: must not be negative, got %s", c.Cache.TTL))
	}

	return errs
}
