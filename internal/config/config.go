// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied by Load and Default.
const (
	DefaultBaseURL      = "https://api.themoviedb.org"
	DefaultNetworkID    = 213 // Netflix
	DefaultSortBy       = "popularity.desc"
	DefaultRequestDelay = 250 * time.Millisecond
	DefaultPages        = 25
	DefaultOutputPath   = "data/netflix_shows_complete.csv"
	DefaultCacheTTL     = 24 * time.Hour
	DefaultLogLevel     = "info"

	// In-process detail cache and HTTP timeout for the TMDB client.
	DefaultClientCacheSize = 1024
	DefaultClientCacheTTL  = time.Hour
	DefaultTimeout         = 10 * time.Second

	// APIKeyEnv is read when the config supplies no key.
	APIKeyEnv = "TMDB_API_KEY"
)

// DefaultAppend is the append_to_response list for detail calls. credits is
// requested but not used by extraction.
var DefaultAppend = []string{"keywords", "content_ratings", "external_ids", "credits"}

// Config is the root configuration structure.
type Config struct {
	LogLevel string        `toml:"log_level"`
	TMDB     TMDBConfig    `toml:"tmdb"`
	Collect  CollectConfig `toml:"collect"`
	Output   OutputConfig  `toml:"output"`
	Merge    MergeConfig   `toml:"merge"`
	Cache    CacheConfig   `toml:"cache"`
}

type TMDBConfig struct {
	APIKey       string        `toml:"api_key"`
	BaseURL      string        `toml:"base_url"`
	Language     string        `toml:"language"`
	NetworkID    int           `toml:"network_id"`
	SortBy       string        `toml:"sort_by"`
	Append       []string      `toml:"append"`
	RequestDelay time.Duration `toml:"request_delay"`
	Timeout      time.Duration `toml:"timeout"`

	// In-process LRU of decoded detail payloads, per run.
	CacheSize int           `toml:"cache_size"`
	CacheTTL  time.Duration `toml:"cache_ttl"`
}

type CollectConfig struct {
	Pages int `toml:"pages"`
}

type OutputConfig struct {
	Path string `toml:"path"`
}

// MergeConfig selects how detail rows are joined to catalog rows.
// Positional reproduces the legacy behaviour where a failed detail shifts
// every later row.
type MergeConfig struct {
	Positional bool `toml:"positional"`
}

// CacheConfig configures the SQLite response cache. An empty Path disables it.
type CacheConfig struct {
	Path string        `toml:"path"`
	TTL  time.Duration `toml:"ttl"`
}

// Default returns a configuration with every default applied and the API key
// taken from the environment.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(toml.MetaData{})
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults(md)

	cfgErr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return &cfg, nil
}

// applyDefaults fills unset fields. Durations that may be zero are only
// defaulted when the key is absent from the file.
func (c *Config) applyDefaults(md toml.MetaData) {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = os.Getenv(APIKeyEnv)
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = DefaultBaseURL
	}
	if c.TMDB.NetworkID == 0 {
		c.TMDB.NetworkID = DefaultNetworkID
	}
	if c.TMDB.SortBy == "" {
		c.TMDB.SortBy = DefaultSortBy
	}
	if c.TMDB.Append == nil {
		c.TMDB.Append = append([]string(nil), DefaultAppend...)
	}
	if !md.IsDefined("tmdb", "request_delay") {
		c.TMDB.RequestDelay = DefaultRequestDelay
	}
	if c.TMDB.Timeout == 0 {
		c.TMDB.Timeout = DefaultTimeout
	}
	if c.TMDB.CacheSize == 0 {
		c.TMDB.CacheSize = DefaultClientCacheSize
	}
	if !md.IsDefined("tmdb", "cache_ttl") {
		c.TMDB.CacheTTL = DefaultClientCacheTTL
	}
	if c.Collect.Pages == 0 {
		c.Collect.Pages = DefaultPages
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if !md.IsDefined("cache", "ttl") {
		c.Cache.TTL = DefaultCacheTTL
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unresolved references are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		if ok && value != "" {
			return value
		}
		switch op {
		case ":-":
			return arg
		case ":?":
			missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
			return match
		}
		if ok {
			return value
		}
		missing = append(missing, name)
		return match // Leave unchanged if not found
	})
	return out, missing
}
