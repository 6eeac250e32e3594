// Package collector builds the show dataset: it pages through the discover
// endpoint for one network, enriches every show with a detail lookup and
// joins the two into output records.
package collector

//go:generate mockgen -source=collector.go -destination=mocks/mock_tmdb.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/showdata/internal/tmdb"
)

// TMDB is the subset of the TMDB API the collector uses.
type TMDB interface {
	DiscoverTV(ctx context.Context, opts tmdb.DiscoverOptions) (*tmdb.DiscoverResponse, error)
	GetTVDetails(ctx context.Context, showID int64, appendTo []string) (*tmdb.TVDetails, error)
}

// Config for a collection run.
type Config struct {
	NetworkID    int
	SortBy       string
	Append       []string      // append_to_response sub-resources for detail calls
	RequestDelay time.Duration // slept after every API call
}

// progressEvery is how often Enrich logs a progress line.
const progressEvery = 50

// Collector runs the catalog and detail stages against TMDB, one request at
// a time.
type Collector struct {
	api    TMDB
	config Config
	logger *slog.Logger
	now    func() time.Time
}

// New creates a collector.
func New(api TMDB, cfg Config, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		api:    api,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock overrides the time source used for age-in-days fields.
func (c *Collector) SetClock(now func() time.Time) {
	c.now = now
}

// pause sleeps the configured request delay, returning early with the
// context's error if it is canceled.
func (c *Collector) pause(ctx context.Context) error {
	if c.config.RequestDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.config.RequestDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
