package collector

import (
	"context"
	"fmt"

	"github.com/vmunix/showdata/internal/tmdb"
)

// ShowSummary is one discover entry.
type ShowSummary struct {
	ID           int64
	Name         string
	FirstAirDate *string // nil when TMDB has no date
	Popularity   float64
	VoteAverage  float64
	VoteCount    int
}

func summaryFromResult(r tmdb.TVResult) ShowSummary {
	s := ShowSummary{
		ID:          r.ID,
		Name:        r.Name,
		Popularity:  r.Popularity,
		VoteAverage: r.VoteAverage,
		VoteCount:   r.VoteCount,
	}
	if r.FirstAirDate != "" {
		date := r.FirstAirDate
		s.FirstAirDate = &date
	}
	return s
}

// FetchCatalog pages through discover results for the configured network,
// pages 1..pages inclusive. A failed page is logged and skipped without
// retry, so the result may hold fewer shows than requested. Results keep page
// order, then API order within a page.
func (c *Collector) FetchCatalog(ctx context.Context, pages int) ([]ShowSummary, error) {
	var shows []ShowSummary

	for page := 1; page <= pages; page++ {
		resp, err := c.api.DiscoverTV(ctx, tmdb.DiscoverOptions{
			Page:      page,
			NetworkID: c.config.NetworkID,
			SortBy:    c.config.SortBy,
		})
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, fmt.Errorf("fetch catalog page %d: %w", page, ctx.Err())
		case err != nil:
			c.logger.Warn("catalog page failed",
				"page", page,
				"status", tmdb.StatusCode(err),
				"error", err)
		default:
			for _, r := range resp.Results {
				shows = append(shows, summaryFromResult(r))
			}
			c.logger.Info("fetched catalog page",
				"page", page,
				"pages", pages,
				"shows", len(resp.Results))
		}

		if err := c.pause(ctx); err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
	}

	return shows, nil
}
