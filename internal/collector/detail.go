package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/showdata/internal/tmdb"
)

const (
	keywordLimit  = 5
	ratingCountry = "US"
	airDateLayout = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
	listSeparator = ", "
)

// ShowDetail holds the fields derived from one /tv/{id} payload. Nil pointers
// mean the value was missing upstream or could not be derived.
type ShowDetail struct {
	Status               *string
	InProduction         *bool
	NumSeasons           *int
	NumEpisodes          *int
	Genres               string
	Type                 *string
	OriginalLanguage     *string
	OriginCountry        string
	AvgEpisodeRuntime    *float64
	ShowAgeDays          *int
	DaysSinceLastEpisode *int
	Keywords             string
	LastAirDate          *string
	USContentRating      *string
	IMDBID               *string
	CreatedBy            string
	Homepage             *string
}

// ExtractDetail derives a ShowDetail from a detail payload. now anchors the
// age-in-days fields; everything else depends only on the payload.
func ExtractDetail(d *tmdb.TVDetails, now time.Time) ShowDetail {
	detail := ShowDetail{
		Status:               d.Status,
		InProduction:         d.InProduction,
		NumSeasons:           d.NumberOfSeasons,
		NumEpisodes:          d.NumberOfEpisodes,
		Type:                 d.Type,
		OriginalLanguage:     d.OriginalLanguage,
		OriginCountry:        strings.Join(d.OriginCountry, listSeparator),
		AvgEpisodeRuntime:    mean(d.EpisodeRunTime),
		ShowAgeDays:          daysSince(d.FirstAirDate, now),
		DaysSinceLastEpisode: daysSince(d.LastAirDate, now),
		LastAirDate:          d.LastAirDate,
		Homepage:             d.Homepage,
	}

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	detail.Genres = strings.Join(genres, listSeparator)

	if d.Keywords != nil {
		kws := d.Keywords.Results
		if len(kws) > keywordLimit {
			kws = kws[:keywordLimit]
		}
		names := make([]string, 0, len(kws))
		for _, k := range kws {
			names = append(names, k.Name)
		}
		detail.Keywords = strings.Join(names, listSeparator)
	}

	if d.ContentRatings != nil {
		for _, r := range d.ContentRatings.Results {
			if r.Country == ratingCountry {
				rating := r.Rating
				detail.USContentRating = &rating
				break
			}
		}
	}

	if d.ExternalIDs != nil {
		detail.IMDBID = d.ExternalIDs.IMDBID
	}

	creators := make([]string, 0, len(d.CreatedBy))
	for _, p := range d.CreatedBy {
		creators = append(creators, p.Name)
	}
	detail.CreatedBy = strings.Join(creators, listSeparator)

	return detail
}

func mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	avg := sum / float64(len(xs))
	return &avg
}

// daysSince returns whole calendar days from a YYYY-MM-DD date to now's date.
// Empty or unparseable dates yield nil.
func daysSince(date *string, now time.Time) *int {
	if date == nil || *date == "" {
		return nil
	}
	t, err := time.Parse(airDateLayout, *date)
	if err != nil {
		return nil
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int((today.Unix() - t.Unix()) / secondsPerDay)
	return &days
}

// FetchDetail looks up one show and derives its detail record. Any error
// means the detail is unavailable for this show.
func (c *Collector) FetchDetail(ctx context.Context, showID int64) (*ShowDetail, error) {
	payload, err := c.api.GetTVDetails(ctx, showID, c.config.Append)
	if err != nil {
		return nil, fmt.Errorf("fetch detail %d: %w", showID, err)
	}
	detail := ExtractDetail(payload, c.now())
	return &detail, nil
}

// EnrichResult is the outcome of Enrich. Details is index-aligned with the
// catalog passed in; a nil entry is a show whose lookup failed.
type EnrichResult struct {
	Details []*ShowDetail
	Failed  int
}

// Succeeded returns the number of shows with a detail record.
func (r EnrichResult) Succeeded() int {
	return len(r.Details) - r.Failed
}

// Enrich fetches details for every show in catalog order, sleeping the
// request delay after each call whatever its outcome. Failures are counted and
// skipped; only context cancellation stops the batch.
func (c *Collector) Enrich(ctx context.Context, catalog []ShowSummary) (EnrichResult, error) {
	result := EnrichResult{Details: make([]*ShowDetail, len(catalog))}

	for i, show := range catalog {
		detail, err := c.FetchDetail(ctx, show.ID)
		switch {
		case err != nil && ctx.Err() != nil:
			return result, fmt.Errorf("enrich: %w", ctx.Err())
		case err != nil:
			result.Failed++
			c.logger.Warn("detail unavailable",
				"tmdb_id", show.ID,
				"name", show.Name,
				"status", tmdb.StatusCode(err),
				"error", err)
		default:
			result.Details[i] = detail
		}

		if err := c.pause(ctx); err != nil {
			return result, fmt.Errorf("enrich: %w", err)
		}

		if (i+1)%progressEvery == 0 {
			c.logger.Info("enrichment progress", "processed", i+1, "total", len(catalog))
		}
	}

	return result, nil
}
