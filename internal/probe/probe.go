// Package probe inspects a single TMDB show payload: it dumps the raw detail
// response with every sub-resource expanded and summarizes its shape.
package probe

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vmunix/showdata/internal/tmdb"
)

// Append lists the sub-resources expanded for a probe.
var Append = []string{"credits", "keywords", "content_ratings", "external_ids", "videos"}

// API is the subset of the TMDB client a probe needs.
type API interface {
	GetTVDetailsRaw(ctx context.Context, showID int64, appendTo []string) (json.RawMessage, error)
	SearchTV(ctx context.Context, query string) (*tmdb.SearchResponse, error)
}

// Fetch returns the raw detail payload for showID.
func Fetch(ctx context.Context, api API, showID int64) (json.RawMessage, error) {
	raw, err := api.GetTVDetailsRaw(ctx, showID, Append)
	if err != nil {
		return nil, fmt.Errorf("probe show %d: %w", showID, err)
	}
	return raw, nil
}
