package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/showdata/internal/tmdb"
)

// Cache key prefixes
const keyPrefixTV = "tmdb:tv:"

// TMDBService provides cached access to TMDB show details. Discover pages are
// passed through uncached since their ordering moves with popularity.
type TMDBService struct {
	client *tmdb.Client
	cache  *Cache
	ttl    time.Duration
	log    *slog.Logger
}

// NewTMDBService creates a new TMDB service.
func NewTMDBService(client *tmdb.Client, cache *Cache, ttl time.Duration, log *slog.Logger) *TMDBService {
	return &TMDBService{
		client: client,
		cache:  cache,
		ttl:    ttl,
		log:    log,
	}
}

func tvKey(showID int64, appendTo []string) string {
	return fmt.Sprintf("%s%d:%s", keyPrefixTV, showID, strings.Join(appendTo, ","))
}

// DiscoverTV fetches one discover page straight from the API.
func (s *TMDBService) DiscoverTV(ctx context.Context, opts tmdb.DiscoverOptions) (*tmdb.DiscoverResponse, error) {
	return s.client.DiscoverTV(ctx, opts)
}

// GetTVDetails fetches show details by TMDB ID (cached).
func (s *TMDBService) GetTVDetails(ctx context.Context, showID int64, appendTo []string) (*tmdb.TVDetails, error) {
	key := tvKey(showID, appendTo)

	// Check cache first
	if data, ok := s.cache.Get(ctx, key); ok {
		var details tmdb.TVDetails
		if err := json.Unmarshal(data, &details); err == nil {
			if s.log != nil {
				s.log.Debug("cache hit for show", "tmdb_id", showID, "name", details.Name)
			}
			return &details, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if s.log != nil {
			s.log.Warn("failed to unmarshal cached show", "tmdb_id", showID)
		}
	}

	details, err := s.client.GetTVDetails(ctx, showID, appendTo)
	if err != nil {
		return nil, fmt.Errorf("get tv details: %w", err)
	}

	data, err := json.Marshal(details)
	if err != nil {
		// Log but don't fail the operation
		if s.log != nil {
			s.log.Warn("failed to marshal show for cache", "tmdb_id", showID, "error", err)
		}
		return details, nil
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		if s.log != nil {
			s.log.Warn("failed to cache show", "tmdb_id", showID, "error", err)
		}
	}

	return details, nil
}

// Invalidate removes cached details for a show under the given append list.
func (s *TMDBService) Invalidate(ctx context.Context, showID int64, appendTo []string) error {
	if err := s.cache.Delete(ctx, tvKey(showID, appendTo)); err != nil {
		return fmt.Errorf("invalidate show %d: %w", showID, err)
	}
	return nil
}
