// Package tmdb provides a client for The Movie Database API.
package tmdb

// DiscoverResponse is one page of /discover/tv results.
type DiscoverResponse struct {
	Page         int        `json:"page"`
	Results      []TVResult `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// SearchResponse is one page of /search/tv results.
type SearchResponse = DiscoverResponse

// TVResult is the lightweight show entry returned by list endpoints.
type TVResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	FirstAirDate string  `json:"first_air_date"` // "2016-07-15", may be empty
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// TVDetails is the /tv/{id} payload with the sub-resources this project
// appends. Scalars are pointers so a missing key stays distinguishable from
// a zero value.
type TVDetails struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Status           *string   `json:"status"`
	InProduction     *bool     `json:"in_production"`
	NumberOfSeasons  *int      `json:"number_of_seasons"`
	NumberOfEpisodes *int      `json:"number_of_episodes"`
	Type             *string   `json:"type"`
	OriginalLanguage *string   `json:"original_language"`
	OriginCountry    []string  `json:"origin_country"`
	Genres           []Genre   `json:"genres"`
	EpisodeRunTime   []float64 `json:"episode_run_time"` // minutes
	FirstAirDate     *string   `json:"first_air_date"`
	LastAirDate      *string   `json:"last_air_date"`
	Homepage         *string   `json:"homepage"`
	CreatedBy        []Person  `json:"created_by"`

	// append_to_response sub-resources
	Keywords       *KeywordResults       `json:"keywords,omitempty"`
	ContentRatings *ContentRatingResults `json:"content_ratings,omitempty"`
	ExternalIDs    *ExternalIDs          `json:"external_ids,omitempty"`
}

// Genre represents a TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person is a creator credit.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Keyword is a single TMDB keyword.
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// KeywordResults wraps the keywords sub-resource. TV uses "results", not
// "keywords" like the movie endpoint.
type KeywordResults struct {
	Results []Keyword `json:"results"`
}

// ContentRating is a per-country certification, e.g. US / TV-MA.
type ContentRating struct {
	Country string `json:"iso_3166_1"`
	Rating  string `json:"rating"`
}

// ContentRatingResults wraps the content_ratings sub-resource.
type ContentRatingResults struct {
	Results []ContentRating `json:"results"`
}

// ExternalIDs wraps the external_ids sub-resource.
type ExternalIDs struct {
	IMDBID *string `json:"imdb_id"` // e.g., "tt4574334"
}
