package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org"

// ErrNotFound is returned when a show doesn't exist in TMDB.
var ErrNotFound = errors.New("show not found")

// StatusError reports a non-200 response from TMDB.
type StatusError struct {
	Endpoint string
	Code     int
	Status   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API error: %s returned %s", e.Endpoint, e.Status)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// *StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	cache      *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLanguage sets the language query parameter sent with every request.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = strings.TrimSpace(lang)
	}
}

// WithCache sets the in-process detail cache size and TTL.
func WithCache(size int, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(size, ttl)
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheSize, defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DiscoverOptions filters a /discover/tv query.
type DiscoverOptions struct {
	Page      int
	NetworkID int
	SortBy    string // e.g. "popularity.desc"
}

// DiscoverTV fetches one page of the TV discover endpoint.
func (c *Client) DiscoverTV(ctx context.Context, opts DiscoverOptions) (*DiscoverResponse, error) {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.NetworkID > 0 {
		params.Set("with_networks", strconv.Itoa(opts.NetworkID))
	}
	if opts.SortBy != "" {
		params.Set("sort_by", opts.SortBy)
	}

	var payload DiscoverResponse
	if err := c.getJSON(ctx, "/3/discover/tv", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchTV searches TV shows by name.
func (c *Client) SearchTV(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)

	var payload SearchResponse
	if err := c.getJSON(ctx, "/3/search/tv", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetTVDetails fetches show metadata by TMDB ID, expanding the named
// sub-resources via append_to_response.
func (c *Client) GetTVDetails(ctx context.Context, showID int64, appendTo []string) (*TVDetails, error) {
	key := detailKey(showID, appendTo)
	if details, ok := c.cache.get(key); ok {
		return details, nil
	}

	body, err := c.GetTVDetailsRaw(ctx, showID, appendTo)
	if err != nil {
		return nil, err
	}

	var details TVDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.cache.set(key, &details)
	return &details, nil
}

// GetTVDetailsRaw fetches the undecoded /tv/{id} body.
func (c *Client) GetTVDetailsRaw(ctx context.Context, showID int64, appendTo []string) (json.RawMessage, error) {
	if showID <= 0 {
		return nil, errors.New("show id must be positive")
	}
	params := url.Values{}
	if len(appendTo) > 0 {
		params.Set("append_to_response", strings.Join(appendTo, ","))
	}

	resp, err := c.do(ctx, fmt.Sprintf("/3/tv/%d", showID), params)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !json.Valid(bytes.TrimSpace(body)) {
		return nil, fmt.Errorf("decode response: invalid JSON from /3/tv/%d", showID)
	}
	return json.RawMessage(body), nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := c.do(ctx, path, params)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// do executes a GET and returns the response only for 200 OK. The caller
// owns the body.
func (c *Client) do(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, &StatusError{Endpoint: path, Code: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}
