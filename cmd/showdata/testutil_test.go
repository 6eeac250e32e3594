package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/showdata/internal/config"
)

// fakeTMDB is an httptest.Server that answers by request path and counts
// calls per path.
type fakeTMDB struct {
	t      *testing.T
	routes map[string]http.HandlerFunc

	mu    sync.Mutex
	calls map[string]int
}

func newFakeTMDB(t *testing.T) *fakeTMDB {
	t.Helper()
	return &fakeTMDB{t: t, routes: make(map[string]http.HandlerFunc), calls: make(map[string]int)}
}

// RespondJSON answers path with v encoded as JSON.
func (f *fakeTMDB) RespondJSON(path string, v any) *fakeTMDB {
	f.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(f.t, w, v)
	}
	return f
}

// RespondRaw answers path with body as-is.
func (f *fakeTMDB) RespondRaw(path, body string) *fakeTMDB {
	f.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
	return f
}

// RespondStatus answers path with just a status code.
func (f *fakeTMDB) RespondStatus(path string, code int) *fakeTMDB {
	f.routes[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}
	return f
}

// Handle routes path to a custom handler.
func (f *fakeTMDB) Handle(path string, h http.HandlerFunc) *fakeTMDB {
	f.routes[path] = h
	return f
}

// Build starts the server; it is closed when the test ends.
func (f *fakeTMDB) Build() *httptest.Server {
	f.t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(f.t, http.MethodGet, r.Method, "unexpected request method")
		assert.Equal(f.t, "test-key", r.URL.Query().Get("api_key"))

		f.mu.Lock()
		f.calls[r.URL.Path]++
		f.mu.Unlock()

		h, ok := f.routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	f.t.Cleanup(srv.Close)
	return srv
}

// Calls returns how often path was requested.
func (f *fakeTMDB) Calls(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

// respondJSON writes a JSON response with proper content-type header.
func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

// testConfig returns a config pointed at baseURL with no request delay.
func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.TMDB.APIKey = "test-key"
	cfg.TMDB.BaseURL = baseURL
	cfg.TMDB.RequestDelay = 0
	cfg.Output.Path = t.TempDir() + "/out/shows.csv"
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
