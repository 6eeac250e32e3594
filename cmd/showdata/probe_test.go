package main

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/showdata/internal/tmdb"
)

func TestRunProbe_ByID(t *testing.T) {
	srv := newFakeTMDB(t).
		Handle("/3/tv/66732", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "credits,keywords,content_ratings,external_ids,videos", r.URL.Query().Get("append_to_response"))
			_, _ = w.Write([]byte(`{"id":66732,"name":"Stranger Things","genres":[{"id":18,"name":"Drama"}]}`))
		}).
		Build()

	client := tmdb.NewClient("test-key", tmdb.WithBaseURL(srv.URL))

	var out bytes.Buffer
	require.NoError(t, runProbe(context.Background(), client, "66732", &out, discardLogger()))
	assert.Contains(t, out.String(), "name: Stranger Things\n")
	assert.Contains(t, out.String(), "genres: list (length: 1)")
}

func TestRunProbe_ByName(t *testing.T) {
	f := newFakeTMDB(t).
		RespondRaw("/3/search/tv", `{"page":1,"results":[{"id":93405,"name":"Squid Game"},{"id":5,"name":"Squid"}]}`).
		RespondRaw("/3/tv/93405", `{"id":93405,"name":"Squid Game"}`)
	srv := f.Build()

	client := tmdb.NewClient("test-key", tmdb.WithBaseURL(srv.URL))

	var out bytes.Buffer
	require.NoError(t, runProbe(context.Background(), client, "squid game", &out, discardLogger()))
	assert.Equal(t, 1, f.Calls("/3/tv/93405"))
	assert.Contains(t, out.String(), "id: 93405")
}

func TestRunProbe_NotFound(t *testing.T) {
	srv := newFakeTMDB(t).Build()
	client := tmdb.NewClient("test-key", tmdb.WithBaseURL(srv.URL))

	err := runProbe(context.Background(), client, "1", &bytes.Buffer{}, discardLogger())
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
}
