package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/showdata/internal/tmdb"
)

const payload = `{
	"id": 66732,
	"name": "Stranger Things",
	"adult": false,
	"genres": [{"id": 18, "name": "Drama"}, {"id": 9648, "name": "Mystery"}],
	"videos": {"results": []},
	"external_ids": {"imdb_id": "tt4574334", "tvdb_id": 305288},
	"last_episode_to_air": null,
	"languages": []
}`

func TestShape(t *testing.T) {
	fields, err := Shape(json.RawMessage(payload))
	require.NoError(t, err)

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"id", "name", "adult", "genres", "videos", "external_ids", "last_episode_to_air", "languages"}, keys,
		"keys keep document order")

	assert.Equal(t, Field{Key: "id", Kind: "scalar", Value: "66732"}, fields[0])
	assert.Equal(t, "Stranger Things", fields[1].Value, "strings are unquoted")
	assert.Equal(t, "false", fields[2].Value)

	assert.Equal(t, "list", fields[3].Kind)
	assert.Equal(t, 2, fields[3].Length)
	assert.Equal(t, `{"id":18,"name":"Drama"}`, fields[3].First)

	assert.Equal(t, "object", fields[5].Kind)
	assert.Equal(t, []string{"imdb_id", "tvdb_id"}, fields[5].Keys)

	assert.Equal(t, "null", fields[6].Kind)
	assert.Equal(t, 0, fields[7].Length)
	assert.Empty(t, fields[7].First)
}

func TestShape_EscapedString(t *testing.T) {
	fields, err := Shape(json.RawMessage(`{"tagline": "Caf\u00e9 \"noir\"", "rating": 8.25}`))
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, `Café "noir"`, fields[0].Value)
	assert.Equal(t, "8.25", fields[1].Value)
}

func TestShape_NotObject(t *testing.T) {
	_, err := Shape(json.RawMessage(`[1, 2]`))
	assert.Error(t, err)

	_, err = Shape(json.RawMessage(`{"a":`))
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Describe(&buf, json.RawMessage(payload)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "{\n  \"id\": 66732,"), "payload is indented first")
	assert.Contains(t, out, "AVAILABLE PARAMETERS:")
	assert.Contains(t, out, "name: Stranger Things\n")
	assert.Contains(t, out, "genres: list (length: 2)\n  Example: {\"id\":18,\"name\":\"Drama\"}\n")
	assert.Contains(t, out, "languages: list (length: 0)\n")
	assert.Contains(t, out, "external_ids: object\n  Keys: [imdb_id, tvdb_id]\n")
	assert.Contains(t, out, "last_episode_to_air: null\n")
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/tv/66732", r.URL.Path)
		assert.Equal(t, "credits,keywords,content_ratings,external_ids,videos", r.URL.Query().Get("append_to_response"))
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := tmdb.NewClient("test-key", tmdb.WithBaseURL(server.URL))

	raw, err := Fetch(context.Background(), client, 66732)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw))
}

func TestFetch_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := tmdb.NewClient("bad-key", tmdb.WithBaseURL(server.URL))

	_, err := Fetch(context.Background(), client, 66732)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, tmdb.StatusCode(err))
}
