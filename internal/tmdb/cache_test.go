package tmdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := newCache(8, time.Hour)

	// Miss
	_, ok := c.get(detailKey(66732, nil))
	assert.False(t, ok, "empty cache should miss")

	// Set and hit
	c.set(detailKey(66732, nil), &TVDetails{ID: 66732, Name: "Stranger Things"})

	got, ok := c.get(detailKey(66732, nil))
	require.True(t, ok, "should hit after set")
	assert.Equal(t, "Stranger Things", got.Name)

	// Same ID with a different append list should miss
	_, ok = c.get(detailKey(66732, []string{"keywords"}))
	assert.False(t, ok, "different append list should miss")
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(8, 10*time.Millisecond)

	c.set("k", &TVDetails{ID: 1})

	// Should hit immediately
	_, ok := c.get("k")
	require.True(t, ok)

	// Wait for expiry
	time.Sleep(50 * time.Millisecond)

	// Should miss after expiry
	_, ok = c.get("k")
	assert.False(t, ok, "should miss after TTL")
}

func TestCache_Evicts(t *testing.T) {
	c := newCache(2, time.Hour)

	c.set("a", &TVDetails{ID: 1})
	c.set("b", &TVDetails{ID: 2})
	c.set("c", &TVDetails{ID: 3})

	assert.Equal(t, 2, c.len())
	_, ok := c.get("a")
	assert.False(t, ok, "oldest entry should be evicted")
}
