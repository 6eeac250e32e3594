package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 3-show catalog where the lookup for show 2 failed.
func mergeFixture() ([]ShowSummary, []*ShowDetail) {
	catalog := []ShowSummary{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}, {ID: 3, Name: "Three"}}
	details := []*ShowDetail{{Genres: "one's genre"}, nil, {Genres: "three's genre"}}
	return catalog, details
}

func TestMerge_Aligned(t *testing.T) {
	catalog, details := mergeFixture()

	records := Merge(catalog, details, MergeAligned)

	require.Len(t, records, 3)
	assert.Equal(t, int64(1), records[0].Summary.ID)
	assert.Equal(t, "one's genre", records[0].Detail.Genres)
	assert.Nil(t, records[1].Detail, "failed show keeps empty detail columns")
	assert.Equal(t, "three's genre", records[2].Detail.Genres, "later rows stay with their own show")
}

func TestMerge_Positional(t *testing.T) {
	catalog, details := mergeFixture()

	records := Merge(catalog, details, MergePositional)

	require.Len(t, records, 3, "one row per catalog entry")
	assert.Equal(t, "one's genre", records[0].Detail.Genres)
	require.NotNil(t, records[1].Detail)
	assert.Equal(t, "three's genre", records[1].Detail.Genres, "show 2 receives show 3's detail")
	assert.Equal(t, int64(2), records[1].Summary.ID)
	assert.Nil(t, records[2].Detail, "trailing row has nothing left to pair with")
}

func TestMerge_NoFailuresModesAgree(t *testing.T) {
	catalog := []ShowSummary{{ID: 1}, {ID: 2}}
	details := []*ShowDetail{{Genres: "a"}, {Genres: "b"}}

	assert.Equal(t, Merge(catalog, details, MergeAligned), Merge(catalog, details, MergePositional))
}

func TestMerge_ShortDetails(t *testing.T) {
	records := Merge([]ShowSummary{{ID: 1}, {ID: 2}}, nil, MergeAligned)

	require.Len(t, records, 2)
	assert.Nil(t, records[0].Detail)
	assert.Nil(t, records[1].Detail)
}

func TestMergeMode_String(t *testing.T) {
	assert.Equal(t, "aligned", MergeAligned.String())
	assert.Equal(t, "positional", MergePositional.String())
	assert.Equal(t, "unknown", MergeMode(9).String())
}
