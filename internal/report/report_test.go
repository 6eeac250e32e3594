package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/showdata/internal/collector"
)

func ptr[T any](v T) *T { return &v }

func rec(name string, rating float64, status *string, seasons *int, genres string) collector.Record {
	return collector.Record{
		Summary: collector.ShowSummary{Name: name, VoteAverage: rating},
		Detail:  &collector.ShowDetail{Status: status, NumSeasons: seasons, Genres: genres},
	}
}

func TestSummarize(t *testing.T) {
	records := []collector.Record{
		rec("A", 8.0, ptr("Ended"), ptr(3), "Drama, Thriller"),
		rec("B", 6.0, ptr("Returning Series"), ptr(1), "Comedy"),
		rec("C", 7.0, ptr("Returning Series"), nil, "Drama,Comedy, "),
		{Summary: collector.ShowSummary{Name: "D", VoteAverage: 9.0}},
	}

	s := Summarize(records, 1)

	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, []Count{{"Returning Series", 2}, {"Ended", 1}}, s.Statuses)
	assert.InDelta(t, 7.5, s.RatingMean, 1e-9)
	assert.InDelta(t, 7.5, s.RatingMedian, 1e-9)
	require.NotNil(t, s.SeasonsMean)
	assert.InDelta(t, 2.0, *s.SeasonsMean, 1e-9, "mean over present values only")
	require.NotNil(t, s.SeasonsMax)
	assert.Equal(t, 3, *s.SeasonsMax)
	assert.Equal(t, []Count{{"Drama", 2}, {"Comedy", 2}, {"Thriller", 1}}, s.TopGenres)
}

func TestSummarize_TopGenresLimit(t *testing.T) {
	records := []collector.Record{
		rec("A", 1, nil, nil, "g1, g2, g3, g4, g5, g6"),
		rec("B", 1, nil, nil, "g6"),
	}

	s := Summarize(records, 0)

	require.Len(t, s.TopGenres, 5)
	assert.Equal(t, Count{"g6", 2}, s.TopGenres[0])
	assert.Equal(t, "g1", s.TopGenres[1].Value, "ties keep first-seen order")
	assert.Equal(t, "g4", s.TopGenres[4].Value)
}

func TestSummarize_MedianOdd(t *testing.T) {
	records := []collector.Record{
		{Summary: collector.ShowSummary{VoteAverage: 9}},
		{Summary: collector.ShowSummary{VoteAverage: 1}},
		{Summary: collector.ShowSummary{VoteAverage: 5}},
	}

	s := Summarize(records, 0)
	assert.Equal(t, 5.0, s.RatingMedian)
	assert.Nil(t, s.SeasonsMean)
	assert.Nil(t, s.SeasonsMax)
	assert.Empty(t, s.Statuses)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 0)
	assert.Equal(t, 0, s.Rows)
	assert.Equal(t, 0.0, s.RatingMean)
}

func TestPrint(t *testing.T) {
	var records []collector.Record
	for i := 0; i < 12; i++ {
		records = append(records, rec(string(rune('A'+i))+"-show", 7, ptr("Ended"), ptr(2), "Drama"))
	}
	s := Summarize(records, 3)
	s.Rows = 1234

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, s, records))
	out := buf.String()

	assert.Contains(t, out, "Total shows collected: 1,234")
	assert.Contains(t, out, "Detail lookups failed: 3")
	assert.Contains(t, out, "Average rating: 7.00")
	assert.Contains(t, out, "Max seasons:     2")
	assert.Contains(t, out, "Drama")
	assert.Contains(t, out, "J-show")
	assert.NotContains(t, out, "K-show", "sample is limited to the first 10 rows")
}

func TestPrint_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summarize(nil, 0), nil))

	out := buf.String()
	assert.Contains(t, out, "no rows")
	assert.Contains(t, out, "no season counts")
	assert.True(t, strings.HasPrefix(out, rule))
}
