// Package report computes descriptive statistics over a collected dataset
// and renders them for the console.
package report

import (
	"sort"
	"strings"

	"github.com/vmunix/showdata/internal/collector"
)

const topGenres = 5

// Count is one value of a frequency table.
type Count struct {
	Value string
	N     int
}

// Summary holds the statistics printed after a collection run.
type Summary struct {
	Rows   int
	Failed int

	// Statuses counts rows per status, most frequent first. Rows with no
	// status are not counted.
	Statuses []Count

	RatingMean   float64
	RatingMedian float64

	// Nil when no row has a season count.
	SeasonsMean *float64
	SeasonsMax  *int

	// TopGenres is the five most frequent genre tokens.
	TopGenres []Count
}

// Summarize computes a Summary over records. failed is the enrichment
// failure count reported by the collector.
func Summarize(records []collector.Record, failed int) Summary {
	s := Summary{Rows: len(records), Failed: failed}

	statuses := newCounter()
	genres := newCounter()
	ratings := make([]float64, 0, len(records))
	var seasonSum, seasonN int

	for _, r := range records {
		ratings = append(ratings, r.Summary.VoteAverage)

		d := r.Detail
		if d == nil {
			continue
		}
		if d.Status != nil {
			statuses.add(*d.Status)
		}
		if d.NumSeasons != nil {
			n := *d.NumSeasons
			seasonSum += n
			seasonN++
			if s.SeasonsMax == nil || n > *s.SeasonsMax {
				s.SeasonsMax = &n
			}
		}
		for _, g := range strings.Split(d.Genres, ",") {
			if g = strings.TrimSpace(g); g != "" {
				genres.add(g)
			}
		}
	}

	s.Statuses = statuses.sorted()
	s.TopGenres = genres.sorted()
	if len(s.TopGenres) > topGenres {
		s.TopGenres = s.TopGenres[:topGenres]
	}

	if len(ratings) > 0 {
		s.RatingMean = mean(ratings)
		s.RatingMedian = median(ratings)
	}
	if seasonN > 0 {
		avg := float64(seasonSum) / float64(seasonN)
		s.SeasonsMean = &avg
	}
	return s
}

// counter is a frequency table that remembers first-seen order for ties.
type counter struct {
	order []string
	n     map[string]int
}

func newCounter() *counter {
	return &counter{n: make(map[string]int)}
}

func (c *counter) add(v string) {
	if _, ok := c.n[v]; !ok {
		c.order = append(c.order, v)
	}
	c.n[v]++
}

func (c *counter) sorted() []Count {
	out := make([]Count, len(c.order))
	for i, v := range c.order {
		out[i] = Count{Value: v, N: c.n[v]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].N > out[j].N
	})
	return out
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
