package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minScore is the lowest similarity accepted as a match.
const minScore = 0.70

// ErrNoMatch is returned when a search yields no acceptable candidate.
var ErrNoMatch = errors.New("no matching show")

// Match is the search result picked for a query.
type Match struct {
	ID    int64
	Name  string
	Score float64 // Jaro-Winkler similarity of normalized titles
}

// Resolve searches TMDB for query and returns the closest title. Candidates
// are compared on normalized names; ties keep the search ranking.
func Resolve(ctx context.Context, api API, query string) (Match, error) {
	resp, err := api.SearchTV(ctx, query)
	if err != nil {
		return Match{}, fmt.Errorf("search %q: %w", query, err)
	}

	want := normalizeTitle(query)
	var best Match
	for _, r := range resp.Results {
		score := float64(edlib.JaroWinklerSimilarity(want, normalizeTitle(r.Name)))
		if original := normalizeTitle(r.OriginalName); original != "" {
			if s := float64(edlib.JaroWinklerSimilarity(want, original)); s > score {
				score = s
			}
		}
		if score > best.Score {
			best = Match{ID: r.ID, Name: r.Name, Score: score}
		}
	}

	if best.Score < minScore {
		return Match{}, fmt.Errorf("search %q: %w", query, ErrNoMatch)
	}
	return best, nil
}

// normalizeTitle lower-cases, strips accents and drops punctuation.
func normalizeTitle(title string) string {
	s := strings.ToLower(title)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "'", "")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
