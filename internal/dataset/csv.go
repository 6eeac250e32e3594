// Package dataset writes merged show records to a flat CSV file.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vmunix/showdata/internal/collector"
)

// Columns is the fixed header row, in output order.
var Columns = []string{
	"id",
	"name",
	"first_air_date",
	"popularity",
	"vote_average",
	"vote_count",
	"status",
	"in_production",
	"num_seasons",
	"num_episodes",
	"genres",
	"type",
	"original_language",
	"origin_country",
	"avg_episode_runtime",
	"show_age_days",
	"days_since_last_episode",
	"keywords",
	"last_air_date",
	"us_content_rating",
	"imdb_id",
	"created_by",
	"homepage",
}

// WriteCSV writes records to path, creating parent directories and
// replacing any existing file.
func WriteCSV(path string, records []collector.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Write encodes the header and one row per record to w.
func Write(w io.Writer, records []collector.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Row renders one record in Columns order. Absent values become empty cells.
func Row(r collector.Record) []string {
	s := r.Summary
	row := make([]string, 0, len(Columns))
	row = append(row,
		strconv.FormatInt(s.ID, 10),
		s.Name,
		str(s.FirstAirDate),
		formatFloat(s.Popularity),
		formatFloat(s.VoteAverage),
		strconv.Itoa(s.VoteCount),
	)

	d := r.Detail
	if d == nil {
		d = &collector.ShowDetail{}
	}
	row = append(row,
		str(d.Status),
		boolean(d.InProduction),
		integer(d.NumSeasons),
		integer(d.NumEpisodes),
		d.Genres,
		str(d.Type),
		str(d.OriginalLanguage),
		d.OriginCountry,
		float(d.AvgEpisodeRuntime),
		integer(d.ShowAgeDays),
		integer(d.DaysSinceLastEpisode),
		d.Keywords,
		str(d.LastAirDate),
		str(d.USContentRating),
		str(d.IMDBID),
		d.CreatedBy,
		str(d.Homepage),
	)
	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func integer(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func float(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func boolean(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
