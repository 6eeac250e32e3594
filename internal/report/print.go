package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vmunix/showdata/internal/collector"
)

const sampleRows = 10

var rule = strings.Repeat("=", 80)

// Print writes the summary followed by a sample of the first records.
func Print(w io.Writer, s Summary, records []collector.Record) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString("DATASET SUMMARY\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(p.Sprintf("Total shows collected: %d\n", s.Rows))
	b.WriteString(p.Sprintf("Detail lookups failed: %d\n\n", s.Failed))

	b.WriteString("Status breakdown:\n")
	b.WriteString(countTable("status", s.Statuses))
	b.WriteString("\n\n")

	b.WriteString("Rating statistics:\n")
	if s.Rows == 0 {
		b.WriteString("  no rows\n")
	} else {
		b.WriteString(p.Sprintf("  Average rating: %.2f\n", s.RatingMean))
		b.WriteString(p.Sprintf("  Median rating:  %.2f\n", s.RatingMedian))
	}
	b.WriteString("\n")

	b.WriteString("Season statistics:\n")
	if s.SeasonsMean == nil {
		b.WriteString("  no season counts\n")
	} else {
		b.WriteString(p.Sprintf("  Average seasons: %.2f\n", *s.SeasonsMean))
		b.WriteString(p.Sprintf("  Max seasons:     %d\n", *s.SeasonsMax))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Genre breakdown (top %d):\n", topGenres)
	b.WriteString(countTable("genre", s.TopGenres))
	b.WriteString("\n\n")

	b.WriteString("Sample of collected data:\n")
	b.WriteString(sampleTable(records))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func countTable(label string, counts []Count) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{label, "count"})
	for _, c := range counts {
		tw.AppendRow(table.Row{c.Value, c.N})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func sampleTable(records []collector.Record) string {
	if len(records) > sampleRows {
		records = records[:sampleRows]
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"name", "status", "vote_average", "num_seasons", "genres"})
	for _, r := range records {
		var status, seasons, genres string
		if d := r.Detail; d != nil {
			if d.Status != nil {
				status = *d.Status
			}
			if d.NumSeasons != nil {
				seasons = fmt.Sprintf("%d", *d.NumSeasons)
			}
			genres = d.Genres
		}
		tw.AppendRow(table.Row{r.Summary.Name, status, fmt.Sprintf("%.1f", r.Summary.VoteAverage), seasons, genres})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
