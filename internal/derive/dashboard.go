package derive

import (
	"github.com/leapstack-labs/filmlens/internal/dataset"
	"github.com/leapstack-labs/filmlens/internal/filter"
)

// DefaultTopN is the size of the top-rated chart.
const DefaultTopN = 10

// DefaultPreviewRows bounds the filtered-data preview table.
const DefaultPreviewRows = 5

// Options tunes dashboard assembly. The zero value uses the defaults.
type Options struct {
	TopN        int
	PreviewRows int
}

// TopRatedChart is the payload for the top-rated bar chart.
type TopRatedChart struct {
	Title   string       `json:"title"`
	XLabel  string       `json:"x_label"`
	YLabel  string       `json:"y_label"`
	Entries []RatedTitle `json:"entries"`
}

// TrendChart is the payload for the yearly mean rating line.
type TrendChart struct {
	Title  string     `json:"title"`
	XLabel string     `json:"x_label"`
	YLabel string     `json:"y_label"`
	Points []YearMean `json:"points"`
}

// RuntimeChart is the payload for the runtime histogram. Sample is the
// raw value list; binning is left to the presentation adapter.
type RuntimeChart struct {
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Sample []float64 `json:"sample"`
}

// GrossChart is the payload for the gross-vs-rating scatter.
type GrossChart struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Points []GrossPoint `json:"points"`
}

// CensorChart is the payload for the rating-by-censor-group
// distribution.
type CensorChart struct {
	Title  string         `json:"title"`
	XLabel string         `json:"x_label"`
	YLabel string         `json:"y_label"`
	Sample []CensorRating `json:"sample"`
}

// Preview is a bounded slice of the filtered view, the debug table the
// dashboard shows above the charts.
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Dashboard is everything one render pass needs: the filtered-row
// count, the preview, and one payload per chart. A nil chart means its
// schema preconditions failed or the filtered view was empty — the
// adapter skips it rather than erroring.
type Dashboard struct {
	State    filter.State   `json:"state"`
	RowCount int            `json:"row_count"`
	Preview  *Preview       `json:"preview,omitempty"`
	TopRated *TopRatedChart `json:"top_rated,omitempty"`
	Trend    *TrendChart    `json:"trend,omitempty"`
	Runtime  *RuntimeChart  `json:"runtime,omitempty"`
	Gross    *GrossChart    `json:"gross,omitempty"`
	Censor   *CensorChart   `json:"censor,omitempty"`
}

// BuildDashboard re-runs the whole pipeline for one filter state:
// filter the table, then derive every chart from the filtered view.
// This is the single entry point the interactive shells call on each
// control change; it is a pure function of (table, schema, state).
func BuildDashboard(t *dataset.Table, schema dataset.Schema, state filter.State, opts Options) *Dashboard {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}

	view := filter.Apply(t, schema, state)

	d := &Dashboard{
		State:    state,
		RowCount: view.Len(),
		Preview:  buildPreview(t, view, opts.PreviewRows),
	}

	if entries := TopRated(view, schema, opts.TopN); len(entries) > 0 {
		d.TopRated = &TopRatedChart{
			Title:   "Top 10 Highest Rated Movies",
			XLabel:  "Rating",
			YLabel:  "Movie Title",
			Entries: entries,
		}
	}
	if points := YearlyMeans(view, schema); len(points) > 0 {
		d.Trend = &TrendChart{
			Title:  "Average Rating by Year",
			XLabel: "Year",
			YLabel: "Average Rating",
			Points: points,
		}
	}
	if sample := RuntimeSample(view, schema); len(sample) > 0 {
		d.Runtime = &RuntimeChart{
			Title:  "Runtime Distribution",
			XLabel: "Runtime (minutes)",
			YLabel: "Number of Movies",
			Sample: sample,
		}
	}
	if points := GrossPoints(view, schema); len(points) > 0 {
		d.Gross = &GrossChart{
			Title:  "Total Gross by Rating",
			XLabel: "Rating",
			YLabel: "Total Gross (Millions USD)",
			Points: points,
		}
	}
	if sample := CensorSample(view, schema); len(sample) > 0 {
		d.Censor = &CensorChart{
			Title:  "Rating Distribution by Censor Group",
			XLabel: "Censor Group",
			YLabel: "Rating",
			Sample: sample,
		}
	}

	return d
}

func buildPreview(t *dataset.Table, view dataset.View, limit int) *Preview {
	if view.Len() == 0 {
		return nil
	}
	if limit > view.Len() {
		limit = view.Len()
	}

	p := &Preview{Columns: t.Columns}
	for i := 0; i < limit; i++ {
		row := make([]string, len(t.Columns))
		for c := range t.Columns {
			row[c] = view.Cell(i, c)
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}
