package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/filmlens/internal/charts"
	"github.com/leapstack-labs/filmlens/internal/cli/output"
	"github.com/leapstack-labs/filmlens/internal/derive"
	"github.com/leapstack-labs/filmlens/internal/filter"
)

// ReportOptions holds options for the report command.
type ReportOptions struct {
	Genre string
	Years string
	Width int
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the dashboard charts once and exit",
		Long: `Run the full pipeline for one filter state and print every chart.

Output adapts to environment:
  - Terminal: styled text charts
  - Piped/Scripted: markdown (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Full dataset
  filmlens report

  # Only dramas from the nineties, as JSON
  filmlens report --genre Drama --years 1990:1999 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Genre, "genre", filter.AllGenres, "Genre to filter by (default: all)")
	cmd.Flags().StringVar(&opts.Years, "years", "", "Year range as lo:hi (default: full observed span)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Chart width in characters")

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	state := cmdCtx.Session.DefaultState()
	if opts.Genre != "" {
		state.Genre = opts.Genre
	}
	if opts.Years != "" {
		lo, hi, err := parseYearRange(opts.Years)
		if err != nil {
			return err
		}
		state.YearLo, state.YearHi = lo, hi
	}

	dash := cmdCtx.Session.Render(state)
	bins := cmdCtx.Cfg.HistogramBins

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return reportJSON(r, dash, bins)
	default:
		return reportText(r, dash, bins, opts.Width)
	}
}

// reportOutput is the JSON shape: the dashboard plus the binned
// histogram and box summaries, which text mode derives on the fly.
type reportOutput struct {
	*derive.Dashboard
	RuntimeBins   []charts.Bin        `json:"runtime_bins,omitempty"`
	CensorSummary []charts.BoxSummary `json:"censor_summary,omitempty"`
}

func reportJSON(r *output.Renderer, dash *derive.Dashboard, bins int) error {
	out := reportOutput{Dashboard: dash}
	if dash.Runtime != nil {
		out.RuntimeBins = charts.Histogram(dash.Runtime.Sample, bins)
	}
	if dash.Censor != nil {
		out.CensorSummary = charts.BoxSummaries(dash.Censor.Sample)
	}

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func reportText(r *output.Renderer, dash *derive.Dashboard, bins, width int) error {
	r.Header(1, "Film Dataset Report")
	r.KeyValue("Genre", dash.State.Genre)
	r.KeyValue("Years", fmt.Sprintf("%d–%d", dash.State.YearLo, dash.State.YearHi))
	r.KeyValue("Rows", dash.RowCount)
	r.Println()

	if dash.RowCount == 0 {
		r.Println("No rows match the current filters.")
		return nil
	}

	if dash.Preview != nil {
		r.Header(2, "Filtered Data Preview")
		renderPreview(r, dash.Preview)
		r.Println()
	}

	if dash.TopRated != nil {
		renderChartHeader(r, dash.TopRated.Title, dash.TopRated.XLabel)
		r.Println(charts.RenderBars(dash.TopRated.Entries, width))
	}
	if dash.Trend != nil {
		renderChartHeader(r, dash.Trend.Title, dash.Trend.YLabel)
		r.Println(charts.RenderTrend(dash.Trend.Points, width))
	}
	if dash.Runtime != nil {
		renderChartHeader(r, dash.Runtime.Title, dash.Runtime.XLabel)
		r.Println(charts.RenderHistogram(charts.Histogram(dash.Runtime.Sample, bins), width))
	}
	if dash.Gross != nil {
		renderChartHeader(r, dash.Gross.Title, dash.Gross.YLabel)
		r.Println(charts.RenderScatter(dash.Gross.Points, width, 0))
	}
	if dash.Censor != nil {
		renderChartHeader(r, dash.Censor.Title, dash.Censor.YLabel)
		r.Println(charts.RenderBoxes(charts.BoxSummaries(dash.Censor.Sample), width))
	}

	return nil
}

func renderChartHeader(r *output.Renderer, title, axis string) {
	r.Header(2, title)
	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Styles().Subtle.Render(axis))
	}
}

func renderPreview(r *output.Renderer, p *derive.Preview) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(p.Columns))
	for i, c := range p.Columns {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, row := range p.Rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// parseYearRange parses "lo:hi" into an inclusive interval.
func parseYearRange(s string) (int, int, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid year range %q, want lo:hi", s)
	}
	loYear, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year range %q: %w", s, err)
	}
	hiYear, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year range %q: %w", s, err)
	}
	return loYear, hiYear, nil
}
