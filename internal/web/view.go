package web

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/leapstack-labs/filmlens/internal/charts"
	"github.com/leapstack-labs/filmlens/internal/derive"
	"github.com/leapstack-labs/filmlens/internal/filter"
)

// bar is one horizontal bar of a chart, width precomputed as a
// percentage of the largest value in the chart.
type bar struct {
	Label string
	Value string
	Width float64
}

// dot is one scatter point, positioned in percent of the plot area.
type dot struct {
	Title string
	X     float64
	Y     float64
}

// boxRow is one line of the censor box-plot table.
type boxRow struct {
	Group    string
	Count    int
	Min      string
	Q1       string
	Median   string
	Q3       string
	Max      string
	Outliers int
}

// chartView is one rendered chart section.
type chartView struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []bar
	Dots   []dot
	Boxes  []boxRow
}

// dashboardView is the fragment's template data.
type dashboardView struct {
	State    filter.State
	RowCount int
	Preview  *derive.Preview
	Charts   []chartView
}

// pageView is the full page's template data.
type pageView struct {
	Genres    []string
	YearMin   int
	YearMax   int
	HasYear   bool
	Dashboard dashboardView
}

func buildDashboardView(dash *derive.Dashboard, bins int) dashboardView {
	view := dashboardView{
		State:    dash.State,
		RowCount: dash.RowCount,
		Preview:  dash.Preview,
	}

	if dash.TopRated != nil {
		c := chartView{Title: dash.TopRated.Title, XLabel: dash.TopRated.XLabel, YLabel: dash.TopRated.YLabel}
		maxRating := 0.0
		for _, e := range dash.TopRated.Entries {
			if e.Rating > maxRating {
				maxRating = e.Rating
			}
		}
		for _, e := range dash.TopRated.Entries {
			c.Bars = append(c.Bars, bar{
				Label: e.Title,
				Value: fmt.Sprintf("%.1f", e.Rating),
				Width: widthPct(e.Rating, maxRating),
			})
		}
		view.Charts = append(view.Charts, c)
	}

	if dash.Trend != nil {
		c := chartView{Title: dash.Trend.Title, XLabel: dash.Trend.XLabel, YLabel: dash.Trend.YLabel}
		maxMean := 0.0
		for _, p := range dash.Trend.Points {
			if p.Mean > maxMean {
				maxMean = p.Mean
			}
		}
		for _, p := range dash.Trend.Points {
			c.Bars = append(c.Bars, bar{
				Label: fmt.Sprintf("%d", p.Year),
				Value: fmt.Sprintf("%.2f", p.Mean),
				Width: widthPct(p.Mean, maxMean),
			})
		}
		view.Charts = append(view.Charts, c)
	}

	if dash.Runtime != nil {
		c := chartView{Title: dash.Runtime.Title, XLabel: dash.Runtime.XLabel, YLabel: dash.Runtime.YLabel}
		hist := charts.Histogram(dash.Runtime.Sample, bins)
		maxCount := 0
		for _, b := range hist {
			if b.Count > maxCount {
				maxCount = b.Count
			}
		}
		for _, b := range hist {
			c.Bars = append(c.Bars, bar{
				Label: fmt.Sprintf("%.0f–%.0f", b.Lo, b.Hi),
				Value: fmt.Sprintf("%d", b.Count),
				Width: widthPct(float64(b.Count), float64(maxCount)),
			})
		}
		view.Charts = append(view.Charts, c)
	}

	if dash.Gross != nil {
		c := chartView{Title: dash.Gross.Title, XLabel: dash.Gross.XLabel, YLabel: dash.Gross.YLabel}
		pts := dash.Gross.Points
		xLo, xHi := pts[0].Rating, pts[0].Rating
		yLo, yHi := pts[0].Gross, pts[0].Gross
		for _, p := range pts[1:] {
			xLo, xHi = minf(xLo, p.Rating), maxf(xHi, p.Rating)
			yLo, yHi = minf(yLo, p.Gross), maxf(yHi, p.Gross)
		}
		for _, p := range pts {
			c.Dots = append(c.Dots, dot{
				Title: fmt.Sprintf("%s: %.1f / $%.1fM", p.Title, p.Rating, p.Gross),
				X:     spanPct(p.Rating, xLo, xHi),
				Y:     100 - spanPct(p.Gross, yLo, yHi),
			})
		}
		view.Charts = append(view.Charts, c)
	}

	if dash.Censor != nil {
		c := chartView{Title: dash.Censor.Title, XLabel: dash.Censor.XLabel, YLabel: dash.Censor.YLabel}
		for _, s := range charts.BoxSummaries(dash.Censor.Sample) {
			c.Boxes = append(c.Boxes, boxRow{
				Group:    string(s.Group),
				Count:    s.Count,
				Min:      fmt.Sprintf("%.1f", s.Min),
				Q1:       fmt.Sprintf("%.2f", s.Q1),
				Median:   fmt.Sprintf("%.2f", s.Median),
				Q3:       fmt.Sprintf("%.2f", s.Q3),
				Max:      fmt.Sprintf("%.1f", s.Max),
				Outliers: len(s.Outliers),
			})
		}
		view.Charts = append(view.Charts, c)
	}

	return view
}

func widthPct(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max * 100
}

func spanPct(v, lo, hi float64) float64 {
	if hi == lo {
		return 50
	}
	return (v - lo) / (hi - lo) * 100
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Bind attributes must use kebab keys (data-bind-year-lo): the HTML
// parser lowercases attribute names, and datastar's kebab-to-camel
// conversion is what recovers the yearLo/yearHi signal names the
// handler reads.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>filmlens</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; padding: 0 1rem; color: #1a1a2e; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.05rem; margin: 1.5rem 0 .5rem; }
.filters { display: flex; gap: 1rem; align-items: end; flex-wrap: wrap; margin-bottom: 1rem; }
.filters label { display: block; font-size: .8rem; color: #555; }
.meta { color: #555; font-size: .85rem; }
.axis { color: #888; font-size: .75rem; }
.bar-row { display: grid; grid-template-columns: 14rem 1fr 3rem; gap: .5rem; align-items: center; font-size: .85rem; margin: 2px 0; }
.bar-row .label { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; text-align: right; }
.bar-row .bar { background: #4c6ef5; height: .9rem; border-radius: 2px; }
.scatter { position: relative; height: 18rem; border-left: 1px solid #ccc; border-bottom: 1px solid #ccc; margin: .5rem 0 1rem; }
.scatter .pt { position: absolute; width: 7px; height: 7px; border-radius: 50%; background: #e8590c; opacity: .7; transform: translate(-50%, -50%); }
table { border-collapse: collapse; font-size: .85rem; }
th, td { border: 1px solid #ddd; padding: .25rem .6rem; text-align: left; }
th { background: #f1f3f5; }
.empty { color: #888; font-style: italic; margin: 2rem 0; }
</style>
</head>
<body data-signals='{"genre":"{{.Dashboard.State.Genre}}","yearLo":{{.Dashboard.State.YearLo}},"yearHi":{{.Dashboard.State.YearHi}}}' data-on-load="@get('/updates')">
<h1>Film Dataset Dashboard</h1>
<div class="filters">
  <div>
    <label for="genre">Genre</label>
    <select id="genre" data-bind-genre data-on-change="@post('/dashboard')">
      {{range .Genres}}<option value="{{.}}">{{.}}</option>
      {{end}}</select>
  </div>
  {{if .HasYear}}
  <div>
    <label for="year-lo">From year</label>
    <input id="year-lo" type="number" min="{{.YearMin}}" max="{{.YearMax}}" data-bind-year-lo data-on-change="@post('/dashboard')">
  </div>
  <div>
    <label for="year-hi">To year</label>
    <input id="year-hi" type="number" min="{{.YearMin}}" max="{{.YearMax}}" data-bind-year-hi data-on-change="@post('/dashboard')">
  </div>
  {{end}}
</div>
{{template "dashboard" .Dashboard}}
</body>
</html>
`))

var dashboardTmpl = template.Must(pageTmpl.New("dashboard").Parse(`<main id="dashboard">
<p class="meta">{{.RowCount}} films · {{.State.Genre}} · {{.State.YearLo}}–{{.State.YearHi}}</p>
{{if eq .RowCount 0}}<p class="empty">No films match the current filters.</p>{{else}}
{{if .Preview}}
<h2>Filtered Data Preview</h2>
<table>
<tr>{{range .Preview.Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Preview.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{end}}
{{range .Charts}}
<h2>{{.Title}}</h2>
<p class="axis">{{.XLabel}} · {{.YLabel}}</p>
{{range .Bars}}<div class="bar-row"><span class="label">{{.Label}}</span><div><div class="bar" style="width: {{printf "%.1f" .Width}}%"></div></div><span>{{.Value}}</span></div>
{{end}}
{{if .Dots}}<div class="scatter">{{range .Dots}}<div class="pt" style="left: {{printf "%.1f" .X}}%; top: {{printf "%.1f" .Y}}%" title="{{.Title}}"></div>{{end}}</div>{{end}}
{{if .Boxes}}<table>
<tr><th>Censor</th><th>n</th><th>Min</th><th>Q1</th><th>Median</th><th>Q3</th><th>Max</th><th>Outliers</th></tr>
{{range .Boxes}}<tr><td>{{.Group}}</td><td>{{.Count}}</td><td>{{.Min}}</td><td>{{.Q1}}</td><td>{{.Median}}</td><td>{{.Q3}}</td><td>{{.Max}}</td><td>{{.Outliers}}</td></tr>
{{end}}</table>{{end}}
{{end}}
{{end}}
</main>`))

// renderPage renders the full HTML document for the initial request.
func renderPage(w io.Writer, view pageView) error {
	return pageTmpl.Execute(w, view)
}

// renderDashboardFragment renders the dashboard element for SSE
// patching.
func renderDashboardFragment(view dashboardView) (string, error) {
	var b strings.Builder
	if err := dashboardTmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}
