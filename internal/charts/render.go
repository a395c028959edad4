package charts

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/filmlens/internal/derive"
)

const (
	barRune    = '█'
	pointRune  = '•'
	defaultBar = 40
)

// RenderBars draws a horizontal bar chart for the top-rated entries,
// one film per line, bars scaled to the largest rating.
func RenderBars(entries []derive.RatedTitle, width int) string {
	if len(entries) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultBar
	}

	labelWidth := 0
	maxRating := entries[0].Rating
	for _, e := range entries {
		if len(e.Title) > labelWidth {
			labelWidth = len(e.Title)
		}
		if e.Rating > maxRating {
			maxRating = e.Rating
		}
	}
	if labelWidth > 32 {
		labelWidth = 32
	}

	var b strings.Builder
	for _, e := range entries {
		n := 0
		if maxRating > 0 {
			n = int(e.Rating / maxRating * float64(width))
		}
		fmt.Fprintf(&b, "%-*s %s %.1f\n",
			labelWidth, truncate(e.Title, labelWidth),
			strings.Repeat(string(barRune), n), e.Rating)
	}
	return b.String()
}

// RenderTrend draws the yearly mean rating as one scaled bar per year.
func RenderTrend(points []derive.YearMean, width int) string {
	if len(points) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultBar
	}

	maxMean := points[0].Mean
	for _, p := range points {
		if p.Mean > maxMean {
			maxMean = p.Mean
		}
	}

	var b strings.Builder
	for _, p := range points {
		n := 0
		if maxMean > 0 {
			n = int(p.Mean / maxMean * float64(width))
		}
		fmt.Fprintf(&b, "%4d %s %.2f\n", p.Year, strings.Repeat(string(barRune), n), p.Mean)
	}
	return b.String()
}

// RenderHistogram draws the bin counts as horizontal bars.
func RenderHistogram(bins []Bin, width int) string {
	if len(bins) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultBar
	}

	maxCount := 0
	for _, bin := range bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}

	var b strings.Builder
	for _, bin := range bins {
		n := 0
		if maxCount > 0 {
			n = bin.Count * width / maxCount
		}
		fmt.Fprintf(&b, "%6.1f–%-6.1f %s %d\n", bin.Lo, bin.Hi,
			strings.Repeat(string(barRune), n), bin.Count)
	}
	return b.String()
}

// RenderScatter plots gross (y) against rating (x) on a character
// grid. Multiple points landing on the same cell collapse into one
// mark; axis extents are printed along the edges.
func RenderScatter(points []derive.GrossPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 16
	}

	xLo, xHi := points[0].Rating, points[0].Rating
	yLo, yHi := points[0].Gross, points[0].Gross
	for _, p := range points[1:] {
		if p.Rating < xLo {
			xLo = p.Rating
		}
		if p.Rating > xHi {
			xHi = p.Rating
		}
		if p.Gross < yLo {
			yLo = p.Gross
		}
		if p.Gross > yHi {
			yHi = p.Gross
		}
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	for _, p := range points {
		x := scale(p.Rating, xLo, xHi, width)
		y := scale(p.Gross, yLo, yHi, height)
		grid[height-1-y][x] = pointRune
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%8.1f ┤\n", yHi)
	for _, row := range grid {
		fmt.Fprintf(&b, "%8s │%s\n", "", string(row))
	}
	fmt.Fprintf(&b, "%8.1f ┼%s\n", yLo, strings.Repeat("─", width))
	fmt.Fprintf(&b, "%9s%-8.1f%*.1f\n", "", xLo, width-8, xHi)
	return b.String()
}

// RenderBoxes draws each group's five-number summary as a scaled
// interval with the quartile box marked.
func RenderBoxes(summaries []BoxSummary, width int) string {
	if len(summaries) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultBar
	}

	lo, hi := summaries[0].Min, summaries[0].Max
	labelWidth := 0
	for _, s := range summaries {
		if s.Min < lo {
			lo = s.Min
		}
		if s.Max > hi {
			hi = s.Max
		}
		if len(s.Group) > labelWidth {
			labelWidth = len(s.Group)
		}
	}

	var b strings.Builder
	for _, s := range summaries {
		line := []rune(strings.Repeat(" ", width))
		lPos := scale(s.Min, lo, hi, width)
		rPos := scale(s.Max, lo, hi, width)
		for i := lPos; i <= rPos && i < width; i++ {
			line[i] = '─'
		}
		q1 := scale(s.Q1, lo, hi, width)
		q3 := scale(s.Q3, lo, hi, width)
		for i := q1; i <= q3 && i < width; i++ {
			line[i] = '█'
		}
		line[scale(s.Median, lo, hi, width)] = '┃'

		fmt.Fprintf(&b, "%-*s %s  n=%d", labelWidth, string(s.Group), string(line), s.Count)
		if len(s.Outliers) > 0 {
			fmt.Fprintf(&b, " (%d outliers)", len(s.Outliers))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%-*s %.1f%*.1f\n", labelWidth, "", lo, width-3, hi)
	return b.String()
}

func scale(v, lo, hi float64, n int) int {
	if hi == lo {
		return 0
	}
	i := int((v - lo) / (hi - lo) * float64(n-1))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
