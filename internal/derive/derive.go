// Package derive computes the per-chart aggregates from the current
// filtered view. Every derivation is guarded by the schema capability
// set and by the presence of at least one row; a derivation whose
// preconditions fail returns its zero result instead of an error.
package derive

import (
	"sort"

	"github.com/leapstack-labs/filmlens/internal/dataset"
)

// RatedTitle is one entry of the top-rated chart.
type RatedTitle struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

// YearMean is one point of the yearly rating trend.
type YearMean struct {
	Year int     `json:"year"`
	Mean float64 `json:"mean"`
}

// GrossPoint is one point of the gross-vs-rating scatter. Gross is in
// millions, rounded to one decimal place.
type GrossPoint struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
	Gross  float64 `json:"gross"`
}

// CensorRating pairs a row's censor group with its rating.
type CensorRating struct {
	Group  dataset.CensorGroup `json:"group"`
	Rating float64             `json:"rating"`
}

// TopRated selects the n rows with the largest rating, descending.
// The selection is stable: among equal ratings the earlier input row
// wins, and ties keep input order in the output. Fewer than n rows
// returns all of them. Rows without a parseable rating are skipped.
func TopRated(v dataset.View, schema dataset.Schema, n int) []RatedTitle {
	if n <= 0 || v.Len() == 0 || !schema.Has(dataset.FieldTitle, dataset.FieldRating) {
		return nil
	}
	titleCol, _ := schema.Col(dataset.FieldTitle)
	ratingCol, _ := schema.Col(dataset.FieldRating)

	type indexed struct {
		RatedTitle
		pos int
	}
	all := make([]indexed, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		r, ok := v.Float(i, ratingCol)
		if !ok {
			continue
		}
		title, _ := v.String(i, titleCol)
		all = append(all, indexed{RatedTitle{Title: title, Rating: r}, i})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Rating > all[j].Rating
	})
	if len(all) > n {
		all = all[:n]
	}

	out := make([]RatedTitle, len(all))
	for i, e := range all {
		out[i] = e.RatedTitle
	}
	return out
}

// YearlyMeans groups the view by year and computes the arithmetic mean
// rating per distinct year, ordered ascending by year.
func YearlyMeans(v dataset.View, schema dataset.Schema) []YearMean {
	if v.Len() == 0 || !schema.Has(dataset.FieldYear, dataset.FieldRating) {
		return nil
	}
	yearCol, _ := schema.Col(dataset.FieldYear)
	ratingCol, _ := schema.Col(dataset.FieldRating)

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for i := 0; i < v.Len(); i++ {
		y, ok := v.Int(i, yearCol)
		if !ok {
			continue
		}
		r, ok := v.Float(i, ratingCol)
		if !ok {
			continue
		}
		sums[y] += r
		counts[y]++
	}
	if len(counts) == 0 {
		return nil
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearMean, len(years))
	for i, y := range years {
		out[i] = YearMean{Year: y, Mean: sums[y] / float64(counts[y])}
	}
	return out
}

// RuntimeSample collects the non-absent runtime values in input order.
// Histogram binning is the presentation layer's concern.
func RuntimeSample(v dataset.View, schema dataset.Schema) []float64 {
	if v.Len() == 0 || !schema.Has(dataset.FieldRuntime) {
		return nil
	}
	col, _ := schema.Col(dataset.FieldRuntime)

	var out []float64
	for i := 0; i < v.Len(); i++ {
		if r, ok := v.Float(i, col); ok {
			out = append(out, r)
		}
	}
	return out
}

// GrossPoints pairs each row's rating with its parsed gross value.
// Rows whose gross cell fails to parse are excluded from this sample
// only; they remain in the filtered view for every other chart.
func GrossPoints(v dataset.View, schema dataset.Schema) []GrossPoint {
	if v.Len() == 0 || !schema.Has(dataset.FieldRating, dataset.FieldGross) {
		return nil
	}
	ratingCol, _ := schema.Col(dataset.FieldRating)
	grossCol, _ := schema.Col(dataset.FieldGross)
	titleCol, hasTitle := schema.Col(dataset.FieldTitle)

	var out []GrossPoint
	for i := 0; i < v.Len(); i++ {
		rating, ok := v.Float(i, ratingCol)
		if !ok {
			continue
		}
		gross, ok := ParseGross(v.Cell(i, grossCol))
		if !ok {
			continue
		}
		p := GrossPoint{Rating: rating, Gross: gross}
		if hasTitle {
			p.Title, _ = v.String(i, titleCol)
		}
		out = append(out, p)
	}
	return out
}

// CensorSample pairs each row's censor group with its rating. The
// group is recomputed from the raw code on every pass; unmapped and
// missing codes land in the Unknown bucket.
func CensorSample(v dataset.View, schema dataset.Schema) []CensorRating {
	if v.Len() == 0 || !schema.Has(dataset.FieldRating, dataset.FieldCensor) {
		return nil
	}
	ratingCol, _ := schema.Col(dataset.FieldRating)
	censorCol, _ := schema.Col(dataset.FieldCensor)

	var out []CensorRating
	for i := 0; i < v.Len(); i++ {
		rating, ok := v.Float(i, ratingCol)
		if !ok {
			continue
		}
		out = append(out, CensorRating{
			Group:  dataset.ClassifyCensor(v.Cell(i, censorCol)),
			Rating: rating,
		})
	}
	return out
}
