package charts

import (
	"sort"

	"github.com/leapstack-labs/filmlens/internal/dataset"
	"github.com/leapstack-labs/filmlens/internal/derive"
)

// BoxSummary is the five-number summary of one censor group's rating
// sample, plus the points outside the 1.5×IQR whiskers.
type BoxSummary struct {
	Group    dataset.CensorGroup `json:"group"`
	Count    int                 `json:"count"`
	Min      float64             `json:"min"`
	Q1       float64             `json:"q1"`
	Median   float64             `json:"median"`
	Q3       float64             `json:"q3"`
	Max      float64             `json:"max"`
	Outliers []float64           `json:"outliers,omitempty"`
}

// BoxSummaries computes one summary per censor group present in the
// sample, in the fixed bucket display order. Groups with no rows are
// omitted.
func BoxSummaries(sample []derive.CensorRating) []BoxSummary {
	byGroup := make(map[dataset.CensorGroup][]float64)
	for _, cr := range sample {
		byGroup[cr.Group] = append(byGroup[cr.Group], cr.Rating)
	}

	var out []BoxSummary
	for _, g := range dataset.CensorGroups {
		ratings := byGroup[g]
		if len(ratings) == 0 {
			continue
		}
		out = append(out, summarize(g, ratings))
	}
	return out
}

func summarize(group dataset.CensorGroup, ratings []float64) BoxSummary {
	sorted := append([]float64(nil), ratings...)
	sort.Float64s(sorted)

	s := BoxSummary{
		Group:  group,
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}

	iqr := s.Q3 - s.Q1
	loFence := s.Q1 - 1.5*iqr
	hiFence := s.Q3 + 1.5*iqr
	for _, r := range sorted {
		if r < loFence || r > hiFence {
			s.Outliers = append(s.Outliers, r)
		}
	}
	return s
}

// quantile interpolates linearly between closest ranks, matching the
// convention plotting libraries use for box whisker positions.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	i := int(pos)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(i)
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}
