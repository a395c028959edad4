// Package charts turns derived chart payloads into render-ready
// structures and plain-text renderings for the terminal adapters.
package charts

import "math"

// DefaultBins is the histogram binning policy: fixed-width bins
// spanning the observed min/max of the sample.
const DefaultBins = 25

// Bin is one histogram bucket over [Lo, Hi). The last bin is closed on
// both ends so the sample maximum is counted.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Histogram buckets a sample into n fixed-width bins between the
// observed minimum and maximum. An empty sample yields nil; a sample
// with a single distinct value yields one bin holding everything.
func Histogram(sample []float64, n int) []Bin {
	if len(sample) == 0 {
		return nil
	}
	if n <= 0 {
		n = DefaultBins
	}

	lo, hi := sample[0], sample[0]
	for _, v := range sample[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(sample)}}
	}

	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[n-1].Hi = hi

	for _, v := range sample {
		i := int(math.Floor((v - lo) / width))
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}
