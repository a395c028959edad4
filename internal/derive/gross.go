package derive

import (
	"math"
	"strconv"
	"strings"
)

// ParseGross converts a currency-formatted gross string ("$1,234.5M")
// to a float in millions. The currency symbol, the M suffix, and
// thousands separators are stripped before parsing; the parsed value is
// rounded to one decimal place. Any failure — empty cell, non-numeric
// remainder — reports ok=false rather than an error, so a bad cell
// costs one scatter point and nothing else.
func ParseGross(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.ReplaceAll(s, "M", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return math.Round(f*10) / 10, true
}
