// Package filter holds the sidebar filter state and the pure row
// predicate that turns the source table into the current filtered view.
package filter

import (
	"sort"

	"github.com/leapstack-labs/filmlens/internal/dataset"
)

// AllGenres is the sentinel genre selection that disables the genre
// filter.
const AllGenres = "All"

// State is the current user selection: one genre (or AllGenres) and an
// inclusive year interval. It is created from the table's observed
// domain at session start and mutated on every interaction; it is never
// persisted.
type State struct {
	Genre  string `json:"genre"`
	YearLo int    `json:"year_lo"`
	YearHi int    `json:"year_hi"`
}

// Domain is the observed value space of the unfiltered table: the
// distinct genres and the min/max year. It bounds the filter controls
// and is computed once per loaded table.
type Domain struct {
	Genres  []string
	YearMin int
	YearMax int
	HasYear bool
}

// NewDomain scans the full table once for the sorted distinct genre
// values and the observed year bounds. Fields absent from the schema
// leave the corresponding part of the domain empty.
func NewDomain(t *dataset.Table, schema dataset.Schema) Domain {
	var d Domain
	v := dataset.NewView(t)

	if col, ok := schema.Col(dataset.FieldGenre); ok {
		seen := make(map[string]bool)
		for i := 0; i < v.Len(); i++ {
			if g, ok := v.String(i, col); ok && !seen[g] {
				seen[g] = true
				d.Genres = append(d.Genres, g)
			}
		}
		sort.Strings(d.Genres)
	}

	if col, ok := schema.Col(dataset.FieldYear); ok {
		for i := 0; i < v.Len(); i++ {
			y, ok := v.Int(i, col)
			if !ok {
				continue
			}
			if !d.HasYear || y < d.YearMin {
				d.YearMin = y
			}
			if !d.HasYear || y > d.YearMax {
				d.YearMax = y
			}
			d.HasYear = true
		}
	}

	return d
}

// Options returns the genre control values: AllGenres followed by the
// sorted distinct genres.
func (d Domain) Options() []string {
	return append([]string{AllGenres}, d.Genres...)
}

// DefaultState selects every row: all genres, full observed year span.
func DefaultState(d Domain) State {
	return State{Genre: AllGenres, YearLo: d.YearMin, YearHi: d.YearMax}
}

// Clamp bounds a state to the domain. An unknown genre falls back to
// AllGenres; the year interval is clipped to the observed span and
// reordered if inverted.
func Clamp(s State, d Domain) State {
	if s.Genre != AllGenres {
		known := false
		for _, g := range d.Genres {
			if g == s.Genre {
				known = true
				break
			}
		}
		if !known {
			s.Genre = AllGenres
		}
	}

	if d.HasYear {
		if s.YearLo < d.YearMin {
			s.YearLo = d.YearMin
		}
		if s.YearHi > d.YearMax || s.YearHi == 0 {
			s.YearHi = d.YearMax
		}
		if s.YearLo > s.YearHi {
			s.YearLo, s.YearHi = s.YearHi, s.YearLo
		}
	}

	return s
}

// Apply evaluates both predicates over the table in one pass and
// returns the filtered view. It is a pure function of its inputs: row
// order is preserved and the table is never mutated. A predicate whose
// column is absent from the schema is skipped entirely.
func Apply(t *dataset.Table, schema dataset.Schema, s State) dataset.View {
	full := dataset.NewView(t)

	genreCol, hasGenre := schema.Col(dataset.FieldGenre)
	if s.Genre == AllGenres {
		hasGenre = false
	}
	yearCol, hasYear := schema.Col(dataset.FieldYear)

	if !hasGenre && !hasYear {
		return full
	}

	rows := make([]int, 0, full.Len())
	for i := 0; i < full.Len(); i++ {
		if hasGenre {
			// Exact match; the loader's header normalization is the
			// only normalization that ever applies.
			if g, _ := full.String(i, genreCol); g != s.Genre {
				continue
			}
		}
		if hasYear {
			y, ok := full.Int(i, yearCol)
			if !ok || y < s.YearLo || y > s.YearHi {
				continue
			}
		}
		rows = append(rows, i)
	}

	return dataset.NewSubView(t, rows)
}
