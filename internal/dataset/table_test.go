package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Movie Title ", "movie_title"},
		{"Runtime (Mins)", "runtime_(mins)"},
		{"YEAR", "year"},
		{"total_gross", "total_gross"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeColumn(tt.in))
	}
}

func TestNormalizeColumnIdempotent(t *testing.T) {
	names := []string{" Movie Title ", "Main Genre", "Runtime (Mins)", "rating"}
	once := NormalizeColumns(names)
	twice := NormalizeColumns(once)
	assert.Equal(t, once, twice)
}

func TestViewTypedAccess(t *testing.T) {
	tbl := &Table{
		Columns: []string{"year", "rating", "title"},
		Rows: [][]string{
			{"1994", "9.3", "The Shawshank Redemption"},
			{"1999.0", "8.7", "The Matrix"},
			{"", "not-a-number", "  "},
		},
	}
	v := NewView(tbl)
	require.Equal(t, 3, v.Len())

	y, ok := v.Int(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1994, y)

	// Float-formatted integers parse too.
	y, ok = v.Int(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1999, y)

	r, ok := v.Float(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 9.3, r, 1e-9)

	_, ok = v.Int(2, 0)
	assert.False(t, ok)
	_, ok = v.Float(2, 1)
	assert.False(t, ok)
	_, ok = v.String(2, 2)
	assert.False(t, ok, "whitespace-only cells are absent")
}

func TestSubViewIndexing(t *testing.T) {
	tbl := &Table{
		Columns: []string{"title"},
		Rows:    [][]string{{"a"}, {"b"}, {"c"}, {"d"}},
	}
	sub := NewSubView(tbl, []int{3, 1})

	require.Equal(t, 2, sub.Len())
	assert.Equal(t, "d", sub.Cell(0, 0))
	assert.Equal(t, "b", sub.Cell(1, 0))
	assert.Equal(t, 3, sub.RowIndex(0))
	assert.Equal(t, -1, sub.RowIndex(5))
	assert.Equal(t, "", sub.Cell(9, 0))
}
