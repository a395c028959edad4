// Package dataset provides loading, schema resolution, and typed access
// for the film table that feeds every chart derivation.
package dataset

import (
	"strconv"
	"strings"
)

// Table is an ordered set of rows sharing one normalized header.
// Tables are immutable after load; filtering produces index views
// rather than copies.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Cell returns the raw cell at (row, col). Out-of-range access returns "".
func (t *Table) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// NormalizeColumn canonicalizes a single column name: trim surrounding
// whitespace, lowercase, and replace internal spaces with underscores.
// The transform is idempotent.
func NormalizeColumn(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "_")
}

// NormalizeColumns canonicalizes a full header in place-order.
func NormalizeColumns(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = NormalizeColumn(n)
	}
	return out
}

// View is a row subset of a Table, held as indices into the parent.
// The zero value is an empty view.
type View struct {
	table *Table
	rows  []int
}

// NewView returns a view covering every row of the table in order.
func NewView(t *Table) View {
	rows := make([]int, t.Len())
	for i := range rows {
		rows[i] = i
	}
	return View{table: t, rows: rows}
}

// NewSubView returns a view over the given parent-table row indices.
func NewSubView(t *Table, rows []int) View {
	return View{table: t, rows: rows}
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.rows) }

// RowIndex translates a view position to the parent table's row index.
func (v View) RowIndex(i int) int {
	if i < 0 || i >= len(v.rows) {
		return -1
	}
	return v.rows[i]
}

// Cell returns the raw cell at view position i, column col.
func (v View) Cell(i, col int) string {
	if i < 0 || i >= len(v.rows) {
		return ""
	}
	return v.table.Cell(v.rows[i], col)
}

// String returns the trimmed cell value and whether it is non-empty.
func (v View) String(i, col int) (string, bool) {
	s := strings.TrimSpace(v.Cell(i, col))
	return s, s != ""
}

// Int parses the cell as an integer. Values written as floats with a
// zero fraction ("1994.0", a common CSV export artifact) are accepted.
func (v View) Int(i, col int) (int, bool) {
	s, ok := v.String(i, col)
	if !ok {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Float parses the cell as a floating-point number.
func (v View) Float(i, col int) (float64, bool) {
	s, ok := v.String(i, col)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
