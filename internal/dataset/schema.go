package dataset

// Field identifies one of the canonical columns the pipeline knows how
// to use. Any field may be absent from a given dataset; absence
// disables the filters and charts that depend on it.
type Field string

const (
	FieldTitle   Field = "title"
	FieldGenre   Field = "genre"
	FieldYear    Field = "year"
	FieldRating  Field = "rating"
	FieldRuntime Field = "runtime"
	FieldGross   Field = "gross"
	FieldCensor  Field = "censor"
)

// fieldCandidates maps each canonical field to the normalized header
// names it may appear under, in match-priority order.
var fieldCandidates = map[Field][]string{
	FieldTitle:   {"movie_title", "title", "name"},
	FieldGenre:   {"main_genre", "genre"},
	FieldYear:    {"year", "year_of_release", "release_year"},
	FieldRating:  {"rating", "movie_rating", "imdb_rating"},
	FieldRuntime: {"runtime_(mins)", "run_time_in_minutes", "runtime_mins", "runtime"},
	FieldGross:   {"total_gross", "gross"},
	FieldCensor:  {"censor", "certificate"},
}

// Fields lists the canonical fields in display order.
var Fields = []Field{
	FieldTitle, FieldGenre, FieldYear, FieldRating,
	FieldRuntime, FieldGross, FieldCensor,
}

// Schema is the capability set of a loaded table: which canonical
// fields resolved to which columns. It is computed once at load time
// and passed to each derivation as a precondition, replacing ad-hoc
// per-chart presence checks.
type Schema struct {
	cols map[Field]int
}

// ResolveSchema matches a normalized header against the canonical
// field candidates. Columns that match no field are ignored; fields
// that match no column are simply absent from the schema.
func ResolveSchema(columns []string) Schema {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, seen := index[c]; !seen {
			index[c] = i
		}
	}

	s := Schema{cols: make(map[Field]int)}
	for field, candidates := range fieldCandidates {
		for _, name := range candidates {
			if i, ok := index[name]; ok {
				s.cols[field] = i
				break
			}
		}
	}
	return s
}

// Has reports whether the field resolved to a column.
func (s Schema) Has(fields ...Field) bool {
	for _, f := range fields {
		if _, ok := s.cols[f]; !ok {
			return false
		}
	}
	return true
}

// Col returns the column index for a field.
func (s Schema) Col(f Field) (int, bool) {
	i, ok := s.cols[f]
	return i, ok
}
