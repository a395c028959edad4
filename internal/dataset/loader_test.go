package dataset

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Movie Title, Year ,Rating,Runtime (Mins),Total Gross,Censor,Main Genre
The Shawshank Redemption,1994,9.3,142,$28.34M,R,Drama
The Dark Knight,2008,9.0,152,"$1,000M",UA,Action
Spirited Away,2001,8.6,125,N/A,U,Animation
`

func TestReadNormalizesHeader(t *testing.T) {
	tbl, err := Read(strings.NewReader(sampleCSV), "films.csv", LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"movie_title", "year", "rating", "runtime_(mins)",
		"total_gross", "censor", "main_genre",
	}, tbl.Columns)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, "The Dark Knight", tbl.Cell(1, 0))
	assert.Equal(t, "$1,000M", tbl.Cell(1, 4))
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), "empty.csv", LoadOptions{})

	var dsErr *DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Contains(t, dsErr.Error(), "empty.csv")
}

func TestReadRaggedRows(t *testing.T) {
	in := "a,b,c\n1,2,3\n1,2\n"
	_, err := Read(strings.NewReader(in), "ragged.csv", LoadOptions{})

	var dsErr *DataSourceError
	require.True(t, errors.As(err, &dsErr))
}

func TestReadCustomDelimiter(t *testing.T) {
	in := "title;year\nHeat;1995\n"
	tbl, err := Read(strings.NewReader(in), "films.tsv", LoadOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "year"}, tbl.Columns)
	assert.Equal(t, "1995", tbl.Cell(0, 1))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), LoadOptions{})

	var dsErr *DataSourceError
	require.True(t, errors.As(err, &dsErr))
}
