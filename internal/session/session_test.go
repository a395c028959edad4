package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/filmlens/internal/dataset"
	"github.com/leapstack-labs/filmlens/internal/filter"
	"github.com/leapstack-labs/filmlens/internal/testutil"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "films.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sessionCSV = `Movie Title,Main Genre,Year,Rating,Runtime (Mins),Total Gross,Censor
A,Drama,2000,8.0,120,$28.34M,R
B,Drama,2000,6.0,95,N/A,U
C,Action,2001,9.0,152,"$1,000M",UA
`

func TestOpenAndRender(t *testing.T) {
	path := writeDataset(t, sessionCSV)

	s, err := Open(path, Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	d := s.Domain()
	assert.Equal(t, []string{"Action", "Drama"}, d.Genres)
	assert.Equal(t, 2000, d.YearMin)
	assert.Equal(t, 2001, d.YearMax)

	dash := s.Render(s.DefaultState())
	assert.Equal(t, 3, dash.RowCount)
	require.NotNil(t, dash.TopRated)
	assert.Equal(t, "C", dash.TopRated.Entries[0].Title)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"), Options{})

	var dsErr *dataset.DataSourceError
	require.True(t, errors.As(err, &dsErr))
}

func TestRenderClampsState(t *testing.T) {
	path := writeDataset(t, sessionCSV)
	s, err := Open(path, Options{})
	require.NoError(t, err)

	// Out-of-domain genre and years clamp rather than filter to nothing.
	dash := s.Render(filter.State{Genre: "Nope", YearLo: 1000, YearHi: 3000})
	assert.Equal(t, filter.AllGenres, dash.State.Genre)
	assert.Equal(t, 3, dash.RowCount)
}

func TestReloadSwapsTable(t *testing.T) {
	path := writeDataset(t, sessionCSV)
	s, err := Open(path, Options{})
	require.NoError(t, err)
	require.Equal(t, 3, s.Table().Len())

	extra := sessionCSV + "D,Horror,2005,7.5,101,$12M,R\n"
	require.NoError(t, os.WriteFile(path, []byte(extra), 0o600))
	require.NoError(t, s.Reload())

	assert.Equal(t, 4, s.Table().Len())
	assert.Contains(t, s.Domain().Genres, "Horror")
	assert.Equal(t, 2005, s.Domain().YearMax)
}
