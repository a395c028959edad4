package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/filmlens/internal/dataset"
	"github.com/leapstack-labs/filmlens/internal/filter"
)

func dashboardTable() (*dataset.Table, dataset.Schema) {
	t := &dataset.Table{
		Columns: []string{"movie_title", "main_genre", "year", "rating", "runtime_(mins)", "total_gross", "censor"},
		Rows: [][]string{
			{"A", "Drama", "2000", "8.0", "120", "$28.34M", "R"},
			{"B", "Drama", "2000", "6.0", "95", "N/A", "U"},
			{"C", "Action", "2001", "9.0", "152", "$1,000M", "UA"},
		},
	}
	return t, dataset.ResolveSchema(t.Columns)
}

func TestBuildDashboardAllCharts(t *testing.T) {
	tbl, schema := dashboardTable()
	d := filter.NewDomain(tbl, schema)

	dash := BuildDashboard(tbl, schema, filter.DefaultState(d), Options{})

	assert.Equal(t, 3, dash.RowCount)
	require.NotNil(t, dash.Preview)
	assert.Len(t, dash.Preview.Rows, 3)

	require.NotNil(t, dash.TopRated)
	assert.Equal(t, "Top 10 Highest Rated Movies", dash.TopRated.Title)
	assert.Len(t, dash.TopRated.Entries, 3)

	require.NotNil(t, dash.Trend)
	assert.Equal(t, "Average Rating", dash.Trend.YLabel)

	require.NotNil(t, dash.Runtime)
	assert.Len(t, dash.Runtime.Sample, 3)

	require.NotNil(t, dash.Gross)
	assert.Len(t, dash.Gross.Points, 2)

	require.NotNil(t, dash.Censor)
	assert.Len(t, dash.Censor.Sample, 3)
}

func TestBuildDashboardFiltered(t *testing.T) {
	tbl, schema := dashboardTable()

	dash := BuildDashboard(tbl, schema, filter.State{
		Genre: "Drama", YearLo: 2000, YearHi: 2001,
	}, Options{})

	assert.Equal(t, 2, dash.RowCount)
	require.NotNil(t, dash.Trend)
	require.Len(t, dash.Trend.Points, 1)
	assert.InDelta(t, 7.0, dash.Trend.Points[0].Mean, 1e-9)
}

func TestBuildDashboardEmptyViewSkipsCharts(t *testing.T) {
	tbl, schema := dashboardTable()

	dash := BuildDashboard(tbl, schema, filter.State{
		Genre: filter.AllGenres, YearLo: 1900, YearHi: 1910,
	}, Options{})

	assert.Equal(t, 0, dash.RowCount)
	assert.Nil(t, dash.Preview)
	assert.Nil(t, dash.TopRated)
	assert.Nil(t, dash.Trend)
	assert.Nil(t, dash.Runtime)
	assert.Nil(t, dash.Gross)
	assert.Nil(t, dash.Censor)
}

func TestBuildDashboardSchemaGaps(t *testing.T) {
	tbl := &dataset.Table{
		Columns: []string{"movie_title", "rating"},
		Rows:    [][]string{{"A", "8.0"}, {"B", "6.5"}},
	}
	schema := dataset.ResolveSchema(tbl.Columns)

	dash := BuildDashboard(tbl, schema, filter.State{Genre: filter.AllGenres}, Options{})

	assert.Equal(t, 2, dash.RowCount)
	assert.NotNil(t, dash.TopRated)
	assert.Nil(t, dash.Trend, "no year column")
	assert.Nil(t, dash.Runtime, "no runtime column")
	assert.Nil(t, dash.Gross, "no gross column")
	assert.Nil(t, dash.Censor, "no censor column")
}

func TestBuildDashboardPreviewLimit(t *testing.T) {
	tbl, schema := dashboardTable()
	d := filter.NewDomain(tbl, schema)

	dash := BuildDashboard(tbl, schema, filter.DefaultState(d), Options{PreviewRows: 2})
	require.NotNil(t, dash.Preview)
	assert.Len(t, dash.Preview.Rows, 2)
	assert.Equal(t, 3, dash.RowCount)
}
