package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/filmlens/internal/filter"
	"github.com/leapstack-labs/filmlens/internal/session"
	"github.com/leapstack-labs/filmlens/internal/testutil"
)

const sampleCSV = `Movie Title,Year of Release,Movie Rating,Main Genre,Runtime (Mins),Total Gross,Censor
Alpha,1994,9.2,Drama,142,$28.341M,A
Beta,1994,9.0,Crime,175,$134.966M,A
Gamma,2008,8.9,Action,152,$534.858M,UA
Delta,1999,8.7,Drama,139,$37.030M,U
`

func newTestModel(t *testing.T) Model {
	t.Helper()

	path := filepath.Join(t.TempDir(), "films.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	sess, err := session.Open(path, session.Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	return NewModel(sess, Options{HistogramBins: 10})
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	state := m.State()
	assert.Equal(t, filter.AllGenres, state.Genre)
	assert.Equal(t, 1994, state.YearLo)
	assert.Equal(t, 2008, state.YearHi)

	// All genres plus the sentinel
	assert.Equal(t, 4, len(m.list.Items()))
}

func TestWindowSizeMakesReady(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Loading")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Genre")
	assert.Contains(t, view, "q quit")
}

func TestYearKeys(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	// Narrow from both ends
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'{'}})
	m = updated.(Model)

	assert.Equal(t, 1995, m.State().YearLo)
	assert.Equal(t, 2007, m.State().YearHi)

	// Lower bound clamps at the observed minimum
	for i := 0; i < 5; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
		m = updated.(Model)
	}
	assert.Equal(t, 1994, m.State().YearLo)
}

func TestResetKey(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = updated.(Model)
	require.Equal(t, 1995, m.State().YearLo)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	assert.Equal(t, 1994, m.State().YearLo)
	assert.Equal(t, filter.AllGenres, m.State().Genre)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestChartsRenderInViewport(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	m = updated.(Model)

	content := m.view.View()
	assert.Contains(t, content, "Film Dataset Dashboard")
	assert.Contains(t, content, "4 films")
}

func TestTabTogglesFocus(t *testing.T) {
	m := newTestModel(t)

	require.False(t, m.focusCharts)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.True(t, m.focusCharts)
}

func TestGenreItem(t *testing.T) {
	i := genreItem("Drama")
	assert.Equal(t, "Drama", i.Title())
	assert.Equal(t, "Drama", i.FilterValue())
	assert.True(t, strings.HasPrefix(i.Title(), "D"))
}
