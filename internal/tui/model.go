package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/filmlens/internal/charts"
	"github.com/leapstack-labs/filmlens/internal/derive"
	"github.com/leapstack-labs/filmlens/internal/filter"
	"github.com/leapstack-labs/filmlens/internal/session"
)

const genrePaneWidth = 28

// Options configures the dashboard model.
type Options struct {
	HistogramBins int
}

// genreItem adapts a genre option to list.Item.
type genreItem string

func (i genreItem) Title() string       { return string(i) }
func (i genreItem) Description() string { return "" }
func (i genreItem) FilterValue() string { return string(i) }

// Model is the dashboard's root bubbletea model: a genre list on the
// left, the rendered charts in a viewport on the right, and a year
// interval adjusted with bracket keys.
type Model struct {
	session *session.Session
	opts    Options
	styles  Styles

	state filter.State
	list  list.Model
	view  viewport.Model

	focusCharts bool
	width       int
	height      int
	ready       bool
}

// NewModel creates the dashboard model with the full-table default
// selection.
func NewModel(sess *session.Session, opts Options) Model {
	domain := sess.Domain()

	items := make([]list.Item, 0, len(domain.Genres)+1)
	for _, g := range domain.Options() {
		items = append(items, genreItem(g))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(items, delegate, genrePaneWidth, 0)
	l.Title = "Genre"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	m := Model{
		session: sess,
		opts:    opts,
		styles:  DefaultStyles(),
		state:   sess.DefaultState(),
		list:    l,
		view:    viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// State returns the current filter selection.
func (m Model) State() filter.State { return m.state }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focusCharts = !m.focusCharts
			return m, nil
		case "[":
			m.adjustYears(-1, 0)
			return m, nil
		case "]":
			m.adjustYears(1, 0)
			return m, nil
		case "{":
			m.adjustYears(0, -1)
			return m, nil
		case "}":
			m.adjustYears(0, 1)
			return m, nil
		case "r":
			m.state = m.session.DefaultState()
			m.list.ResetSelected()
			m.refresh()
			return m, nil
		}
	}

	// Route events to the focused pane; non-key messages go to both
	_, isKey := msg.(tea.KeyMsg)
	filtering := m.list.FilterState() == list.Filtering
	if !isKey || !m.focusCharts || filtering {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !isKey || (m.focusCharts && !filtering) {
		m.view, cmd = m.view.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Selection change re-renders the charts
	if sel := m.list.SelectedItem(); sel != nil {
		genre := string(sel.(genreItem))
		if genre != m.state.Genre {
			m.state.Genre = genre
			m.refresh()
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the dashboard.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	left := m.paneStyle(!m.focusCharts).Render(m.list.View())
	right := m.paneStyle(m.focusCharts).Render(m.view.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := m.styles.Footer.Render(
		"tab focus · ↑/↓ move · [ ] from-year · { } to-year · r reset · q quit")
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h
	m.ready = true

	contentHeight := h - 4 // header, footer, pane borders
	if contentHeight < 4 {
		contentHeight = 4
	}
	m.list.SetSize(genrePaneWidth, contentHeight)

	chartWidth := w - genrePaneWidth - 6
	if chartWidth < 20 {
		chartWidth = 20
	}
	m.view.Width = chartWidth
	m.view.Height = contentHeight
}

func (m Model) paneStyle(active bool) lipgloss.Style {
	if active {
		return m.styles.PaneActive
	}
	return m.styles.PaneIdle
}

// adjustYears shifts the interval edges, clamped to the observed
// domain by the render pass.
func (m *Model) adjustYears(dLo, dHi int) {
	m.state.YearLo += dLo
	m.state.YearHi += dHi
	m.state = filter.Clamp(m.state, m.session.Domain())
	m.refresh()
}

// refresh re-runs the pipeline and rebuilds the viewport content.
func (m *Model) refresh() {
	m.state = filter.Clamp(m.state, m.session.Domain())
	dash := m.session.Render(m.state)
	m.view.SetContent(m.renderCharts(dash))
}

func (m *Model) renderCharts(dash *derive.Dashboard) string {
	chartWidth := m.view.Width - 24
	if chartWidth < 10 {
		chartWidth = 40
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Film Dataset Dashboard"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Meta.Render(fmt.Sprintf("%d films · %s · %d–%d",
		dash.RowCount, dash.State.Genre, dash.State.YearLo, dash.State.YearHi)))
	sb.WriteString("\n\n")

	if dash.RowCount == 0 {
		sb.WriteString("No films match the current filters.\n")
		return sb.String()
	}

	section := func(title, axis, body string) {
		if body == "" {
			return
		}
		sb.WriteString(m.styles.Title.Render(title))
		sb.WriteString("\n")
		if axis != "" {
			sb.WriteString(m.styles.Axis.Render(axis))
			sb.WriteString("\n")
		}
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	if dash.TopRated != nil {
		section(dash.TopRated.Title, dash.TopRated.XLabel,
			charts.RenderBars(dash.TopRated.Entries, chartWidth))
	}
	if dash.Trend != nil {
		section(dash.Trend.Title, dash.Trend.YLabel,
			charts.RenderTrend(dash.Trend.Points, chartWidth))
	}
	if dash.Runtime != nil {
		section(dash.Runtime.Title, dash.Runtime.XLabel,
			charts.RenderHistogram(charts.Histogram(dash.Runtime.Sample, m.opts.HistogramBins), chartWidth))
	}
	if dash.Gross != nil {
		section(dash.Gross.Title, dash.Gross.YLabel,
			charts.RenderScatter(dash.Gross.Points, chartWidth, 0))
	}
	if dash.Censor != nil {
		section(dash.Censor.Title, dash.Censor.YLabel,
			charts.RenderBoxes(charts.BoxSummaries(dash.Censor.Sample), chartWidth))
	}

	return sb.String()
}
