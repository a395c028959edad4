// Package session owns the loaded film table for the lifetime of one
// exploration session. The table is loaded once and treated as
// read-only; every interaction recomputes the dashboard from it.
package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/leapstack-labs/filmlens/internal/dataset"
	"github.com/leapstack-labs/filmlens/internal/derive"
	"github.com/leapstack-labs/filmlens/internal/filter"
)

// Options configures a session.
type Options struct {
	Delimiter   rune
	TopN        int
	PreviewRows int
	Logger      *slog.Logger
}

// Session holds one immutable loaded table plus its schema and filter
// domain. Reload swaps all three together; readers always see a
// consistent triple.
type Session struct {
	mu     sync.RWMutex
	path   string
	opts   Options
	logger *slog.Logger

	table  *dataset.Table
	schema dataset.Schema
	domain filter.Domain
}

// Open loads the dataset and computes its schema and filter domain.
// Load failure is a DataSourceError and is fatal for the caller.
func Open(path string, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{path: path, opts: opts, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the dataset from disk and swaps in the new table,
// schema, and domain atomically. Used by the web adapter's file
// watcher; the CLI adapters never call it.
func (s *Session) Reload() error {
	table, err := dataset.Load(s.path, dataset.LoadOptions{Delimiter: s.opts.Delimiter})
	if err != nil {
		return err
	}
	schema := dataset.ResolveSchema(table.Columns)
	domain := filter.NewDomain(table, schema)

	s.mu.Lock()
	s.table = table
	s.schema = schema
	s.domain = domain
	s.mu.Unlock()

	s.logger.Info("dataset loaded",
		"path", s.path,
		"rows", table.Len(),
		"columns", len(table.Columns))
	return nil
}

// Path returns the dataset path.
func (s *Session) Path() string { return s.path }

// Table returns the current table.
func (s *Session) Table() *dataset.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Schema returns the current capability set.
func (s *Session) Schema() dataset.Schema {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schema
}

// Domain returns the observed filter domain.
func (s *Session) Domain() filter.Domain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.domain
}

// DefaultState selects every row of the current table.
func (s *Session) DefaultState() filter.State {
	return filter.DefaultState(s.Domain())
}

// Render runs the full pipeline for one filter state: clamp to the
// domain, filter, derive every chart. Each pass is tagged with a run
// ID in the debug log.
func (s *Session) Render(state filter.State) *derive.Dashboard {
	s.mu.RLock()
	table, schema, domain := s.table, s.schema, s.domain
	s.mu.RUnlock()

	state = filter.Clamp(state, domain)
	dash := derive.BuildDashboard(table, schema, state, derive.Options{
		TopN:        s.opts.TopN,
		PreviewRows: s.opts.PreviewRows,
	})

	s.logger.Debug("dashboard rendered",
		"run_id", uuid.NewString(),
		"genre", state.Genre,
		"years", [2]int{state.YearLo, state.YearHi},
		"rows", dash.RowCount)
	return dash
}
