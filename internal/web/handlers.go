package web

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/filmlens/internal/filter"
	"github.com/leapstack-labs/filmlens/internal/session"
)

const cookieName = "filmlens"

// filterSignals is the filter state sent by the browser.
type filterSignals struct {
	Genre  string `json:"genre"`
	YearLo int    `json:"yearLo"`
	YearHi int    `json:"yearHi"`
}

// Handlers provides the dashboard HTTP handlers.
type Handlers struct {
	session      *session.Session
	sessionStore sessions.Store
	hub          *Hub
	bins         int
	logger       *slog.Logger

	// states holds the latest clamped filter state per browser, keyed
	// by the id stored in the cookie session. The Updates stream reads
	// from here: its request cookie is frozen at connect time, so
	// filter changes saved afterwards would otherwise be invisible to
	// reload-triggered re-renders.
	mu     sync.RWMutex
	states map[string]filter.State
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sess *session.Session, sessionStore sessions.Store, hub *Hub, bins int, logger *slog.Logger) *Handlers {
	return &Handlers{
		session:      sess,
		sessionStore: sessionStore,
		hub:          hub,
		bins:         bins,
		logger:       logger,
		states:       make(map[string]filter.State),
	}
}

// SetupRoutes configures the dashboard routes.
func (h *Handlers) SetupRoutes(r chi.Router) {
	r.Get("/", h.IndexPage)
	r.Post("/dashboard", h.DashboardPatch)
	r.Get("/updates", h.Updates)
}

// IndexPage renders the full page with the browser's saved filter
// state, or the default state for a first visit.
func (h *Handlers) IndexPage(w http.ResponseWriter, r *http.Request) {
	state := h.loadState(r)
	// Re-save so the browser carries an id before the Updates stream
	// connects.
	h.saveState(w, r, state)
	domain := h.session.Domain()
	dash := h.session.Render(state)

	view := pageView{
		Genres:    domain.Options(),
		YearMin:   domain.YearMin,
		YearMax:   domain.YearMax,
		HasYear:   domain.HasYear,
		Dashboard: buildDashboardView(dash, h.bins),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DashboardPatch re-renders the dashboard for the submitted filter
// state and patches it into the page. The clamped state is saved to the
// cookie session so reloads keep the selection.
func (h *Handlers) DashboardPatch(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals filterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "failed to read signals: "+err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)

	state := filter.Clamp(filter.State{
		Genre:  signals.Genre,
		YearLo: signals.YearLo,
		YearHi: signals.YearHi,
	}, h.session.Domain())
	h.saveState(w, r, state)

	if err := h.patchDashboard(sse, state); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// Updates is the long-lived SSE endpoint. It re-renders the dashboard
// with the client's saved state whenever the dataset is reloaded.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.hub.Subscribe()
	defer h.hub.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			state := h.loadState(r)
			if err := h.patchDashboard(sse, state); err != nil {
				_ = sse.ConsoleError(err)
				// Don't return - keep trying on next update
			}
		}
	}
}

func (h *Handlers) patchDashboard(sse *datastar.ServerSentEventGenerator, state filter.State) error {
	dash := h.session.Render(state)
	frag, err := renderDashboardFragment(buildDashboardView(dash, h.bins))
	if err != nil {
		return err
	}
	return sse.PatchElements(frag)
}

// loadState resolves the browser's filter state. The server-side map
// wins when the cookie carries an id: it holds the latest saved state
// even when the request cookie itself is stale. Otherwise the state is
// rebuilt from the cookie values, falling back to the full-table
// default. Values are clamped on the way out so a stale cookie can
// never select an impossible state.
func (h *Handlers) loadState(r *http.Request) filter.State {
	state := h.session.DefaultState()

	cs, err := h.sessionStore.Get(r, cookieName)
	if err != nil {
		return state
	}
	if id, ok := cs.Values["id"].(string); ok {
		h.mu.RLock()
		latest, found := h.states[id]
		h.mu.RUnlock()
		if found {
			return filter.Clamp(latest, h.session.Domain())
		}
	}
	if g, ok := cs.Values["genre"].(string); ok {
		state.Genre = g
	}
	if lo, ok := cs.Values["year_lo"].(int); ok {
		state.YearLo = lo
	}
	if hi, ok := cs.Values["year_hi"].(int); ok {
		state.YearHi = hi
	}
	return filter.Clamp(state, h.session.Domain())
}

func (h *Handlers) saveState(w http.ResponseWriter, r *http.Request, state filter.State) {
	cs, err := h.sessionStore.Get(r, cookieName)
	if err != nil {
		h.logger.Debug("new cookie session", "error", err)
	}
	id, ok := cs.Values["id"].(string)
	if !ok {
		id = uuid.NewString()
		cs.Values["id"] = id
	}
	cs.Values["genre"] = state.Genre
	cs.Values["year_lo"] = state.YearLo
	cs.Values["year_hi"] = state.YearHi
	if err := cs.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}

	h.mu.Lock()
	h.states[id] = state
	h.mu.Unlock()
}
