package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/filmlens/internal/session"
	"github.com/leapstack-labs/filmlens/internal/testutil"
)

const sampleCSV = `Movie Title,Year of Release,Movie Rating,Main Genre,Runtime (Mins),Total Gross,Censor
Alpha,1994,9.2,Drama,142,$28.341M,A
Beta,1994,9.0,Crime,175,$134.966M,A
Gamma,2008,8.9,Action,152,$534.858M,UA
Delta,1999,8.7,Drama,139,$37.030M,U
`

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	path := filepath.Join(t.TempDir(), "films.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	sess, err := session.Open(path, session.Options{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	store := sessions.NewCookieStore([]byte("test-secret"))
	return NewHandlers(sess, store, NewHub(), 10, testutil.NewTestLogger(t))
}

func TestIndexPage(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.IndexPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Film Dataset Dashboard")
	assert.Contains(t, body, "Top 10 Highest Rated Movies")
	assert.Contains(t, body, "Alpha")

	// Genre options come from the observed domain, All first
	assert.Contains(t, body, `<option value="All">`)
	assert.Contains(t, body, `<option value="Drama">`)

	// Default state spans the full observed years
	assert.Contains(t, body, `"yearLo":1994`)
	assert.Contains(t, body, `"yearHi":2008`)
}

func TestYearInputsBindCamelSignals(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.IndexPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// The browser lowercases attribute names, so camelCase bind keys
	// would silently bind yearlo/yearhi instead of the initialized
	// signals. Kebab keys convert back to exactly yearLo/yearHi.
	assert.Contains(t, body, "data-bind-year-lo")
	assert.Contains(t, body, "data-bind-year-hi")
	assert.NotContains(t, body, "data-bind-yearLo")
	assert.NotContains(t, body, "data-bind-yearHi")

	// The kebab keys must round-trip to the signal names the filter
	// endpoint reads.
	assert.Contains(t, body, `"yearLo":`)
	assert.Contains(t, body, `"yearHi":`)
}

func TestDashboardPatch(t *testing.T) {
	h := newTestHandlers(t)

	body := strings.NewReader(`{"genre":"Drama","yearLo":1994,"yearHi":2008}`)
	req := httptest.NewRequest(http.MethodPost, "/dashboard", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.DashboardPatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()

	assert.Contains(t, out, "datastar-patch-elements")
	assert.Contains(t, out, "2 films")
	assert.Contains(t, out, "Alpha")
	assert.NotContains(t, out, "Gamma")

	// Clamped state is persisted for the next page load
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestLoadStateSeesLatestSave(t *testing.T) {
	h := newTestHandlers(t)

	// First page load establishes the browser id
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.IndexPage(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Change the filter with that cookie attached
	body := strings.NewReader(`{"genre":"Drama","yearLo":1994,"yearHi":2008}`)
	patch := httptest.NewRequest(http.MethodPost, "/dashboard", body)
	patch.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		patch.AddCookie(c)
	}
	h.DashboardPatch(httptest.NewRecorder(), patch)

	// A request still carrying the pre-change cookie, like the
	// long-lived updates stream, must resolve to the saved state
	stale := httptest.NewRequest(http.MethodGet, "/updates", nil)
	for _, c := range cookies {
		stale.AddCookie(c)
	}
	state := h.loadState(stale)
	assert.Equal(t, "Drama", state.Genre)
	assert.Equal(t, 1994, state.YearLo)
	assert.Equal(t, 2008, state.YearHi)
}

func TestDashboardPatchUnknownGenre(t *testing.T) {
	h := newTestHandlers(t)

	body := strings.NewReader(`{"genre":"Nope","yearLo":1994,"yearHi":2008}`)
	req := httptest.NewRequest(http.MethodPost, "/dashboard", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.DashboardPatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Unknown genre clamps to All: every row renders
	assert.Contains(t, rec.Body.String(), "4 films")
}

func TestDashboardPatchBadSignals(t *testing.T) {
	h := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.DashboardPatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetupRoutes(t *testing.T) {
	h := newTestHandlers(t)

	r := chi.NewRouter()
	h.SetupRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
