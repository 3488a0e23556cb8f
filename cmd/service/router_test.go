package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamlog/roam-api/cmd/service/handler"
	"github.com/roamlog/roam-api/internal/core"
	"github.com/roamlog/roam-api/internal/core/srv"
	"github.com/roamlog/roam-api/internal/store/storetest"
	"github.com/roamlog/roam-api/pkg/types"
)

func newTestSrv(t *testing.T, cfg core.CoreConfig) (*handler.HttpSrv, *storetest.Provider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := storetest.NewProvider()
	app := core.NewWithStore(cfg, provider)

	s := &handler.HttpSrv{Core: app, Engine: app.HttpEngine()}
	setupHttpRouter(s)
	return s, provider
}

func doRequest(t *testing.T, s *handler.HttpSrv, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthorizationRejections(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", errorBody(t, w))

	w = doRequest(t, s, http.MethodGet, "/journal", "something-else", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorBody(t, w))

	w = doRequest(t, s, http.MethodGet, "/journal", "token-abc", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token format", errorBody(t, w))
}

func TestCreateJournalEntry(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "FI",
		"countryName": "Finland",
		"entry":       "Great trip!",
		"visitStatus": "visited",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created types.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "Great trip!", created.Entry)
	assert.Equal(t, "visited", created.VisitStatus)

	w = doRequest(t, s, http.MethodGet, "/journal", "demo-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []types.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "visited", list[0].VisitStatus)
}

func TestCreateStatusOnly(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	// Blank entry text records a status but no journal row.
	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "SE",
		"countryName": "Sweden",
		"entry":       "   ",
		"visitStatus": "want-to-visit",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "id")
	assert.Equal(t, "SE", body["countryCode"])

	w = doRequest(t, s, http.MethodGet, "/journal", "demo-token", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = doRequest(t, s, http.MethodGet, "/journal/status/SE", "demo-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status types.CountryStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "want-to-visit", status.VisitStatus)
}

func TestCreateRequiresCountry(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"entry": "no country",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Country code and name are required", errorBody(t, w))
}

func TestCreateStorageFailure(t *testing.T) {
	s, provider := newTestSrv(t, core.CoreConfig{})
	provider.FailWrites = assert.AnError

	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "FI",
		"countryName": "Finland",
		"entry":       "Great trip!",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database error", errorBody(t, w))
}

func TestUpdateJournalEntry(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "FI",
		"countryName": "Finland",
		"entry":       "first draft",
		"visitStatus": "visited",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created types.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Partial update: only the text changes.
	w = doRequest(t, s, http.MethodPut, "/journal/"+strconv.FormatInt(created.ID, 10), "demo-token", gin.H{
		"entry": "second draft",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated types.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "second draft", updated.Entry)
	assert.Equal(t, "visited", updated.VisitStatus)

	// The other direction: a status-only update leaves the text alone. The
	// response still reports the country-level status, which takes precedence
	// on reads.
	w = doRequest(t, s, http.MethodPut, "/journal/"+strconv.FormatInt(created.ID, 10), "demo-token", gin.H{
		"visitStatus": "want-to-visit",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "second draft", updated.Entry)
	assert.Equal(t, "visited", updated.VisitStatus)

	w = doRequest(t, s, http.MethodPut, "/journal/99999", "demo-token", gin.H{"entry": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found or access denied", errorBody(t, w))

	// An unparseable id can't match anything.
	w = doRequest(t, s, http.MethodPut, "/journal/abc", "demo-token", gin.H{"entry": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Another user can't touch the entry.
	w = doRequest(t, s, http.MethodPut, "/journal/"+strconv.FormatInt(created.ID, 10), "token-2", gin.H{"entry": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteJournalEntry(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "FI",
		"countryName": "Finland",
		"entry":       "to be removed",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created types.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := "/journal/" + strconv.FormatInt(created.ID, 10)
	w = doRequest(t, s, http.MethodDelete, path, "demo-token", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, s, http.MethodDelete, path, "demo-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Entry not found or access denied", errorBody(t, w))
}

func TestStatusDefaultsToNotVisited(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodGet, "/journal/status/NO", "demo-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status types.CountryStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "NO", status.CountryCode)
	assert.Equal(t, types.VISIT_STATUS_NOT_VISITED, status.VisitStatus)
}

func TestCountryStatusOverridesEntries(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "FI",
		"countryName": "Finland",
		"entry":       "Great trip!",
		"visitStatus": "visited",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// A later status-only write changes what every FI entry reports.
	w = doRequest(t, s, http.MethodPost, "/journal", "demo-token", gin.H{
		"countryCode": "FI",
		"countryName": "Finland",
		"visitStatus": "want-to-visit",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, s, http.MethodGet, "/journal/country/FI", "demo-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []types.JournalEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "want-to-visit", list[0].VisitStatus)
}

func TestLogin(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/auth/login", "", gin.H{
		"username": "demo",
		"password": "demo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.DEMO_USER_ID, resp.User.ID)
	assert.Equal(t, "demo-token", resp.Token)

	w = doRequest(t, s, http.MethodPost, "/auth/login", "", gin.H{
		"username": "demo",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", errorBody(t, w))
}

func TestRegisterAndProfile(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp handler.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)

	w = doRequest(t, s, http.MethodGet, "/auth/profile", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.Username)

	w = doRequest(t, s, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", errorBody(t, w))

	w = doRequest(t, s, http.MethodPost, "/auth/register", "", gin.H{
		"username": "bob",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", errorBody(t, w))

	// A registered credential round-trips through login.
	w = doRequest(t, s, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice",
		"password": "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDemoProfile(t *testing.T) {
	s, _ := newTestSrv(t, core.CoreConfig{})

	w := doRequest(t, s, http.MethodGet, "/auth/profile", "demo-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, types.DEMO_USER_ID, profile.ID)
	assert.Equal(t, "demo", profile.Username)
}

func TestCountryEndpoints(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/all":
			w.Write([]byte(`[{"name":{"common":"Finland","official":"Republic of Finland"},"cca2":"FI","cca3":"FIN"}]`))
		case "/alpha/FI":
			w.Write([]byte(`[{"name":{"common":"Finland","official":"Republic of Finland"},"cca2":"FI","cca3":"FIN"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer upstream.Close()

	s, _ := newTestSrv(t, core.CoreConfig{
		Countries: srv.CountryAPIConfig{BaseURL: upstream.URL},
	})

	// Countries are readable without a token.
	w := doRequest(t, s, http.MethodGet, "/countries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []types.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "FI", list[0].CCA2)

	w = doRequest(t, s, http.MethodGet, "/countries/FI", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/countries/XX", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Country not found", errorBody(t, w))
}
