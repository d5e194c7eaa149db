package handler

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bay-services/dashboard/backend/internal/config"
	"github.com/bay-services/dashboard/backend/internal/dashboard"
	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/shift"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 3600
	cfg.InitialAdmin.Email = "admin@bay.test"
	return cfg
}

func newTestHandler(t *testing.T, deps Dependencies) *Handler {
	t.Helper()

	h, err := NewHandler(testConfig(), deps)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func sessionCookie(t *testing.T, h *Handler, role domain.Role) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, h.issueToken(rec, &domain.User{ID: 7, Role: role}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func serve(h *Handler, method, target string, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

func TestAuth_RejectsMissingAndForgedTokens(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	rec := serve(h, http.MethodGet, "/dashboard", "", nil)
	resp := decodeResponse(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "not logged in", resp.Message)

	forger, err := NewHandler(testConfig(), Dependencies{})
	require.NoError(t, err)
	forger.config.JWT.Secret = "another-secret"
	forged := sessionCookie(t, forger, domain.RoleManager)

	resp = decodeResponse(t, serve(h, http.MethodGet, "/dashboard", "", forged))
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid token", resp.Message)
}

func TestRoutes_RoleGating(t *testing.T) {
	h := newTestHandler(t, Dependencies{})
	operator := sessionCookie(t, h, domain.RoleOperator)
	manager := sessionCookie(t, h, domain.RoleManager)

	tests := []struct {
		name   string
		method string
		target string
		cookie *http.Cookie
	}{
		{"operators cannot list payments", http.MethodGet, "/outstanding-payments", operator},
		{"operators cannot toggle payments", http.MethodPost, "/outstanding-payments/inv-1/toggle-status", operator},
		{"operators cannot manage users", http.MethodGet, "/users", operator},
		{"managers cannot read auto answers", http.MethodGet, "/auto-answers", manager},
		{"managers cannot read the service catalog", http.MethodGet, "/service-catalog", manager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := decodeResponse(t, serve(h, tt.method, tt.target, "", tt.cookie))
			assert.False(t, resp.Success)
			assert.Equal(t, "permission denied", resp.Message)
		})
	}
}

func TestRequiredRole(t *testing.T) {
	h, err := NewHandler(testConfig(), Dependencies{})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(h.auth)
	r.With(h.RequiredRole(managerOnly)).Get("/", func(w http.ResponseWriter, r *http.Request) {
		h.successResponse(w, r, "ok", r.Context().Value(SubCtxKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleManager))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "7", resp.Data)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, h, domain.RoleOperator))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp = decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "permission denied", resp.Message)
}

func TestScheduleKind_UnknownSchedule(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	resp := decodeResponse(t, serve(h, http.MethodGet, "/schedules/weekend", "", sessionCookie(t, h, domain.RoleOperator)))
	assert.False(t, resp.Success)
	assert.Equal(t, "schedule not found", resp.Message)
}

func TestLogin_ValidationMessagesAreEnglish(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	resp := decodeResponse(t, serve(h, http.MethodPost, "/auth/login", `{"password":"secret"}`, nil))
	assert.False(t, resp.Success)
	assert.Equal(t, "Email is a required field", resp.Message)

	resp = decodeResponse(t, serve(h, http.MethodPost, "/auth/login", `{"email":"nope","password":"secret"}`, nil))
	assert.Equal(t, "Email must be a valid email address", resp.Message)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	rec := serve(h, http.MethodPost, "/auth/logout", "", nil)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, tokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestRecoverer(t *testing.T) {
	h, err := NewHandler(testConfig(), Dependencies{})
	require.NoError(t, err)

	panicking := h.recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	panicking.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Message)
}

type staticLoader []shift.Table

func (l staticLoader) LoadTables() ([]shift.Table, error) { return l, nil }

func TestStreamOnShift(t *testing.T) {
	tables := staticLoader{{
		Role: domain.RoleOperator,
		Rows: []domain.ScheduleRow{{Day: "Monday", Shifts: []domain.ShiftEntry{{Name: "Thomas", Shift: "9:00 am-5:00 pm"}}}},
	}}
	noon := time.Date(2024, time.January, 15, 12, 0, 0, 0, shift.Pacific())
	watcher := dashboard.NewWatcher(tables, dashboard.WithClock(func() time.Time { return noon }))
	require.NoError(t, watcher.Reload())
	watcher.Evaluate()

	h, err := NewHandler(testConfig(), Dependencies{Watcher: watcher})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(h.StreamOnShift))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	require.Len(t, lines, 2)
	assert.Equal(t, "event: on-shift", lines[0])
	assert.JSONEq(t, `{"operators":["Thomas"],"managers":[]}`, strings.TrimPrefix(lines[1], "data: "))
}

func TestStreamOnShift_ServerShutsDownWithOpenStream(t *testing.T) {
	tables := staticLoader{{
		Role: domain.RoleOperator,
		Rows: []domain.ScheduleRow{{Day: "Monday", Shifts: []domain.ShiftEntry{{Name: "Thomas", Shift: "9:00 am-5:00 pm"}}}},
	}}
	noon := time.Date(2024, time.January, 15, 12, 0, 0, 0, shift.Pacific())
	watcher := dashboard.NewWatcher(tables,
		dashboard.WithClock(func() time.Time { return noon }),
		dashboard.WithTickInterval(time.Hour),
		dashboard.WithReloadInterval(time.Hour),
	)

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()
	watching := make(chan struct{})
	go func() {
		watcher.Run(watchCtx, nil)
		close(watching)
	}()

	h, err := NewHandler(testConfig(), Dependencies{Watcher: watcher})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(h.StreamOnShift))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: on-shift\n", line)

	stopWatching()
	<-watching

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Config.Shutdown(ctx))

	// the rest of the first event, then a clean end of stream
	rest, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(rest), "data: "), string(rest))
}

func TestReadJSON_ReportsUnreadableBodies(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body", "", "request body must not be empty"},
		{"truncated", `{"email":`, "request body contains badly-formed JSON"},
		{"not json", `email=a@b.c`, "request body contains badly-formed JSON"},
		{"wrong type", `{"email": 1, "password": "secret"}`, "request body has the wrong type for field email"},
		{"two values", `{"email": "a@b.c", "password": "secret"} {}`, "request body must hold a single JSON value"},
		{"too large", `{"email": "` + strings.Repeat("a", maxBodyBytes) + `"}`, "request body is too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := decodeResponse(t, serve(h, http.MethodPost, "/auth/login", tt.body, nil))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.want, resp.Message)
		})
	}
}

func TestGetAllUserInfo_RejectsUnknownRole(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	resp := decodeResponse(t, serve(h, http.MethodGet, "/users?role=admin", "", sessionCookie(t, h, domain.RoleManager)))
	assert.False(t, resp.Success)
	assert.Equal(t, "role must be operator or manager", resp.Message)
}

func TestLookupFailed(t *testing.T) {
	h, err := NewHandler(testConfig(), Dependencies{})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	h.lookupFailed(rec, req, sql.ErrNoRows, "user not found")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user not found", decodeResponse(t, rec).Message)

	rec = httptest.NewRecorder()
	h.lookupFailed(rec, req, errors.New("connection reset"), "user not found")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeResponse(t, rec).Message)
}
