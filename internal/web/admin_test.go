package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/analytics"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/config"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
)

func newAdminRouter(t *testing.T) (http.Handler, *analytics.Store) {
	t.Helper()
	store, err := analytics.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	p, err := content.Load()
	require.NoError(t, err)
	r, err := NewRouter(Deps{
		Content:   content.NewLive(p),
		Mailer:    &fakeMailer{},
		Log:       zerolog.Nop(),
		Admin:     config.Admin{Username: "owner", Password: "s3cret"},
		Analytics: store,
	})
	require.NoError(t, err)
	return r, store
}

func login(t *testing.T, r http.Handler, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAdminRequiresLogin(t *testing.T) {
	r, _ := newAdminRouter(t)

	rec := get(t, r, "/admin/dashboard")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	rec = login(t, r, "owner", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, parse(t, rec).Find(".login-error").Length())
}

func TestAdminLoginAndStats(t *testing.T) {
	r, store := newAdminRouter(t)
	require.NoError(t, store.Record(context.Background(), "203.0.113.9", "test-agent", "/"))

	rec := login(t, r, "owner", "s3cret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)
	require.Len(t, stats.RecentVisitors, 1)
	assert.NotEqual(t, "203.0.113.9", stats.RecentVisitors[0].HashedIP)

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", strings.TrimSpace(parse(t, rec).Find("#total-visitors").Text()))
}

func TestVisitTracking(t *testing.T) {
	r, store := newAdminRouter(t)
	ctx := context.Background()

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), dnt)
	get(t, r, "/static/js/portfolio.js")
	get(t, r, "/privacy")
	get(t, r, "/sections/projects?expanded=true")

	assert.Eventually(t, func() bool {
		visits, err := store.Recent(ctx, 10)
		return err == nil && len(visits) == 1
	}, 2*time.Second, 20*time.Millisecond)

	visits, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "/sections/projects", visits[0].Path)
}

func TestTrackedPaths(t *testing.T) {
	assert.True(t, tracked("/"))
	assert.True(t, tracked("/sections/skills"))
	assert.False(t, tracked("/static/css/site.css"))
	assert.False(t, tracked("/admin/dashboard"))
	assert.False(t, tracked("/privacy"))
}
