package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/assets"
	"github.com/bnema/themeroot/internal/infrastructure/colorscheme"
	"github.com/bnema/themeroot/internal/infrastructure/config"
	"github.com/bnema/themeroot/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/themeroot/internal/infrastructure/web"
	"github.com/bnema/themeroot/internal/logging"
)

func newServer(t *testing.T, backend config.StorageBackend) *web.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Theme.Backend = backend
	opts := web.OptionsFromConfig(cfg)

	var srv *web.Server
	var err error
	resolver := colorscheme.NewRequestResolver(nil)
	if backend == config.StorageSQLite {
		ctx := logging.WithContext(t.Context(), zerolog.Nop())
		db, dbErr := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "web.sqlite"))
		require.NoError(t, dbErr)
		t.Cleanup(func() { _ = db.Close() })
		srv, err = web.NewServer(zerolog.Nop(), opts, sqlite.NewPreferenceRepository(db), resolver)
	} else {
		srv, err = web.NewServer(zerolog.Nop(), opts, nil, resolver)
	}
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeTheme(t *testing.T, rec *httptest.ResponseRecorder) web.ThemeResponse {
	t.Helper()
	var resp web.ThemeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestServer_Health(t *testing.T) {
	srv := newServer(t, config.StorageMemory)
	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_PageUsesClientHint(t *testing.T) {
	srv := newServer(t, config.StorageMemory)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(colorscheme.ClientHintHeader, "dark")
	rec := do(t, srv.Handler(), req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en" class="dark h-full antialiased">`)
	assert.Contains(t, body, "localStorage")
	assert.Equal(t, colorscheme.ClientHintHeader, rec.Header().Get("Accept-CH"))
	assert.Contains(t, rec.Header().Values("Vary"), colorscheme.ClientHintHeader)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = do(t, srv.Handler(), req)
	assert.Contains(t, rec.Body.String(), `<html lang="en" class="h-full antialiased">`)
}

func TestServer_CookieBackendRoundTrip(t *testing.T) {
	srv := newServer(t, config.StorageCookie)
	h := srv.Handler()

	req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"dark"}`))
	rec := do(t, h, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeTheme(t, rec)
	assert.Equal(t, "dark", string(resp.Preference))
	require.NotNil(t, resp.Stored)
	assert.Equal(t, "dark", *resp.Stored)
	assert.True(t, resp.Decision.Dark())
	assert.Equal(t, "dark h-full antialiased", resp.Root)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set(colorscheme.ClientHintHeader, "light")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp = decodeTheme(t, do(t, h, req))
	assert.Equal(t, "stored-dark", string(resp.Decision.Reason))
}

func TestServer_SQLiteBackendScopesByContextCookie(t *testing.T) {
	srv := newServer(t, config.StorageSQLite)
	h := srv.Handler()

	rec := do(t, h, httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"light"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ctxCookie := findCookie(rec.Result().Cookies(), "themeroot_ctx")
	require.NotNil(t, ctxCookie)
	_, err := uuid.Parse(ctxCookie.Value)
	require.NoError(t, err)

	// same context sees the stored value even with a dark hint
	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.AddCookie(ctxCookie)
	req.Header.Set(colorscheme.ClientHintHeader, "dark")
	resp := decodeTheme(t, do(t, h, req))
	assert.Equal(t, "light", string(resp.Preference))
	assert.False(t, resp.Decision.Dark())

	// a fresh context follows the hint
	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set(colorscheme.ClientHintHeader, "dark")
	resp = decodeTheme(t, do(t, h, req))
	assert.Equal(t, "system", string(resp.Preference))
	assert.Nil(t, resp.Stored)
	assert.Equal(t, "system-dark", string(resp.Decision.Reason))

	// system clears
	req = httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"system"}`))
	req.AddCookie(ctxCookie)
	resp = decodeTheme(t, do(t, h, req))
	assert.Nil(t, resp.Stored)
}

func TestServer_PutRejectsInvalid(t *testing.T) {
	srv := newServer(t, config.StorageMemory)

	for _, body := range []string{`{"preference":"sepia"}`, `not json`, `{"preference":"dark","x":1}`} {
		rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestServer_FormRedirects(t *testing.T) {
	srv := newServer(t, config.StorageMemory)

	form := url.Values{"preference": {"dark"}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(t, srv.Handler(), req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	ctxCookie := findCookie(rec.Result().Cookies(), "themeroot_ctx")
	require.NotNil(t, ctxCookie)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(ctxCookie)
	rec = do(t, srv.Handler(), req)
	assert.Contains(t, rec.Body.String(), `class="dark h-full antialiased"`)
}

func TestServer_ScriptETag(t *testing.T) {
	srv := newServer(t, config.StorageMemory)

	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/static/theme.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, assets.ThemeScript, rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	req := httptest.NewRequest(http.MethodGet, "/static/theme.js", nil)
	req.Header.Set("If-None-Match", etag)
	rec = do(t, srv.Handler(), req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServer_NotFound(t *testing.T) {
	srv := newServer(t, config.StorageMemory)

	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"endpoint not found"}`, rec.Body.String())

	rec = do(t, srv.Handler(), httptest.NewRequest(http.MethodDelete, "/api/theme", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNewServer_SQLiteNeedsRepository(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := web.NewServer(zerolog.Nop(), web.OptionsFromConfig(cfg), nil, nil)
	require.Error(t, err)
}

func TestServer_HTTPServer(t *testing.T) {
	srv := newServer(t, config.StorageMemory)
	hs := srv.HTTPServer(":0", time.Second, 2*time.Second)
	assert.Equal(t, ":0", hs.Addr)
	assert.Equal(t, 2*time.Second, hs.WriteTimeout)
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func newMemoryServer(t *testing.T, tweak func(cfg *config.Config)) *web.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Theme.Backend = config.StorageMemory
	tweak(cfg)
	srv, err := web.NewServer(zerolog.Nop(), web.OptionsFromConfig(cfg), nil, colorscheme.NewRequestResolver(nil))
	require.NoError(t, err)
	return srv
}

func TestServer_WriteRateLimit(t *testing.T) {
	srv := newMemoryServer(t, func(cfg *config.Config) { cfg.Server.WriteRateLimit = 2 })
	h := srv.Handler()

	put := func() *httptest.ResponseRecorder {
		return do(t, h, httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"dark"}`)))
	}
	assert.Equal(t, http.StatusOK, put().Code)
	assert.Equal(t, http.StatusOK, put().Code)

	rec := put()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many preference changes")

	// reads are never limited
	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	preflight := func(h http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/theme", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		return do(t, h, req)
	}

	allowed := newMemoryServer(t, func(cfg *config.Config) {
		cfg.Server.AllowedOrigins = []string{"https://app.example.com"}
	})
	rec := preflight(allowed.Handler())
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	closed := newMemoryServer(t, func(*config.Config) {})
	rec = preflight(closed.Handler())
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_MemoryBackendScopesByContextCookie(t *testing.T) {
	srv := newServer(t, config.StorageMemory)
	h := srv.Handler()

	put := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"dark"}`))
	put.RemoteAddr = "10.0.0.1:40000"
	rec := do(t, h, put)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := findCookie(rec.Result().Cookies(), "themeroot_ctx")
	require.NotNil(t, first)

	// another visitor without cookies has nothing stored
	get := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	get.RemoteAddr = "10.0.0.2:40000"
	resp := decodeTheme(t, do(t, h, get))
	assert.Nil(t, resp.Stored)
	assert.Equal(t, "system", string(resp.Preference))
	assert.False(t, resp.Decision.Dark())
	assert.Equal(t, "h-full antialiased", resp.Root)

	// the writer still sees its own choice
	get = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	get.AddCookie(first)
	resp = decodeTheme(t, do(t, h, get))
	require.NotNil(t, resp.Stored)
	assert.Equal(t, "dark", *resp.Stored)
	assert.Equal(t, "stored-dark", string(resp.Decision.Reason))
}

func TestServer_MemoryBackendForgetsOldestContext(t *testing.T) {
	opts := web.OptionsFromConfig(config.DefaultConfig())
	opts.Backend = config.StorageMemory
	opts.MemoryContexts = 1
	small, err := web.NewServer(zerolog.Nop(), opts, nil, colorscheme.NewRequestResolver(nil))
	require.NoError(t, err)

	putDark := func() *http.Cookie {
		rec := do(t, small.Handler(), httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"dark"}`)))
		require.Equal(t, http.StatusOK, rec.Code)
		c := findCookie(rec.Result().Cookies(), "themeroot_ctx")
		require.NotNil(t, c)
		return c
	}
	first := putDark()
	second := putDark()

	stored := func(c *http.Cookie) *string {
		req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
		req.AddCookie(c)
		return decodeTheme(t, do(t, small.Handler(), req)).Stored
	}
	assert.NotNil(t, stored(second))
	assert.Nil(t, stored(first))
}

func TestServer_ContextCookieSecureFlag(t *testing.T) {
	contextCookie := func(srv *web.Server, target string) *http.Cookie {
		rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, target, nil))
		c := findCookie(rec.Result().Cookies(), "themeroot_ctx")
		require.NotNil(t, c)
		return c
	}

	plain := newMemoryServer(t, func(*config.Config) {})
	assert.False(t, contextCookie(plain, "http://example.com/api/theme").Secure)
	assert.True(t, contextCookie(plain, "https://example.com/api/theme").Secure, "TLS requests get Secure cookies")

	forced := newMemoryServer(t, func(cfg *config.Config) { cfg.Server.SecureCookies = true })
	assert.True(t, contextCookie(forced, "http://example.com/api/theme").Secure)
}

func TestServer_CookieBackendSecureFlag(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme.Backend = config.StorageCookie
	cfg.Server.SecureCookies = true
	srv, err := web.NewServer(zerolog.Nop(), web.OptionsFromConfig(cfg), nil, colorscheme.NewRequestResolver(nil))
	require.NoError(t, err)

	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"preference":"dark"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	c := findCookie(rec.Result().Cookies(), cfg.Theme.CookieName)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
}
