package storage

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bnema/themeroot/internal/application/port"
)

// CookieOptions configures cookies written by CookieStore.
type CookieOptions struct {
	// Name overrides the cookie name, which defaults to the preference key.
	Name   string
	MaxAge time.Duration
	Secure bool
}

// CookieStore keeps a preference in a cookie of one HTTP exchange.
// Writes are visible to later lookups of the same exchange.
type CookieStore struct {
	r    *http.Request
	w    http.ResponseWriter
	opts CookieOptions

	mu      sync.Mutex
	pending map[string]*string
}

var _ port.PreferenceStore = (*CookieStore)(nil)

// NewCookieStore binds a store to a request and its response writer.
func NewCookieStore(r *http.Request, w http.ResponseWriter, opts CookieOptions) *CookieStore {
	return &CookieStore{r: r, w: w, opts: opts, pending: make(map[string]*string)}
}

func (s *CookieStore) cookieName(key string) string {
	if s.opts.Name != "" {
		return s.opts.Name
	}
	return key
}

// Lookup implements port.PreferenceStore.
func (s *CookieStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	if v, ok := s.pending[key]; ok {
		s.mu.Unlock()
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	s.mu.Unlock()

	c, err := s.r.Cookie(s.cookieName(key))
	if err != nil {
		return "", false, nil
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		// keep the raw value, it is still a present preference
		return c.Value, true, nil
	}
	return v, true, nil
}

// Store implements port.PreferenceStore.
func (s *CookieStore) Store(_ context.Context, key, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.cookieName(key),
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(s.opts.MaxAge.Seconds()),
		HttpOnly: false,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.mu.Lock()
	s.pending[key] = &value
	s.mu.Unlock()
	return nil
}

// Remove implements port.PreferenceStore.
func (s *CookieStore) Remove(_ context.Context, key string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.cookieName(key),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.mu.Lock()
	s.pending[key] = nil
	s.mu.Unlock()
	return nil
}
