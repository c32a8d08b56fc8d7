package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/bnema/themeroot/internal/infrastructure/colorscheme"
	"github.com/bnema/themeroot/internal/logging"
)

type contextIDKey struct{}

// ContextIDFromContext returns the browsing context id set by the
// browsingContext middleware.
func ContextIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextIDKey{}).(string)
	return id
}

func requestLogger(logger zerolog.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		hlog.NewHandler(logger.With().Str("component", "http").Logger()),
		hlog.RemoteAddrHandler("ip"),
		hlog.UserAgentHandler("user_agent"),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
	}
}

// clientHints asks for the color scheme hint and exposes it to detectors.
func clientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", colorscheme.ClientHintHeader)
		h.Set("Critical-CH", colorscheme.ClientHintHeader)
		h.Add("Vary", colorscheme.ClientHintHeader)

		if v := r.Header.Get(colorscheme.ClientHintHeader); v != "" {
			r = r.WithContext(colorscheme.WithClientHint(r.Context(), v))
		}
		next.ServeHTTP(w, r)
	})
}

// browsingContext issues and reads the cookie scoping stored preferences.
// The cookie is Secure when secure is set or the request came over TLS.
func browsingContext(cookieName string, maxAge time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cookieName); err == nil && validContextID(c.Value) {
				id = c.Value
			}
			if id == "" {
				fresh, err := newContextID()
				if err != nil {
					logging.FromContext(r.Context()).Error().Err(err).Msg("failed to generate browsing context id")
					writeError(w, r, http.StatusInternalServerError, err)
					return
				}
				id = fresh
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(maxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure || r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), contextIDKey{}, id)
			ctx = logging.WithContextID(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newContextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// validContextID accepts only the canonical form newContextID produces.
func validContextID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.String() == s
}
