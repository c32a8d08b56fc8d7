// Package web serves pages with the theme marker resolved server-side,
// the inline theme script and a small preference API.
package web

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/bnema/themeroot/assets"
	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository"
	"github.com/bnema/themeroot/internal/infrastructure/cache"
	"github.com/bnema/themeroot/internal/infrastructure/colorscheme"
	"github.com/bnema/themeroot/internal/infrastructure/config"
	"github.com/bnema/themeroot/internal/infrastructure/storage"
)

const (
	serverHeader = "themeroot"

	defaultMemoryContexts = 1024
)

// Options configures a Server.
type Options struct {
	Title             string
	RootClasses       []string
	StorageKey        string
	Backend           config.StorageBackend
	CookieName        string
	ContextCookieName string
	CookieMaxAge      time.Duration
	// SecureCookies forces the Secure flag; TLS requests always get it.
	SecureCookies  bool
	StaticCacheTTL time.Duration
	ClientHints    bool
	// WriteRateLimit caps preference writes per client IP and minute; 0 disables it.
	WriteRateLimit int
	AllowedOrigins []string
	// MemoryContexts bounds how many browsing contexts the memory backend
	// remembers; the least recently seen context is forgotten first.
	MemoryContexts int
}

// OptionsFromConfig maps the server and theme sections of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Title:             "themeroot",
		RootClasses:       cfg.Server.RootClasses,
		StorageKey:        cfg.Theme.StorageKey,
		Backend:           cfg.Theme.Backend,
		CookieName:        cfg.Theme.CookieName,
		ContextCookieName: cfg.Theme.ContextCookieName,
		CookieMaxAge:      time.Duration(cfg.Theme.CookieMaxAgeDays) * 24 * time.Hour,
		SecureCookies:     cfg.Server.SecureCookies,
		StaticCacheTTL:    time.Duration(cfg.Server.StaticCacheSeconds) * time.Second,
		ClientHints:       cfg.Server.ClientHints,
		WriteRateLimit:    cfg.Server.WriteRateLimit,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
	}
}

// Server wires the HTTP handlers to the theme use cases.
type Server struct {
	opts       Options
	logger     zerolog.Logger
	repo       repository.PreferenceRepository
	appearance port.AppearanceQuery
	memory     *cache.LRU[string, *storage.MapStore]
	page       *template.Template
	scriptETag string
	router     chi.Router
}

// NewServer builds the router. repo is required for the sqlite backend only.
func NewServer(logger zerolog.Logger, opts Options, repo repository.PreferenceRepository, appearance port.AppearanceQuery) (*Server, error) {
	if opts.StorageKey == "" {
		opts.StorageKey = entity.ThemeStorageKey
	}
	if opts.MemoryContexts <= 0 {
		opts.MemoryContexts = defaultMemoryContexts
	}
	if opts.Backend == config.StorageSQLite && repo == nil {
		return nil, fmt.Errorf("sqlite backend needs a preference repository")
	}

	page, err := template.ParseFS(assets.Templates, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	sum := sha256.Sum256([]byte(assets.ThemeScript))
	s := &Server{
		opts:       opts,
		logger:     logger,
		repo:       repo,
		appearance: appearance,
		memory:     cache.NewLRU[string, *storage.MapStore](opts.MemoryContexts),
		page:       page,
		scriptETag: `"` + hex.EncodeToString(sum[:8]) + `"`,
	}
	s.router = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer returns an *http.Server for addr with the configured timeouts.
func (s *Server) HTTPServer(addr string, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * writeTimeout,
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.Heartbeat("/health"),
		middleware.RealIP,
		middleware.RequestID,
	)
	r.Use(requestLogger(s.logger)...)
	r.Use(
		middleware.Recoverer,
		middleware.CleanPath,
		middleware.GetHead,
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.SetHeader("X-Frame-Options", "deny"),
		middleware.SetHeader("Referrer-Policy", "same-origin"),
		middleware.SetHeader("Server", serverHeader),
	)
	if s.opts.ClientHints {
		r.Use(clientHints)
	}
	// Server-side stores need to know whose preference they hold.
	if s.opts.Backend != config.StorageCookie {
		r.Use(browsingContext(s.opts.ContextCookieName, s.opts.CookieMaxAge, s.opts.SecureCookies))
	}

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	writes := s.writeLimit()

	r.Get("/", s.handlePage)
	r.With(writes...).Post("/theme", s.handleForm)
	r.Get("/static/theme.js", s.handleScript)

	r.Route("/api", func(r chi.Router) {
		if len(s.opts.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   s.opts.AllowedOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPut, http.MethodOptions},
				AllowedHeaders:   []string{"Accept", contentTypeHeader, colorscheme.ClientHintHeader},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		r.Get("/theme", s.handleGetTheme)
		r.With(writes...).Put("/theme", s.handlePutTheme)
	})

	return r
}

// writeLimit returns the rate limiter shared by every preference write route.
func (s *Server) writeLimit() []func(http.Handler) http.Handler {
	if s.opts.WriteRateLimit <= 0 {
		return nil
	}
	return []func(http.Handler) http.Handler{
		httprate.Limit(s.opts.WriteRateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByRealIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, r, http.StatusTooManyRequests, errTooManyWrites)
			}),
		),
	}
}

// storeFor returns the preference store of the request's browsing context.
func (s *Server) storeFor(w http.ResponseWriter, r *http.Request) port.PreferenceStore {
	switch s.opts.Backend {
	case config.StorageCookie:
		name := s.opts.CookieName
		if name == "" {
			name = s.opts.StorageKey
		}
		return storage.NewCookieStore(r, w, storage.CookieOptions{
			Name:   name,
			MaxAge: s.opts.CookieMaxAge,
			Secure: s.opts.SecureCookies || r.TLS != nil,
		})
	case config.StorageSQLite:
		return storage.NewRepositoryStore(s.repo, ContextIDFromContext(r.Context()))
	default:
		return s.memoryStore(ContextIDFromContext(r.Context()))
	}
}

// memoryStore returns the in-memory store of one browsing context,
// creating it on first use.
func (s *Server) memoryStore(contextID string) *storage.MapStore {
	if st, ok := s.memory.Get(contextID); ok {
		return st
	}
	fresh := storage.NewMapStore(nil)
	if existing, found := s.memory.AddIfAbsent(contextID, fresh); found {
		return existing
	}
	return fresh
}
