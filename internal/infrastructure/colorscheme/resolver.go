package colorscheme

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// Sources reported when no detector answered.
const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// ConfigProvider exposes the configured appearance override: one of
// "default", "prefer-dark", "prefer-light", "dark" or "light".
type ConfigProvider interface {
	GetColorScheme() string
}

// Resolver answers "does the system prefer dark" by asking the configured
// override first and then each available detector, highest priority first.
// Listeners registered with OnChange hear about flips observed by Refresh.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector // kept sorted by descending priority
	last      port.ColorSchemePreference
	listeners map[uint64]func(port.ColorSchemePreference)
	nextID    uint64
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)

// NewResolver returns a resolver with no detectors. config may be nil.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config:    config,
		last:      port.ColorSchemePreference{Source: sourceFallback},
		listeners: make(map[uint64]func(port.ColorSchemePreference)),
	}
}

func (r *Resolver) Resolve(ctx context.Context) port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.evaluate(ctx)
}

// Matches answers the two prefers-color-scheme media queries. Any other
// query does not match.
func (r *Resolver) Matches(ctx context.Context, query string) bool {
	q := compactQuery(query)
	switch q {
	case compactQuery(entity.PrefersDarkQuery):
		return r.Resolve(ctx).PrefersDark
	case compactQuery(entity.PrefersLightQuery):
		return !r.Resolve(ctx).PrefersDark
	}
	return false
}

// compactQuery makes "( Prefers-Color-Scheme:dark )" equal to the canonical form.
func compactQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), "")
}

// override reports the configured preference, if the config pins one.
func (r *Resolver) override() (dark bool, pinned bool) {
	if r.config == nil {
		return false, false
	}
	switch strings.ToLower(r.config.GetColorScheme()) {
	case "prefer-dark", "dark":
		return true, true
	case "prefer-light", "light":
		return false, true
	}
	return false, false
}

// evaluate expects r.mu to be held.
func (r *Resolver) evaluate(ctx context.Context) port.ColorSchemePreference {
	if dark, pinned := r.override(); pinned {
		return port.ColorSchemePreference{PrefersDark: dark, Source: sourceConfig}
	}
	for _, d := range r.detectors {
		if !d.Available() {
			continue
		}
		if dark, ok := d.Detect(ctx); ok {
			return port.ColorSchemePreference{PrefersDark: dark, Source: d.Name()}
		}
	}
	// An unknown signal counts as light.
	return port.ColorSchemePreference{Source: sourceFallback}
}

// RegisterDetector adds d behind any already registered detector of equal
// or higher priority.
func (r *Resolver) RegisterDetector(d port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	at := len(r.detectors)
	for i, existing := range r.detectors {
		if d.Priority() > existing.Priority() {
			at = i
			break
		}
	}
	r.detectors = slices.Insert(r.detectors, at, d)
}

// Refresh re-evaluates the preference and notifies listeners when the dark
// flag flipped since the previous refresh.
func (r *Resolver) Refresh(ctx context.Context) port.ColorSchemePreference {
	r.mu.Lock()
	pref := r.evaluate(ctx)
	flipped := pref.PrefersDark != r.last.PrefersDark
	r.last = pref
	var notify []func(port.ColorSchemePreference)
	if flipped {
		ids := make([]uint64, 0, len(r.listeners))
		for id := range r.listeners {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			notify = append(notify, r.listeners[id])
		}
	}
	r.mu.Unlock()

	for _, fn := range notify {
		fn(pref)
	}
	return pref
}

// OnChange registers fn and returns a function that unregisters it.
func (r *Resolver) OnChange(fn func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}
