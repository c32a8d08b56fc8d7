// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/logging"
)

// ApplyThemeUseCase resolves the theme for one page load and writes the
// marker to the document root.
type ApplyThemeUseCase struct {
	prefs      port.PreferenceStore
	appearance port.AppearanceQuery
	key        string
}

// NewApplyThemeUseCase creates the use case. An empty key selects the
// default "theme" storage key. Either port may be nil, in which case it
// behaves as absent (no stored value, no dark signal).
func NewApplyThemeUseCase(prefs port.PreferenceStore, appearance port.AppearanceQuery, key string) *ApplyThemeUseCase {
	if key == "" {
		key = entity.ThemeStorageKey
	}
	return &ApplyThemeUseCase{
		prefs:      prefs,
		appearance: appearance,
		key:        key,
	}
}

// Decide reads the store and, only when nothing is stored, the appearance
// signal. It never fails: read errors degrade to "absent".
func (uc *ApplyThemeUseCase) Decide(ctx context.Context) entity.ThemeDecision {
	log := logging.FromContext(ctx)

	stored := uc.readPreference(ctx)
	systemDark := false
	if !stored.Present && uc.appearance != nil {
		systemDark = uc.appearance.Matches(ctx, entity.PrefersDarkQuery)
	}

	decision := entity.ResolveTheme(stored, systemDark)
	log.Debug().
		Str("stored", stored.String()).
		Bool("system_dark", systemDark).
		Stringer("action", decision.Action).
		Str("reason", string(decision.Reason)).
		Msg("theme resolved")
	return decision
}

// Execute resolves the theme and applies it to root.
func (uc *ApplyThemeUseCase) Execute(ctx context.Context, root port.RootTokens) entity.ThemeDecision {
	decision := uc.Decide(ctx)
	if root == nil {
		return decision
	}

	before := root.Tokens()
	after := decision.Apply(before)
	if len(after) != len(before) {
		root.SetTokens(after)
	}
	return decision
}

func (uc *ApplyThemeUseCase) readPreference(ctx context.Context) entity.StoredPreference {
	if uc.prefs == nil {
		return entity.NoPreference()
	}
	value, ok, err := uc.prefs.Lookup(ctx, uc.key)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", uc.key).Msg("preference read failed, treating as absent")
		return entity.NoPreference()
	}
	if !ok {
		return entity.NoPreference()
	}
	return entity.StoredValue(value)
}
