package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/logging"
)

// ManagePreferenceUseCase handles explicit user choices: dark, light, or
// back to following the system.
type ManagePreferenceUseCase struct {
	prefs port.PreferenceStore
	key   string
}

// NewManagePreferenceUseCase creates a new preference management use case.
func NewManagePreferenceUseCase(prefs port.PreferenceStore, key string) *ManagePreferenceUseCase {
	if key == "" {
		key = entity.ThemeStorageKey
	}
	return &ManagePreferenceUseCase{prefs: prefs, key: key}
}

// Get returns the stored preference.
func (uc *ManagePreferenceUseCase) Get(ctx context.Context) (entity.StoredPreference, error) {
	value, ok, err := uc.prefs.Lookup(ctx, uc.key)
	if err != nil {
		return entity.NoPreference(), fmt.Errorf("failed to read preference: %w", err)
	}
	if !ok {
		return entity.NoPreference(), nil
	}
	return entity.StoredValue(value), nil
}

// Mode maps the stored preference back to the mode a user would pick.
// Unrecognized stored values report as light, matching how they resolve.
func (uc *ManagePreferenceUseCase) Mode(ctx context.Context) (entity.PreferenceMode, error) {
	pref, err := uc.Get(ctx)
	if err != nil {
		return "", err
	}
	switch {
	case !pref.Present:
		return entity.PreferenceSystem, nil
	case pref.IsDark():
		return entity.PreferenceDark, nil
	default:
		return entity.PreferenceLight, nil
	}
}

// Set stores the chosen mode. PreferenceSystem removes the stored value.
func (uc *ManagePreferenceUseCase) Set(ctx context.Context, mode entity.PreferenceMode) error {
	log := logging.FromContext(ctx)

	switch mode {
	case entity.PreferenceDark, entity.PreferenceLight:
		if err := uc.prefs.Store(ctx, uc.key, string(mode)); err != nil {
			return fmt.Errorf("failed to store preference: %w", err)
		}
	case entity.PreferenceSystem:
		if err := uc.prefs.Remove(ctx, uc.key); err != nil {
			return fmt.Errorf("failed to clear preference: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", entity.ErrInvalidPreference, mode)
	}

	log.Info().Str("mode", string(mode)).Msg("theme preference saved")
	return nil
}

// SetString parses and stores a user supplied mode.
func (uc *ManagePreferenceUseCase) SetString(ctx context.Context, raw string) (entity.PreferenceMode, error) {
	mode, err := entity.ParsePreferenceMode(raw)
	if err != nil {
		return "", err
	}
	return mode, uc.Set(ctx, mode)
}
