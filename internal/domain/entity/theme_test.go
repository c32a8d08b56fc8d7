package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name       string
		stored     StoredPreference
		systemDark bool
		wantAction MarkerAction
		wantReason DecisionReason
	}{
		{
			name:       "stored dark with light system",
			stored:     StoredValue("dark"),
			systemDark: false,
			wantAction: MarkerApply,
			wantReason: ReasonStoredDark,
		},
		{
			name:       "stored dark with dark system",
			stored:     StoredValue("dark"),
			systemDark: true,
			wantAction: MarkerApply,
			wantReason: ReasonStoredDark,
		},
		{
			name:       "absent with dark system",
			stored:     NoPreference(),
			systemDark: true,
			wantAction: MarkerApply,
			wantReason: ReasonSystemDark,
		},
		{
			name:       "explicit light overrides dark system",
			stored:     StoredValue("light"),
			systemDark: true,
			wantAction: MarkerRemove,
			wantReason: ReasonStoredOther,
		},
		{
			name:       "absent with light system",
			stored:     NoPreference(),
			systemDark: false,
			wantAction: MarkerRemove,
			wantReason: ReasonNoPreference,
		},
		{
			name:       "malformed value behaves like light",
			stored:     StoredValue("Dark"),
			systemDark: true,
			wantAction: MarkerRemove,
			wantReason: ReasonStoredOther,
		},
		{
			name:       "empty stored value still counts as stored",
			stored:     StoredValue(""),
			systemDark: true,
			wantAction: MarkerRemove,
			wantReason: ReasonStoredOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ResolveTheme(tt.stored, tt.systemDark)
			assert.Equal(t, tt.wantAction, d.Action)
			assert.Equal(t, tt.wantReason, d.Reason)
			assert.Equal(t, DarkMarker, d.Marker)
		})
	}
}

func TestThemeDecision_Apply(t *testing.T) {
	apply := ResolveTheme(StoredValue("dark"), false)
	remove := ResolveTheme(StoredValue("light"), false)

	assert.Equal(t, TokenList{"dark", "foo", "bar"}, apply.Apply(TokenList{"foo", "bar"}))
	assert.Equal(t, TokenList{"foo", "bar"}, remove.Apply(TokenList{"foo", "dark", "bar"}))

	// Repeated resolution never duplicates the marker.
	root := TokenList{"foo"}
	for i := 0; i < 3; i++ {
		root = apply.Apply(root)
	}
	assert.Equal(t, TokenList{"dark", "foo"}, root)
}

func TestParsePreferenceMode(t *testing.T) {
	for in, want := range map[string]PreferenceMode{
		"dark":    PreferenceDark,
		" LIGHT ": PreferenceLight,
		"system":  PreferenceSystem,
		"auto":    PreferenceSystem,
		"default": PreferenceSystem,
	} {
		got, err := ParsePreferenceMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePreferenceMode("sepia")
	require.ErrorIs(t, err, ErrInvalidPreference)
}

func TestMarkerAction_MarshalText(t *testing.T) {
	b, err := MarkerApply.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "apply", string(b))
	assert.Equal(t, "remove", MarkerRemove.String())
}
