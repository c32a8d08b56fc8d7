package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fixed names shared by the browser script, the stores and the resolver.
const (
	// ThemeStorageKey is the key the preference is persisted under.
	ThemeStorageKey = "theme"
	// DarkMarker is the token placed on the document root when dark is active.
	DarkMarker = "dark"
	// PrefersDarkQuery is the media query answered by the appearance port.
	PrefersDarkQuery = "(prefers-color-scheme: dark)"
	// PrefersLightQuery is the light counterpart of PrefersDarkQuery.
	PrefersLightQuery = "(prefers-color-scheme: light)"
)

// ErrInvalidPreference is returned when a user action tries to store a value
// that is neither dark, light nor system.
var ErrInvalidPreference = errors.New("invalid theme preference")

// PreferenceMode is what a user can choose explicitly.
type PreferenceMode string

const (
	PreferenceDark  PreferenceMode = "dark"
	PreferenceLight PreferenceMode = "light"
	// PreferenceSystem removes the stored value so the OS signal decides.
	PreferenceSystem PreferenceMode = "system"
)

// AllPreferenceModes lists the modes in display order.
func AllPreferenceModes() []PreferenceMode {
	return []PreferenceMode{PreferenceSystem, PreferenceLight, PreferenceDark}
}

// ParsePreferenceMode validates a user supplied mode.
// Matching is case-insensitive; "auto" and "default" are accepted as system.
func ParsePreferenceMode(s string) (PreferenceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return PreferenceDark, nil
	case "light":
		return PreferenceLight, nil
	case "system", "auto", "default":
		return PreferenceSystem, nil
	default:
		return "", fmt.Errorf("%w: %q (expected dark, light or system)", ErrInvalidPreference, s)
	}
}

// StoredPreference is the optional persisted value read at page load.
// Any present value other than the exact literal "dark" behaves like light.
type StoredPreference struct {
	Value   string
	Present bool
}

// NoPreference is the absent preference.
func NoPreference() StoredPreference {
	return StoredPreference{}
}

// StoredValue wraps a value that exists in the store, whatever it is.
func StoredValue(v string) StoredPreference {
	return StoredPreference{Value: v, Present: true}
}

// IsDark reports whether the stored value is exactly "dark".
func (p StoredPreference) IsDark() bool {
	return p.Present && p.Value == string(PreferenceDark)
}

func (p StoredPreference) String() string {
	if !p.Present {
		return "<absent>"
	}
	return p.Value
}

// MarkerAction is what happens to the root marker.
type MarkerAction int

const (
	MarkerRemove MarkerAction = iota
	MarkerApply
)

func (a MarkerAction) String() string {
	if a == MarkerApply {
		return "apply"
	}
	return "remove"
}

// MarshalText lets the action appear by name in JSON and logs.
func (a MarkerAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// DecisionReason names the branch of the policy that produced a decision.
type DecisionReason string

const (
	ReasonStoredDark   DecisionReason = "stored-dark"
	ReasonSystemDark   DecisionReason = "system-dark"
	ReasonStoredOther  DecisionReason = "stored-other"
	ReasonNoPreference DecisionReason = "no-preference"
)

// ThemeDecision is the outcome of resolving the theme.
type ThemeDecision struct {
	Action MarkerAction   `json:"action"`
	Marker string         `json:"marker"`
	Reason DecisionReason `json:"reason"`
}

// Dark reports whether the decision turns the marker on.
func (d ThemeDecision) Dark() bool {
	return d.Action == MarkerApply
}

// ResolveTheme decides whether the dark marker is applied or removed.
//
// The policy is evaluated in order: a stored "dark" wins; with nothing stored
// a dark system signal wins; everything else removes the marker.
func ResolveTheme(stored StoredPreference, systemPrefersDark bool) ThemeDecision {
	d := ThemeDecision{Marker: DarkMarker}
	switch {
	case stored.IsDark():
		d.Action, d.Reason = MarkerApply, ReasonStoredDark
	case !stored.Present && systemPrefersDark:
		d.Action, d.Reason = MarkerApply, ReasonSystemDark
	case stored.Present:
		d.Action, d.Reason = MarkerRemove, ReasonStoredOther
	default:
		d.Action, d.Reason = MarkerRemove, ReasonNoPreference
	}
	return d
}

// Apply runs the decision against a token list and returns the result.
func (d ThemeDecision) Apply(tokens TokenList) TokenList {
	if d.Action == MarkerApply {
		return tokens.Add(d.Marker)
	}
	return tokens.Remove(d.Marker)
}

// PreferenceRecord is a persisted preference scoped to a browsing context.
type PreferenceRecord struct {
	ContextID string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// NewPreferenceRecord creates a record stamped with the current time.
func NewPreferenceRecord(contextID, key, value string) *PreferenceRecord {
	return &PreferenceRecord{
		ContextID: contextID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
}
