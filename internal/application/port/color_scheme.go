package port

import "context"

// ColorSchemePreference is the OS-level "prefers dark" signal together with
// the name of whatever produced it ("config", a detector name, or
// "fallback" when nothing answered).
type ColorSchemePreference struct {
	PrefersDark bool
	Source      string
}

// ColorSchemeDetector is one source of the prefers-dark signal.
//
// Detectors are consulted in descending Priority order. Request-scoped
// detectors (client hints) sit at 100, host detectors (GTK_THEME,
// gsettings) at 10-20.
type ColorSchemeDetector interface {
	Name() string
	Priority() int
	// Available reports whether the detector can run in this process.
	Available() bool
	// Detect returns ok=false when the source has no opinion.
	Detect(ctx context.Context) (prefersDark bool, ok bool)
}

// ColorSchemeResolver combines the configured override with the registered
// detectors. With no answer at all the scheme is light.
type ColorSchemeResolver interface {
	AppearanceQuery

	Resolve(ctx context.Context) ColorSchemePreference
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-resolves and calls OnChange listeners if the dark flag
	// differs from the previous Refresh.
	Refresh(ctx context.Context) ColorSchemePreference

	// OnChange returns a function that removes the listener.
	OnChange(callback func(ColorSchemePreference)) func()
}
