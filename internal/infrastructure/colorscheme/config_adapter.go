package colorscheme

import (
	"github.com/bnema/themeroot/internal/infrastructure/config"
)

// ConfigAdapter adapts config.Config to the ConfigProvider interface.
type ConfigAdapter struct {
	cfg func() *config.Config
}

// NewConfigAdapter creates a config adapter reading the live config on each
// resolution, so reloads take effect without rebuilding the resolver.
func NewConfigAdapter(cfg func() *config.Config) *ConfigAdapter {
	return &ConfigAdapter{cfg: cfg}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.cfg == nil {
		return ""
	}
	c := a.cfg()
	if c == nil {
		return ""
	}
	return c.Appearance.ColorScheme
}

// NewDefaultResolver builds a resolver with the host detectors registered.
// Request-scoped detection is enabled with withClientHint.
func NewDefaultResolver(provider ConfigProvider, withClientHint bool) *Resolver {
	r := NewResolver(provider)
	if withClientHint {
		r.RegisterDetector(NewClientHintDetector())
	}
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewGsettingsDetector())
	return r
}

// NewRequestResolver builds a resolver that only listens to the browser.
// The host desktop says nothing about a remote visitor.
func NewRequestResolver(provider ConfigProvider) *Resolver {
	r := NewResolver(provider)
	r.RegisterDetector(NewClientHintDetector())
	return r
}
