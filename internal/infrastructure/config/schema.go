// Package config loads, validates and watches the themeroot configuration.
package config

import (
	"strings"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// Config represents the complete configuration for themeroot.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server" toml:"server" json:"server"`
	Theme      ThemeConfig      `mapstructure:"theme" yaml:"theme" toml:"theme" json:"theme"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Tailwind holds the stylesheet build profiles rendered for external tooling.
	Tailwind TailwindConfig `mapstructure:"tailwind" yaml:"tailwind" toml:"tailwind" json:"tailwind"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr" json:"addr"`
	// RootClasses are the class tokens the page root starts with before the theme marker is applied.
	RootClasses []string `mapstructure:"root_classes" yaml:"root_classes" toml:"root_classes" json:"root_classes"`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" yaml:"read_timeout_seconds" toml:"read_timeout_seconds" json:"read_timeout_seconds" jsonschema:"minimum=1"`
	// WriteTimeoutSeconds bounds writing a response.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" yaml:"write_timeout_seconds" toml:"write_timeout_seconds" json:"write_timeout_seconds" jsonschema:"minimum=1"`
	// ShutdownTimeoutSeconds is the grace period for in-flight requests on shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds" jsonschema:"minimum=1"`
	// StaticCacheSeconds is the max-age sent with the inline script.
	StaticCacheSeconds int `mapstructure:"static_cache_seconds" yaml:"static_cache_seconds" toml:"static_cache_seconds" json:"static_cache_seconds" jsonschema:"minimum=0"`
	// ClientHints asks browsers for Sec-CH-Prefers-Color-Scheme so the first render is already correct.
	ClientHints bool `mapstructure:"client_hints" yaml:"client_hints" toml:"client_hints" json:"client_hints"`
	// WriteRateLimit caps preference writes per client IP and minute; 0 disables the limit.
	WriteRateLimit int `mapstructure:"write_rate_limit" yaml:"write_rate_limit" toml:"write_rate_limit" json:"write_rate_limit" jsonschema:"minimum=0"`
	// AllowedOrigins enables CORS on /api for these origins. Empty means same-origin only.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins" json:"allowed_origins"`
	// SecureCookies marks preference and context cookies Secure. Requests that
	// arrive over TLS always get Secure cookies.
	SecureCookies bool `mapstructure:"secure_cookies" yaml:"secure_cookies" toml:"secure_cookies" json:"secure_cookies"`
}

// StorageBackend selects where preferences live.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageCookie StorageBackend = "cookie"
	StorageMemory StorageBackend = "memory"
)

// ThemeConfig controls how preferences are stored and scoped.
type ThemeConfig struct {
	// StorageKey is the preference key, "theme" by default.
	StorageKey string `mapstructure:"storage_key" yaml:"storage_key" toml:"storage_key" json:"storage_key"`
	// Backend is one of sqlite, cookie, memory.
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=cookie,enum=memory"`
	// CookieName names the preference cookie used by the cookie backend.
	CookieName string `mapstructure:"cookie_name" yaml:"cookie_name" toml:"cookie_name" json:"cookie_name"`
	// ContextCookieName names the cookie identifying a browsing context for the sqlite and memory backends.
	ContextCookieName string `mapstructure:"context_cookie_name" yaml:"context_cookie_name" toml:"context_cookie_name" json:"context_cookie_name"`
	// CookieMaxAgeDays is the lifetime of both cookies.
	CookieMaxAgeDays int `mapstructure:"cookie_max_age_days" yaml:"cookie_max_age_days" toml:"cookie_max_age_days" json:"cookie_max_age_days" jsonschema:"minimum=1"`
	// CLIContext is the browsing context used by CLI commands.
	CLIContext string `mapstructure:"cli_context" yaml:"cli_context" toml:"cli_context" json:"cli_context"`
}

// Color scheme override values.
const (
	ThemeDefault     = "default"
	ThemePreferDark  = "prefer-dark"
	ThemePreferLight = "prefer-light"
)

// AppearanceConfig overrides the detected system appearance.
type AppearanceConfig struct {
	// ColorScheme is "default" (detect), "prefer-dark" or "prefer-light".
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/themeroot/themeroot.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	// CacheSize is how many preference records the server keeps in memory; 0 disables the cache.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=0"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File enables a rotated JSON log file when non-empty.
	File       string `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// TailwindConfig holds named build profiles. Only Active is authoritative;
// the others are kept so divergent duplicates can be flagged.
type TailwindConfig struct {
	Active string `mapstructure:"active" yaml:"active" toml:"active" json:"active"`
	// Output is where "tailwind render --write" puts the generated config.
	Output   string                     `mapstructure:"output" yaml:"output" toml:"output" json:"output"`
	Profiles map[string]TailwindProfile `mapstructure:"profiles" yaml:"profiles" toml:"profiles" json:"profiles"`
}

// TailwindProfile is one declarative build configuration.
type TailwindProfile struct {
	// DarkMode is ["class"] or ["class", "<attribute selector>"].
	DarkMode []string `mapstructure:"dark_mode" yaml:"dark_mode" toml:"dark_mode" json:"dark_mode" jsonschema:"minItems=1,maxItems=2"`
	Content  []string `mapstructure:"content" yaml:"content" toml:"content" json:"content"`
	FontSans []string `mapstructure:"font_sans" yaml:"font_sans" toml:"font_sans" json:"font_sans"`
	Plugins  []string `mapstructure:"plugins" yaml:"plugins" toml:"plugins" json:"plugins"`
}

// Entity converts the profile to its domain form.
func (p TailwindProfile) Entity(name string) entity.BuildProfile {
	var mode entity.DarkModeStrategy
	if len(p.DarkMode) > 0 {
		mode.Strategy = strings.TrimSpace(p.DarkMode[0])
	}
	if len(p.DarkMode) > 1 {
		mode.Selector = strings.TrimSpace(p.DarkMode[1])
	}
	return entity.BuildProfile{
		Name:     name,
		DarkMode: mode,
		Content:  p.Content,
		FontSans: p.FontSans,
		Plugins:  p.Plugins,
	}
}

// BuildProfiles returns every profile in domain form keyed by name.
func (c TailwindConfig) BuildProfiles() map[string]entity.BuildProfile {
	out := make(map[string]entity.BuildProfile, len(c.Profiles))
	for name, p := range c.Profiles {
		out[name] = p.Entity(name)
	}
	return out
}

// ActiveProfile returns the authoritative profile and whether it exists.
func (c TailwindConfig) ActiveProfile() (entity.BuildProfile, bool) {
	p, ok := c.Profiles[c.Active]
	if !ok {
		return entity.BuildProfile{}, false
	}
	return p.Entity(c.Active), true
}
