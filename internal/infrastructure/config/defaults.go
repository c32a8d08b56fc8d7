package config

import "github.com/bnema/themeroot/internal/domain/entity"

const (
	defaultAddr                = ":8080"
	defaultReadTimeoutSeconds  = 5
	defaultWriteTimeoutSeconds = 10
	defaultShutdownSeconds     = 10
	defaultStaticCacheSeconds  = 3600
	defaultWriteRateLimit      = 60
	defaultCookieMaxAgeDays    = 365
	defaultLogMaxSizeMB        = 10
	defaultLogMaxBackups       = 3
	defaultPreferenceCacheSize = 1024
	defaultTailwindProfile     = "web"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                   defaultAddr,
			RootClasses:            []string{"h-full", "antialiased"},
			ReadTimeoutSeconds:     defaultReadTimeoutSeconds,
			WriteTimeoutSeconds:    defaultWriteTimeoutSeconds,
			ShutdownTimeoutSeconds: defaultShutdownSeconds,
			StaticCacheSeconds:     defaultStaticCacheSeconds,
			ClientHints:            true,
			WriteRateLimit:         defaultWriteRateLimit,
			AllowedOrigins:         []string{},
		},
		Theme: ThemeConfig{
			StorageKey:        entity.ThemeStorageKey,
			Backend:           StorageSQLite,
			CookieName:        entity.ThemeStorageKey,
			ContextCookieName: "themeroot_ctx",
			CookieMaxAgeDays:  defaultCookieMaxAgeDays,
			CLIContext:        "cli",
		},
		Appearance: AppearanceConfig{
			ColorScheme: ThemeDefault,
		},
		Database: DatabaseConfig{
			CacheSize: defaultPreferenceCacheSize,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Tailwind: TailwindConfig{
			Active:   defaultTailwindProfile,
			Output:   "tailwind.config.js",
			Profiles: DefaultTailwindProfiles(),
		},
	}
}

// DefaultTailwindProfiles returns the two historical build configurations.
// "web" is authoritative; "legacy" pairs the class strategy with an attribute
// selector and scans different roots, and is kept only to be flagged.
func DefaultTailwindProfiles() map[string]TailwindProfile {
	plugins := []string{
		"@tailwindcss/forms",
		"@tailwindcss/typography",
		"@tailwindcss/aspect-ratio",
	}
	return map[string]TailwindProfile{
		defaultTailwindProfile: {
			DarkMode: []string{"class"},
			Content: []string{
				"./web/templates/views/**/*.{html,js,ts,templ,go}",
				"./web/templates/components/**/*.{html,js,ts,templ,go}",
			},
			FontSans: []string{"Inter var"},
			Plugins:  plugins,
		},
		"legacy": {
			DarkMode: []string{"class", `[data-mode="dark"]`},
			Content: []string{
				"./templates/**/*.{html,js,ts,templ,go}",
				"./components/**/*.{html,js,ts,templ,go}",
			},
			FontSans: []string{"Inter var"},
			Plugins:  plugins,
		},
	}
}
