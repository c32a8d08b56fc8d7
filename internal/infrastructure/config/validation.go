package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateTheme(config)...)
	validationErrors = append(validationErrors, validateColorScheme(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTailwind(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Server.Addr) == "" {
		validationErrors = append(validationErrors, "server.addr cannot be empty")
	}
	if config.Server.ReadTimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "server.read_timeout_seconds must be at least 1")
	}
	if config.Server.WriteTimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "server.write_timeout_seconds must be at least 1")
	}
	if config.Server.ShutdownTimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "server.shutdown_timeout_seconds must be at least 1")
	}
	if config.Server.StaticCacheSeconds < 0 {
		validationErrors = append(validationErrors, "server.static_cache_seconds must be non-negative")
	}
	for _, c := range config.Server.RootClasses {
		if strings.ContainsAny(c, " \t\n") || c == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("server.root_classes entry %q must be a single token", c))
		}
	}
	if config.Server.WriteRateLimit < 0 {
		validationErrors = append(validationErrors, "server.write_rate_limit must be non-negative")
	}
	for _, o := range config.Server.AllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			validationErrors = append(validationErrors, fmt.Sprintf("server.allowed_origins entry %q must be \"*\" or start with http:// or https://", o))
		}
	}
	return validationErrors
}

func validateTheme(config *Config) []string {
	var validationErrors []string
	switch config.Theme.Backend {
	case StorageSQLite, StorageCookie, StorageMemory:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("theme.backend must be one of: sqlite, cookie, memory (got: %s)", config.Theme.Backend))
	}
	if config.Database.CacheSize < 0 {
		validationErrors = append(validationErrors, "database.cache_size must be non-negative")
	}
	if config.Theme.StorageKey == "" {
		validationErrors = append(validationErrors, "theme.storage_key cannot be empty")
	}
	if config.Theme.Backend == StorageCookie && config.Theme.CookieName == "" {
		validationErrors = append(validationErrors, "theme.cookie_name cannot be empty with the cookie backend")
	}
	if config.Theme.Backend != StorageCookie && config.Theme.ContextCookieName == "" {
		validationErrors = append(validationErrors, "theme.context_cookie_name cannot be empty unless the backend is cookie")
	}
	if config.Theme.CookieMaxAgeDays < 1 {
		validationErrors = append(validationErrors, "theme.cookie_max_age_days must be at least 1")
	}
	return validationErrors
}

func validateColorScheme(config *Config) []string {
	switch config.Appearance.ColorScheme {
	case ThemeDefault, ThemePreferDark, ThemePreferLight:
		return nil
	default:
		return []string{fmt.Sprintf(
			"appearance.color_scheme must be one of: %s, %s, %s (got: %s)",
			ThemeDefault, ThemePreferDark, ThemePreferLight, config.Appearance.ColorScheme,
		)}
	}
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb and logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateTailwind(config *Config) []string {
	var validationErrors []string
	if _, ok := config.Tailwind.Profiles[config.Tailwind.Active]; !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("tailwind.active %q does not name a profile", config.Tailwind.Active))
	}
	for name, p := range config.Tailwind.Profiles {
		switch {
		case len(p.DarkMode) == 0 || len(p.DarkMode) > 2:
			validationErrors = append(validationErrors,
				fmt.Sprintf("tailwind.profiles.%s.dark_mode must have one or two entries", name))
		case p.DarkMode[0] != "class" && p.DarkMode[0] != "media" && p.DarkMode[0] != "selector":
			validationErrors = append(validationErrors,
				fmt.Sprintf("tailwind.profiles.%s.dark_mode strategy must be class, media or selector (got: %s)", name, p.DarkMode[0]))
		}
		if len(p.Content) == 0 {
			validationErrors = append(validationErrors,
				fmt.Sprintf("tailwind.profiles.%s.content must list at least one glob", name))
		}
	}
	return validationErrors
}
