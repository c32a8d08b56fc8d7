package config

import (
	"strconv"
	"strings"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionServer     = "Server"
	SectionTheme      = "Theme"
	SectionAppearance = "Appearance"
	SectionDatabase   = "Database"
	SectionLogging    = "Logging"
	SectionTailwind   = "Tailwind"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getServerKeys(defaults)...)
	keys = append(keys, p.getThemeKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getTailwindKeys(defaults)...)
	return keys
}

func itoa(n int) string { return strconv.Itoa(n) }

func list(v []string) string { return "[" + strings.Join(v, ", ") + "]" }

func (*SchemaProvider) getServerKeys(d *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "server.addr", Type: "string", Default: d.Server.Addr, Description: "HTTP listen address", Section: SectionServer},
		{Key: "server.root_classes", Type: "[]string", Default: list(d.Server.RootClasses), Description: "Classes the page root starts with before the marker is applied", Section: SectionServer},
		{Key: "server.read_timeout_seconds", Type: "int", Default: itoa(d.Server.ReadTimeoutSeconds), Description: "Request read timeout", Range: ">=1", Section: SectionServer},
		{Key: "server.write_timeout_seconds", Type: "int", Default: itoa(d.Server.WriteTimeoutSeconds), Description: "Response write timeout", Range: ">=1", Section: SectionServer},
		{Key: "server.shutdown_timeout_seconds", Type: "int", Default: itoa(d.Server.ShutdownTimeoutSeconds), Description: "Grace period for in-flight requests", Range: ">=1", Section: SectionServer},
		{Key: "server.static_cache_seconds", Type: "int", Default: itoa(d.Server.StaticCacheSeconds), Description: "Cache max-age of /static/theme.js", Range: ">=0", Section: SectionServer},
		{Key: "server.client_hints", Type: "bool", Default: strconv.FormatBool(d.Server.ClientHints), Description: "Ask browsers for Sec-CH-Prefers-Color-Scheme", Section: SectionServer},
		{Key: "server.write_rate_limit", Type: "int", Default: itoa(d.Server.WriteRateLimit), Description: "Preference writes per client IP and minute (0 disables)", Range: ">=0", Section: SectionServer},
		{Key: "server.secure_cookies", Type: "bool", Default: strconv.FormatBool(d.Server.SecureCookies), Description: "Always mark cookies Secure (TLS requests get it anyway)", Section: SectionServer},
		{Key: "server.allowed_origins", Type: "[]string", Default: list(d.Server.AllowedOrigins), Description: "Origins allowed to call /api cross-site", Section: SectionServer},
	}
}

func (*SchemaProvider) getThemeKeys(d *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "theme.storage_key", Type: "string", Default: d.Theme.StorageKey, Description: "Key the preference is stored under", Section: SectionTheme},
		{
			Key:         "theme.backend",
			Type:        "string",
			Default:     string(d.Theme.Backend),
			Description: "Where the web server keeps preferences",
			Values:      []string{string(StorageSQLite), string(StorageCookie), string(StorageMemory)},
			Section:     SectionTheme,
		},
		{Key: "theme.cookie_name", Type: "string", Default: d.Theme.CookieName, Description: "Preference cookie (cookie backend)", Section: SectionTheme},
		{Key: "theme.context_cookie_name", Type: "string", Default: d.Theme.ContextCookieName, Description: "Browsing context cookie (sqlite and memory backends)", Section: SectionTheme},
		{Key: "theme.cookie_max_age_days", Type: "int", Default: itoa(d.Theme.CookieMaxAgeDays), Description: "Lifetime of both cookies", Range: ">=1", Section: SectionTheme},
		{Key: "theme.cli_context", Type: "string", Default: d.Theme.CLIContext, Description: "Browsing context used by CLI commands", Section: SectionTheme},
	}
}

func (*SchemaProvider) getAppearanceKeys(d *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.color_scheme",
			Type:        "string",
			Default:     d.Appearance.ColorScheme,
			Description: "Override of the system appearance signal",
			Values:      []string{ThemeDefault, ThemePreferDark, ThemePreferLight},
			Section:     SectionAppearance,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys(d *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "database.path", Type: "string", Default: "$XDG_DATA_HOME/themeroot/" + databaseName, Description: "SQLite file (env THEMEROOT_DB)", Section: SectionDatabase},
		{Key: "database.cache_size", Type: "int", Default: itoa(d.Database.CacheSize), Description: "Preference records the server keeps in memory, 0 disables", Range: ">=0", Section: SectionDatabase},
	}
}

func (*SchemaProvider) getLoggingKeys(d *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     d.Logging.Level,
			Description: "Log verbosity (env THEMEROOT_LOG_LEVEL)",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     d.Logging.Format,
			Description: "stderr output format (env THEMEROOT_LOG_FORMAT)",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{Key: "logging.file", Type: "string", Default: d.Logging.File, Description: "Rotated JSON log file, disabled when empty, \"default\" for $XDG_STATE_HOME/themeroot/logs", Section: SectionLogging},
		{Key: "logging.max_size_mb", Type: "int", Default: itoa(d.Logging.MaxSizeMB), Description: "Rotate the log file past this size", Range: ">=0", Section: SectionLogging},
		{Key: "logging.max_backups", Type: "int", Default: itoa(d.Logging.MaxBackups), Description: "Rotated files to keep", Range: ">=0", Section: SectionLogging},
	}
}

func (*SchemaProvider) getTailwindKeys(d *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "tailwind.active", Type: "string", Default: d.Tailwind.Active, Description: "Authoritative build profile", Section: SectionTailwind},
		{Key: "tailwind.output", Type: "string", Default: d.Tailwind.Output, Description: "Target of tailwind render --write", Section: SectionTailwind},
		{
			Key:         "tailwind.profiles.<name>.dark_mode",
			Type:        "[]string",
			Default:     list(d.Tailwind.Profiles[defaultTailwindProfile].DarkMode),
			Description: "Strategy, optionally followed by an attribute selector",
			Values:      []string{"class", "media", "selector"},
			Section:     SectionTailwind,
		},
		{Key: "tailwind.profiles.<name>.content", Type: "[]string", Description: "Globs of files scanned for class names", Section: SectionTailwind},
		{Key: "tailwind.profiles.<name>.font_sans", Type: "[]string", Description: "Families prepended to the default sans stack", Section: SectionTailwind},
		{Key: "tailwind.profiles.<name>.plugins", Type: "[]string", Description: "Plugin packages, in load order", Section: SectionTailwind},
	}
}
