package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	path           string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager for path. An empty path selects
// $XDG_CONFIG_HOME/themeroot/config.toml.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		defaultPath, err := ConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		path = defaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// THEMEROOT_SERVER_ADDR, THEMEROOT_THEME_BACKEND, ...
	v.SetEnvPrefix("THEMEROOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "THEMEROOT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMEROOT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "THEMEROOT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMEROOT_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.path", "THEMEROOT_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMEROOT_DB: %w", err)
	}

	return &Manager{
		viper:     v,
		path:      path,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolveDefaultPaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.path, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", m.path, err)
	}
	return config, nil
}

// resolveDefaultPaths fills an empty database path and expands
// logging.file = "default" to the state directory.
func resolveDefaultPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := DatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.File == DefaultLogFileKeyword {
		logPath, err := LogFile()
		if err != nil {
			return fmt.Errorf("failed to get log file path: %w", err)
		}
		config.Logging.File = logPath
	}
	return nil
}

// normalizeConfig fills values viper cannot default (maps) and canonicalizes strings.
func normalizeConfig(config *Config) {
	config.Theme.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Theme.Backend))))
	config.Appearance.ColorScheme = strings.ToLower(strings.TrimSpace(config.Appearance.ColorScheme))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	if len(config.Tailwind.Profiles) == 0 {
		config.Tailwind.Profiles = DefaultTailwindProfiles()
	}
	if config.Tailwind.Active == "" {
		config.Tailwind.Active = defaultTailwindProfile
	}
	// viper lowercases map keys
	config.Tailwind.Active = strings.ToLower(config.Tailwind.Active)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the managed file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, m.path); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
	}
	configCopy := *cfg
	m.config = &configCopy
	return nil
}

// GetConfigFile returns the path to the configuration file being managed.
func (m *Manager) GetConfigFile() string {
	return m.path
}

// FileExists reports whether the managed config file exists on disk.
func (m *Manager) FileExists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("server.addr", defaults.Server.Addr)
	m.viper.SetDefault("server.root_classes", defaults.Server.RootClasses)
	m.viper.SetDefault("server.read_timeout_seconds", defaults.Server.ReadTimeoutSeconds)
	m.viper.SetDefault("server.write_timeout_seconds", defaults.Server.WriteTimeoutSeconds)
	m.viper.SetDefault("server.shutdown_timeout_seconds", defaults.Server.ShutdownTimeoutSeconds)
	m.viper.SetDefault("server.static_cache_seconds", defaults.Server.StaticCacheSeconds)
	m.viper.SetDefault("server.client_hints", defaults.Server.ClientHints)
	m.viper.SetDefault("server.write_rate_limit", defaults.Server.WriteRateLimit)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	m.viper.SetDefault("server.secure_cookies", defaults.Server.SecureCookies)

	m.viper.SetDefault("theme.storage_key", defaults.Theme.StorageKey)
	m.viper.SetDefault("theme.backend", string(defaults.Theme.Backend))
	m.viper.SetDefault("theme.cookie_name", defaults.Theme.CookieName)
	m.viper.SetDefault("theme.context_cookie_name", defaults.Theme.ContextCookieName)
	m.viper.SetDefault("theme.cookie_max_age_days", defaults.Theme.CookieMaxAgeDays)
	m.viper.SetDefault("theme.cli_context", defaults.Theme.CLIContext)

	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)

	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("database.cache_size", defaults.Database.CacheSize)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("tailwind.active", defaults.Tailwind.Active)
	m.viper.SetDefault("tailwind.output", defaults.Tailwind.Output)
}
