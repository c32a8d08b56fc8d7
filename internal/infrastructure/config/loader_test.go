package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestManager_LoadMissingFileUsesDefaults(t *testing.T) {
	dir := isolateXDG(t)

	m, err := NewManager(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, entity.ThemeStorageKey, cfg.Theme.StorageKey)
	assert.Equal(t, StorageSQLite, cfg.Theme.Backend)
	assert.Equal(t, "web", cfg.Tailwind.Active)
	assert.Contains(t, cfg.Tailwind.Profiles, "legacy")
	assert.Equal(t, filepath.Join(dir, "data", "themeroot", "themeroot.sqlite"), cfg.Database.Path)
	assert.False(t, m.FileExists())
}

func TestManager_LoadFile(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
addr = "127.0.0.1:9000"
client_hints = false

[theme]
backend = "Cookie"

[appearance]
color_scheme = "prefer-dark"

[tailwind]
active = "web"

[tailwind.profiles.web]
dark_mode = ["class"]
content = ["./views/**/*.html"]
plugins = ["@tailwindcss/forms"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.False(t, cfg.Server.ClientHints)
	assert.Equal(t, StorageCookie, cfg.Theme.Backend)
	assert.Equal(t, ThemePreferDark, cfg.Appearance.ColorScheme)
	require.Len(t, cfg.Tailwind.Profiles, 1)
	assert.Equal(t, []string{"./views/**/*.html"}, cfg.Tailwind.Profiles["web"].Content)
	// untouched sections keep defaults
	assert.Equal(t, "theme", cfg.Theme.CookieName)
}

func TestManager_LoadInvalidFile(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nbackend = \"redis\"\n"), 0o644))

	m, err := NewManager(path)
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.backend")
}

func TestManager_EnvOverride(t *testing.T) {
	dir := isolateXDG(t)
	t.Setenv("THEMEROOT_SERVER_ADDR", ":7070")
	t.Setenv("THEMEROOT_LOG_LEVEL", "debug")

	m, err := NewManager(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, ":7070", m.Get().Server.Addr)
	assert.Equal(t, "debug", m.Get().Logging.Level)
}

func TestManager_SaveThenLoad(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "nested", "config.toml")

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Server.Addr = ":9191"
	require.NoError(t, m.Save(cfg))
	assert.True(t, m.FileExists())

	reloaded, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, ":9191", reloaded.Get().Server.Addr)
	assert.Equal(t, cfg.Tailwind.Profiles["legacy"].DarkMode, reloaded.Get().Tailwind.Profiles["legacy"].DarkMode)
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	dir := isolateXDG(t)
	m, err := NewManager(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	require.Error(t, m.Save(cfg))
	assert.False(t, m.FileExists())
}

func TestTailwindConfig_ActiveProfile(t *testing.T) {
	cfg := DefaultConfig()

	p, ok := cfg.Tailwind.ActiveProfile()
	require.True(t, ok)
	assert.Equal(t, "web", p.Name)
	assert.Equal(t, "class", p.DarkMode.Strategy)
	assert.Empty(t, p.DarkMode.Selector)

	legacy := cfg.Tailwind.BuildProfiles()["legacy"]
	assert.Equal(t, `[data-mode="dark"]`, legacy.DarkMode.Selector)

	cfg.Tailwind.Active = "nope"
	_, ok = cfg.Tailwind.ActiveProfile()
	assert.False(t, ok)
}

func TestManager_LoadExpandsDefaultLogFile(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nfile = \"default\"\n"), 0o600))

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, filepath.Join(dir, "state", "themeroot", "logs", "themeroot.log"), m.Get().Logging.File)
}

func TestPaths_DevModeStaysInWorkingDir(t *testing.T) {
	isolateXDG(t)
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	cfgPath, err := ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "themeroot", "config.toml"), cfgPath)

	dbPath, err := DatabaseFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "themeroot", "themeroot.sqlite"), dbPath)
}
