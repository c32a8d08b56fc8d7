package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloadsAndNotifies(t *testing.T) {
	dir := isolateXDG(t)
	t.Setenv("THEMEROOT_LOG_LEVEL", "error")
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ncolor_scheme = \"default\"\n"), 0o600))

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var latest atomic.Value
	m.OnConfigChange(func(c *Config) { latest.Store(c.Appearance.ColorScheme) })
	require.NoError(t, m.Watch())
	require.NoError(t, m.Watch(), "second Watch is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ncolor_scheme = \"prefer-dark\"\n"), 0o600))
	require.Eventually(t, func() bool {
		v, _ := latest.Load().(string)
		return v == ThemePreferDark
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, ThemePreferDark, m.Get().Appearance.ColorScheme)
}

func TestManager_WatchKeepsPreviousOnInvalidEdit(t *testing.T) {
	dir := isolateXDG(t)
	t.Setenv("THEMEROOT_LOG_LEVEL", "error")
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ncolor_scheme = \"prefer-light\"\n"), 0o600))

	m, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var calls atomic.Int32
	m.OnConfigChange(func(*Config) { calls.Add(1) })
	require.NoError(t, m.Watch())

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ncolor_scheme = \"sepia\"\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.Equal(t, ThemePreferLight, m.Get().Appearance.ColorScheme)
}
