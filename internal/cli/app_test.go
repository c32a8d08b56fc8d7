package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/infrastructure/document"
)

func newTestApp(t *testing.T, toml string) *App {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("THEMEROOT_LOG_LEVEL", "error")
	t.Setenv("THEMEROOT_DB", "")

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o600))

	a, err := NewApp(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNewApp_DoesNotOpenDatabaseEagerly(t *testing.T) {
	a := newTestApp(t, "[appearance]\ncolor_scheme = \"prefer-dark\"\n")

	assert.True(t, a.Theme.Dark)
	assert.False(t, a.DB().IsInitialized())
	_, err := os.Stat(a.Config.Database.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestApp_PreferenceRoundTrip(t *testing.T) {
	a := newTestApp(t, "[appearance]\ncolor_scheme = \"prefer-dark\"\n")
	ctx := a.Ctx()

	root := document.NewMemoryRoot("foo", "bar")
	decision := a.ApplyThemeUC.Execute(ctx, root)
	assert.Equal(t, entity.ReasonSystemDark, decision.Reason)
	assert.Equal(t, "dark foo bar", root.String())

	require.NoError(t, a.ManagePreferenceUC.Set(ctx, entity.PreferenceLight))
	decision = a.ApplyThemeUC.Execute(ctx, root)
	assert.Equal(t, entity.ReasonStoredOther, decision.Reason)
	assert.Equal(t, "foo bar", root.String())

	record, err := a.Preferences.Get(ctx, a.Config.Theme.CLIContext, entity.ThemeStorageKey)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "light", record.Value)

	require.NoError(t, a.ManagePreferenceUC.Set(ctx, entity.PreferenceSystem))
	mode, err := a.ManagePreferenceUC.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PreferenceSystem, mode)
}

func TestApp_ServerTimeouts(t *testing.T) {
	a := newTestApp(t, "[server]\nread_timeout_seconds = 2\n")

	read, write, shutdown := a.ServerTimeouts()
	assert.Equal(t, "2s", read.String())
	assert.Equal(t, "10s", write.String())
	assert.Equal(t, "10s", shutdown.String())
}
