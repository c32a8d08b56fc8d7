package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("THEMEROOT_LOG_LEVEL=debug\nTHEMEROOT_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("THEMEROOT_LOG_LEVEL", "warn")
	t.Setenv("THEMEROOT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("THEMEROOT_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "warn", os.Getenv("THEMEROOT_LOG_LEVEL"))
	assert.Equal(t, "from-file", os.Getenv("THEMEROOT_TEST_DOTENV"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
