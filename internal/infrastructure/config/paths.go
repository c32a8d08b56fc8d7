package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "themeroot"
	databaseName = "themeroot.sqlite"
	dirPerm      = 0o755
	filePerm     = 0o644

	// DefaultLogFileKeyword as logging.file selects LogFile().
	DefaultLogFileKeyword = "default"
)

// baseDir resolves an XDG base directory for themeroot. envVar wins when
// set, otherwise the home-relative fallback is used. ENV=dev keeps every
// directory under ./.dev/themeroot so development runs never touch $HOME.
func baseDir(envVar string, homeFallback ...string) (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}
	if dir := os.Getenv(envVar); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, filepath.Join(homeFallback...), appName), nil
}

func inBaseDir(envVar string, homeFallback []string, elem ...string) (string, error) {
	dir, err := baseDir(envVar, homeFallback...)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}

// ConfigFile is $XDG_CONFIG_HOME/themeroot/config.toml.
func ConfigFile() (string, error) {
	return inBaseDir("XDG_CONFIG_HOME", []string{".config"}, "config.toml")
}

// DatabaseFile is $XDG_DATA_HOME/themeroot/themeroot.sqlite.
func DatabaseFile() (string, error) {
	return inBaseDir("XDG_DATA_HOME", []string{".local", "share"}, databaseName)
}

// LogFile is $XDG_STATE_HOME/themeroot/logs/themeroot.log.
func LogFile() (string, error) {
	return inBaseDir("XDG_STATE_HOME", []string{".local", "state"}, "logs", appName+".log")
}
