package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory before the config loads.
const DotEnvFile = ".env"

// LoadDotEnv exports the variables of a dotenv file so THEMEROOT_* overrides
// can live next to a project. Variables already set in the environment win.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
