package colorscheme

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Host detectors read the desktop the process runs on. They only make sense
// for local commands, never for a remote browser.
const (
	gtkThemeVar      = "GTK_THEME"
	priorityGTKTheme = 20

	gsettingsBin      = "gsettings"
	priorityGsettings = 10
	gsettingsTimeout  = 2 * time.Second
)

// EnvDetector treats a GTK_THEME naming a dark variant ("Adwaita:dark",
// "Arc-Dark") as a dark preference and any other non-empty value as light.
type EnvDetector struct {
	getenv func(string) string
}

func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

func (*EnvDetector) Name() string  { return gtkThemeVar }
func (*EnvDetector) Priority() int { return priorityGTKTheme }

func (d *EnvDetector) Available() bool {
	return d.getenv(gtkThemeVar) != ""
}

func (d *EnvDetector) Detect(context.Context) (prefersDark, ok bool) {
	theme := strings.ToLower(d.getenv(gtkThemeVar))
	if theme == "" {
		return false, false
	}
	return strings.Contains(theme, "dark"), true
}

// GsettingsDetector asks GNOME for org.gnome.desktop.interface color-scheme.
// The "default" scheme carries no signal and is reported as unknown.
type GsettingsDetector struct {
	run func(ctx context.Context) ([]byte, error)
}

func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{run: queryGsettings}
}

func queryGsettings(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, gsettingsTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, gsettingsBin, "get", "org.gnome.desktop.interface", "color-scheme")
	return cmd.Output()
}

func (*GsettingsDetector) Name() string  { return gsettingsBin }
func (*GsettingsDetector) Priority() int { return priorityGsettings }

func (*GsettingsDetector) Available() bool {
	_, err := exec.LookPath(gsettingsBin)
	return err == nil
}

func (d *GsettingsDetector) Detect(ctx context.Context) (prefersDark, ok bool) {
	out, err := d.run(ctx)
	if err != nil {
		return false, false
	}
	// Output looks like "'prefer-dark'\n".
	return parseSchemeWord(strings.Trim(strings.TrimSpace(string(out)), `'"`))
}

// parseSchemeWord maps "prefer-dark"/"prefer-light" to a known answer.
func parseSchemeWord(word string) (prefersDark, ok bool) {
	switch word {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}
	return false, false
}
