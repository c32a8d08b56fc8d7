// Package assets embeds the browser theme script and page templates.
package assets

import (
	"embed"
)

// ThemeScript is the inline head script that applies the theme marker in the browser.
//
//go:embed theme.js
var ThemeScript string

// Templates contains the server-rendered page templates.
//
//go:embed templates/*.tmpl
var Templates embed.FS
