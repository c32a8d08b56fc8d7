// Package tailwind renders build profiles to tailwind.config.js and scans
// their content globs.
package tailwind

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// ErrUnknownProfile is returned when a profile name is not configured.
var ErrUnknownProfile = errors.New("unknown tailwind profile")

const configTemplate = `const defaultTheme = require('tailwindcss/defaultTheme')

/** @type {import('tailwindcss').Config} */
export default {
  darkMode: {{ darkMode .DarkMode }},
  content: [
{{- range $i, $g := .Content }}{{ if $i }},{{ end }}
    {{ str $g }}
{{- end }}
  ],
  theme: {
    extend: {
      fontFamily: {
        sans: [{{ range .FontSans }}{{ str . }}, {{ end }}...defaultTheme.fontFamily.sans],
      },
    },
  },
  plugins: [
{{- range .Plugins }}
    require({{ str . }}),
{{- end }}
  ],
}
`

var configTmpl = template.Must(template.New("tailwind.config.js").Funcs(template.FuncMap{
	"str":      jsString,
	"darkMode": darkMode,
}).Parse(configTemplate))

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

func darkMode(m entity.DarkModeStrategy) string {
	if m.Combined() {
		return "[" + jsString(m.Strategy) + ", " + jsString(m.Selector) + "]"
	}
	return jsString(m.Strategy)
}

// Render writes p as an ES module tailwind.config.js.
func Render(w io.Writer, p entity.BuildProfile) error {
	if err := configTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render profile %q: %w", p.Name, err)
	}
	return nil
}

// RenderString returns the rendered config of p.
func RenderString(p entity.BuildProfile) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Select returns the profile called name.
func Select(profiles map[string]entity.BuildProfile, name string) (entity.BuildProfile, error) {
	p, ok := profiles[name]
	if !ok {
		return entity.BuildProfile{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownProfile, name, strings.Join(Names(profiles), ", "))
	}
	return p, nil
}

// Names returns the sorted profile names.
func Names(profiles map[string]entity.BuildProfile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
