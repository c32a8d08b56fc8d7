package tailwind_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/infrastructure/tailwind"
)

func webProfile() entity.BuildProfile {
	return entity.BuildProfile{
		Name:     "web",
		DarkMode: entity.DarkModeStrategy{Strategy: "class"},
		Content: []string{
			"./web/templates/views/**/*.{html,js,ts,templ,go}",
			"./web/templates/components/**/*.{html,js,ts,templ,go}",
		},
		FontSans: []string{"Inter var"},
		Plugins:  []string{"@tailwindcss/forms", "@tailwindcss/typography", "@tailwindcss/aspect-ratio"},
	}
}

func TestRender_ClassStrategy(t *testing.T) {
	out, err := tailwind.RenderString(webProfile())
	require.NoError(t, err)

	want := `const defaultTheme = require('tailwindcss/defaultTheme')

/** @type {import('tailwindcss').Config} */
export default {
  darkMode: 'class',
  content: [
    './web/templates/views/**/*.{html,js,ts,templ,go}',
    './web/templates/components/**/*.{html,js,ts,templ,go}'
  ],
  theme: {
    extend: {
      fontFamily: {
        sans: ['Inter var', ...defaultTheme.fontFamily.sans],
      },
    },
  },
  plugins: [
    require('@tailwindcss/forms'),
    require('@tailwindcss/typography'),
    require('@tailwindcss/aspect-ratio'),
  ],
}
`
	assert.Equal(t, want, out)
}

func TestRender_CombinedStrategyEscapes(t *testing.T) {
	p := webProfile()
	p.DarkMode = entity.DarkModeStrategy{Strategy: "class", Selector: `[data-mode="dark"]`}
	p.FontSans = []string{"O'Font"}
	p.Plugins = nil

	out, err := tailwind.RenderString(p)
	require.NoError(t, err)
	assert.Contains(t, out, `darkMode: ['class', '[data-mode="dark"]'],`)
	assert.Contains(t, out, `sans: ['O\'Font', ...defaultTheme.fontFamily.sans],`)
	assert.Contains(t, out, "plugins: [\n  ],")
}

func TestSelect(t *testing.T) {
	profiles := map[string]entity.BuildProfile{"web": webProfile(), "legacy": {Name: "legacy"}}

	p, err := tailwind.Select(profiles, "web")
	require.NoError(t, err)
	assert.Equal(t, "web", p.Name)

	_, err = tailwind.Select(profiles, "nope")
	require.ErrorIs(t, err, tailwind.ErrUnknownProfile)
	assert.Contains(t, err.Error(), "legacy, web")
}

func TestScanContent(t *testing.T) {
	fsys := fstest.MapFS{
		"web/templates/views/index.templ":         {Data: []byte("x")},
		"web/templates/views/nested/deep/page.go": {Data: []byte("x")},
		"web/templates/views/styles.css":          {Data: []byte("x")},
		"web/templates/components/button.html":    {Data: []byte("x")},
		"templates/legacy.html":                   {Data: []byte("x")},
	}

	scan, err := tailwind.ScanContent(fsys, webProfile())
	require.NoError(t, err)
	require.Len(t, scan.Globs, 2)
	assert.Equal(t, []string{
		"web/templates/views/index.templ",
		"web/templates/views/nested/deep/page.go",
	}, scan.Globs[0].Files)
	assert.Equal(t, []string{"web/templates/components/button.html"}, scan.Globs[1].Files)
	assert.Len(t, scan.Files, 3)
	assert.False(t, scan.Empty())
}

func TestScanContent_InvalidGlob(t *testing.T) {
	p := webProfile()
	p.Content = []string{"./web/[unterminated"}

	_, err := tailwind.ScanContent(fstest.MapFS{}, p)
	require.Error(t, err)
}
