// Package styles renders themeroot's terminal output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors of one appearance. The values follow the
// slate scale the served page uses, so the CLI and the page look alike.
type Palette struct {
	Background string
	Raised     string
	Text       string
	Muted      string
	Accent     string
	Border     string
}

var (
	slateDark = Palette{
		Background: "#0f172a",
		Raised:     "#1e293b",
		Text:       "#f1f5f9",
		Muted:      "#94a3b8",
		Accent:     "#38bdf8",
		Border:     "#334155",
	}
	slateLight = Palette{
		Background: "#ffffff",
		Raised:     "#f1f5f9",
		Text:       "#0f172a",
		Muted:      "#64748b",
		Accent:     "#0284c7",
		Border:     "#cbd5e1",
	}
)

// Theme holds the colors and styles every renderer draws with.
type Theme struct {
	Dark bool

	Background lipgloss.Color
	Raised     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Badge marks an active value (the dark marker, the authoritative profile).
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	ButtonActive lipgloss.Style
	ButtonIdle   lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates a Theme for a dark or light terminal.
func NewTheme(dark bool) *Theme {
	p := slateLight
	if dark {
		p = slateDark
	}
	t := NewThemeFromPalette(p)
	t.Dark = dark
	return t
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Raised:     lipgloss.Color(p.Raised),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
		Error:      lipgloss.Color("#ef4444"),
		Warning:    lipgloss.Color("#f59e0b"),
		Success:    lipgloss.Color("#22c55e"),
	}

	text := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.Muted)

	t.Title = text.Bold(true)
	t.Normal = text
	t.Subtle = muted
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = text.Background(t.Raised).Padding(0, 1)

	t.ListItem = text.PaddingLeft(2)
	t.ListItemSelected = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Raised).PaddingLeft(2).Bold(true)

	t.ButtonActive = t.Badge.Padding(0, 2).Bold(true)
	t.ButtonIdle = muted.Background(t.Raised).Padding(0, 2)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}

// ChromaStyle names the syntax highlighting style matching the theme.
func (t *Theme) ChromaStyle() string {
	if t.Dark {
		return "monokai"
	}
	return "github"
}
