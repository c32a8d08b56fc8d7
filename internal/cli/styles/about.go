package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/domain/build"
)

// Half-lit disc: the left side in the accent color, the right dimmed.
var aboutLogo = [...][2]string{
	{" ▄▄", "▄▄ "},
	{"███", "███"},
	{"███", "███"},
	{" ▀▀", "▀▀ "},
}

// AboutRenderer prints the version banner.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render places the logo next to the build details.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, r.logo(), "  ", r.details(info))
}

func (r *AboutRenderer) logo() string {
	lit := lipgloss.NewStyle().Foreground(r.theme.Accent)
	shade := lipgloss.NewStyle().Foreground(r.theme.Border)
	rows := make([]string, len(aboutLogo))
	for i, halves := range aboutLogo {
		rows[i] = lit.Render(halves[0]) + shade.Render(halves[1])
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(rows, "\n"))
}

func (r *AboutRenderer) details(info build.Info) string {
	rows := []struct{ icon, label, value string }{
		{IconVersion, "version", info.Version},
		{IconGitBranch, "commit", info.Commit},
		{IconCalendar, "built", info.BuildDate},
		{IconGo, "go", info.GoVersion},
	}
	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row.label))
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, r.theme.Title.Render("themeroot"))
	for _, row := range rows {
		lines = append(lines, icon.Render(row.icon)+" "+
			r.theme.Subtle.Render(runewidth.FillRight(row.label, width))+" "+
			r.theme.Normal.Render(row.value))
	}
	lines = append(lines, icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()))
	return strings.Join(lines, "\n")
}

// RenderUpdate reports the result of a release check.
func (r *AboutRenderer) RenderUpdate(out *usecase.CheckUpdateOutput) string {
	if !out.UpdateAvailable {
		return r.theme.SuccessStyle.Render(IconCheck) + " " +
			r.theme.Subtle.Render("up to date ("+out.CurrentVersion+")")
	}
	var sb strings.Builder
	sb.WriteString(r.theme.WarningStyle.Render(IconWarning))
	sb.WriteString(" ")
	sb.WriteString(r.theme.Subtle.Render("update available: "))
	sb.WriteString(r.theme.Highlight.Render(out.CurrentVersion))
	sb.WriteString(r.theme.Subtle.Render(" -> "))
	sb.WriteString(r.theme.Highlight.Render(out.LatestVersion))
	if out.ReleaseURL != "" {
		sb.WriteString("\n  ")
		sb.WriteString(r.theme.Subtle.Render(out.ReleaseURL))
	}
	return sb.String()
}
