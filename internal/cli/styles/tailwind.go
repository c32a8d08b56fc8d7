package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/infrastructure/tailwind"
)

// TailwindRenderer renders build profile reports.
type TailwindRenderer struct {
	theme *Theme
}

// NewTailwindRenderer creates a new tailwind renderer with the given theme.
func NewTailwindRenderer(theme *Theme) *TailwindRenderer {
	return &TailwindRenderer{theme: theme}
}

// RenderCheck renders the divergence report of the build profiles.
func (r *TailwindRenderer) RenderCheck(out *usecase.CheckBuildConfigOutput) string {
	var sb strings.Builder
	okStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	warnStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	sb.WriteString(fmt.Sprintf("%s %s %s\n",
		okStyle.Render(IconConfig),
		r.theme.Title.Render("Active profile"),
		r.theme.Badge.Render(out.Active.Name),
	))
	sb.WriteString(fmt.Sprintf("  %s %s\n", r.theme.Subtle.Render("dark mode"), r.theme.Normal.Render(out.Active.DarkMode.String())))

	if len(out.Duplicates) == 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", okStyle.Render(IconCheck), r.theme.Subtle.Render("no other profiles")))
		return sb.String()
	}
	if !out.HasConflicts() {
		sb.WriteString(fmt.Sprintf("%s %s\n", okStyle.Render(IconCheck),
			r.theme.Subtle.Render("duplicates match: "+strings.Join(out.Duplicates, ", "))))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s %s\n", warnStyle.Render(IconWarning),
		r.theme.WarningStyle.Render(fmt.Sprintf("%d divergence(s), only %q is used", len(out.Divergences), out.Active.Name))))
	for _, d := range out.Divergences {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n", warnStyle.Render(IconCursor), r.theme.Highlight.Render(d.Profile), r.theme.Subtle.Render(d.Field)))
		sb.WriteString(fmt.Sprintf("      %s %s\n", r.theme.Subtle.Render("active "), r.theme.Normal.Render(d.Want)))
		sb.WriteString(fmt.Sprintf("      %s %s\n", r.theme.Subtle.Render(d.Profile+strings.Repeat(" ", max(0, 7-len(d.Profile)))), r.theme.Normal.Render(d.Got)))
	}
	return sb.String()
}

// RenderScan renders which files each content glob selects.
func (r *TailwindRenderer) RenderScan(scan tailwind.ContentScan) string {
	var sb strings.Builder
	for _, g := range scan.Globs {
		count := r.theme.Badge.Render(fmt.Sprintf("%d", len(g.Files)))
		if len(g.Files) == 0 {
			count = r.theme.BadgeMuted.Render("0")
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", count, r.theme.Normal.Render(g.Pattern)))
	}
	if scan.Empty() {
		sb.WriteString(fmt.Sprintf("%s %s\n", lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			r.theme.WarningStyle.Render("content globs match no files")))
	}
	return sb.String()
}
