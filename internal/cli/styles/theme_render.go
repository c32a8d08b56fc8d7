package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// ThemeRenderer renders theme decisions and preference changes.
type ThemeRenderer struct {
	theme *Theme
}

// NewThemeRenderer creates a new theme renderer with the given theme.
func NewThemeRenderer(theme *Theme) *ThemeRenderer {
	return &ThemeRenderer{theme: theme}
}

// ModeIcon returns the icon of a preference mode.
func ModeIcon(mode entity.PreferenceMode) string {
	switch mode {
	case entity.PreferenceDark:
		return IconMoon
	case entity.PreferenceLight:
		return IconSun
	default:
		return IconDesktop
	}
}

// ResolveView is what "resolve" prints.
type ResolveView struct {
	Decision     entity.ThemeDecision
	Stored       entity.StoredPreference
	SystemDark   bool
	SystemSource string
	Root         string
}

// RenderResolve renders a resolution with its inputs.
func (r *ThemeRenderer) RenderResolve(v ResolveView) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	marker := r.theme.BadgeMuted.Render("light")
	icon := IconSun
	if v.Decision.Dark() {
		marker = r.theme.Badge.Render("dark")
		icon = IconMoon
	}

	system := "light"
	if v.SystemDark {
		system = "dark"
	}

	root := v.Root
	if root == "" {
		root = "(empty)"
	}

	lines := []string{
		fmt.Sprintf("%s %s", lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon), marker),
		"",
		fmt.Sprintf("  %s %s", keyStyle.Render("action "), valStyle.Render(v.Decision.Action.String()+" "+v.Decision.Marker)),
		fmt.Sprintf("  %s %s", keyStyle.Render("reason "), valStyle.Render(string(v.Decision.Reason))),
		fmt.Sprintf("  %s %s", keyStyle.Render("stored "), valStyle.Render(v.Stored.String())),
		fmt.Sprintf("  %s %s %s", keyStyle.Render("system "), valStyle.Render(system), keyStyle.Render("("+v.SystemSource+")")),
		fmt.Sprintf("  %s %s", keyStyle.Render("root   "), r.theme.Highlight.Render(root)),
	}
	return strings.Join(lines, "\n")
}

// RenderPreferenceSaved renders the confirmation of a preference change.
func (r *ThemeRenderer) RenderPreferenceSaved(mode entity.PreferenceMode, contextID string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	msg := fmt.Sprintf("Theme preference set to %s", r.theme.Highlight.Render(string(mode)))
	if mode == entity.PreferenceSystem {
		msg = "Theme preference cleared, following the system"
	}
	out := fmt.Sprintf("%s %s", iconStyle.Render(IconCheck), msg)
	if contextID != "" {
		out += " " + r.theme.Subtle.Render("("+contextID+")")
	}
	return out
}

// RenderApplied renders the result of rewriting a document.
func (r *ThemeRenderer) RenderApplied(path string, decision entity.ThemeDecision, changed bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	state := "unchanged"
	if changed {
		state = "updated"
	}
	return fmt.Sprintf("%s %s %s %s",
		iconStyle.Render(IconFile),
		r.theme.Normal.Render(path),
		r.theme.Subtle.Render(state),
		r.theme.Subtle.Render("("+decision.Action.String()+" "+decision.Marker+", "+string(decision.Reason)+")"),
	)
}

// RenderError renders an error message.
func (r *ThemeRenderer) RenderError(err error) string {
	return RenderError(r.theme, err)
}

// RenderError renders err with the error icon.
func RenderError(t *Theme, err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(t.Error)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconX), t.ErrorStyle.Render(err.Error()))
}
