package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.Subtle.Render("(defaults, file not created)")
	if exists {
		status = ""
	}
	return fmt.Sprintf("%s Config %s %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path), status)
}

// RenderCreated renders the success message after writing a file.
func (r *ConfigRenderer) RenderCreated(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(IconCheck), r.theme.Normal.Render(what), r.theme.Highlight.Render(path))
}

// RenderSkipped renders a canceled overwrite.
func (r *ConfigRenderer) RenderSkipped(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("%s Kept existing %s", iconStyle.Render(IconInfo), r.theme.Subtle.Render(path))
}

// RenderKeys renders config keys grouped under their section headers.
func (r *ConfigRenderer) RenderKeys(keys []entity.ConfigKeyInfo) string {
	var sb strings.Builder
	width := 0
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k.Key))
	}
	section := ""
	for _, k := range keys {
		if k.Section != section {
			if section != "" {
				sb.WriteString("\n")
			}
			section = k.Section
			sb.WriteString(r.theme.Title.Render(section))
			sb.WriteString("\n")
		}

		line := fmt.Sprintf("  %s %s", r.theme.Highlight.Render(runewidth.FillRight(k.Key, width)), r.theme.Subtle.Render(k.Type))
		if k.Default != "" {
			line += " " + r.theme.Subtle.Render("=") + " " + r.theme.Normal.Render(k.Default)
		}
		sb.WriteString(line + "\n")
		sb.WriteString("    " + r.theme.Subtle.Render(k.Description) + "\n")
		if len(k.Values) > 0 {
			sb.WriteString("    " + r.theme.Subtle.Render("one of: "+strings.Join(k.Values, ", ")) + "\n")
		}
		if k.Range != "" {
			sb.WriteString("    " + r.theme.Subtle.Render("range: "+k.Range) + "\n")
		}
	}
	return sb.String()
}
