// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// PickerModel lets the user choose dark, light or system and saves it.
type PickerModel struct {
	help help.Model
	keys styles.PickerKeyMap

	modes    []entity.PreferenceMode
	cursor   int
	current  entity.PreferenceMode
	chosen   entity.PreferenceMode
	saved    bool
	canceled bool
	err      error

	ctx   context.Context
	prefs *usecase.ManagePreferenceUseCase
	theme *styles.Theme
}

// NewPickerModel creates a picker with the cursor on the current mode.
func NewPickerModel(ctx context.Context, theme *styles.Theme, prefs *usecase.ManagePreferenceUseCase, current entity.PreferenceMode) PickerModel {
	m := PickerModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPickerKeyMap(),
		modes:   entity.AllPreferenceModes(),
		current: current,
		ctx:     ctx,
		prefs:   prefs,
		theme:   theme,
	}
	for i, mode := range m.modes {
		if mode == current {
			m.cursor = i
		}
	}
	return m
}

type preferenceSavedMsg struct {
	mode entity.PreferenceMode
	err  error
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) save(mode entity.PreferenceMode) tea.Cmd {
	return func() tea.Msg {
		return preferenceSavedMsg{mode: mode, err: m.prefs.Set(m.ctx, mode)}
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case preferenceSavedMsg:
		m.chosen, m.err = msg.mode, msg.err
		m.saved = msg.err == nil
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Dark):
		return m, m.save(entity.PreferenceDark)
	case key.Matches(msg, m.keys.Light):
		return m, m.save(entity.PreferenceLight)
	case key.Matches(msg, m.keys.System):
		return m, m.save(entity.PreferenceSystem)
	case key.Matches(msg, m.keys.Choose):
		return m, m.save(m.modes[m.cursor])
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.saved || m.canceled || m.err != nil {
		return ""
	}
	t := m.theme

	var sb strings.Builder
	sb.WriteString(t.Title.Render("Theme preference"))
	sb.WriteString("\n\n")

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	for i, mode := range m.modes {
		label := fmt.Sprintf("%s %s", iconStyle.Render(styles.ModeIcon(mode)), describeMode(mode))
		if mode == m.current {
			label += " " + t.Subtle.Render("(current)")
		}
		if i == m.cursor {
			sb.WriteString(t.ListItemSelected.Render(styles.IconCursor + " " + label))
		} else {
			sb.WriteString(t.ListItem.Render("  " + label))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func describeMode(mode entity.PreferenceMode) string {
	switch mode {
	case entity.PreferenceDark:
		return "Dark"
	case entity.PreferenceLight:
		return "Light"
	default:
		return "System (follow the OS)"
	}
}

// Chosen returns the saved mode and whether one was saved.
func (m PickerModel) Chosen() (entity.PreferenceMode, bool) {
	return m.chosen, m.saved
}

// Canceled reports whether the user left without choosing.
func (m PickerModel) Canceled() bool {
	return m.canceled
}

// Err returns the error from saving, if any.
func (m PickerModel) Err() error {
	return m.err
}
