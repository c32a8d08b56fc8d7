package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel asks a yes/no question. The answer starts on "No".
type ConfirmModel struct {
	Message   string
	Yes       bool
	Confirmed bool
	Canceled  bool

	keys  ConfirmKeyMap
	help  help.Model
	theme *Theme
}

// ConfirmKeyMap is the dialog's key bindings. It satisfies help.KeyMap.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Confirm, k.Cancel}
}

func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		keys:    DefaultConfirmKeyMap(),
		help:    NewStyledHelp(theme),
		theme:   theme,
	}
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update answers immediately on y or n. Other keys move the selection.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.Canceled = true
	case key.Matches(km, m.keys.Yes), key.Matches(km, m.keys.No):
		m.Yes = key.Matches(km, m.keys.Yes)
		m.Confirmed = true
	case key.Matches(km, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(km, m.keys.Confirm):
		m.Confirmed = true
	}
	if m.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.Done() {
		return ""
	}
	button := func(label string, selected bool) string {
		if selected {
			return m.theme.ButtonActive.Render(label)
		}
		return m.theme.ButtonIdle.Render(label)
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(m.Message),
		"",
		button(" No ", !m.Yes)+"  "+button(" Yes ", m.Yes),
		"",
		m.help.View(m.keys),
	)
	return m.theme.Box.Render(body) + "\n"
}

// Done reports whether the dialog was answered or canceled.
func (m ConfirmModel) Done() bool { return m.Confirmed || m.Canceled }

// Result is true only for a confirmed "Yes".
func (m ConfirmModel) Result() bool { return m.Confirmed && m.Yes }
