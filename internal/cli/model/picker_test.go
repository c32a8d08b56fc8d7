package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/infrastructure/storage"
)

func newTestPicker(t *testing.T, current entity.PreferenceMode) (PickerModel, *storage.MapStore) {
	t.Helper()
	store := storage.NewMapStore(nil)
	prefs := usecase.NewManagePreferenceUseCase(store, entity.ThemeStorageKey)
	return NewPickerModel(context.Background(), styles.NewTheme(true), prefs, current), store
}

// run feeds a key, then executes the returned command once and feeds its message.
func run(t *testing.T, m PickerModel, k tea.KeyMsg) PickerModel {
	t.Helper()
	next, cmd := m.Update(k)
	m = next.(PickerModel)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			next, _ = m.Update(msg)
			m = next.(PickerModel)
		}
	}
	return m
}

func TestPicker_CursorStartsOnCurrentMode(t *testing.T) {
	m, _ := newTestPicker(t, entity.PreferenceDark)
	assert.Equal(t, entity.PreferenceDark, m.modes[m.cursor])
	assert.Contains(t, m.View(), "(current)")
}

func TestPicker_ChooseWithCursor(t *testing.T) {
	m, store := newTestPicker(t, entity.PreferenceSystem)

	m = run(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, entity.PreferenceLight, m.modes[m.cursor])
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	mode, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, entity.PreferenceLight, mode)
	assert.Equal(t, map[string]string{"theme": "light"}, store.Snapshot())
	assert.Empty(t, m.View())
}

func TestPicker_ShortcutSystemRemovesValue(t *testing.T) {
	m, store := newTestPicker(t, entity.PreferenceDark)
	require.NoError(t, store.Store(context.Background(), "theme", "dark"))

	m = run(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	mode, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, entity.PreferenceSystem, mode)
	assert.Empty(t, store.Snapshot())
}

func TestPicker_Cancel(t *testing.T) {
	m, store := newTestPicker(t, entity.PreferenceSystem)
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Canceled())
	_, ok := m.Chosen()
	assert.False(t, ok)
	assert.Empty(t, store.Snapshot())
}
