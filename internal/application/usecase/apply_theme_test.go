package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_port "github.com/bnema/themeroot/internal/application/port/mocks"
	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/domain/entity"
)

// memRoot is a minimal in-memory RootTokens.
type memRoot struct {
	tokens entity.TokenList
	writes int
}

func (r *memRoot) Tokens() entity.TokenList { return r.tokens }
func (r *memRoot) SetTokens(t entity.TokenList) {
	r.tokens = t
	r.writes++
}

func TestApplyThemeUseCase_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		present    bool
		systemDark bool
		initial    entity.TokenList
		want       entity.TokenList
	}{
		{name: "stored dark, light system", stored: "dark", present: true, systemDark: false, initial: entity.TokenList{}, want: entity.TokenList{"dark"}},
		{name: "absent, dark system", systemDark: true, initial: entity.TokenList{"foo", "bar"}, want: entity.TokenList{"dark", "foo", "bar"}},
		{name: "stored light, dark system", stored: "light", present: true, systemDark: true, initial: entity.TokenList{"dark", "foo"}, want: entity.TokenList{"foo"}},
		{name: "absent, light system", systemDark: false, initial: entity.TokenList{"foo", "dark"}, want: entity.TokenList{"foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_port.NewMockPreferenceStore(ctrl)
			query := mock_port.NewMockAppearanceQuery(ctrl)

			store.EXPECT().Lookup(gomock.Any(), "theme").Return(tt.stored, tt.present, nil)
			if !tt.present {
				query.EXPECT().Matches(gomock.Any(), entity.PrefersDarkQuery).Return(tt.systemDark)
			}

			root := &memRoot{tokens: tt.initial}
			uc := usecase.NewApplyThemeUseCase(store, query, "")
			uc.Execute(context.Background(), root)

			assert.Equal(t, tt.want, root.tokens)
		})
	}
}

func TestApplyThemeUseCase_DoesNotQueryAppearanceWhenStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_port.NewMockPreferenceStore(ctrl)
	query := mock_port.NewMockAppearanceQuery(ctrl)

	store.EXPECT().Lookup(gomock.Any(), "theme").Return("light", true, nil)
	// No Matches expectation: any call fails the test.

	d := usecase.NewApplyThemeUseCase(store, query, "").Decide(context.Background())
	assert.Equal(t, entity.MarkerRemove, d.Action)
	assert.Equal(t, entity.ReasonStoredOther, d.Reason)
}

func TestApplyThemeUseCase_StoreErrorDegradesToAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_port.NewMockPreferenceStore(ctrl)
	query := mock_port.NewMockAppearanceQuery(ctrl)

	store.EXPECT().Lookup(gomock.Any(), "theme").Return("", false, errors.New("disk on fire"))
	query.EXPECT().Matches(gomock.Any(), entity.PrefersDarkQuery).Return(true)

	d := usecase.NewApplyThemeUseCase(store, query, "").Decide(context.Background())
	assert.Equal(t, entity.MarkerApply, d.Action)
	assert.Equal(t, entity.ReasonSystemDark, d.Reason)
}

func TestApplyThemeUseCase_NilPortsMeanLight(t *testing.T) {
	root := &memRoot{tokens: entity.TokenList{"dark", "h-full"}}
	d := usecase.NewApplyThemeUseCase(nil, nil, "").Execute(context.Background(), root)

	assert.Equal(t, entity.ReasonNoPreference, d.Reason)
	assert.Equal(t, entity.TokenList{"h-full"}, root.tokens)
}

func TestApplyThemeUseCase_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_port.NewMockPreferenceStore(ctrl)
	store.EXPECT().Lookup(gomock.Any(), "custom").Return("dark", true, nil).Times(3)

	root := &memRoot{tokens: entity.TokenList{"foo"}}
	uc := usecase.NewApplyThemeUseCase(store, nil, "custom")
	for i := 0; i < 3; i++ {
		uc.Execute(context.Background(), root)
	}

	assert.Equal(t, entity.TokenList{"dark", "foo"}, root.tokens)
	assert.Equal(t, 1, root.writes, "unchanged roots are not rewritten")
}
