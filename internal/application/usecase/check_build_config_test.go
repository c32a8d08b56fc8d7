package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/domain/entity"
)

func TestCheckBuildConfigUseCase(t *testing.T) {
	web := entity.BuildProfile{
		DarkMode: entity.DarkModeStrategy{Strategy: "class"},
		Content:  []string{"./web/templates/views/**/*.{html,js,ts,templ,go}"},
		Plugins:  []string{"@tailwindcss/forms"},
	}
	legacy := web
	legacy.DarkMode = entity.DarkModeStrategy{Strategy: "class", Selector: `[data-mode="dark"]`}

	uc := usecase.NewCheckBuildConfigUseCase()

	t.Run("flags divergent duplicate", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.CheckBuildConfigInput{
			Active:   "web",
			Profiles: map[string]entity.BuildProfile{"web": web, "legacy": legacy},
		})
		require.NoError(t, err)
		assert.Equal(t, "web", out.Active.Name)
		assert.Equal(t, []string{"legacy"}, out.Duplicates)
		require.True(t, out.HasConflicts())
		assert.Equal(t, "dark_mode", out.Divergences[0].Field)
	})

	t.Run("single profile has no conflicts", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.CheckBuildConfigInput{
			Active:   "web",
			Profiles: map[string]entity.BuildProfile{"web": web},
		})
		require.NoError(t, err)
		assert.False(t, out.HasConflicts())
		assert.Empty(t, out.Duplicates)
	})

	t.Run("unknown active profile", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), usecase.CheckBuildConfigInput{Active: "nope"})
		require.Error(t, err)
	})
}
