package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_port "github.com/bnema/themeroot/internal/application/port/mocks"
	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "server.addr", Type: "string", Default: ":8080", Section: "Server"},
		{Key: "theme.backend", Type: "string", Default: "sqlite", Values: []string{"sqlite", "cookie", "memory"}, Section: "Theme"},
		{Key: "theme.storage_key", Type: "string", Default: "theme", Section: "Theme"},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns every key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_port.NewMockConfigSchemaProvider(ctrl)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Len(t, out.Keys, 3)
		assert.Equal(t, []string{"Server", "Theme"}, out.Sections)
	})

	t.Run("filters by section case-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_port.NewMockConfigSchemaProvider(ctrl)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "theme"})

		require.NoError(t, err)
		require.Len(t, out.Keys, 2)
		assert.Equal(t, "theme.backend", out.Keys[0].Key)
	})

	t.Run("unknown section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_port.NewMockConfigSchemaProvider(ctrl)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		_, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "nope"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Server, Theme")
	})
}
