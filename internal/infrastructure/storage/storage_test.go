package storage_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository/mocks"
	"github.com/bnema/themeroot/internal/infrastructure/storage"
)

func TestMapStore(t *testing.T) {
	ctx := context.Background()
	seed := map[string]string{"theme": "dark"}
	s := storage.NewMapStore(seed)
	seed["theme"] = "light"

	v, ok, err := s.Lookup(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Store(ctx, "theme", ""))
	v, ok, _ = s.Lookup(ctx, "theme")
	assert.True(t, ok, "empty value is still present")
	assert.Empty(t, v)

	require.NoError(t, s.Remove(ctx, "theme"))
	_, ok, _ = s.Lookup(ctx, "theme")
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot())
}

func TestCookieStore_Lookup(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	s := storage.NewCookieStore(r, httptest.NewRecorder(), storage.CookieOptions{})

	v, ok, err := s.Lookup(context.Background(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, ok, err = s.Lookup(context.Background(), "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCookieStore_StoreAndRemove(t *testing.T) {
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodPut, "/", nil)
	r.AddCookie(&http.Cookie{Name: "pref", Value: "light"})
	w := httptest.NewRecorder()
	s := storage.NewCookieStore(r, w, storage.CookieOptions{Name: "pref", MaxAge: 24 * time.Hour})

	require.NoError(t, s.Store(ctx, "theme", "dark"))
	v, ok, _ := s.Lookup(ctx, "theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v, "writes are visible within the exchange")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "pref", cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.Equal(t, 86400, cookies[0].MaxAge)

	require.NoError(t, s.Remove(ctx, "theme"))
	_, ok, _ = s.Lookup(ctx, "theme")
	assert.False(t, ok)

	cookies = w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, -1, cookies[1].MaxAge)
}

func TestRepositoryStore(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockPreferenceRepository(t)
	s := storage.NewRepositoryStore(repo, "ctx-9")
	assert.Equal(t, "ctx-9", s.ContextID())

	repo.EXPECT().Get(ctx, "ctx-9", "theme").
		Return(&entity.PreferenceRecord{ContextID: "ctx-9", Key: "theme", Value: "light"}, nil).Once()
	v, ok, err := s.Lookup(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	repo.EXPECT().Get(ctx, "ctx-9", "theme").Return(nil, nil).Once()
	_, ok, err = s.Lookup(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.EXPECT().Get(ctx, "ctx-9", "theme").Return(nil, errors.New("disk")).Once()
	_, _, err = s.Lookup(ctx, "theme")
	require.Error(t, err)

	repo.EXPECT().Set(ctx, mock.MatchedBy(func(r *entity.PreferenceRecord) bool {
		return r.ContextID == "ctx-9" && r.Key == "theme" && r.Value == "dark"
	})).Return(nil).Once()
	require.NoError(t, s.Store(ctx, "theme", "dark"))

	repo.EXPECT().Delete(ctx, "ctx-9", "theme").Return(nil).Once()
	require.NoError(t, s.Remove(ctx, "theme"))
}
