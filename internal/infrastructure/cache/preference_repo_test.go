package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository/mocks"
	"github.com/bnema/themeroot/internal/infrastructure/cache"
)

func TestPreferenceRepository_ZeroSizeIsPassthrough(t *testing.T) {
	next := mocks.NewMockPreferenceRepository(t)
	assert.Same(t, next, cache.NewPreferenceRepository(next, 0))
}

func TestPreferenceRepository_GetHitsDatabaseOnce(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockPreferenceRepository(t)
	next.EXPECT().Get(mock.Anything, "ctx1", "theme").
		Return(entity.NewPreferenceRecord("ctx1", "theme", "dark"), nil).Once()

	repo := cache.NewPreferenceRepository(next, 8)
	for i := 0; i < 3; i++ {
		rec, err := repo.Get(ctx, "ctx1", "theme")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "dark", rec.Value)
	}
}

func TestPreferenceRepository_CachesAbsence(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockPreferenceRepository(t)
	next.EXPECT().Get(mock.Anything, "ctx1", "theme").Return(nil, nil).Once()

	repo := cache.NewPreferenceRepository(next, 8)
	for i := 0; i < 2; i++ {
		rec, err := repo.Get(ctx, "ctx1", "theme")
		require.NoError(t, err)
		assert.Nil(t, rec)
	}
}

func TestPreferenceRepository_WritesThrough(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockPreferenceRepository(t)
	record := entity.NewPreferenceRecord("ctx1", "theme", "light")
	next.EXPECT().Set(mock.Anything, record).Return(nil).Once()
	next.EXPECT().Delete(mock.Anything, "ctx1", "theme").Return(nil).Once()

	repo := cache.NewPreferenceRepository(next, 8)
	require.NoError(t, repo.Set(ctx, record))

	rec, err := repo.Get(ctx, "ctx1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", rec.Value)

	// callers mutating the result do not corrupt the cache
	rec.Value = "dark"
	again, _ := repo.Get(ctx, "ctx1", "theme")
	assert.Equal(t, "light", again.Value)

	require.NoError(t, repo.Delete(ctx, "ctx1", "theme"))
	rec, err = repo.Get(ctx, "ctx1", "theme")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPreferenceRepository_FailedWriteInvalidates(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockPreferenceRepository(t)
	record := entity.NewPreferenceRecord("ctx1", "theme", "dark")
	next.EXPECT().Set(mock.Anything, record).Return(errors.New("disk full")).Once()
	next.EXPECT().Get(mock.Anything, "ctx1", "theme").Return(nil, nil).Once()

	repo := cache.NewPreferenceRepository(next, 8)
	require.Error(t, repo.Set(ctx, record))

	rec, err := repo.Get(ctx, "ctx1", "theme")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPreferenceRepository_GetErrorNotCached(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockPreferenceRepository(t)
	next.EXPECT().Get(mock.Anything, "ctx1", "theme").Return(nil, errors.New("locked")).Once()
	next.EXPECT().Get(mock.Anything, "ctx1", "theme").Return(nil, nil).Once()

	repo := cache.NewPreferenceRepository(next, 8)
	_, err := repo.Get(ctx, "ctx1", "theme")
	require.Error(t, err)
	_, err = repo.Get(ctx, "ctx1", "theme")
	require.NoError(t, err)
}

func TestPreferenceRepository_ListReadsThrough(t *testing.T) {
	next := mocks.NewMockPreferenceRepository(t)
	next.EXPECT().ListByContext(mock.Anything, "ctx1").Return(nil, nil).Twice()

	repo := cache.NewPreferenceRepository(next, 8)
	for i := 0; i < 2; i++ {
		_, err := repo.ListByContext(context.Background(), "ctx1")
		require.NoError(t, err)
	}
}

func TestPreferenceRepository_MissDoesNotOverwriteConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockPreferenceRepository(t)

	reading := make(chan struct{})
	release := make(chan struct{})
	// The read sees the row as it was before the write below.
	next.EXPECT().Get(mock.Anything, "ctx1", "theme").
		RunAndReturn(func(context.Context, string, string) (*entity.PreferenceRecord, error) {
			close(reading)
			<-release
			return entity.NewPreferenceRecord("ctx1", "theme", "light"), nil
		}).Once()
	fresh := entity.NewPreferenceRecord("ctx1", "theme", "dark")
	next.EXPECT().Set(mock.Anything, fresh).Return(nil).Once()

	repo := cache.NewPreferenceRepository(next, 8)

	type result struct {
		rec *entity.PreferenceRecord
		err error
	}
	done := make(chan result, 1)
	go func() {
		rec, err := repo.Get(ctx, "ctx1", "theme")
		done <- result{rec, err}
	}()

	<-reading
	require.NoError(t, repo.Set(ctx, fresh))
	close(release)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "dark", res.rec.Value, "the racing read reports the newer write")

	rec, err := repo.Get(ctx, "ctx1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", rec.Value)
}
