package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository"
	"github.com/bnema/themeroot/internal/logging"
)

// LazyDB defers opening the preference database until a command first
// needs it, so commands like "resolve" never load the SQLite WASM module.
// A failed open is remembered and returned to every later caller.
type LazyDB struct {
	dbPath string

	mu     sync.Mutex
	opened bool
	db     *sql.DB
	err    error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB opens the database on the first call and returns the same handle after.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.opened {
		l.opened = true
		l.db, l.err = NewConnection(ctx, l.dbPath)
		if l.err != nil {
			logging.FromContext(ctx).Error().Err(l.err).Str("path", l.dbPath).Msg("opening preference database failed")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close releases the handle if one was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

func (l *LazyDB) Path() string { return l.dbPath }

// LazyPreferenceRepository builds the SQL repository over the provider's
// handle on first use.
type LazyPreferenceRepository struct {
	provider port.DatabaseProvider
	repo     func(ctx context.Context) (repository.PreferenceRepository, error)
}

var _ repository.PreferenceRepository = (*LazyPreferenceRepository)(nil)

func NewLazyPreferenceRepository(provider port.DatabaseProvider) *LazyPreferenceRepository {
	r := &LazyPreferenceRepository{provider: provider}
	var (
		once sync.Once
		repo repository.PreferenceRepository
		err  error
	)
	r.repo = func(ctx context.Context) (repository.PreferenceRepository, error) {
		once.Do(func() {
			var db *sql.DB
			if db, err = r.provider.DB(ctx); err == nil {
				repo = NewPreferenceRepository(db)
			}
		})
		return repo, err
	}
	return r
}

func (r *LazyPreferenceRepository) Get(ctx context.Context, contextID, key string) (*entity.PreferenceRecord, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, contextID, key)
}

func (r *LazyPreferenceRepository) Set(ctx context.Context, record *entity.PreferenceRecord) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Set(ctx, record)
}

func (r *LazyPreferenceRepository) Delete(ctx context.Context, contextID, key string) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, contextID, key)
}

func (r *LazyPreferenceRepository) ListByContext(ctx context.Context, contextID string) ([]*entity.PreferenceRecord, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListByContext(ctx, contextID)
}
