package storage

import (
	"context"
	"fmt"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository"
)

// RepositoryStore scopes a preference repository to one browsing context.
type RepositoryStore struct {
	repo      repository.PreferenceRepository
	contextID string
}

var _ port.PreferenceStore = (*RepositoryStore)(nil)

// NewRepositoryStore binds repo to contextID.
func NewRepositoryStore(repo repository.PreferenceRepository, contextID string) *RepositoryStore {
	return &RepositoryStore{repo: repo, contextID: contextID}
}

// ContextID returns the bound browsing context.
func (s *RepositoryStore) ContextID() string {
	return s.contextID
}

// Lookup implements port.PreferenceStore.
func (s *RepositoryStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	rec, err := s.repo.Get(ctx, s.contextID, key)
	if err != nil {
		return "", false, fmt.Errorf("lookup %s: %w", key, err)
	}
	if rec == nil {
		return "", false, nil
	}
	return rec.Value, true, nil
}

// Store implements port.PreferenceStore.
func (s *RepositoryStore) Store(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, entity.NewPreferenceRecord(s.contextID, key, value))
}

// Remove implements port.PreferenceStore.
func (s *RepositoryStore) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, s.contextID, key)
}
