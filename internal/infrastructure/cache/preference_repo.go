package cache

import (
	"context"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository"
	"github.com/bnema/themeroot/internal/logging"
)

type prefKey struct {
	contextID string
	key       string
}

// PreferenceRepository answers Get from memory and writes through to the
// wrapped repository. A cached nil records a known-absent preference.
type PreferenceRepository struct {
	next    repository.PreferenceRepository
	entries port.Cache[prefKey, *entity.PreferenceRecord]
}

var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)

// NewPreferenceRepository wraps next with an LRU of size entries.
// A size of zero or less returns next unchanged.
func NewPreferenceRepository(next repository.PreferenceRepository, size int) repository.PreferenceRepository {
	if size <= 0 {
		return next
	}
	return &PreferenceRepository{
		next:    next,
		entries: NewLRU[prefKey, *entity.PreferenceRecord](size),
	}
}

func clone(r *entity.PreferenceRecord) *entity.PreferenceRecord {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// Get implements repository.PreferenceRepository.
func (r *PreferenceRepository) Get(ctx context.Context, contextID, key string) (*entity.PreferenceRecord, error) {
	k := prefKey{contextID: contextID, key: key}
	if rec, ok := r.entries.Get(k); ok {
		return clone(rec), nil
	}

	rec, err := r.next.Get(ctx, contextID, key)
	if err != nil {
		return nil, err
	}
	// A write that landed while we were reading already cached a newer value.
	if newer, found := r.entries.AddIfAbsent(k, clone(rec)); found {
		return clone(newer), nil
	}
	logging.FromContext(ctx).Trace().
		Str("context_id", contextID).
		Str("key", key).
		Int("cached", r.entries.Len()).
		Msg("preference cache miss")
	return rec, nil
}

// Set implements repository.PreferenceRepository.
func (r *PreferenceRepository) Set(ctx context.Context, record *entity.PreferenceRecord) error {
	if record == nil {
		return r.next.Set(ctx, record)
	}
	k := prefKey{contextID: record.ContextID, key: record.Key}
	if err := r.next.Set(ctx, record); err != nil {
		r.entries.Remove(k)
		return err
	}
	r.entries.Set(k, clone(record))
	return nil
}

// Delete implements repository.PreferenceRepository.
func (r *PreferenceRepository) Delete(ctx context.Context, contextID, key string) error {
	k := prefKey{contextID: contextID, key: key}
	if err := r.next.Delete(ctx, contextID, key); err != nil {
		r.entries.Remove(k)
		return err
	}
	r.entries.Set(k, nil)
	return nil
}

// ListByContext implements repository.PreferenceRepository. It always
// reads through.
func (r *PreferenceRepository) ListByContext(ctx context.Context, contextID string) ([]*entity.PreferenceRecord, error) {
	return r.next.ListByContext(ctx, contextID)
}
