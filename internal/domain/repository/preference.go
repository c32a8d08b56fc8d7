package repository

import (
	"context"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// PreferenceRepository defines operations for theme preference persistence.
type PreferenceRepository interface {
	// Get retrieves a preference for a browsing context.
	// Returns nil, nil when nothing is stored.
	Get(ctx context.Context, contextID, key string) (*entity.PreferenceRecord, error)

	// Set creates or overwrites a preference.
	Set(ctx context.Context, record *entity.PreferenceRecord) error

	// Delete removes a preference. Deleting a missing entry is not an error.
	Delete(ctx context.Context, contextID, key string) error

	// ListByContext returns every preference stored for a context.
	ListByContext(ctx context.Context, contextID string) ([]*entity.PreferenceRecord, error)
}
