package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/themeroot/internal/domain/entity"
	"github.com/bnema/themeroot/internal/domain/repository"
	"github.com/bnema/themeroot/internal/logging"
)

type preferenceRepo struct {
	queries *queries
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{queries: newQueries(db)}
}

func (r *preferenceRepo) Get(ctx context.Context, contextID, key string) (*entity.PreferenceRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("context_id", contextID).Str("key", key).Msg("getting preference")

	row, err := r.queries.GetPreference(ctx, contextID, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preference %s/%s: %w", contextID, key, err)
	}
	return preferenceFromRow(row), nil
}

func (r *preferenceRepo) Set(ctx context.Context, record *entity.PreferenceRecord) error {
	if record == nil {
		return fmt.Errorf("preference record is nil")
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("context_id", record.ContextID).Str("key", record.Key).Str("value", record.Value).Msg("setting preference")

	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	err := r.queries.UpsertPreference(ctx, preferenceRow{
		ContextID: record.ContextID,
		Key:       record.Key,
		Value:     record.Value,
		UpdatedAt: updatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("set preference %s/%s: %w", record.ContextID, record.Key, err)
	}
	return nil
}

func (r *preferenceRepo) Delete(ctx context.Context, contextID, key string) error {
	if err := r.queries.DeletePreference(ctx, contextID, key); err != nil {
		return fmt.Errorf("delete preference %s/%s: %w", contextID, key, err)
	}
	return nil
}

func (r *preferenceRepo) ListByContext(ctx context.Context, contextID string) ([]*entity.PreferenceRecord, error) {
	rows, err := r.queries.ListPreferencesByContext(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("list preferences for %s: %w", contextID, err)
	}

	records := make([]*entity.PreferenceRecord, len(rows))
	for i, row := range rows {
		records[i] = preferenceFromRow(row)
	}
	return records, nil
}

func preferenceFromRow(row preferenceRow) *entity.PreferenceRecord {
	return &entity.PreferenceRecord{
		ContextID: row.ContextID,
		Key:       row.Key,
		Value:     row.Value,
		UpdatedAt: time.Unix(row.UpdatedAt, 0),
	}
}
