package sqlite

import (
	"context"
	"database/sql"
)

// dbtx is satisfied by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

type preferenceRow struct {
	ContextID string
	Key       string
	Value     string
	UpdatedAt int64
}

const getPreference = `SELECT context_id, key, value, updated_at
FROM preferences
WHERE context_id = ? AND key = ?`

func (q *queries) GetPreference(ctx context.Context, contextID, key string) (preferenceRow, error) {
	var row preferenceRow
	err := q.db.QueryRowContext(ctx, getPreference, contextID, key).
		Scan(&row.ContextID, &row.Key, &row.Value, &row.UpdatedAt)
	return row, err
}

const upsertPreference = `INSERT INTO preferences (context_id, key, value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (context_id, key) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at`

func (q *queries) UpsertPreference(ctx context.Context, row preferenceRow) error {
	_, err := q.db.ExecContext(ctx, upsertPreference, row.ContextID, row.Key, row.Value, row.UpdatedAt)
	return err
}

const deletePreference = `DELETE FROM preferences WHERE context_id = ? AND key = ?`

func (q *queries) DeletePreference(ctx context.Context, contextID, key string) error {
	_, err := q.db.ExecContext(ctx, deletePreference, contextID, key)
	return err
}

const listPreferencesByContext = `SELECT context_id, key, value, updated_at
FROM preferences
WHERE context_id = ?
ORDER BY key`

func (q *queries) ListPreferencesByContext(ctx context.Context, contextID string) ([]preferenceRow, error) {
	rows, err := q.db.QueryContext(ctx, listPreferencesByContext, contextID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []preferenceRow
	for rows.Next() {
		var row preferenceRow
		if err := rows.Scan(&row.ContextID, &row.Key, &row.Value, &row.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
