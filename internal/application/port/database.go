package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the preference database. Opening may be
// deferred until the first DB call, so IsInitialized can stay false for the
// whole life of a command that never reads a preference.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	IsInitialized() bool
	Close() error
}
