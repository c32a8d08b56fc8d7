package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/themeroot/internal/logging"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator scopes a goose provider to db and the embedded schema files.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	schema, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}
	p, err := goose.NewProvider(goose.DialectSQLite3, db, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare migrations: %w", err)
	}
	return p, nil
}

// RunMigrations brings the preference schema up to the latest version.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	p, err := newMigrator(db)
	if err != nil {
		return err
	}
	applied, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logging.FromContext(ctx)
	for _, res := range applied {
		log.Info().
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("migration applied")
	}
	if len(applied) == 0 {
		log.Debug().Msg("database schema up to date")
	}
	return nil
}

// SchemaVersion reports the highest applied migration.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	p, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}
