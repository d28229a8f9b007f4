// Package migrations holds the database schema and applies it with tern.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var files embed.FS

// Files returns the migration scripts in tern layout.
func Files() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate brings the schema to the latest version. It is safe to call
// on an up to date database.
func Migrate(ctx context.Context, logger zerolog.Logger, conn *pgx.Conn, versionTable string) error {
	migrator, err := migrate.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	err = migrator.LoadMigrations(Files())
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	migrator.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info().
			Int32("sequence", sequence).
			Str("name", name).
			Str("direction", direction).
			Msg("applying migration")
	}

	err = migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
