package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT        PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate applies the embedded scripts in file name order. Applied
// versions are recorded in schema_migrations and never run again, so
// seed data removed through the API stays removed across restarts.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		version := path.Base(name)

		var applied bool
		err := db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check %s: %w", version, err)
		}
		if applied {
			continue
		}

		script, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", version, err)
		}

		// A multi-statement script without arguments runs as one implicit
		// transaction, so the script and its version record commit together.
		if _, err := db.Exec(ctx, withVersion(string(script), version)); err != nil {
			return fmt.Errorf("apply %s: %w", version, err)
		}
	}

	return nil
}

func withVersion(script, version string) string {
	quoted := "'" + strings.ReplaceAll(version, "'", "''") + "'"
	return strings.TrimRight(script, "; \n\t") +
		";\nINSERT INTO schema_migrations (version) VALUES (" + quoted + ");\n"
}
