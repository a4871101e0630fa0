package migrator

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicolasparada/go-db"
)

// Migrate applies, in name order, every .sql file under fsys not yet
// recorded in the migrations table. It returns the names it applied.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) ([]string, error) {
	db := db.New(pool)
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return nil, err
	}

	matches, err := fs.Glob(fsys, "**/*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}

	slices.Sort(matches)

	var applied []string
	for _, match := range matches {
		name := strings.TrimSuffix(path.Base(match), ".sql")

		b, err := fs.ReadFile(fsys, match)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}

		var ran bool
		err = db.RunTx(ctx, func(ctx context.Context) error {
			exists, err := migrationExists(ctx, db, name)
			if err != nil || exists {
				return err
			}

			if _, err := db.Exec(ctx, string(b)); err != nil {
				return fmt.Errorf("sql exec migration %s: %w", name, err)
			}

			ran = true
			return recordMigration(ctx, db, name)
		})
		if err != nil {
			return applied, err
		}

		if ran {
			applied = append(applied, name)
		}
	}

	return applied, nil
}

func ensureMigrationsTable(ctx context.Context, db *db.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			name VARCHAR NOT NULL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("sql create migrations table: %w", err)
	}
	return nil
}

func migrationExists(ctx context.Context, db *db.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM migrations WHERE name = @name
		)
	`, pgx.StrictNamedArgs{"name": name}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sql check migration exists: %w", err)
	}
	return exists, nil
}

func recordMigration(ctx context.Context, db *db.DB, name string) error {
	_, err := db.Exec(ctx, `
		INSERT INTO migrations (name) VALUES (@name)
	`, pgx.StrictNamedArgs{"name": name})
	if err != nil {
		return fmt.Errorf("sql record migration: %w", err)
	}
	return nil
}
