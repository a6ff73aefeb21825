package repository

import (
	"context"
	"fmt"

	"movie-diary/pkg/database"

	"go.uber.org/zap"
)

// migration is one schema step. Steps are applied in version order inside a
// transaction and recorded in schema_migrations, so re-running Migrate on an
// already-current store is a no-op.
type migration struct {
	Version int
	Name    string
	SQL     string
}

// Older stores predate cast_names and deleted, which is why those are
// additive migrations with safe defaults instead of part of the base table.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create_reviews",
		SQL: `
			CREATE TABLE IF NOT EXISTS reviews (
				id TEXT PRIMARY KEY,
				movie_id BIGINT NOT NULL,
				movie_title TEXT NOT NULL,
				poster_path TEXT NOT NULL,
				release_date TEXT NOT NULL DEFAULT '',
				director TEXT NOT NULL DEFAULT '',
				rating DOUBLE PRECISION NOT NULL,
				liked SMALLINT NOT NULL,
				review_text TEXT NOT NULL,
				watched_date TEXT NOT NULL,
				created_at BIGINT NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "add_cast_names",
		SQL:     `ALTER TABLE reviews ADD COLUMN IF NOT EXISTS cast_names TEXT NOT NULL DEFAULT ''`,
	},
	{
		Version: 3,
		Name:    "add_deleted",
		SQL:     `ALTER TABLE reviews ADD COLUMN IF NOT EXISTS deleted SMALLINT NOT NULL DEFAULT 0`,
	},
}

// Migrate brings the reviews schema up to the latest version.
func Migrate(ctx context.Context, db database.PgxIface, log *zap.Logger) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var current int
	err = db.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("read current schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			m.Version, m.Name,
		); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}

		log.Info("Migration applied",
			zap.Int("version", m.Version),
			zap.String("name", m.Name),
		)
	}

	return nil
}
