package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

type migration struct {
	version int
	file    string
}

// Run applies the embedded migrations that are not recorded in schema_migrations yet.
func Run(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, migrationFiles)
}

func run(ctx context.Context, db *sql.DB, files fs.FS) error {
	log := zap.S().Named("migrations")

	if _, err := db.ExecContext(ctx, queryCreateMigrationsTable); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("getting applied versions: %w", err)
	}

	pending, err := listMigrations(files)
	if err != nil {
		return fmt.Errorf("listing migration files: %w", err)
	}

	for _, m := range pending {
		if applied[m.version] {
			log.Debugw("migration already applied", "version", m.version)
			continue
		}
		if err := apply(ctx, db, files, m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.file, err)
		}
		log.Infow("applied migration", "file", m.file, "version", m.version)
	}

	return nil
}

const queryCreateMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT now()
	)`

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// listMigrations returns the sql files ordered by their numeric prefix.
// Files without a numeric prefix are skipped.
func listMigrations(files fs.FS) ([]migration, error) {
	entries, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, err
	}

	var out []migration
	for _, f := range entries {
		prefix, _, _ := strings.Cut(path.Base(f), "_")
		v, err := strconv.Atoi(prefix)
		if err != nil || v == 0 {
			zap.S().Named("migrations").Warnw("skipping invalid migration file", "file", f)
			continue
		}
		out = append(out, migration{version: v, file: f})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

func apply(ctx context.Context, db *sql.DB, files fs.FS, m migration) error {
	content, err := fs.ReadFile(files, m.file)
	if err != nil {
		return fmt.Errorf("reading migration file: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}

	return tx.Commit()
}
