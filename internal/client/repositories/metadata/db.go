package metadata

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite file at dsn, migrates it and
// drops entries that expired while the client was not running.
func Open(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	r := NewSQLiteRepository(db)
	if err := r.Purge(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}
