// Package metadata is the SQLite-backed key/value store the console uses to
// keep the session across runs.
package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
	"github.com/dmitrijs2005/wevraa-admin/internal/dbx"
)

var _ credentials.Backend = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ? AND (expires_at = 0 OR expires_at > ?)`,
		key, r.now().UnixMilli(),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

// SetMany upserts all entries in one transaction.
func (r *SQLiteRepository) SetMany(ctx context.Context, entries ...credentials.Entry) error {
	now := r.now()
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, e := range entries {
			var expiresAt int64
			if e.TTL > 0 {
				expiresAt = now.Add(e.TTL).UnixMilli()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO metadata (key, value, expires_at) VALUES (?, ?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
			`, e.Key, e.Value, expiresAt)
			if err != nil {
				return fmt.Errorf("failed to set metadata[%s]: %w", e.Key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, k); err != nil {
				return fmt.Errorf("failed to delete metadata[%s]: %w", k, err)
			}
		}
		return nil
	})
}

// Purge removes expired rows.
func (r *SQLiteRepository) Purge(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE expires_at <> 0 AND expires_at <= ?`, r.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to purge metadata: %w", err)
	}
	return nil
}
