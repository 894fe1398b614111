package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prismai/prism-cli/internal/common"
	"github.com/prismai/prism-cli/internal/dbx"
)

// SQLiteStore keeps the token pair in the local metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save writes both tokens in a single transaction so a crash cannot leave a
// mixed pair behind.
func (s *SQLiteStore) Save(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, common.AccessTokenKey, access); err != nil {
			return err
		}
		return set(ctx, tx, common.RefreshTokenKey, refresh)
	})
}

// Load returns the stored pair. Missing entries come back as empty strings
// with a nil error.
func (s *SQLiteStore) Load(ctx context.Context) (string, string, error) {
	access, err := get(ctx, s.db, common.AccessTokenKey)
	if err != nil {
		return "", "", err
	}
	refresh, err := get(ctx, s.db, common.RefreshTokenKey)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Clear removes both tokens. Clearing an empty store is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`,
		common.AccessTokenKey, common.RefreshTokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return string(value), nil
}
