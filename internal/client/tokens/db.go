package tokens

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/prismai/prism-cli/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// InitDatabase opens (or creates) the local sqlite database at dsn and brings
// its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: sqlite is single-writer, and :memory: databases are
	// per-connection.
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
