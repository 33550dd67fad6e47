package state

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/cvdesk/cvdesk/internal/client/models"
	"github.com/cvdesk/cvdesk/internal/dbx"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore is the Store implementation backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the state database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate state db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

// Save writes both keys in one transaction so a crash cannot leave the token
// without its user or vice versa.
func (s *SQLiteStore) Save(ctx context.Context, creds Credentials) error {
	userData, err := json.Marshal(creds.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(creds.Token)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, userData)
	})
}

// Load returns the stored credentials, or nil when either key is absent.
// A half-written pair is treated as no session.
func (s *SQLiteStore) Load(ctx context.Context) (*Credentials, error) {
	token, err := get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	userData, err := get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if token == nil || userData == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}

	return &Credentials{Token: string(token), User: user}, nil
}

// Clear removes both keys.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range []string{keyToken, keyUser} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
			}
		}
		return nil
	})
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}
