package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"vocprez/pkg/platform/sentinel"
	"vocprez/pkg/platform/tx"
)

const undefinedTable = "42P01"

// Postgres keeps slots in the list_cache table. An upsert replaces a slot in
// one statement. Statements join the transaction carried by ctx, if any.
type Postgres struct {
	db *sql.DB
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (p *Postgres) conn(ctx context.Context) querier {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return p.db
}

func NewPostgres(db *sql.DB) (*Postgres, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}
	return &Postgres{db: db}, nil
}

// EnsureSchema creates the table when it is missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS list_cache (
			name       TEXT PRIMARY KEY,
			body       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create list_cache table: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := p.conn(ctx).QueryRowContext(ctx, `SELECT body FROM list_cache WHERE name = $1`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read list %s: %w", key, err)
	}
	return body, nil
}

func (p *Postgres) Put(ctx context.Context, key string, body []byte) error {
	_, err := p.conn(ctx).ExecContext(ctx, `
		INSERT INTO list_cache (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET
			body = EXCLUDED.body,
			updated_at = EXCLUDED.updated_at
	`, key, body)
	if err != nil {
		return fmt.Errorf("write list %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.conn(ctx).ExecContext(ctx, `DELETE FROM list_cache WHERE name = $1`, key)
	if err != nil && !isUndefinedTable(err) {
		return fmt.Errorf("delete list %s: %w", key, err)
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == undefinedTable
}
