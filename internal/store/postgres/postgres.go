// Package postgres is the emulator's PostgreSQL store driver, used
// when CONECTA_POSTGRES_DSN is configured.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/conectajovem/platform/internal/model"
	"github.com/conectajovem/platform/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    entity       TEXT NOT NULL,
    id           TEXT NOT NULL,
    created_date TEXT NOT NULL,
    data         JSONB NOT NULL,
    PRIMARY KEY (entity, id)
);
CREATE INDEX IF NOT EXISTS records_entity_created ON records (entity, created_date);
`

// Open connects using the pgx stdlib driver, verifies connectivity and
// ensures the schema exists.
func Open(dsn string) (store.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &pgStore{db: db}, nil
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Create(ctx context.Context, entity string, rec store.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (entity, id, created_date, data) VALUES ($1, $2, $3, $4)`,
		entity, rec["id"], rec["created_date"], string(data))
	return err
}

func (s *pgStore) Get(ctx context.Context, entity, id string) (store.Record, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE entity = $1 AND id = $2`, entity, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var rec store.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *pgStore) Update(ctx context.Context, entity, id string, rec store.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET data = $1 WHERE entity = $2 AND id = $3`, string(data), entity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	return nil
}

func (s *pgStore) Delete(ctx context.Context, entity, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE entity = $1 AND id = $2`, entity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	return nil
}

func (s *pgStore) All(ctx context.Context, entity string) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM records WHERE entity = $1 ORDER BY created_date`, entity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec store.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *pgStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *pgStore) Close() error { return s.db.Close() }
