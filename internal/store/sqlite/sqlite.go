// Package sqlite is the emulator's default store driver: one WAL-mode
// SQLite database holding a single document table.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/conectajovem/platform/internal/model"
	"github.com/conectajovem/platform/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    entity       TEXT NOT NULL,
    id           TEXT NOT NULL,
    created_date TEXT NOT NULL,
    data         TEXT NOT NULL,
    PRIMARY KEY (entity, id)
);
CREATE INDEX IF NOT EXISTS records_entity_created ON records (entity, created_date);
`

// Open opens (or creates) the database at path, enables WAL journal
// mode and ensures the schema exists.
func Open(path string) (store.Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
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
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Create(ctx context.Context, entity string, rec store.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (entity, id, created_date, data) VALUES (?, ?, ?, ?)`,
		entity, rec["id"], rec["created_date"], string(data))
	return err
}

func (s *sqliteStore) Get(ctx context.Context, entity, id string) (store.Record, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE entity = ? AND id = ?`, entity, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var rec store.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *sqliteStore) Update(ctx context.Context, entity, id string, rec store.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET data = ? WHERE entity = ? AND id = ?`, string(data), entity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, entity, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE entity = ? AND id = ?`, entity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, model.ErrNotFound)
	}
	return nil
}

func (s *sqliteStore) All(ctx context.Context, entity string) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM records WHERE entity = ? ORDER BY created_date`, entity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec store.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *sqliteStore) Close() error { return s.db.Close() }
