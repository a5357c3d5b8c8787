// Package store keeps a library of saved designs in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// ErrNotFound is returned when no design has the requested ID.
var ErrNotFound = errors.New("design not found")

const schema = `
CREATE TABLE IF NOT EXISTS designs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	customer   TEXT NOT NULL DEFAULT '',
	item_count INTEGER NOT NULL DEFAULT 0,
	data       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS designs_updated_at ON designs (updated_at);
`

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one stored design.
type Record struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Design    model.Design `json:"design"`
}

// Summary is the listing view of a stored design.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Customer  string    `json:"customer"`
	Items     int       `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is a design library backed by a *sql.DB.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New wraps an open database. Call Init before use.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open opens (creating if needed) the SQLite file at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	s := New(db)
	if err := s.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenSQLite opens the SQLite database at dbPath.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Init creates the tables.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces the design with the given ID. An empty ID
// creates a new record with a generated one. CreatedAt is kept on update.
func (s *Store) Put(ctx context.Context, id, name string, d model.Design) (Record, error) {
	if id == "" {
		id = uuid.New().String()[:8]
	}
	if d.Items == nil {
		d.Items = []model.QuotationItem{}
	}
	data, err := json.Marshal(d)
	if err != nil {
		return Record{}, fmt.Errorf("marshal design: %w", err)
	}
	now := s.now().UTC().Format(timeLayout)

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO designs (id, name, customer, item_count, data, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            name = excluded.name,
            customer = excluded.customer,
            item_count = excluded.item_count,
            data = excluded.data,
            updated_at = excluded.updated_at
    `, id, name, d.Settings.CustomerName, len(d.Items), string(data), now, now)
	if err != nil {
		return Record{}, fmt.Errorf("save design %s: %w", id, err)
	}
	return s.Get(ctx, id)
}

// Get returns the design with the given ID or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, name, data, created_at, updated_at
        FROM designs
        WHERE id = ?
    `, id)

	var (
		r                Record
		data             string
		created, updated string
	)
	if err := row.Scan(&r.ID, &r.Name, &data, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(data), &r.Design); err != nil {
		return Record{}, fmt.Errorf("decode design %s: %w", id, err)
	}
	var err error
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Record{}, fmt.Errorf("decode design %s: %w", id, err)
	}
	if r.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return Record{}, fmt.Errorf("decode design %s: %w", id, err)
	}
	return r, nil
}

// List returns all designs, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, customer, item_count, updated_at
        FROM designs
        ORDER BY updated_at DESC, id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			sum     Summary
			updated string
		)
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Customer, &sum.Items, &updated); err != nil {
			return nil, err
		}
		if sum.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes the design with the given ID or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
