package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/animebay/animebay-scraper/internal/errs"
)

var schema = [2]string{
	`CREATE TABLE IF NOT EXISTS documents (
		collection TEXT    NOT NULL,
		id         TEXT    NOT NULL,
		body       TEXT    NOT NULL,
		created    INTEGER NOT NULL,
		PRIMARY KEY (collection, id)
	)`,
	`CREATE INDEX IF NOT EXISTS documents_created ON documents (collection, created)`,
}

// SQLite keeps every collection in one table of JSON bodies. The creation
// time is set by the store on first insert and never changes.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
	log *slog.Logger
}

// OpenSQLite opens the database file at path, an empty path keeps everything
// in memory.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLite, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := ":memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if path == "" {
		// every connection would get its own memory database
		db.SetMaxOpenConns(1)
	}

	for _, v := range schema {
		if _, err = db.ExecContext(ctx, v); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("creating store schema: %w", err)
		}
	}

	return &SQLite{
		db:  db,
		now: time.Now,
		log: logger.WithGroup("[STORE]"),
	}, nil
}

func (x *SQLite) Close() error {
	return x.db.Close()
}

func (x *SQLite) Get(ctx context.Context, collection, id string) (*Document, error) {
	var (
		body    string
		created int64
	)
	err := x.db.QueryRowContext(ctx,
		`SELECT body, created FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&body, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", collection, id, err)
	}

	return document(id, body, created)
}

func (x *SQLite) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %v", errs.ErrBadData, collection, id, err)
	}

	_, err = x.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body, created) VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body`,
		collection, id, string(body), x.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", collection, id, err)
	}

	x.log.Debug("document was set", "collection", collection, "id", id)
	return nil
}

// Update merges fields into an existing document.
func (x *SQLite) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var body string
	err = tx.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s/%s: %w", collection, id, errs.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reading %s/%s: %w", collection, id, err)
	}

	current := map[string]any{}
	if err = json.Unmarshal([]byte(body), &current); err != nil {
		return fmt.Errorf("%w: %s/%s: %v", errs.ErrBadData, collection, id, err)
	}
	for k, v := range fields {
		current[k] = v
	}

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %v", errs.ErrBadData, collection, id, err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE documents SET body = ? WHERE collection = ? AND id = ?`,
		string(data), collection, id,
	); err != nil {
		return fmt.Errorf("writing %s/%s: %w", collection, id, err)
	}

	return tx.Commit()
}

func (x *SQLite) Delete(ctx context.Context, collection, id string) error {
	if _, err := x.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}

	x.log.Debug("document was deleted", "collection", collection, "id", id)
	return nil
}

// Query returns the documents whose top level field equals value, oldest
// first.
func (x *SQLite) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	rows, err := x.db.QueryContext(ctx,
		`SELECT id, body, created FROM documents
		WHERE collection = ? AND json_extract(body, ?) = ?
		ORDER BY created, id`,
		collection, "$."+field, value,
	)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	var result []Document
	for rows.Next() {
		var (
			id, body string
			created  int64
		)
		if err = rows.Scan(&id, &body, &created); err != nil {
			return nil, fmt.Errorf("querying %s: %w", collection, err)
		}

		doc, err := document(id, body, created)
		if err != nil {
			x.log.Error("skipping unreadable document", "collection", collection, "id", id, "error", err)
			continue
		}
		result = append(result, *doc)
	}

	return result, rows.Err()
}

func document(id, body string, created int64) (*Document, error) {
	doc := &Document{
		ID:      id,
		Fields:  map[string]any{},
		Created: time.Unix(0, created).UTC(),
	}
	if err := json.Unmarshal([]byte(body), &doc.Fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrBadData, id, err)
	}
	return doc, nil
}
