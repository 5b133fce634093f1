package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps objects in a local sqlite file, one row per
// (bucket, path). It stands in for a cloud bucket: same upsert and
// existence-check surface, no credentials needed.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS objects (
  bucket TEXT NOT NULL,
  path TEXT NOT NULL,
  content_type TEXT NOT NULL DEFAULT '',
  bytes BLOB NOT NULL,
  updated_at TEXT NOT NULL,
  PRIMARY KEY (bucket, path)
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_objects_bucket
ON objects(bucket);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Put(ctx context.Context, bucket, path string, content []byte, contentType string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO objects (bucket, path, content_type, bytes, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(bucket, path) DO UPDATE SET
  content_type = excluded.content_type,
  bytes = excluded.bytes,
  updated_at = excluded.updated_at;`,
		bucket, path, contentType, content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store put %s/%s: %w", bucket, path, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, bucket, path string) ([]byte, string, error) {
	var content []byte
	var ct string
	err := s.db.QueryRowContext(ctx,
		`SELECT bytes, content_type FROM objects WHERE bucket = ? AND path = ?;`,
		bucket, path,
	).Scan(&content, &ct)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotExist
	}
	if err != nil {
		return nil, "", fmt.Errorf("store get %s/%s: %w", bucket, path, err)
	}
	return content, ct, nil
}

func (s *SQLiteStore) Exists(ctx context.Context, bucket, path string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM objects WHERE bucket = ? AND path = ? LIMIT 1;`,
		bucket, path,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path FROM objects WHERE bucket = ? AND path LIKE ? || '%' ORDER BY path;`,
		bucket, prefix,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
