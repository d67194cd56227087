// Package storage provides the optional SQLite cache for raw upstream
// API responses.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache stores raw upstream response bodies keyed by request. Entries
// older than the TTL read as misses. Rankings never persist here; the
// cache only short-circuits repeated upstream GETs.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewCache opens or creates the cache database at dbPath and initializes
// the schema. Parent directories are created if they do not exist. A ttl
// of zero disables expiry.
func NewCache(dbPath string, ttl time.Duration) (*Cache, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_responses_fetched_at ON responses(fetched_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached body for key. Stale entries are misses, not
// errors.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	var fetchedAt int64

	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM responses WHERE key = ?`, key,
	).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if c.ttl > 0 && time.Since(time.Unix(fetchedAt, 0)) > c.ttl {
		return nil, false, nil
	}
	return body, true, nil
}

// Put stores body under key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, key string, body []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO responses (key, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		key, body, time.Now().Unix(),
	)
	return err
}

// Prune deletes entries older than the TTL and reports how many rows
// went away. A zero TTL prunes nothing.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	if c.ttl <= 0 {
		return 0, nil
	}
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM responses WHERE fetched_at < ?`, time.Now().Add(-c.ttl).Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
