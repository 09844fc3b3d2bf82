package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func isNoRows(err error) bool { return errors.Is(err, sql.ErrNoRows) }

// ErrNotFound is returned by slug/id lookups with no matching row. Callers
// branch on it for the friendly not-found page; an empty list result is a
// different (non-error) outcome.
var ErrNotFound = errors.New("catalog: not found")

// schemaVersion is the current catalog generation. Bumping it wipes every
// catalog table and reseeds on next startup. That is the whole migration
// story: there is no ALTER support, schema changes cost the seeded data.
// Intake tables (custom_request, subscriber) hold user submissions and are
// not part of the reset.
const schemaVersion = 2

// OpenDB opens (creating the parent directory if needed) the sqlite catalog
// at path, ensures the schema, and runs the version-keyed seed/reset. Any
// failure here is fatal to startup: the app must not serve from a
// half-initialized store.
func OpenDB(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS meta(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS category(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  slug TEXT UNIQUE NOT NULL,
  name TEXT NOT NULL,
  description TEXT DEFAULT '',
  hero_image TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS product(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  slug TEXT UNIQUE NOT NULL,
  name TEXT NOT NULL,
  category_id INTEGER NOT NULL REFERENCES category(id),
  description TEXT DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  made_to_order INTEGER NOT NULL DEFAULT 0,
  limited_drop INTEGER NOT NULL DEFAULT 0,
  seasonal INTEGER NOT NULL DEFAULT 0,
  bundle_eligible INTEGER NOT NULL DEFAULT 0,
  personalization_schema TEXT DEFAULT '',
  availability TEXT NOT NULL DEFAULT 'in_stock',
  options TEXT DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_product_category ON product(category_id);
CREATE INDEX IF NOT EXISTS idx_product_name ON product(LOWER(name));

CREATE TABLE IF NOT EXISTS product_image(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL REFERENCES product(id),
  image_url TEXT NOT NULL,
  alt_text TEXT DEFAULT '',
  position INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_product_image_product ON product_image(product_id);

CREATE TABLE IF NOT EXISTS review(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  quote TEXT NOT NULL,
  name TEXT NOT NULL,
  piece_ref TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS city_page(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  slug TEXT UNIQUE NOT NULL,
  title TEXT NOT NULL,
  intro TEXT DEFAULT '',
  directions TEXT DEFAULT '',
  hours TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS video(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  slug TEXT UNIQUE NOT NULL,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  thumbnail_url TEXT DEFAULT '',
  video_url TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS custom_request(
  id TEXT PRIMARY KEY,
  full_name TEXT NOT NULL,
  email TEXT NOT NULL,
  piece_type TEXT DEFAULT '',
  description TEXT NOT NULL,
  budget TEXT DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS subscriber(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT UNIQUE NOT NULL,
  zip TEXT DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// migrate seeds a fresh store, reseeds on a version mismatch, and otherwise
// does nothing. Safe to run again on every startup.
func migrate(db *sqlx.DB) error {
	var stored string
	err := db.Get(&stored, `SELECT value FROM meta WHERE key = 'schema_version'`)
	// Compare versions numerically; a garbled value counts as a mismatch and
	// triggers a reseed rather than breaking every startup after it.
	storedN, convErr := strconv.Atoi(stored)
	switch {
	case err != nil && !isNoRows(err):
		return err
	case err != nil: // never initialized
		log.Printf("[catalog] fresh store, seeding v%d", schemaVersion)
		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()
		if err := seed(tx); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO meta(key, value) VALUES('schema_version', ?)`,
			fmt.Sprint(schemaVersion)); err != nil {
			return err
		}
		return tx.Commit()
	case convErr != nil || storedN != schemaVersion:
		log.Printf("[catalog] schema v%s -> v%d, wiping and reseeding", stored, schemaVersion)
		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()
		if err := reset(tx); err != nil {
			return err
		}
		if err := seed(tx); err != nil {
			return err
		}
		if _, err := tx.Exec(`UPDATE meta SET value = ? WHERE key = 'schema_version'`,
			fmt.Sprint(schemaVersion)); err != nil {
			return err
		}
		return tx.Commit()
	default:
		return nil
	}
}

// reset deletes all catalog rows, children before parents, and rewinds the
// autoincrement counters so a reseed starts from id 1.
func reset(tx *sqlx.Tx) error {
	tables := []string{"video", "city_page", "review", "product_image", "product", "category"}
	for _, table := range tables {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM sqlite_sequence WHERE name = ?`, table); err != nil {
			return err
		}
	}
	return nil
}
