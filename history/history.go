// Package history keeps a local record of configuration revisions.
// Records are superseded by edits, never deleted; the store makes each
// supersession visible after the fact.
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/plumekit/plume/utils"
)

// Store wraps an embedded SQLite database holding one row per observed
// revision of a profile's generator contract.
type Store struct {
	db *sql.DB
}

type Revision struct {
	ID       int64
	Profile  string
	Hash     string
	Settings string
	Created  time.Time
}

func Open(path string) (*Store, error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL so a watcher and an export can touch the store concurrently;
	// busy_timeout makes writers wait instead of failing.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS revisions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    profile TEXT NOT NULL,
    hash TEXT NOT NULL,
    settings TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (profile, hash)
);
`)
	return err
}

// Record stores one revision of a profile's rendered contract. It is
// idempotent per content hash: re-recording known content is a no-op
// and reports false.
func (s *Store) Record(profile string, contract []byte) (bool, error) {
	hash := utils.HashBytes(contract)
	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO revisions (profile, hash, settings, created_at) VALUES (?, ?, ?, ?)`,
		profile, hash, string(contract), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns the newest revisions of a profile, newest first. A
// limit of 0 returns all of them.
func (s *Store) List(profile string, limit int) ([]Revision, error) {
	q := `SELECT id, profile, hash, settings, created_at FROM revisions WHERE profile = ? ORDER BY id DESC`
	args := []any{profile}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revs = append(revs, rev)
	}
	return revs, rows.Err()
}

// Latest returns the newest revision of a profile, or nil when none
// has been recorded yet.
func (s *Store) Latest(profile string) (*Revision, error) {
	row := s.db.QueryRow(
		`SELECT id, profile, hash, settings, created_at FROM revisions WHERE profile = ? ORDER BY id DESC LIMIT 1`,
		profile,
	)
	rev, err := scanRevision(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRevision(row scanner) (Revision, error) {
	var rev Revision
	var created string
	if err := row.Scan(&rev.ID, &rev.Profile, &rev.Hash, &rev.Settings, &created); err != nil {
		return Revision{}, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Revision{}, err
	}
	rev.Created = t
	return rev, nil
}
