package github

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists the last successful fetch per user so restarts do not
// trigger a refetch inside the revalidation window.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("github: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("github: open store: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("github: pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS github_stats (
    user TEXT PRIMARY KEY,
    public_repos INTEGER NOT NULL,
    followers INTEGER NOT NULL,
    fetched_at INTEGER NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("github: schema: %w", err)
	}
	return nil
}

// Get returns the stored stats for user. ok is false when nothing is stored.
func (s *Store) Get(user string) (Stats, bool, error) {
	var repos, followers int
	var fetched int64
	err := s.db.QueryRow(`SELECT public_repos, followers, fetched_at FROM github_stats WHERE user = ?`, user).
		Scan(&repos, &followers, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return Stats{}, false, nil
	}
	if err != nil {
		return Stats{}, false, fmt.Errorf("github: load %s: %w", user, err)
	}
	return Stats{
		PublicRepoCount: repos,
		FollowerCount:   followers,
		Source:          SourceCached,
		FetchedAt:       time.Unix(fetched, 0).UTC(),
	}, true, nil
}

// Save upserts a fetched result for user.
func (s *Store) Save(user string, st Stats) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO github_stats (user, public_repos, followers, fetched_at) VALUES (?, ?, ?, ?)`,
		user, st.PublicRepoCount, st.FollowerCount, st.FetchedAt.Unix())
	if err != nil {
		return fmt.Errorf("github: save %s: %w", user, err)
	}
	return nil
}
