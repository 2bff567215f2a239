package github

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "data", "stats.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSaveAndGet(t *testing.T) {
	s := setupTestStore(t)

	if _, ok, err := s.Get("octocat"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	fetched := time.Date(2026, 1, 31, 8, 0, 0, 0, time.UTC)
	if err := s.Save("octocat", Stats{PublicRepoCount: 8, FollowerCount: 9000, FetchedAt: fetched}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Get("octocat")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.PublicRepoCount != 8 || got.FollowerCount != 9000 {
		t.Errorf("got %+v", got)
	}
	if !got.FetchedAt.Equal(fetched) {
		t.Errorf("FetchedAt = %v, want %v", got.FetchedAt, fetched)
	}
	if got.Source != SourceCached {
		t.Errorf("Source = %q", got.Source)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now()

	s.Save("octocat", Stats{PublicRepoCount: 1, FollowerCount: 1, FetchedAt: now})
	s.Save("octocat", Stats{PublicRepoCount: 2, FollowerCount: 3, FetchedAt: now})

	got, _, err := s.Get("octocat")
	if err != nil {
		t.Fatal(err)
	}
	if got.PublicRepoCount != 2 || got.FollowerCount != 3 {
		t.Errorf("got %+v, want latest save", got)
	}
}
