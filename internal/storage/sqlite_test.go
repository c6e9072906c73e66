package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := newTestStore(t)

	runs := []struct{ score, ticks int }{
		{100, 120},
		{300, 400},
		{200, 250},
	}
	for _, r := range runs {
		id, err := store.SaveScore("tunnel", r.score, r.ticks)
		if err != nil {
			t.Fatalf("SaveScore(%d): %v", r.score, err)
		}
		if id <= 0 {
			t.Errorf("SaveScore returned id %d, expected positive", id)
		}
	}

	entries, err := store.TopScores("tunnel", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, expected 3", len(entries))
	}

	// Ordered by score descending
	wantScores := []int{300, 200, 100}
	wantTicks := []int{400, 250, 120}
	for i, e := range entries {
		if e.Score != wantScores[i] {
			t.Errorf("entries[%d].Score = %d, expected %d", i, e.Score, wantScores[i])
		}
		if e.Ticks != wantTicks[i] {
			t.Errorf("entries[%d].Ticks = %d, expected %d", i, e.Ticks, wantTicks[i])
		}
		if e.GameID != "tunnel" {
			t.Errorf("entries[%d].GameID = %q", i, e.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("tunnel", i*10, i); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.TopScores("tunnel", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Errorf("len(entries) = %d, expected 5", len(entries))
	}

	// Non-positive limits fall back to the default of 10.
	entries, err = store.TopScores("tunnel", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Errorf("len(entries) with limit 0 = %d, expected 10", len(entries))
	}
}

func TestScoresIsolatedByGame(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveScore("tunnel", 500, 600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("other", 900, 10); err != nil {
		t.Fatal(err)
	}

	entries, err := store.TopScores("tunnel", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Score != 500 {
		t.Errorf("entries = %+v, expected only the tunnel run", entries)
	}
}

func TestHighScore(t *testing.T) {
	store := newTestStore(t)

	got, err := store.HighScore("tunnel")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("HighScore on empty table = %d, expected 0", got)
	}

	store.SaveScore("tunnel", 150, 200)
	store.SaveScore("tunnel", 450, 500)
	store.SaveScore("tunnel", 300, 350)

	got, err = store.HighScore("tunnel")
	if err != nil {
		t.Fatal(err)
	}
	if got != 450 {
		t.Errorf("HighScore = %d, expected 450", got)
	}
}
