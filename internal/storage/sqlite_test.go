package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchResult{
		{WinnerID: 1, PlayerWon: true, RiderCount: 4, Ticks: 320, DurationMs: 32000},
		{WinnerID: 3, RiderCount: 4, Ticks: 510, DurationMs: 48000},
		{WinnerID: 0, RiderCount: 2, Ticks: 95, DurationMs: 9500},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}

	// Newest first
	if recent[0].WinnerID != 0 || recent[0].RiderCount != 2 {
		t.Errorf("Expected the draw first, got %+v", recent[0])
	}
	if recent[2].WinnerID != 1 || !recent[2].PlayerWon {
		t.Errorf("Expected the player win last, got %+v", recent[2])
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveMatch(MatchResult{WinnerID: 2, RiderCount: 4, Ticks: 100 + i}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(recent))
	}
	if recent[0].Ticks != 104 {
		t.Errorf("Expected the newest match first, got ticks %d", recent[0].Ticks)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Total != 0 {
		t.Errorf("Expected empty stats, got %+v", st)
	}

	seed := []MatchResult{
		{WinnerID: 1, PlayerWon: true, RiderCount: 4},
		{WinnerID: 1, PlayerWon: true, RiderCount: 4},
		{WinnerID: 2, RiderCount: 4},
		{WinnerID: 0, RiderCount: 2},
	}
	for _, m := range seed {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Total != 4 || st.PlayerWins != 2 || st.BotWins != 1 || st.Draws != 1 {
		t.Errorf("Unexpected stats: %+v", st)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchResult{WinnerID: 1, PlayerWon: true, RiderCount: 2}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no matches after clear, got %d", len(recent))
	}
}
