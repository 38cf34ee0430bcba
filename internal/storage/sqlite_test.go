package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{GameID: "match3-normal", Score: 120}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("match3-normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, want 120", high)
	}
}

func TestSaveScoreFillsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveScore(ScoreEntry{GameID: "match3-easy", Player: "ann", Score: 70, Matches: 10})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("SaveScore() should set the row ID")
	}
	if len(saved.RunID) != 36 {
		t.Errorf("RunID = %q, want a generated UUID", saved.RunID)
	}

	again, err := store.SaveScore(ScoreEntry{GameID: "match3-easy", Score: 70})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if again.RunID == saved.RunID {
		t.Error("each saved game needs its own RunID")
	}

	if _, err := store.SaveScore(ScoreEntry{GameID: "match3-easy", RunID: saved.RunID, Score: 1}); err == nil {
		t.Error("duplicate RunID should be rejected")
	}
	if _, err := store.SaveScore(ScoreEntry{Score: 5}); err == nil {
		t.Error("empty game id should be rejected")
	}
}

func TestTopScoresOrderAndIsolation(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{GameID: "match3-normal", Player: "a", Score: 100, Matches: 15},
		{GameID: "match3-normal", Player: "b", Score: 50, Matches: 15},
		{GameID: "match3-normal", Player: "c", Score: 200, Matches: 15},
		{GameID: "match3-normal", Player: "d", Score: 100, Matches: 15},
		{GameID: "match3-hard", Player: "e", Score: 900, Matches: 20},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", e, err)
		}
	}

	scores, err := store.TopScores("match3-normal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, want 3", len(scores))
	}

	wantPlayers := []string{"c", "a", "d"}
	for i, want := range wantPlayers {
		if scores[i].Player != want {
			t.Errorf("scores[%d].Player = %q, want %q", i, scores[i].Player, want)
		}
		if scores[i].GameID != "match3-normal" {
			t.Errorf("scores[%d] leaked from %q", i, scores[i].GameID)
		}
		if scores[i].Matches != 15 {
			t.Errorf("scores[%d].Matches = %d, want 15", i, scores[i].Matches)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt was not parsed", i)
		}
	}

	all, err := store.TopScores("match3-normal", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("default limit should return all 4 entries, got %d", len(all))
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3-easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, want 0", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "match3-easy", Score: 10})
	store.SaveScore(ScoreEntry{GameID: "match3-hard", Score: 20})

	if err := store.ClearScores("match3-easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("match3-easy", 10)
	if len(easy) != 0 {
		t.Errorf("easy scores should be gone, got %d", len(easy))
	}
	hard, _ := store.TopScores("match3-hard", 10)
	if len(hard) != 1 {
		t.Errorf("hard scores should be untouched, got %d", len(hard))
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("match3-normal")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, score := range []int{100, 200, 300} {
		store.SaveScore(ScoreEntry{GameID: "match3-normal", Score: score})
	}

	stats, err = store.GetGameStats("match3-normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
