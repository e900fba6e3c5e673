package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("runner", "normal", "alice", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScore("runner", "hard", "bob", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("runner", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "alice" || scores[0].Mode != "normal" {
		t.Errorf("unexpected entry fields: %+v", scores[0])
	}

	hard, err := store.TopScores("runner", "hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 || hard[0].Player != "bob" {
		t.Errorf("Expected 1 hard score by bob, got %+v", hard)
	}
}

func TestStoreCreatedAt(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("runner", "normal", "alice", 30); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("runner", "normal", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
	if time.Since(scores[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt looks wrong: %v", scores[0].CreatedAt)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("runner", "normal", "p", (i+1)*10)
	}

	scores, err := store.TopScores("runner", "normal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("runner", "normal", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreTopScoresTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", "normal", "first", 20)
	store.SaveScore("runner", "normal", "second", 20)

	scores, err := store.TopScores("runner", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tied scores out of order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("runner", "normal", "p", 100)
	store.SaveScore("runner", "normal", "p", 300)
	store.SaveScore("runner", "normal", "p", 200)
	store.SaveScore("runner", "hard", "p", 900)

	high, err = store.HighScore("runner", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", "normal", "p", 100)
	store.SaveScore("runner", "hard", "p", 200)
	store.SaveScore("other", "normal", "p", 300)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runnerScores, _ := store.AllScores("runner")
	if len(runnerScores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runnerScores))
	}

	otherScores, _ := store.AllScores("other")
	if len(otherScores) != 1 {
		t.Error("Other games should not be affected by clearing runner")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	modes := []string{"easy", "normal", "hard"}
	for i := 0; i < 21; i++ {
		store.SaveScore("runner", modes[i%3], "p", i*10)
	}

	scores, err := store.AllScores("runner")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 21 {
		t.Errorf("Expected 21 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 {
		t.Errorf("Expected best score first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("runner", "normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats expected, got %+v", stats)
	}

	store.SaveScore("runner", "normal", "p", 10)
	store.SaveScore("runner", "normal", "p", 30)
	store.SaveScore("runner", "easy", "p", 1000)

	stats, err = store.GetGameStats("runner", "normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, expected 40", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
