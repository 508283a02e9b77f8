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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("memory", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	other, err := store.TopScores("memory", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 memory score, got %d", len(other))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048", (i+1)*100)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// No best score yet
	best, err := store.BestScore("2048")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unrecorded best, got %d", best)
	}

	if err := store.SetBestScore("2048", 1234); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	best, err = store.BestScore("2048")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 1234 {
		t.Errorf("BestScore = %d, want 1234", best)
	}

	// Overwrite (last write wins)
	if err := store.SetBestScore("2048", 2468); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	best, _ = store.BestScore("2048")
	if best != 2468 {
		t.Errorf("BestScore after overwrite = %d, want 2468", best)
	}
}

func TestBestScoreCellAdapter(t *testing.T) {
	store := openTestStore(t)

	cell := store.BestScoreCell("2048")

	score, err := cell.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("LoadBestScore = %d, want 0", score)
	}

	if err := cell.SaveBestScore(512); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}

	score, _ = cell.LoadBestScore()
	if score != 512 {
		t.Errorf("LoadBestScore after save = %d, want 512", score)
	}

	// Cells are keyed per game
	other, _ := store.BestScoreCell("memory").LoadBestScore()
	if other != 0 {
		t.Errorf("memory cell should be independent, got %d", other)
	}
}

func TestSettings(t *testing.T) {
	store := openTestStore(t)

	theme, err := store.Setting("theme", "classic")
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if theme != "classic" {
		t.Errorf("Expected fallback value, got %q", theme)
	}

	if err := store.SetSetting("theme", "dark"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	theme, _ = store.Setting("theme", "classic")
	if theme != "dark" {
		t.Errorf("Setting = %q, want dark", theme)
	}
}

func TestClearScoresKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 200)
	store.SaveScore("memory", 300)
	store.SetBestScore("2048", 200)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other games untouched
	other, _ := store.TopScores("memory", 10)
	if len(other) != 1 {
		t.Error("memory scores should not be affected by clearing 2048")
	}

	// Best score survives history clears
	best, _ := store.BestScore("2048")
	if best != 200 {
		t.Errorf("Best score should survive ClearScores, got %d", best)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)

	stats, err := store.Stats("2048")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
}
