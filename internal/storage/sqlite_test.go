package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedFile(t *testing.T) {
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

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/.arcade/scores.db", filepath.Join(home, ".arcade/scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"~user/scores.db", "~user/scores.db"},
		{"scores.db", "scores.db"},
	}
	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("flappy-classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "flappy" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	classic, err := store.TopScores("flappy-classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("flappy", -1); err == nil {
		t.Error("SaveScore(-1) should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("flappy", (i+1)*10)
	}

	tests := []struct {
		limit int
		count int
		top   int
	}{
		{3, 3, 150},
		{0, DefaultTopLimit, 150},
		{-5, DefaultTopLimit, 150},
		{100, 15, 150},
	}
	for _, tc := range tests {
		scores, err := store.TopScores("flappy", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.count {
			t.Errorf("TopScores(%d) returned %d entries, expected %d", tc.limit, len(scores), tc.count)
		}
		if scores[0].Score != tc.top {
			t.Errorf("TopScores(%d)[0] = %d", tc.limit, scores[0].Score)
		}
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("flappy", 7)
	second, _ := store.SaveScore("flappy", 7)

	scores, err := store.TopScores("flappy", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tie order = %d, %d; expected %d, %d", scores[0].ID, scores[1].ID, first, second)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("flappy", 1)
	store.SaveScore("flappy", 3)
	store.SaveScore("flappy", 2)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{10, 20, 30} {
		store.SaveScore("flappy", s)
	}

	tests := []struct {
		score int
		rank  int
	}{
		{40, 1},
		{30, 1},
		{25, 2},
		{10, 3},
		{0, 4},
	}
	for _, tc := range tests {
		rank, err := store.Rank("flappy", tc.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if rank != tc.rank {
			t.Errorf("Rank(%d) = %d, expected %d", tc.score, rank, tc.rank)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.SaveScore("flappy-classic", 300)

	n, err := store.ClearScores("flappy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d rows, expected 2", n)
	}

	flappy, _ := store.TopScores("flappy", 10)
	if len(flappy) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappy))
	}

	classic, _ := store.TopScores("flappy-classic", 10)
	if len(classic) != 1 {
		t.Error("classic scores should not be affected by clearing flappy")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, s := range []int{2, 4, 6} {
		store.SaveScore("flappy", s)
	}

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 6 || stats.TotalScore != 12 || stats.AvgScore != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
