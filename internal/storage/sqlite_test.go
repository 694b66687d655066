package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/savestate"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "dir", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		player string
		score  int
	}{
		{"alice", 100},
		{"bob", 50},
		{"alice", 200},
		{"carol", -20},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("starfall", r.player, r.score, 90*time.Second); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "", 999, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("starfall", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "alice" {
		t.Errorf("top player = %q, expected alice", scores[0].Player)
	}
	if scores[0].Duration != 90*time.Second {
		t.Errorf("duration = %v, expected 90s", scores[0].Duration)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be parsed")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("starfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an empty table, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore("starfall", "", s, 0)
	}
	if high, _ = store.HighScore("starfall"); high != 300 {
		t.Errorf("expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("starfall", "", 100, 0)
	store.SaveScore("other", "", 300, 0)

	if err := store.ClearScores("starfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("starfall", 10); len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("starfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty table: %+v", empty)
	}

	store.SaveScore("starfall", "", 100, time.Minute)
	store.SaveScore("starfall", "", 300, 2*time.Minute)

	stats, err := store.GetGameStats("starfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("unexpected aggregates: %+v", stats)
	}
	if stats.TotalTime != 3*time.Minute {
		t.Errorf("total time = %v, expected 3m", stats.TotalTime)
	}
}

func TestStorePreferences(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Preference("", PrefMusicVolume, 0.5)
	if err != nil || v != 0.5 {
		t.Fatalf("unset preference = %v, %v; expected default 0.5", v, err)
	}

	if err := store.SetPreference("", PrefMusicVolume, 0.25); err != nil {
		t.Fatalf("SetPreference() failed: %v", err)
	}
	if err := store.SetPreference("", PrefMusicVolume, 0.75); err != nil {
		t.Fatalf("SetPreference() overwrite failed: %v", err)
	}
	if v, _ = store.Preference("", PrefMusicVolume, 0.5); v != 0.75 {
		t.Errorf("preference = %v, expected 0.75", v)
	}
	if v, _ = store.Preference("guest", PrefMusicVolume, 0.5); v != 0.5 {
		t.Errorf("owners must be isolated, got %v", v)
	}
}

func TestStoreVolumes(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadVolumes("alice")
	if err != nil {
		t.Fatalf("LoadVolumes() failed: %v", err)
	}
	if got != savestate.DefaultVolumes() {
		t.Errorf("expected defaults, got %+v", got)
	}

	want := savestate.Volumes{Master: 0.4, Music: 0, Shooting: 1, Explosion: 0.3, StarCollecting: 0.9}
	if err := store.SaveVolumes("alice", want); err != nil {
		t.Fatalf("SaveVolumes() failed: %v", err)
	}
	if got, _ = store.LoadVolumes("alice"); got != want {
		t.Errorf("LoadVolumes() = %+v, expected %+v", got, want)
	}
}
