package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/block-knock/internal/gameplay"
	"github.com/vovakirdan/block-knock/internal/level"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(ResultEntry{RunID: "a", Level: 1, Throws: 3, Rank: level.Gold, Outcome: "level_complete", Won: true}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ResultEntry{
		{RunID: "r1", Player: "ann", Level: 1, Throws: 4, Rank: level.Gold, Outcome: "level_complete", Won: true},
		{RunID: "r1", Player: "ann", Level: 2, Throws: 9, Rank: level.Bronze, Outcome: "game_over"},
		{RunID: "r2", Player: "bob", Level: 1, Throws: 6, Rank: level.Silver, Outcome: "level_complete", Won: true},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(all))
	}
	// Newest first
	if all[0].Player != "bob" {
		t.Errorf("Expected newest result first, got %+v", all[0])
	}

	ann, err := store.RecentResults("ann", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(ann) != 2 {
		t.Errorf("Expected 2 results for ann, got %d", len(ann))
	}

	run, err := store.RunResults("r1")
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(run) != 2 || run[0].Level != 1 || run[1].Level != 2 {
		t.Errorf("Unexpected run results: %+v", run)
	}
	if run[1].Rank != level.Bronze || run[1].Won {
		t.Errorf("Expected lost bronze result, got %+v", run[1])
	}
}

func TestStoreRecentResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveResult(ResultEntry{RunID: "r", Level: i + 1, Rank: level.Gold, Outcome: "level_complete", Won: true})
	}

	results, err := store.RecentResults("", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
}

func TestStoreBestResults(t *testing.T) {
	store := openTestStore(t)

	entries := []ResultEntry{
		{RunID: "a", Level: 1, Throws: 7, Rank: level.Bronze, Outcome: "level_complete", Won: true},
		{RunID: "a", Level: 1, Throws: 5, Rank: level.Silver, Outcome: "level_complete", Won: true},
		{RunID: "a", Level: 1, Throws: 1, Rank: level.Gold, Outcome: "game_over"}, // lost, ignored
		{RunID: "b", Level: 2, Throws: 3, Rank: level.Gold, Outcome: "game_complete", Won: true},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestResults("")
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(best))
	}

	want := []BestEntry{
		{Level: 1, Rank: level.Silver, Throws: 5, Clears: 2},
		{Level: 2, Rank: level.Gold, Throws: 3, Clears: 1},
	}
	for i := range want {
		if best[i] != want[i] {
			t.Errorf("best[%d] = %+v, want %+v", i, best[i], want[i])
		}
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if stats.Levels != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveResult(ResultEntry{RunID: "a", Level: 1, Throws: 2, Rank: level.Gold, Outcome: "level_complete", Won: true})
	store.SaveResult(ResultEntry{RunID: "a", Level: 2, Throws: 8, Rank: level.Silver, Outcome: "level_complete", Won: true})
	store.SaveResult(ResultEntry{RunID: "b", Level: 1, Throws: 1, Rank: level.Gold, Outcome: "game_over"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Levels != 3 || stats.Wins != 2 || stats.Golds != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	results, _ := store.RecentResults("", 10)
	if len(results) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(results))
	}
}

func TestRunRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewRunRecorder(store, "ann")

	if rec.RunID() == "" {
		t.Fatal("Expected run ID")
	}

	results := []gameplay.Result{
		{Level: 1, Throws: 3, Rank: level.Gold, Outcome: gameplay.OutcomeLevelComplete},
		{Level: 2, Throws: 12, Rank: level.Bronze, Outcome: gameplay.OutcomeGameOver},
	}
	for _, r := range results {
		if err := rec.RecordResult(r); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	run, err := store.RunResults(rec.RunID())
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(run) != 2 {
		t.Fatalf("Expected 2 results in run, got %d", len(run))
	}
	if !run[0].Won || run[0].Outcome != "level_complete" || run[0].Player != "ann" {
		t.Errorf("Unexpected first result: %+v", run[0])
	}
	if run[1].Won || run[1].Outcome != "game_over" {
		t.Errorf("Unexpected second result: %+v", run[1])
	}

	other := NewRunRecorder(store, "ann")
	if other.RunID() == rec.RunID() {
		t.Error("Expected distinct run IDs")
	}
}
