package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/infestation/internal/core"
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

func TestStoreSaveAndFetch(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Scenario:       "apartment",
		Seed:           42,
		Ticks:          3600,
		Kills:          17,
		NestsDestroyed: 5,
		Outcome:        core.OutcomeWon,
		Health:         64.5,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveRun() id = %q, expected a UUID", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Scenario != "apartment" || got.Seed != 42 || got.Ticks != 3600 {
		t.Errorf("RunByID() = %+v, expected the saved run", got)
	}
	if got.Kills != 17 || got.NestsDestroyed != 5 || got.Health != 64.5 {
		t.Errorf("RunByID() = %+v, expected the saved counters", got)
	}
	if got.Outcome != core.OutcomeWon {
		t.Errorf("RunByID().Outcome = %q, expected %q", got.Outcome, core.OutcomeWon)
	}
	if got.CreatedAt.IsZero() {
		t.Error("RunByID().CreatedAt is zero")
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed", Scenario: "sewer", Outcome: core.OutcomeQuit})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("SaveRun() = %q, expected %q", id, "fixed")
	}
	if _, err := store.SaveRun(Run{ID: "fixed", Scenario: "sewer"}); err == nil {
		t.Error("SaveRun() with a duplicate id should fail")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID("missing")
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID() error = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Scenario: "apartment", Ticks: i + 1, Outcome: core.OutcomeDead})
	}
	store.SaveRun(Run{Scenario: "sewer", Ticks: 99, Outcome: core.OutcomeTimeout})

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("RecentRuns(\"\") returned %d runs, expected 6", len(all))
	}

	// Request only the newest 3 apartment runs
	runs, err := store.RecentRuns("apartment", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, expected 3", len(runs))
	}
	if runs[0].Ticks != 5 || runs[1].Ticks != 4 || runs[2].Ticks != 3 {
		t.Errorf("Runs not newest first: %v", runs)
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Scenario: "apartment", ID: "dead-many", Kills: 90, NestsDestroyed: 4, Outcome: core.OutcomeDead})
	store.SaveRun(Run{Scenario: "apartment", ID: "won-slow", Kills: 20, NestsDestroyed: 5, Ticks: 9000, Outcome: core.OutcomeWon})
	store.SaveRun(Run{Scenario: "apartment", ID: "won-fast", Kills: 20, NestsDestroyed: 5, Ticks: 6000, Outcome: core.OutcomeWon})
	store.SaveRun(Run{Scenario: "apartment", ID: "quit", Kills: 1, Outcome: core.OutcomeQuit})
	store.SaveRun(Run{Scenario: "sewer", ID: "other", Kills: 500, NestsDestroyed: 4, Outcome: core.OutcomeWon})

	runs, err := store.BestRuns("apartment", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	expected := []string{"won-fast", "won-slow", "dead-many", "quit"}
	if len(runs) != len(expected) {
		t.Fatalf("BestRuns() returned %d runs, expected %d", len(runs), len(expected))
	}
	for i, id := range expected {
		if runs[i].ID != id {
			t.Errorf("BestRuns()[%d] = %q, expected %q", i, runs[i].ID, id)
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Scenario: "apartment", Outcome: core.OutcomeDead})
	store.SaveRun(Run{Scenario: "apartment", Outcome: core.OutcomeWon})
	store.SaveRun(Run{Scenario: "sewer", Outcome: core.OutcomeWon})

	if err := store.ClearRuns("apartment"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	apartment, _ := store.RecentRuns("apartment", 10)
	if len(apartment) != 0 {
		t.Errorf("Expected 0 apartment runs after clear, got %d", len(apartment))
	}

	sewer, _ := store.RecentRuns("sewer", 10)
	if len(sewer) != 1 {
		t.Errorf("Sewer runs should not be affected by clearing apartment")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Scenario: "apartment", Kills: 10, Outcome: core.OutcomeDead})
	store.SaveRun(Run{Scenario: "apartment", Kills: 30, Outcome: core.OutcomeWon})
	store.SaveRun(Run{Scenario: "sewer", Kills: 5, Outcome: core.OutcomeTimeout})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Stats() returned %d scenarios, expected 2", len(stats))
	}

	apt := stats["apartment"]
	if apt.Runs != 2 || apt.Wins != 1 || apt.Kills != 40 || apt.BestKills != 30 {
		t.Errorf("Stats()[apartment] = %+v", apt)
	}
	if sewer := stats["sewer"]; sewer.Wins != 0 {
		t.Errorf("Stats()[sewer].Wins = %d, expected 0", sewer.Wins)
	}
}

func TestRunFromState(t *testing.T) {
	st := core.GameState{Tick: 120, Kills: 3, NestsDestroyed: 1, PlayerHealth: 40, Outcome: core.OutcomeDead}
	r := RunFromState("sewer", 7, st)

	expected := Run{Scenario: "sewer", Seed: 7, Ticks: 120, Kills: 3, NestsDestroyed: 1, Health: 40, Outcome: core.OutcomeDead}
	if r != expected {
		t.Errorf("RunFromState() = %+v, expected %+v", r, expected)
	}
}
