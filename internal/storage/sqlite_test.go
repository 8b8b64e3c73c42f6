package storage

import (
	"path/filepath"
	"testing"

	"github.com/ksenzov/perspective-painters/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "painters.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndQueryPlays(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SavePlay("The Stuck Kitten", true, 2); err != nil {
		t.Fatalf("SavePlay() error = %v", err)
	}
	if _, err := store.SavePlay("The Runaway Kite", false, 3); err != nil {
		t.Fatalf("SavePlay() error = %v", err)
	}

	plays, err := store.RecentPlays(10)
	if err != nil {
		t.Fatalf("RecentPlays() error = %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("RecentPlays() returned %d entries, want 2", len(plays))
	}
	// Newest first
	if plays[0].ScenarioTitle != "The Runaway Kite" || plays[0].Solved {
		t.Errorf("plays[0] = %+v", plays[0])
	}
	if plays[1].ScenarioTitle != "The Stuck Kitten" || !plays[1].Solved || plays[1].WrongAttempts != 2 {
		t.Errorf("plays[1] = %+v", plays[1])
	}

	solved, err := store.SolvedCount()
	if err != nil {
		t.Fatalf("SolvedCount() error = %v", err)
	}
	if solved != 1 {
		t.Errorf("SolvedCount() = %d, want 1", solved)
	}
}

func TestRecentPlaysLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SavePlay("round", true, 0); err != nil {
			t.Fatalf("SavePlay() error = %v", err)
		}
	}

	plays, err := store.RecentPlays(3)
	if err != nil {
		t.Fatalf("RecentPlays() error = %v", err)
	}
	if len(plays) != 3 {
		t.Errorf("RecentPlays(3) returned %d entries", len(plays))
	}
}

func TestScenarioRoundTrip(t *testing.T) {
	store := openTestStore(t)
	sc := game.DefaultScenario()

	if _, err := store.SaveScenario(sc); err != nil {
		t.Fatalf("SaveScenario() error = %v", err)
	}

	entries, err := store.RecentScenarios(5)
	if err != nil {
		t.Fatalf("RecentScenarios() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("RecentScenarios() returned %d entries, want 1", len(entries))
	}
	if entries[0].Title != sc.Title || entries[0].Solution != sc.Solution {
		t.Errorf("entry = %+v", entries[0])
	}

	got, err := entries[0].Scenario()
	if err != nil {
		t.Fatalf("Scenario() error = %v", err)
	}
	if len(got.Order) != len(sc.Order) {
		t.Fatalf("Order = %v, want %v", got.Order, sc.Order)
	}
	for i := range sc.Order {
		if got.Order[i] != sc.Order[i] {
			t.Errorf("Order[%d] = %q, want %q", i, got.Order[i], sc.Order[i])
		}
	}
	if got.Characters[game.KeyFirefighter].Action.Name != sc.Characters[game.KeyFirefighter].Action.Name {
		t.Error("character action lost in round trip")
	}
	if err := got.Validate(); err != nil {
		t.Errorf("restored scenario invalid: %v", err)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "painters.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() with nested path error = %v", err)
	}
	store.Close()
}
