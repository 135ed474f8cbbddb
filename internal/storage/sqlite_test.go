package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/spawnproof/internal/grid"
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

func mustGrid(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.spawnproof/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".spawnproof", "history.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	solution := mustGrid(t, [][]int{{1, 1, 1}, {1, 4, 1}, {1, 1, 1}})

	run := &Run{
		InputPath:    "patterns/hall.json",
		InputHash:    "abc",
		FreeTrapdoor: true,
		Width:        5,
		Height:       5,
		Spawnable:    9,
		Carpets:      1,
		Coverage:     1.0 / 9.0,
		Status:       StatusSolved,
		Elapsed:      1500 * time.Millisecond,
		OutputPath:   "solutions/hall.json",
		Solution:     solution,
		Bounds:       grid.Rect{X: 1, Y: 1, W: 3, H: 3},
	}

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" || run.ID != id {
		t.Fatalf("SaveRun() returned id %q, run has %q", id, run.ID)
	}
	if run.CreatedAt.IsZero() {
		t.Error("SaveRun() did not set CreatedAt")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}

	if got.InputPath != run.InputPath || got.InputHash != run.InputHash {
		t.Errorf("input mismatch: got %q/%q", got.InputPath, got.InputHash)
	}
	if !got.FreeTrapdoor {
		t.Error("FreeTrapdoor not persisted")
	}
	if got.Width != 5 || got.Height != 5 || got.Spawnable != 9 || got.Carpets != 1 {
		t.Errorf("counts mismatch: %+v", got)
	}
	if got.Status != StatusSolved {
		t.Errorf("Status = %q, want %q", got.Status, StatusSolved)
	}
	if got.Elapsed != 1500*time.Millisecond {
		t.Errorf("Elapsed = %v, want 1.5s", got.Elapsed)
	}
	if got.Solution == nil || !got.Solution.Equal(solution) {
		t.Errorf("Solution not round-tripped: %v", got.Solution)
	}
	if got.Bounds != run.Bounds {
		t.Errorf("Bounds = %+v, want %+v", got.Bounds, run.Bounds)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, run.CreatedAt)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil run, got %+v", got)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(&Run{
			InputPath: "p.json",
			InputHash: "h",
			Width:     1,
			Height:    1,
			Status:    StatusInfeasible,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i, run := range runs {
		want := base.Add(time.Duration(4-i) * time.Minute)
		if !run.CreatedAt.Equal(want) {
			t.Errorf("run %d created %v, want %v", i, run.CreatedAt, want)
		}
		if run.Solution != nil {
			t.Errorf("run %d has a solution without being solved", i)
		}
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected default limit to return all 5 runs, got %d", len(all))
	}
}

func TestStoreRecentRunsSubSecondOrder(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 5, 0, time.UTC)

	// Saved newest first so the rowid tiebreak cannot hide a wrong order.
	for _, offset := range []time.Duration{120 * time.Millisecond, 100 * time.Millisecond} {
		_, err := store.SaveRun(&Run{
			InputPath: "p.json",
			InputHash: "h",
			Width:     1,
			Height:    1,
			Status:    StatusInfeasible,
			CreatedAt: base.Add(offset),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].CreatedAt.After(runs[1].CreatedAt) {
		t.Errorf("runs out of order: %v before %v", runs[0].CreatedAt, runs[1].CreatedAt)
	}
	if want := base.Add(120 * time.Millisecond); !runs[0].CreatedAt.Equal(want) {
		t.Errorf("newest run created %v, want %v", runs[0].CreatedAt, want)
	}
}

func TestStoreCachedSolution(t *testing.T) {
	store := openTestStore(t)
	input := mustGrid(t, [][]int{{1, 1}, {1, 1}})
	hash := HashGrid(input)
	solution := mustGrid(t, [][]int{{4, 1}, {1, 1}})

	got, err := store.CachedSolution(hash, false)
	if err != nil {
		t.Fatalf("CachedSolution() failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected empty cache")
	}

	runs := []*Run{
		{InputHash: hash, Status: StatusFailed, Width: 2, Height: 2},
		{InputHash: hash, Status: StatusSolved, Solution: solution, Carpets: 1, Width: 2, Height: 2},
		{InputHash: hash, Status: StatusInfeasible, FreeTrapdoor: true, Width: 2, Height: 2},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err = store.CachedSolution(hash, false)
	if err != nil {
		t.Fatalf("CachedSolution() failed: %v", err)
	}
	if got == nil || got.ID != runs[1].ID {
		t.Fatalf("expected cached run %s, got %+v", runs[1].ID, got)
	}
	if !got.Solution.Equal(solution) {
		t.Errorf("cached solution mismatch")
	}

	// Options are part of the key.
	got, err = store.CachedSolution(hash, true)
	if err != nil {
		t.Fatalf("CachedSolution() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no cached solution with the trapdoor option, got %+v", got)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 3; i++ {
		if _, err := store.SaveRun(&Run{InputHash: "h", Status: StatusSolved}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	n, err := store.ClearRuns()
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("ClearRuns() removed %d, want 3", n)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected empty history, got %d runs", len(runs))
	}
}

func TestHashGrid(t *testing.T) {
	a := mustGrid(t, [][]int{{1, 2}, {3, 0}})
	b := mustGrid(t, [][]int{{1, 2}, {3, 0}})
	c := mustGrid(t, [][]int{{1, 2, 3, 0}})

	if HashGrid(a) != HashGrid(b) {
		t.Error("equal grids hash differently")
	}
	if HashGrid(a) == HashGrid(c) {
		t.Error("different shapes hash equally")
	}
	if len(HashGrid(a)) != 64 {
		t.Errorf("hash length = %d, want 64", len(HashGrid(a)))
	}
}
