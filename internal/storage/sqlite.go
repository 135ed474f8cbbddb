// Package storage provides SQLite-based persistence for solver runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Every solve is recorded with its input hash and options, so a later solve
// of identical content can reuse the stored solution.
package storage

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/spawnproof/internal/grid"
)

// Run statuses.
const (
	StatusSolved     = "solved"
	StatusInfeasible = "infeasible"
	StatusFailed     = "failed"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded solver invocation.
type Run struct {
	ID           string
	InputPath    string
	InputHash    string
	FreeTrapdoor bool
	Width        int // input grid size
	Height       int
	Spawnable    int
	Carpets      int
	Coverage     float64
	Status       string
	Elapsed      time.Duration
	OutputPath   string

	// Solution is the annotated trimmed grid; nil unless Status is solved.
	Solution *grid.Grid
	// Bounds locates Solution inside the input grid.
	Bounds grid.Rect

	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			input_path TEXT NOT NULL,
			input_hash TEXT NOT NULL,
			free_trapdoor INTEGER NOT NULL DEFAULT 0,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			spawnable INTEGER NOT NULL DEFAULT 0,
			carpets INTEGER NOT NULL DEFAULT 0,
			coverage REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			output_path TEXT NOT NULL DEFAULT '',
			solution TEXT,
			bounds_x INTEGER NOT NULL DEFAULT 0,
			bounds_y INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_cache ON runs(input_hash, free_trapdoor, status);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. An empty ID is replaced by a new UUID and a zero
// CreatedAt by the current time; both are written back into run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run *Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	var solution sql.NullString
	if run.Solution != nil {
		var buf bytes.Buffer
		if err := grid.Encode(&buf, run.Solution); err != nil {
			return "", fmt.Errorf("storage: cannot encode solution: %w", err)
		}
		solution = sql.NullString{String: buf.String(), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, input_path, input_hash, free_trapdoor, width, height, spawnable, carpets,
		  coverage, status, elapsed_ms, output_path, solution, bounds_x, bounds_y, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.InputPath,
		run.InputHash,
		run.FreeTrapdoor,
		run.Width,
		run.Height,
		run.Spawnable,
		run.Carpets,
		run.Coverage,
		run.Status,
		run.Elapsed.Milliseconds(),
		run.OutputPath,
		solution,
		run.Bounds.X,
		run.Bounds.Y,
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

const runColumns = `id, input_path, input_hash, free_trapdoor, width, height, spawnable, carpets,
	coverage, status, elapsed_ms, output_path, solution, bounds_x, bounds_y, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID, or nil if there is none.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

// CachedSolution returns the newest solved run for the given input hash and
// trapdoor option, or nil if there is none.
func (s *Store) CachedSolution(hash string, freeTrapdoor bool) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE input_hash = ? AND free_trapdoor = ? AND status = ? AND solution IS NOT NULL
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT 1`,
		hash, freeTrapdoor, StatusSolved,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

// ClearRuns deletes the whole history and returns the number of removed runs.
func (s *Store) ClearRuns() (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run       Run
		elapsedMS int64
		solution  sql.NullString
		createdAt any
	)

	err := sc.Scan(
		&run.ID,
		&run.InputPath,
		&run.InputHash,
		&run.FreeTrapdoor,
		&run.Width,
		&run.Height,
		&run.Spawnable,
		&run.Carpets,
		&run.Coverage,
		&run.Status,
		&elapsedMS,
		&run.OutputPath,
		&solution,
		&run.Bounds.X,
		&run.Bounds.Y,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan run: %w", err)
	}

	run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)

	if solution.Valid {
		g, err := grid.Decode(strings.NewReader(solution.String))
		if err != nil {
			return nil, fmt.Errorf("storage: run %s has a corrupt solution: %w", run.ID, err)
		}
		run.Solution = g
		run.Bounds.W, run.Bounds.H = g.W, g.H
	}

	return &run, nil
}

// timeLayout keeps created_at fixed-width so text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTime handles both time.Time and the text forms the driver may return.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
