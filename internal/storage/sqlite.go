// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/infestation/internal/core"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished session.
type Run struct {
	ID             string
	Scenario       string
	Seed           int64
	Ticks          int
	Kills          int
	NestsDestroyed int
	Outcome        core.Outcome
	Health         float64
	CreatedAt      time.Time
}

// RunFromState builds a run summary from the final state of a session.
func RunFromState(scenario string, seed int64, st core.GameState) Run {
	return Run{
		Scenario:       scenario,
		Seed:           seed,
		Ticks:          st.Tick,
		Kills:          st.Kills,
		NestsDestroyed: st.NestsDestroyed,
		Outcome:        st.Outcome,
		Health:         st.PlayerHealth,
	}
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
			scenario TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			nests_destroyed INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			health REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
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

// SaveRun records a finished run and returns its generated ID.
// An ID already set on r is kept.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, scenario, seed, ticks, kills, nests_destroyed, outcome, health)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Scenario, r.Seed, r.Ticks, r.Kills, r.NestsDestroyed, string(r.Outcome), r.Health,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, scenario, seed, ticks, kills, nests_destroyed, outcome, health, created_at
		 FROM runs WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return &runs[0], nil
}

// RecentRuns retrieves the most recent runs, newest first. An empty
// scenario matches every scenario.
func (s *Store) RecentRuns(scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, seed, ticks, kills, nests_destroyed, outcome, health, created_at
		 FROM runs
		 WHERE ? = '' OR scenario = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		scenario, scenario, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRuns retrieves the best runs for a scenario. Cleared runs rank first,
// then more nests destroyed, more kills and finally fewer ticks.
func (s *Store) BestRuns(scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, seed, ticks, kills, nests_destroyed, outcome, health, created_at
		 FROM runs
		 WHERE scenario = ?
		 ORDER BY (outcome = ?) DESC, nests_destroyed DESC, kills DESC, ticks ASC
		 LIMIT ?`,
		scenario, string(core.OutcomeWon), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best runs: %w", err)
	}
	return scanRuns(rows)
}

// ClearRuns deletes all runs for the given scenario.
func (s *Store) ClearRuns(scenario string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scenario = ?", scenario)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Seed, &r.Ticks, &r.Kills,
			&r.NestsDestroyed, &outcome, &r.Health, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = core.Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	Scenario   string
	Runs       int
	Wins       int
	Kills      int64
	BestKills  int
	LastPlayed time.Time
}

// Stats retrieves statistics for every scenario that has been played.
func (s *Store) Stats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario, COUNT(*), SUM(outcome = ?), SUM(kills), MAX(kills), MAX(created_at)
		 FROM runs
		 GROUP BY scenario`,
		string(core.OutcomeWon),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastPlayed any
		if err := rows.Scan(&st.Scenario, &st.Runs, &st.Wins, &st.Kills, &st.BestKills, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Scenario] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
