// Package storage provides SQLite-based persistence for level completions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run records.
// It is safe for concurrent use by several sessions.
type Store struct {
	db *sql.DB
}

// Run is one completed level.
type Run struct {
	ID         int64
	PackID     string
	LevelIndex int
	LevelName  string
	Player     string // "local" or the SSH user name
	Ticks      int64
	Deaths     int
	Bubbles    int
	CreatedAt  time.Time
}

// Duration converts the tick count to wall time for the given timestep.
func (r Run) Duration(step time.Duration) time.Duration {
	return time.Duration(r.Ticks) * step
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; SSH sessions share this pool.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			ticks INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			bubbles INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(pack_id, level_index);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(pack_id, level_index, ticks ASC, deaths ASC);
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

// SaveRun records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Player == "" {
		r.Player = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (pack_id, level_index, level_name, player, ticks, deaths, bubbles)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.PackID, r.LevelIndex, r.LevelName, r.Player, r.Ticks, r.Deaths, r.Bubbles,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, pack_id, level_index, level_name, player, ticks, deaths, bubbles, created_at`

// BestRuns retrieves the fastest completions of one level.
// Ties on ticks are broken by fewer deaths, then by who finished first.
func (s *Store) BestRuns(packID string, levelIndex, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pack_id = ? AND level_index = ?
		 ORDER BY ticks ASC, deaths ASC, id ASC
		 LIMIT ?`,
		packID, levelIndex, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest completions in a pack, newest first.
func (s *Store) RecentRuns(packID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pack_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PackID, &r.LevelIndex, &r.LevelName, &r.Player,
			&r.Ticks, &r.Deaths, &r.Bubbles, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestTicks returns the fastest completion of a level in ticks.
// Returns 0 if the level was never completed.
func (s *Store) BestTicks(packID string, levelIndex int) (int64, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(ticks) FROM runs WHERE pack_id = ? AND level_index = ?",
		packID, levelIndex,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get best ticks: %w", err)
	}
	return best.Int64, nil
}

// ClearRuns deletes all runs of the given pack.
func (s *Store) ClearRuns(packID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	PackID      string
	LevelIndex  int
	LevelName   string
	Completions int
	BestTicks   int64
	AvgTicks    float64
	TotalDeaths int64
	LastPlayed  time.Time
}

// PackStats retrieves per-level statistics for a pack, ordered by level index.
func (s *Store) PackStats(packID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_index, MAX(level_name), COUNT(*), MIN(ticks), AVG(ticks), SUM(deaths), MAX(created_at)
		 FROM runs
		 WHERE pack_id = ?
		 GROUP BY level_index
		 ORDER BY level_index`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		st := LevelStats{PackID: packID}
		var lastPlayed any
		if err := rows.Scan(&st.LevelIndex, &st.LevelName, &st.Completions, &st.BestTicks,
			&st.AvgTicks, &st.TotalDeaths, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ErrNoRuns is returned by LastRun when nothing has been recorded.
var ErrNoRuns = errors.New("storage: no runs recorded")

// LastRun returns the most recent completion in any pack.
func (s *Store) LastRun() (Run, error) {
	rows, err := s.db.Query(`SELECT ` + runColumns + ` FROM runs ORDER BY id DESC LIMIT 1`)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, ErrNoRuns
	}
	return runs[0], nil
}

// parseTime handles the driver returning either time.Time or a string.
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
