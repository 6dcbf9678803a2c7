// Package storage persists player progress and run history.
//
// Progress lives in a small JSON file whose layout is shared with other
// Entropy builds. Run history lives in SQLite through the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/entropy/internal/progression"
)

// timeLayout is how run timestamps are stored (UTC).
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level       int
	Runs        int
	Completions int
	BestStars   int
	BestTime    int // Fastest completion in seconds; 0 if never completed
	Deaths      int
	LastPlayed  time.Time
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			stars INTEGER NOT NULL DEFAULT 0,
			seconds INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished session and returns its run id.
// Missing ids and timestamps are filled in.
func (s *Store) SaveRun(run progression.Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, level, outcome, stars, seconds, deaths, distance, player, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Level,
		run.Outcome.String(),
		run.Stars,
		run.Seconds,
		run.Deaths,
		run.Distance,
		run.Player,
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// Ensure Store records runs for the progression machine.
var _ progression.RunRecorder = (*Store)(nil)

const runColumns = `run_id, level, outcome, stars, seconds, deaths, distance, player, created_at`

// TopRuns returns the best runs of a level: completions first, then most
// stars, fastest time and fewest deaths.
func (s *Store) TopRuns(level, limit int) ([]progression.Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level = ?
		 ORDER BY (outcome = 'complete') DESC, stars DESC, seconds ASC, deaths ASC
		 LIMIT ?`,
		level, limit,
	)
}

// RecentRuns returns the latest runs across all levels, newest first.
func (s *Store) RecentRuns(limit int) ([]progression.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns returns the latest runs of one player, newest first.
func (s *Store) PlayerRuns(player string, limit int) ([]progression.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]progression.Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []progression.Run
	for rows.Next() {
		var r progression.Run
		var outcome, createdAt string
		if err := rows.Scan(
			&r.ID,
			&r.Level,
			&outcome,
			&r.Stars,
			&r.Seconds,
			&r.Deaths,
			&r.Distance,
			&r.Player,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = progression.ParseOutcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LevelStats aggregates the history of one level.
func (s *Store) LevelStats(level int) (LevelStats, error) {
	st := LevelStats{Level: level}
	var bestStars, bestTime sql.NullInt64
	var deaths sql.NullInt64
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'complete'), 0),
		        MAX(stars),
		        MIN(CASE WHEN outcome = 'complete' THEN seconds END),
		        SUM(deaths),
		        MAX(created_at)
		 FROM runs
		 WHERE level = ?`,
		level,
	).Scan(&st.Runs, &st.Completions, &bestStars, &bestTime, &deaths, &last)
	if err != nil {
		return LevelStats{}, fmt.Errorf("storage: cannot query level stats: %w", err)
	}

	st.BestStars = int(bestStars.Int64)
	st.BestTime = int(bestTime.Int64)
	st.Deaths = int(deaths.Int64)
	if last.Valid {
		st.LastPlayed = parseTime(last.String)
	}
	return st, nil
}

// ClearRuns deletes the history of a level.
func (s *Store) ClearRuns(level int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func parseTime(v string) time.Time {
	t, err := time.ParseInLocation(timeLayout, v, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
