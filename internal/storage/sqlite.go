// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A run is a journaled session: its seed, play area and the per-tick input,
// enough to replay it tick for tick. Summary columns (attempts, best score,
// final phase) are denormalized for listing.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is the summary row of a recorded session.
type Run struct {
	ID         int64
	Seed       int64
	PlayWidth  float64
	PlayHeight float64
	Ticks      int
	Attempts   int
	Best       int
	LastScore  int
	FinalPhase string
	Config     string // YAML of the configuration the run was played with
	CreatedAt  time.Time
}

// Bounds returns the play area the run was recorded with.
func (r Run) Bounds() sim.Bounds {
	return sim.Bounds{Width: r.PlayWidth, Height: r.PlayHeight}
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
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			play_w REAL NOT NULL,
			play_h REAL NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			best INTEGER NOT NULL DEFAULT 0,
			last_score INTEGER NOT NULL DEFAULT 0,
			final_phase TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(best DESC);

		CREATE TABLE IF NOT EXISTS run_ticks (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			dt REAL NOT NULL,
			inputs INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, tick)
		);
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

// SaveRun records a summary and its journal in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(run Run, journal sim.Journal) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs
		 (seed, play_w, play_h, ticks, attempts, best, last_score, final_phase, config)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		journal.Seed,
		journal.Bounds.Width,
		journal.Bounds.Height,
		len(journal.Ticks),
		run.Attempts,
		run.Best,
		run.LastScore,
		run.FinalPhase,
		run.Config,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_ticks (run_id, tick, dt, inputs) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare tick insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range journal.Ticks {
		if _, err := stmt.Exec(id, i, t.DT, t.Input); err != nil {
			return 0, fmt.Errorf("storage: cannot save tick %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Run retrieves the summary of a run.
func (s *Store) Run(id int64) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, play_w, play_h, ticks, attempts, best, last_score, final_phase, config, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// Journal loads the recorded ticks of a run, ready for sim.Replay.
func (s *Store) Journal(id int64) (sim.Journal, error) {
	run, err := s.Run(id)
	if err != nil {
		return sim.Journal{}, err
	}

	rows, err := s.db.Query(
		"SELECT dt, inputs FROM run_ticks WHERE run_id = ? ORDER BY tick",
		id,
	)
	if err != nil {
		return sim.Journal{}, fmt.Errorf("storage: cannot query ticks: %w", err)
	}
	defer rows.Close()

	j := sim.Journal{
		Seed:   run.Seed,
		Bounds: run.Bounds(),
		Ticks:  make([]sim.JournalTick, 0, run.Ticks),
	}
	for rows.Next() {
		var t sim.JournalTick
		if err := rows.Scan(&t.DT, &t.Input); err != nil {
			return sim.Journal{}, fmt.Errorf("storage: cannot scan tick: %w", err)
		}
		j.Ticks = append(j.Ticks, t)
	}
	if err := rows.Err(); err != nil {
		return sim.Journal{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return j, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.listRuns("ORDER BY id DESC", limit)
}

// TopRuns retrieves the runs with the highest best score.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.listRuns("ORDER BY best DESC, id DESC", limit)
}

func (s *Store) listRuns(order string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, play_w, play_h, ticks, attempts, best, last_score, final_phase, config, created_at
		 FROM runs `+order+`
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
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score over all runs.
// Returns 0 if no runs exist.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(best) FROM runs").Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// DeleteRun removes a run and its ticks.
func (s *Store) DeleteRun(id int64) error {
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	// The pragma is per connection; delete ticks explicitly as well.
	if _, err := s.db.Exec("DELETE FROM run_ticks WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete ticks: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var r Run
	var createdAt any
	if err := row.Scan(
		&r.ID,
		&r.Seed,
		&r.PlayWidth,
		&r.PlayHeight,
		&r.Ticks,
		&r.Attempts,
		&r.Best,
		&r.LastScore,
		&r.FinalPhase,
		&r.Config,
		&createdAt,
	); err != nil {
		return nil, err
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return &r, nil
}

// parseTimestamp handles both time.Time and the string form of DATETIME.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Summarize builds the summary row for a session.
// configYAML is stored verbatim so a replay can rebuild the same simulation.
func Summarize(sess *sim.Session, configYAML []byte) Run {
	attempts := sess.Attempts()
	last := 0
	if n := len(attempts); n > 0 {
		last = attempts[n-1].Score
	}
	j := sess.Journal()
	return Run{
		Seed:       j.Seed,
		PlayWidth:  j.Bounds.Width,
		PlayHeight: j.Bounds.Height,
		Ticks:      len(j.Ticks),
		Attempts:   len(attempts),
		Best:       sess.Best(),
		LastScore:  last,
		FinalPhase: sess.Sim().Phase().String(),
		Config:     string(configYAML),
	}
}
