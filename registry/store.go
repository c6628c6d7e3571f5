// File: store.go
// Role: sqlite-backed runs table (SPEC_FULL.md §9): lets `ergmee batch`
// and `ergmee watch` discover what is running or finished without
// re-parsing theta/dzA files, grounded in vanderheijden86-beadwork's
// pure-Go modernc.org/sqlite dependency and its datasource/export split.
package registry

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store wraps one runs-table sqlite database. The zero value is not
// usable; construct with Open.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the sqlite database at path and
// ensures the runs schema exists.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("registry: opening %s: %w", path, err)
	}
	if err := createSchema(db); err != nil {
		db.Close()

		return nil, fmt.Errorf("registry: creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// StartRun inserts a new row with status StatusRunning.
func (s *Store) StartRun(runID uuid.UUID, taskID int, configPath string, startedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, task_id, config_path, started_at, status) VALUES (?, ?, ?, ?, ?)`,
		runID.String(), taskID, configPath, startedAt.UTC().Format(time.RFC3339), StatusRunning,
	)
	if err != nil {
		return fmt.Errorf("registry: starting run %s: %w", runID, err)
	}

	return nil
}

// FinishRun records a terminal status, finish time, and — for
// StatusDone — the final theta vector as a {effectName: value} JSON
// object (names and theta must be the same length and order).
func (s *Store) FinishRun(runID uuid.UUID, finishedAt time.Time, status string, names []string, theta []float64) error {
	thetaJSON := ""
	if len(theta) > 0 {
		m := make(map[string]float64, len(theta))
		for i, name := range names {
			if i < len(theta) {
				m[name] = theta[i]
			}
		}
		b, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("registry: encoding final theta for run %s: %w", runID, err)
		}
		thetaJSON = string(b)
	}

	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, status = ?, final_theta_json = ? WHERE run_id = ?`,
		finishedAt.UTC().Format(time.RFC3339), status, thetaJSON, runID.String(),
	)
	if err != nil {
		return fmt.Errorf("registry: finishing run %s: %w", runID, err)
	}

	return nil
}

// GetRun retrieves one run by id, returning ErrRunNotFound if absent.
func (s *Store) GetRun(runID uuid.UUID) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT run_id, task_id, config_path, started_at, finished_at, status, final_theta_json FROM runs WHERE run_id = ?`,
		runID.String(),
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("registry: reading run %s: %w", runID, err)
	}

	return run, nil
}

// ListRuns returns every row, most recently started first.
func (s *Store) ListRuns() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT run_id, task_id, config_path, started_at, finished_at, status, final_theta_json FROM runs ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("registry: listing runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("registry: scanning run row: %w", err)
		}
		out = append(out, *run)
	}

	return out, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(r rowScanner) (*Run, error) {
	var run Run
	var runIDStr, startedAtStr string
	var finishedAtStr, finalThetaJSON sql.NullString

	if err := r.Scan(&runIDStr, &run.TaskID, &run.ConfigPath, &startedAtStr, &finishedAtStr, &run.Status, &finalThetaJSON); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(runIDStr)
	if err != nil {
		return nil, fmt.Errorf("malformed run_id %q: %w", runIDStr, err)
	}
	run.RunID = id

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("malformed started_at %q: %w", startedAtStr, err)
	}
	run.StartedAt = startedAt

	if finishedAtStr.Valid && finishedAtStr.String != "" {
		t, err := time.Parse(time.RFC3339, finishedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("malformed finished_at %q: %w", finishedAtStr.String, err)
		}
		run.FinishedAt = &t
	}
	if finalThetaJSON.Valid {
		run.FinalThetaJSON = finalThetaJSON.String
	}

	return &run, nil
}
