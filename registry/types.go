package registry

import (
	"time"

	"github.com/google/uuid"
)

// Status values for the runs table's status column.
const (
	StatusRunning = "running"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

// Run is one row of the runs table (SPEC_FULL.md §9): run_id, task_id,
// config_path, started_at, finished_at, status, final_theta_json.
type Run struct {
	RunID          uuid.UUID
	TaskID         int
	ConfigPath     string
	StartedAt      time.Time
	FinishedAt     *time.Time
	Status         string
	FinalThetaJSON string // JSON object {effectName: value, ...}; empty until Finish.
}
