package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run statuses for a batch generation execution.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusPartial   = "partial"
	RunStatusFailed    = "failed"
)

// RunError records a per-user failure that did not abort the batch.
type RunError struct {
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
}

// RunErrorList is stored as JSONB on the run row.
type RunErrorList []RunError

func (l RunErrorList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]RunError{})
	}
	return json.Marshal(l)
}

func (l *RunErrorList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	raw, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("run errors: unsupported scan type %T", src)
	}
	return json.Unmarshal(raw, l)
}

// MatchGenerationRun is the telemetry row for one batch execution.
type MatchGenerationRun struct {
	ID                uuid.UUID    `json:"id" db:"id"`
	Status            string       `json:"status" db:"status"`
	AlgorithmVersion  string       `json:"algorithm_version" db:"algorithm_version"`
	UsersEvaluated    int          `json:"users_evaluated" db:"users_evaluated"`
	MatchesCreated    int          `json:"matches_created" db:"matches_created"`
	CandidatesSkipped int          `json:"candidates_skipped" db:"candidates_skipped"`
	Errors            RunErrorList `json:"errors" db:"errors"`
	StartedAt         time.Time    `json:"started_at" db:"started_at"`
	FinishedAt        *time.Time   `json:"finished_at" db:"finished_at"`
}
