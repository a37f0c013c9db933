package dto

import (
	"time"

	"github.com/Iotonix/osams/internal/models"
)

// GenerationMode selects how existing daily flights are treated.
type GenerationMode string

const (
	// ModeIncremental skips dates that already have a matching flight id.
	ModeIncremental GenerationMode = "incremental"
	// ModeFull upserts regardless, re-seeding the window from the
	// seasonal series. Without Force it still leaves manually modified
	// rows alone.
	ModeFull GenerationMode = "full"
)

// GenerateParams is the contract of the generation engine.
type GenerateParams struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Mode        GenerationMode
	DryRun      bool
	// Force lets a full run overwrite manually modified flights,
	// discarding operator edits and version history.
	Force bool
}

// RowError captures one failed row without aborting the run.
type RowError struct {
	FlightID string `json:"flight_id"`
	Message  string `json:"message"`
}

// GenerationReport accounts for every candidate (date, series) pair of a
// generation run in exactly one bucket.
type GenerationReport struct {
	WindowStart time.Time      `json:"window_start"`
	WindowEnd   time.Time      `json:"window_end"`
	Mode        GenerationMode `json:"mode"`
	DryRun      bool           `json:"dry_run"`
	Patterns    int            `json:"patterns"`
	Created     int            `json:"created"`
	Skipped     int            `json:"skipped"`
	Errored     int            `json:"errored"`
	// Errors holds the first few row failures verbatim; the rest are
	// summarised by the Errored count.
	Errors []RowError `json:"errors,omitempty"`
}

// PropagateParams is the contract of the propagation engine. Exactly one
// of ScheduleID or All must be set. A nil BufferHours falls back to the
// configured default; an explicit zero disables the buffer entirely.
type PropagateParams struct {
	ScheduleID  *int64
	All         bool
	FromDate    time.Time
	BufferHours *int
	DryRun      bool
}

// FieldChange records one overwritten field with its before and after
// values so the audit trail can reconstruct what propagation did.
type FieldChange struct {
	Name string `json:"name"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

// FlightChange describes one propagated update for audit logging.
type FlightChange struct {
	FlightID        string        `json:"flight_id"`
	DateOfOperation time.Time     `json:"date_of_operation"`
	Fields          []FieldChange `json:"fields"`
}

// PropagationReport accounts for every candidate daily flight of a
// propagation run in exactly one bucket.
type PropagationReport struct {
	FromDate      time.Time      `json:"from_date"`
	BufferHours   int            `json:"buffer_hours"`
	DryRun        bool           `json:"dry_run"`
	Patterns      int            `json:"patterns"`
	Updated       int            `json:"updated"`
	Unchanged     int            `json:"unchanged"`
	SkippedManual int            `json:"skipped_manual"`
	SkippedBuffer int            `json:"skipped_buffer"`
	Errored       int            `json:"errored"`
	Changes       []FlightChange `json:"changes,omitempty"`
	Errors        []RowError     `json:"errors,omitempty"`
}

// GenerateRequest is the HTTP/CLI-facing form of GenerateParams.
type GenerateRequest struct {
	StartDate   string `json:"start_date" validate:"omitempty"`
	Days        int    `json:"days" validate:"omitempty,min=1,max=400"`
	Incremental bool   `json:"incremental"`
	DryRun      bool   `json:"dry_run"`
	Force       bool   `json:"force"`
}

// PropagateRequest is the HTTP/CLI-facing form of PropagateParams.
type PropagateRequest struct {
	ScheduleID  *int64 `json:"schedule_id"`
	All         bool   `json:"all"`
	FromDate    string `json:"from_date" validate:"omitempty"`
	BufferHours *int   `json:"buffer_hours" validate:"omitempty,min=0"`
	DryRun      bool   `json:"dry_run"`
}

// DashboardSummary is the cached daily operations overview.
type DashboardSummary struct {
	Today     models.DailyOpsStats `json:"today"`
	CachedAt  time.Time            `json:"cached_at"`
	FromCache bool                 `json:"-"`
}
