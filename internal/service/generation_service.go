package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

// maxDetailedRowErrors caps how many row failures a report carries
// verbatim; the rest are summarised by the errored counter.
const maxDetailedRowErrors = 5

type generationScheduleReader interface {
	ListActiveOverlapping(ctx context.Context, start, end time.Time) ([]models.SeasonalFlight, error)
}

type generationFlightWriter interface {
	WindowState(ctx context.Context, start, end time.Time) (map[string]bool, error)
	UpsertGenerated(ctx context.Context, exec sqlx.ExtContext, f *models.DailyFlight) error
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type engineRunRecorder interface {
	RecordGenerationRun(mode string, created, skipped, errored int)
	RecordPropagationRun(updated, unchanged, skipped, errored int)
}

// GenerationService expands seasonal flight series into concrete daily
// flights over a date window.
type GenerationService struct {
	schedules generationScheduleReader
	flights   generationFlightWriter
	tx        txProvider
	metrics   engineRunRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewGenerationService wires the generation engine.
func NewGenerationService(
	schedules generationScheduleReader,
	flights generationFlightWriter,
	tx txProvider,
	metrics engineRunRecorder,
	logger *zap.Logger,
) *GenerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerationService{
		schedules: schedules,
		flights:   flights,
		tx:        tx,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Run performs one generation pass. Every (series, operating date) pair
// in the window lands in exactly one report bucket. A run with zero
// active series succeeds with zero counts; callers decide whether that
// is worth alerting on.
func (s *GenerationService) Run(ctx context.Context, params dto.GenerateParams) (*dto.GenerationReport, error) {
	start := atMidnightUTC(params.WindowStart)
	end := atMidnightUTC(params.WindowEnd)
	if end.Before(start) {
		return nil, appErrors.ErrInvalidWindow
	}
	if params.Mode != dto.ModeIncremental && params.Mode != dto.ModeFull {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown generation mode %q", params.Mode))
	}

	report := &dto.GenerationReport{
		WindowStart: start,
		WindowEnd:   end,
		Mode:        params.Mode,
		DryRun:      params.DryRun,
	}

	patterns, err := s.schedules.ListActiveOverlapping(ctx, start, end)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load seasonal flights")
	}
	report.Patterns = len(patterns)
	if len(patterns) == 0 {
		s.logger.Warn("generation found no active seasonal flights",
			zap.Time("window_start", start), zap.Time("window_end", end))
		return report, nil
	}

	existing, err := s.flights.WindowState(ctx, start, end)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load window state")
	}

	var tx *sqlx.Tx
	if !params.DryRun {
		tx, err = s.tx.BeginTxx(ctx, nil)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "begin generation transaction")
		}
		defer func() { _ = tx.Rollback() }()
	}

	rowSeq := 0
	for i := range patterns {
		pattern := &patterns[i]
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			if !pattern.OperatesOn(date) {
				continue
			}

			flightID := models.DeriveFlightID(date, pattern.AirlineIATA, pattern.FlightNumber)
			manual, exists := existing[flightID]

			if exists {
				if params.Mode == dto.ModeIncremental {
					report.Skipped++
					continue
				}
				if manual && !params.Force {
					report.Skipped++
					continue
				}
			}

			if params.DryRun {
				if exists {
					report.Skipped++
				} else {
					report.Created++
				}
				continue
			}

			flight := s.buildFlight(pattern, date, flightID)
			rowSeq++
			name := fmt.Sprintf("gen_row_%d", rowSeq)
			if err := withSavepoint(ctx, tx, name, func() error {
				return s.flights.UpsertGenerated(ctx, tx, flight)
			}); err != nil {
				report.Errored++
				if len(report.Errors) < maxDetailedRowErrors {
					report.Errors = append(report.Errors, dto.RowError{FlightID: flightID, Message: err.Error()})
				}
				s.logger.Error("generation row failed", zap.String("flight_id", flightID), zap.Error(err))
				continue
			}
			if exists {
				report.Skipped++
			} else {
				report.Created++
			}
		}
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "commit generation transaction")
		}
	}

	if s.metrics != nil {
		s.metrics.RecordGenerationRun(string(params.Mode), report.Created, report.Skipped, report.Errored)
	}
	s.logger.Info("generation run finished",
		zap.String("mode", string(params.Mode)),
		zap.Bool("dry_run", params.DryRun),
		zap.Int("patterns", report.Patterns),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("errored", report.Errored))
	return report, nil
}

func (s *GenerationService) buildFlight(pattern *models.SeasonalFlight, date time.Time, flightID string) *models.DailyFlight {
	stod, stoa := models.ScheduledTimes(date, pattern.STOD, pattern.STOA)
	scheduleID := pattern.ID
	return &models.DailyFlight{
		FlightID:        flightID,
		ScheduleID:      &scheduleID,
		AirlineID:       pattern.AirlineID,
		FlightNumber:    pattern.FlightNumber,
		OriginID:        pattern.OriginID,
		DestinationID:   pattern.DestinationID,
		AircraftTypeID:  pattern.AircraftTypeID,
		ServiceType:     pattern.ServiceType,
		DateOfOperation: date,
		Status:          models.StatusScheduled,
		STOD:            stod,
		STOA:            stoa,
	}
}

func atMidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// withSavepoint isolates one row's writes so a failure rolls back only
// that row while the surrounding transaction keeps going.
func withSavepoint(ctx context.Context, tx *sqlx.Tx, name string, fn func() error) error {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("savepoint %s: %w", name, err)
	}
	if err := fn(); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return fmt.Errorf("rollback to savepoint %s after %v: %w", name, err, rbErr)
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint %s: %w", name, err)
	}
	return nil
}
