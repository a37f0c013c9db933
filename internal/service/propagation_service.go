package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type propagationScheduleReader interface {
	FindByID(ctx context.Context, id int64) (*models.SeasonalFlight, error)
	ListActiveEndingAfter(ctx context.Context, from time.Time) ([]models.SeasonalFlight, error)
}

type propagationFlightStore interface {
	ListForPropagation(ctx context.Context, scheduleID int64, fromDate time.Time) ([]models.DailyFlight, error)
	ApplyPropagation(ctx context.Context, exec sqlx.ExtContext, f *models.DailyFlight) error
}

// PropagationService pushes seasonal flight edits down to the daily
// flights generated from them, respecting operator edits and a safety
// buffer before departure.
type PropagationService struct {
	schedules     propagationScheduleReader
	flights       propagationFlightStore
	tx            txProvider
	metrics       engineRunRecorder
	logger        *zap.Logger
	defaultBuffer int
	now           func() time.Time
}

// NewPropagationService wires the propagation engine. defaultBufferHours
// applies when a run does not override the buffer.
func NewPropagationService(
	schedules propagationScheduleReader,
	flights propagationFlightStore,
	tx txProvider,
	metrics engineRunRecorder,
	logger *zap.Logger,
	defaultBufferHours int,
) *PropagationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultBufferHours < 0 {
		defaultBufferHours = 0
	}
	return &PropagationService{
		schedules:     schedules,
		flights:       flights,
		tx:            tx,
		metrics:       metrics,
		logger:        logger,
		defaultBuffer: defaultBufferHours,
		now:           time.Now,
	}
}

// Run performs one propagation pass. Every candidate daily flight lands
// in exactly one report bucket: updated, unchanged, skipped_manual,
// skipped_buffer or errored.
func (s *PropagationService) Run(ctx context.Context, params dto.PropagateParams) (*dto.PropagationReport, error) {
	if (params.ScheduleID != nil) == params.All {
		return nil, appErrors.Clone(appErrors.ErrValidation, "exactly one of schedule id or all must be set")
	}

	now := s.now().UTC()
	fromDate := params.FromDate
	if fromDate.IsZero() {
		fromDate = now
	}
	fromDate = atMidnightUTC(fromDate)

	buffer := s.defaultBuffer
	if params.BufferHours != nil {
		if *params.BufferHours < 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "buffer_hours must be zero or positive")
		}
		buffer = *params.BufferHours
	}
	cutoff := now.Add(time.Duration(buffer) * time.Hour)

	report := &dto.PropagationReport{
		FromDate:    fromDate,
		BufferHours: buffer,
		DryRun:      params.DryRun,
	}

	patterns, err := s.collectPatterns(ctx, params, fromDate)
	if err != nil {
		return nil, err
	}
	report.Patterns = len(patterns)

	var tx *sqlx.Tx
	if !params.DryRun {
		tx, err = s.tx.BeginTxx(ctx, nil)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "begin propagation transaction")
		}
		defer func() { _ = tx.Rollback() }()
	}

	rowSeq := 0
	for i := range patterns {
		pattern := &patterns[i]
		candidates, err := s.flights.ListForPropagation(ctx, pattern.ID, fromDate)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load propagation candidates")
		}

		for j := range candidates {
			flight := &candidates[j]

			if flight.IsManuallyModified {
				report.SkippedManual++
				continue
			}
			// Flights at or past the cutoff are still safe to touch;
			// anything departing sooner is frozen.
			if flight.STOD.Before(cutoff) {
				report.SkippedBuffer++
				continue
			}

			changed := diffAgainstPattern(flight, pattern)
			if len(changed) == 0 {
				report.Unchanged++
				continue
			}

			change := dto.FlightChange{
				FlightID:        flight.FlightID,
				DateOfOperation: flight.DateOfOperation,
				Fields:          changed,
			}
			if params.DryRun {
				report.Updated++
				report.Changes = append(report.Changes, change)
				continue
			}

			applyPattern(flight, pattern)
			rowSeq++
			name := fmt.Sprintf("prop_row_%d", rowSeq)
			if err := withSavepoint(ctx, tx, name, func() error {
				return s.flights.ApplyPropagation(ctx, tx, flight)
			}); err != nil {
				report.Errored++
				if len(report.Errors) < maxDetailedRowErrors {
					report.Errors = append(report.Errors, dto.RowError{FlightID: flight.FlightID, Message: err.Error()})
				}
				s.logger.Error("propagation row failed", zap.String("flight_id", flight.FlightID), zap.Error(err))
				continue
			}
			report.Updated++
			report.Changes = append(report.Changes, change)
		}
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "commit propagation transaction")
		}
	}

	if s.metrics != nil {
		skipped := report.SkippedManual + report.SkippedBuffer
		s.metrics.RecordPropagationRun(report.Updated, report.Unchanged, skipped, report.Errored)
	}
	s.logger.Info("propagation run finished",
		zap.Bool("dry_run", params.DryRun),
		zap.Int("patterns", report.Patterns),
		zap.Int("updated", report.Updated),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("skipped_manual", report.SkippedManual),
		zap.Int("skipped_buffer", report.SkippedBuffer),
		zap.Int("errored", report.Errored))
	return report, nil
}

func (s *PropagationService) collectPatterns(ctx context.Context, params dto.PropagateParams, fromDate time.Time) ([]models.SeasonalFlight, error) {
	if params.ScheduleID != nil {
		pattern, err := s.schedules.FindByID(ctx, *params.ScheduleID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.ErrPatternNotFound
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load seasonal flight")
		}
		return []models.SeasonalFlight{*pattern}, nil
	}
	patterns, err := s.schedules.ListActiveEndingAfter(ctx, fromDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load seasonal flights")
	}
	return patterns, nil
}

const changeTimeLayout = "2006-01-02 15:04"

// diffAgainstPattern lists the schedule-derived fields where the flight
// no longer matches its series, capturing before and after values while
// the flight is still untouched. Identity fields compare by id, never by
// joined display codes.
func diffAgainstPattern(flight *models.DailyFlight, pattern *models.SeasonalFlight) []dto.FieldChange {
	var fields []dto.FieldChange
	record := func(name, oldVal, newVal string) {
		fields = append(fields, dto.FieldChange{Name: name, Old: oldVal, New: newVal})
	}
	if flight.AirlineID != pattern.AirlineID {
		record("airline", strconv.FormatInt(flight.AirlineID, 10), strconv.FormatInt(pattern.AirlineID, 10))
	}
	if flight.FlightNumber != pattern.FlightNumber {
		record("flight_number", flight.FlightNumber, pattern.FlightNumber)
	}
	if flight.OriginID != pattern.OriginID {
		record("origin", strconv.FormatInt(flight.OriginID, 10), strconv.FormatInt(pattern.OriginID, 10))
	}
	if flight.DestinationID != pattern.DestinationID {
		record("destination", strconv.FormatInt(flight.DestinationID, 10), strconv.FormatInt(pattern.DestinationID, 10))
	}
	if flight.AircraftTypeID != pattern.AircraftTypeID {
		record("aircraft_type", strconv.FormatInt(flight.AircraftTypeID, 10), strconv.FormatInt(pattern.AircraftTypeID, 10))
	}
	if flight.ServiceType != pattern.ServiceType {
		record("service_type", flight.ServiceType, pattern.ServiceType)
	}
	stod, stoa := models.ScheduledTimes(flight.DateOfOperation, pattern.STOD, pattern.STOA)
	if !flight.STOD.Equal(stod) {
		record("stod", flight.STOD.Format(changeTimeLayout), stod.Format(changeTimeLayout))
	}
	if !flight.STOA.Equal(stoa) {
		record("stoa", flight.STOA.Format(changeTimeLayout), stoa.Format(changeTimeLayout))
	}
	return fields
}

func applyPattern(flight *models.DailyFlight, pattern *models.SeasonalFlight) {
	flight.AirlineID = pattern.AirlineID
	flight.FlightNumber = pattern.FlightNumber
	flight.OriginID = pattern.OriginID
	flight.DestinationID = pattern.DestinationID
	flight.AircraftTypeID = pattern.AircraftTypeID
	flight.ServiceType = pattern.ServiceType
	flight.STOD, flight.STOA = models.ScheduledTimes(flight.DateOfOperation, pattern.STOD, pattern.STOA)
}
