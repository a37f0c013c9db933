package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type propScheduleStub struct {
	byID map[int64]models.SeasonalFlight
	all  []models.SeasonalFlight
}

func (s *propScheduleStub) FindByID(ctx context.Context, id int64) (*models.SeasonalFlight, error) {
	if pattern, ok := s.byID[id]; ok {
		return &pattern, nil
	}
	return nil, sql.ErrNoRows
}

func (s *propScheduleStub) ListActiveEndingAfter(ctx context.Context, from time.Time) ([]models.SeasonalFlight, error) {
	return s.all, nil
}

type propFlightStub struct {
	candidates map[int64][]models.DailyFlight
	failIDs    map[string]error
	applied    []models.DailyFlight
}

func (s *propFlightStub) ListForPropagation(ctx context.Context, scheduleID int64, fromDate time.Time) ([]models.DailyFlight, error) {
	return s.candidates[scheduleID], nil
}

func (s *propFlightStub) ApplyPropagation(ctx context.Context, exec sqlx.ExtContext, f *models.DailyFlight) error {
	if err, ok := s.failIDs[f.FlightID]; ok {
		return err
	}
	s.applied = append(s.applied, *f)
	return nil
}

// generatedFrom builds the daily flight the generation engine would have
// produced for the pattern on the given date.
func generatedFrom(pattern models.SeasonalFlight, date time.Time) models.DailyFlight {
	stod, stoa := models.ScheduledTimes(date, pattern.STOD, pattern.STOA)
	id := pattern.ID
	return models.DailyFlight{
		FlightID:        models.DeriveFlightID(date, pattern.AirlineIATA, pattern.FlightNumber),
		ScheduleID:      &id,
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
		ScheduleVersion: 1,
	}
}

func fixedClock(svc *PropagationService, at time.Time) {
	svc.now = func() time.Time { return at }
}

func TestPropagationRunAircraftSwap(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 2, 0)
	mock.ExpectCommit()

	old := bangkokParis(7, "1234567")
	day1 := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)
	manualDay := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)

	manual := generatedFrom(old, manualDay)
	manual.IsManuallyModified = true

	// The series now flies a different aircraft type.
	updated := old
	updated.AircraftTypeID = 9

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(old, day1), generatedFrom(old, day2), manual},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Updated)
	assert.Equal(t, 1, report.SkippedManual)
	assert.Equal(t, 0, report.SkippedBuffer)
	assert.Equal(t, 0, report.Unchanged)

	require.Len(t, flights.applied, 2)
	assert.Equal(t, int64(9), flights.applied[0].AircraftTypeID)
	require.Len(t, report.Changes, 2)
	assert.Equal(t, []dto.FieldChange{{Name: "aircraft_type", Old: "4", New: "9"}}, report.Changes[0].Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropagationRunTimeChangeRecomputesArrival(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	old := bangkokParis(7, "1234567")
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	updated := old
	updated.STOD, _ = models.ParseTimeOfDay("23:55")
	updated.STOA, _ = models.ParseTimeOfDay("05:40")

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(old, day)},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	require.Len(t, report.Changes, 1)
	assert.Equal(t, []dto.FieldChange{
		{Name: "stod", Old: "2025-11-10 23:40", New: "2025-11-10 23:55"},
		{Name: "stoa", Old: "2025-11-11 05:25", New: "2025-11-11 05:40"},
	}, report.Changes[0].Fields)

	require.Len(t, flights.applied, 1)
	assert.Equal(t, time.Date(2025, 11, 10, 23, 55, 0, 0, time.UTC), flights.applied[0].STOD)
	// Still an overnight arrival on the following calendar day.
	assert.Equal(t, time.Date(2025, 11, 11, 5, 40, 0, 0, time.UTC), flights.applied[0].STOA)
}

func TestPropagationRunBufferBoundaryIsEligible(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	old := bangkokParis(7, "1234567")
	nearDay := time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC)
	boundaryDay := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	updated := old
	updated.AircraftTypeID = 9

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(old, nearDay), generatedFrom(old, boundaryDay)},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	// Exactly 48h before the boundary flight's departure: that flight is
	// still eligible, the earlier one is inside the buffer.
	fixedClock(svc, time.Date(2025, 11, 8, 23, 40, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.SkippedBuffer)
	require.Len(t, flights.applied, 1)
	assert.Equal(t, "20251110-TG920", flights.applied[0].FlightID)
}

func TestPropagationRunExplicitZeroBufferDisablesProtection(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	old := bangkokParis(7, "1234567")
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	updated := old
	updated.AircraftTypeID = 9

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(old, day)},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	// Two hours before departure, well inside the default buffer.
	fixedClock(svc, time.Date(2025, 11, 10, 21, 40, 0, 0, time.UTC))

	scheduleID := int64(7)
	zero := 0
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID, BufferHours: &zero})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 0, report.SkippedBuffer)
	assert.Equal(t, 0, report.BufferHours)
	require.Len(t, flights.applied, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropagationRunUnsetBufferUsesConfiguredDefault(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectCommit()

	old := bangkokParis(7, "1234567")
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	updated := old
	updated.AircraftTypeID = 9

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(old, day)},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 10, 21, 40, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 1, report.SkippedBuffer)
	assert.Equal(t, 48, report.BufferHours)
	assert.Empty(t, flights.applied)
}

func TestPropagationRunRejectsNegativeBuffer(t *testing.T) {
	svc := NewPropagationService(&propScheduleStub{}, &propFlightStub{}, nil, nil, nil, 48)

	scheduleID := int64(7)
	negative := -1
	_, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID, BufferHours: &negative})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPropagationRunUnchangedRowsAreCounted(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	mock.ExpectCommit()

	pattern := bangkokParis(7, "1234567")
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(pattern, day)},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: pattern}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 0, report.Updated)
	assert.Empty(t, flights.applied)
}

func TestPropagationRunDryRunWritesNothing(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()

	old := bangkokParis(7, "1234567")
	updated := old
	updated.AircraftTypeID = 9
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(old, day)},
	}}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	require.Len(t, report.Changes, 1)
	assert.Empty(t, flights.applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropagationRunAllSeries(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	first := bangkokParis(7, "1234567")
	second := bangkokParis(8, "1234567")
	second.FlightNumber = "921"
	second.AircraftTypeID = 9
	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	// Series 7 daily flight matches; series 8's flight still carries the
	// old aircraft type.
	stale := generatedFrom(second, day)
	stale.AircraftTypeID = 4

	flights := &propFlightStub{candidates: map[int64][]models.DailyFlight{
		7: {generatedFrom(first, day)},
		8: {stale},
	}}
	svc := NewPropagationService(&propScheduleStub{all: []models.SeasonalFlight{first, second}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC))

	report, err := svc.Run(context.Background(), dto.PropagateParams{All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Patterns)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Unchanged)
}

func TestPropagationRunRowErrorDoesNotAbort(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 1)
	mock.ExpectCommit()

	old := bangkokParis(7, "1234567")
	updated := old
	updated.AircraftTypeID = 9
	day1 := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC)

	flights := &propFlightStub{
		candidates: map[int64][]models.DailyFlight{
			7: {generatedFrom(old, day1), generatedFrom(old, day2)},
		},
		failIDs: map[string]error{"20251110-TG920": errors.New("deadlock detected")},
	}
	svc := NewPropagationService(&propScheduleStub{byID: map[int64]models.SeasonalFlight{7: updated}}, flights, db, nil, nil, 48)
	fixedClock(svc, time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC))

	scheduleID := int64(7)
	report, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Errored)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "20251110-TG920", report.Errors[0].FlightID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropagationRunUnknownSeries(t *testing.T) {
	svc := NewPropagationService(&propScheduleStub{}, &propFlightStub{}, nil, nil, nil, 48)
	scheduleID := int64(404)
	_, err := svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID})
	assert.ErrorIs(t, err, appErrors.ErrPatternNotFound)
}

func TestPropagationRunTargetValidation(t *testing.T) {
	svc := NewPropagationService(&propScheduleStub{}, &propFlightStub{}, nil, nil, nil, 48)

	_, err := svc.Run(context.Background(), dto.PropagateParams{})
	assert.Error(t, err)

	scheduleID := int64(7)
	_, err = svc.Run(context.Background(), dto.PropagateParams{ScheduleID: &scheduleID, All: true})
	assert.Error(t, err)
}
