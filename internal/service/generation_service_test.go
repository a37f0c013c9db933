package service

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type genScheduleStub struct {
	patterns []models.SeasonalFlight
	err      error
}

func (s *genScheduleStub) ListActiveOverlapping(ctx context.Context, start, end time.Time) ([]models.SeasonalFlight, error) {
	return s.patterns, s.err
}

type genFlightStub struct {
	state   map[string]bool
	failIDs map[string]error
	upserts []models.DailyFlight
}

func (s *genFlightStub) WindowState(ctx context.Context, start, end time.Time) (map[string]bool, error) {
	if s.state == nil {
		return map[string]bool{}, nil
	}
	return s.state, nil
}

func (s *genFlightStub) UpsertGenerated(ctx context.Context, exec sqlx.ExtContext, f *models.DailyFlight) error {
	if err, ok := s.failIDs[f.FlightID]; ok {
		return err
	}
	s.upserts = append(s.upserts, *f)
	return nil
}

func newEngineTxMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func expectSavepoints(mock sqlmock.Sqlmock, succeeded, failed int) {
	for i := 0; i < succeeded+failed; i++ {
		mock.ExpectExec("^SAVEPOINT ").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for i := 0; i < succeeded; i++ {
		mock.ExpectExec("^RELEASE SAVEPOINT ").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for i := 0; i < failed; i++ {
		mock.ExpectExec("^ROLLBACK TO SAVEPOINT ").WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func bangkokParis(id int64, days string) models.SeasonalFlight {
	stod, _ := models.ParseTimeOfDay("23:40")
	stoa, _ := models.ParseTimeOfDay("05:25")
	dop, _ := models.ParseDaysOfOperation(days)
	return models.SeasonalFlight{
		ID:              id,
		AirlineID:       1,
		FlightNumber:    "920",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "J",
		STOD:            stod,
		STOA:            stoa,
		StartDate:       time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		DaysOfOperation: dop,
		IsActive:        true,
		AirlineIATA:     "TG",
		OriginIATA:      "BKK",
		DestinationIATA: "CDG",
		AircraftICAO:    "B77W",
	}
}

func TestGenerationRunIncrementalCreatesMissingOnly(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 2, 0)
	mock.ExpectCommit()

	flights := &genFlightStub{state: map[string]bool{"20251027-TG920": false}}
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1234567")}}, flights, db, nil, nil)

	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeIncremental,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Patterns)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Errored)

	require.Len(t, flights.upserts, 2)
	assert.Equal(t, "20251028-TG920", flights.upserts[0].FlightID)
	assert.Equal(t, "20251029-TG920", flights.upserts[1].FlightID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRunOvernightArrival(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	flights := &genFlightStub{}
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1234567")}}, flights, db, nil, nil)

	day := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	_, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: day,
		WindowEnd:   day,
		Mode:        dto.ModeIncremental,
	})
	require.NoError(t, err)

	require.Len(t, flights.upserts, 1)
	flight := flights.upserts[0]
	assert.Equal(t, time.Date(2025, 10, 27, 23, 40, 0, 0, time.UTC), flight.STOD)
	assert.Equal(t, time.Date(2025, 10, 28, 5, 25, 0, 0, time.UTC), flight.STOA)
	assert.Equal(t, models.StatusScheduled, flight.Status)
	require.NotNil(t, flight.ScheduleID)
	assert.Equal(t, int64(7), *flight.ScheduleID)
}

func TestGenerationRunHonoursDaysOfOperation(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	flights := &genFlightStub{}
	// Mondays only; the window 2025-10-27..2025-11-02 holds exactly one.
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1")}}, flights, db, nil, nil)

	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeIncremental,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	require.Len(t, flights.upserts, 1)
	assert.Equal(t, "20251027-TG920", flights.upserts[0].FlightID)
}

func TestGenerationRunFullPreservesManualWithoutForce(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 2, 0)
	mock.ExpectCommit()

	flights := &genFlightStub{state: map[string]bool{
		"20251027-TG920": true,  // operator touched it
		"20251028-TG920": false, // auto-managed, refreshed by full mode
	}}
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1234567")}}, flights, db, nil, nil)

	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeFull,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 2, report.Skipped)

	upserted := make([]string, 0, len(flights.upserts))
	for _, f := range flights.upserts {
		upserted = append(upserted, f.FlightID)
	}
	assert.NotContains(t, upserted, "20251027-TG920")
	assert.Contains(t, upserted, "20251028-TG920")
	assert.Contains(t, upserted, "20251029-TG920")
}

func TestGenerationRunFullForceOverwritesManual(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 1, 0)
	mock.ExpectCommit()

	flights := &genFlightStub{state: map[string]bool{"20251027-TG920": true}}
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1234567")}}, flights, db, nil, nil)

	day := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: day,
		WindowEnd:   day,
		Mode:        dto.ModeFull,
		Force:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, flights.upserts, 1)
	assert.Equal(t, "20251027-TG920", flights.upserts[0].FlightID)
}

func TestGenerationRunDryRunWritesNothing(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()

	flights := &genFlightStub{state: map[string]bool{"20251027-TG920": false}}
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1234567")}}, flights, db, nil, nil)

	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeIncremental,
		DryRun:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, flights.upserts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRunRowErrorDoesNotAbort(t *testing.T) {
	db, mock, cleanup := newEngineTxMock(t)
	defer cleanup()
	mock.ExpectBegin()
	expectSavepoints(mock, 2, 1)
	mock.ExpectCommit()

	flights := &genFlightStub{failIDs: map[string]error{
		"20251028-TG920": errors.New("constraint violated"),
	}}
	svc := NewGenerationService(&genScheduleStub{patterns: []models.SeasonalFlight{bangkokParis(7, "1234567")}}, flights, db, nil, nil)

	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeIncremental,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 1, report.Errored)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "20251028-TG920", report.Errors[0].FlightID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationRunRejectsInvertedWindow(t *testing.T) {
	svc := NewGenerationService(&genScheduleStub{}, &genFlightStub{}, nil, nil, nil)
	_, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeIncremental,
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidWindow)
}

func TestGenerationRunNoActivePatterns(t *testing.T) {
	svc := NewGenerationService(&genScheduleStub{}, &genFlightStub{}, nil, nil, nil)
	report, err := svc.Run(context.Background(), dto.GenerateParams{
		WindowStart: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC),
		Mode:        dto.ModeIncremental,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Patterns)
	assert.Equal(t, 0, report.Created)
}
