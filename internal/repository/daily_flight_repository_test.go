package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/models"
)

func newDailyFlightRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestDailyFlightRepositoryWindowState(t *testing.T) {
	db, mock, cleanup := newDailyFlightRepoMock(t)
	defer cleanup()
	repo := NewDailyFlightRepository(db)

	start := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"flight_id", "is_manually_modified"}).
		AddRow("20251027-TG920", false).
		AddRow("20251028-TG920", true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT flight_id, is_manually_modified FROM daily_flights")).
		WithArgs(start, end).
		WillReturnRows(rows)

	state, err := repo.WindowState(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, state, 2)
	assert.False(t, state["20251027-TG920"])
	assert.True(t, state["20251028-TG920"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyFlightRepositoryUpsertGenerated(t *testing.T) {
	db, mock, cleanup := newDailyFlightRepoMock(t)
	defer cleanup()
	repo := NewDailyFlightRepository(db)

	scheduleID := int64(7)
	flight := &models.DailyFlight{
		FlightID:        "20251027-TG920",
		ScheduleID:      &scheduleID,
		AirlineID:       1,
		FlightNumber:    "920",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "J",
		DateOfOperation: time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		Status:          models.StatusScheduled,
		STOD:            time.Date(2025, 10, 27, 23, 40, 0, 0, time.UTC),
		STOA:            time.Date(2025, 10, 28, 5, 25, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO daily_flights")).
		WithArgs("20251027-TG920", scheduleID, int64(1), "920", int64(2), int64(3), int64(4), "J",
			flight.DateOfOperation, string(models.StatusScheduled), flight.STOD, flight.STOA, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertGenerated(context.Background(), nil, flight))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyFlightRepositoryApplyPropagation(t *testing.T) {
	db, mock, cleanup := newDailyFlightRepoMock(t)
	defer cleanup()
	repo := NewDailyFlightRepository(db)

	flight := &models.DailyFlight{
		FlightID:       "20251027-TG920",
		AirlineID:      1,
		FlightNumber:   "920",
		OriginID:       2,
		DestinationID:  3,
		AircraftTypeID: 9,
		ServiceType:    "J",
		STOD:           time.Date(2025, 10, 27, 23, 55, 0, 0, time.UTC),
		STOA:           time.Date(2025, 10, 28, 5, 40, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta("schedule_version = schedule_version + 1")).
		WithArgs(int64(1), "920", int64(2), int64(3), int64(9), "J",
			flight.STOD, flight.STOA, sqlmock.AnyArg(), "20251027-TG920").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ApplyPropagation(context.Background(), nil, flight))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyFlightRepositoryApplyPropagationNotFound(t *testing.T) {
	db, mock, cleanup := newDailyFlightRepoMock(t)
	defer cleanup()
	repo := NewDailyFlightRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("schedule_version = schedule_version + 1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApplyPropagation(context.Background(), nil, &models.DailyFlight{FlightID: "20251027-TG920"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyFlightRepositoryUpdateStatusNotFound(t *testing.T) {
	db, mock, cleanup := newDailyFlightRepoMock(t)
	defer cleanup()
	repo := NewDailyFlightRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE daily_flights SET status = $1, updated_at = $2 WHERE flight_id = $3")).
		WithArgs(string(models.StatusCancelled), sqlmock.AnyArg(), "20251027-XX123").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "20251027-XX123", models.StatusCancelled)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyFlightRepositoryStatsByDate(t *testing.T) {
	db, mock, cleanup := newDailyFlightRepoMock(t)
	defer cleanup()
	repo := NewDailyFlightRepository(db)

	date := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)

	statusRows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("SCH", 40).
		AddRow("CXX", 2)
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).
		WithArgs(date).
		WillReturnRows(statusRows)
	mock.ExpectQuery(regexp.QuoteMeta("is_manually_modified = TRUE")).
		WithArgs(date).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	stats, err := repo.StatsByDate(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalFlights)
	assert.Equal(t, 40, stats.ByStatus["SCH"])
	assert.Equal(t, 5, stats.ManuallyModified)
	assert.Equal(t, 37, stats.AutoManaged)
	assert.NoError(t, mock.ExpectationsWereMet())
}
