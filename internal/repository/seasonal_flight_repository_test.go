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

func newSeasonalFlightRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func seasonalFlightRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "airline_id", "flight_number", "origin_id", "destination_id",
		"aircraft_type_id", "service_type", "stod", "stoa", "start_date", "end_date",
		"days_of_operation", "is_active", "created_at", "updated_at",
		"airline_iata", "origin_iata", "destination_iata", "aircraft_icao",
	})
}

func TestSeasonalFlightRepositoryListActiveOverlapping(t *testing.T) {
	db, mock, cleanup := newSeasonalFlightRepoMock(t)
	defer cleanup()
	repo := NewSeasonalFlightRepository(db)

	start := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 24, 0, 0, 0, 0, time.UTC)

	rows := seasonalFlightRows().AddRow(
		int64(7), int64(1), "920", int64(2), int64(3),
		int64(4), "J", "23:40:00", "05:25:00",
		time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		"1234567", true, time.Now(), time.Now(),
		"TG", "BKK", "CDG", "B77W",
	)
	mock.ExpectQuery(regexp.QuoteMeta("s.start_date <= $2 AND s.end_date >= $1")).
		WithArgs(start, end).
		WillReturnRows(rows)

	list, err := repo.ListActiveOverlapping(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TG", list[0].AirlineIATA)
	assert.Equal(t, "920", list[0].FlightNumber)
	assert.Equal(t, 23, list[0].STOD.Hour)
	assert.Equal(t, 40, list[0].STOD.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeasonalFlightRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newSeasonalFlightRepoMock(t)
	defer cleanup()
	repo := NewSeasonalFlightRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO seasonal_flights")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	stod, _ := models.ParseTimeOfDay("23:40")
	stoa, _ := models.ParseTimeOfDay("05:25")
	days, _ := models.ParseDaysOfOperation("1234567")
	series := &models.SeasonalFlight{
		AirlineID:       1,
		FlightNumber:    "920",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "J",
		STOD:            stod,
		STOA:            stoa,
		StartDate:       time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		DaysOfOperation: days,
		IsActive:        true,
	}
	require.NoError(t, repo.Create(context.Background(), series))
	assert.Equal(t, int64(42), series.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeasonalFlightRepositoryDeactivateNotFound(t *testing.T) {
	db, mock, cleanup := newSeasonalFlightRepoMock(t)
	defer cleanup()
	repo := NewSeasonalFlightRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE seasonal_flights SET is_active = FALSE")).
		WithArgs(sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Deactivate(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeasonalFlightRepositoryExistsBySeries(t *testing.T) {
	db, mock, cleanup := newSeasonalFlightRepoMock(t)
	defer cleanup()
	repo := NewSeasonalFlightRepository(db)

	startDate := time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(1), "920", startDate, int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsBySeries(context.Background(), 1, "920", startDate, 0)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
