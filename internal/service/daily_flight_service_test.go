package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
)

type dailyRepoStub struct {
	flights map[string]*models.DailyFlight
	updated []models.DailyFlight
	created []models.DailyFlight
}

func newDailyRepoStub(flights ...*models.DailyFlight) *dailyRepoStub {
	stub := &dailyRepoStub{flights: map[string]*models.DailyFlight{}}
	for _, f := range flights {
		stub.flights[f.FlightID] = f
	}
	return stub
}

func (s *dailyRepoStub) List(ctx context.Context, filter models.DailyFlightFilter) ([]models.DailyFlight, int, error) {
	var list []models.DailyFlight
	for _, f := range s.flights {
		list = append(list, *f)
	}
	return list, len(list), nil
}

func (s *dailyRepoStub) ListByDate(ctx context.Context, date time.Time) ([]models.DailyFlight, error) {
	var list []models.DailyFlight
	for _, f := range s.flights {
		if f.DateOfOperation.Equal(date) {
			list = append(list, *f)
		}
	}
	return list, nil
}

func (s *dailyRepoStub) FindByFlightID(ctx context.Context, flightID string) (*models.DailyFlight, error) {
	if f, ok := s.flights[flightID]; ok {
		clone := *f
		return &clone, nil
	}
	return nil, errNoRows()
}

func (s *dailyRepoStub) ExistsByFlightID(ctx context.Context, flightID string) (bool, error) {
	_, ok := s.flights[flightID]
	return ok, nil
}

func (s *dailyRepoStub) Create(ctx context.Context, f *models.DailyFlight) error {
	s.created = append(s.created, *f)
	s.flights[f.FlightID] = f
	return nil
}

func (s *dailyRepoStub) UpdateOperational(ctx context.Context, f *models.DailyFlight) error {
	if _, ok := s.flights[f.FlightID]; !ok {
		return errNoRows()
	}
	f.IsManuallyModified = true
	clone := *f
	s.flights[f.FlightID] = &clone
	s.updated = append(s.updated, clone)
	return nil
}

func (s *dailyRepoStub) UpdateStatus(ctx context.Context, flightID string, status models.FlightStatus) error {
	f, ok := s.flights[flightID]
	if !ok {
		return errNoRows()
	}
	f.Status = status
	return nil
}

type airlineStub struct {
	airlines map[int64]*models.Airline
}

func (s *airlineStub) FindByID(ctx context.Context, id int64) (*models.Airline, error) {
	if a, ok := s.airlines[id]; ok {
		return a, nil
	}
	return nil, errNoRows()
}

func thaiAirways() *airlineStub {
	return &airlineStub{airlines: map[int64]*models.Airline{
		1: {ID: 1, IATACode: "TG", ICAOCode: "THA", Name: "Thai Airways"},
	}}
}

func scheduledFlight(flightID string, date time.Time) *models.DailyFlight {
	return &models.DailyFlight{
		FlightID:        flightID,
		AirlineID:       1,
		FlightNumber:    "920",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "J",
		DateOfOperation: date,
		Status:          models.StatusScheduled,
		STOD:            date.Add(23*time.Hour + 40*time.Minute),
		STOA:            date.Add(29*time.Hour + 25*time.Minute),
		ScheduleVersion: 1,
	}
}

func TestDailyFlightCreateAdhocDerivesID(t *testing.T) {
	repo := newDailyRepoStub()
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	reg := "HS-TKZ"
	flight, err := svc.CreateAdhoc(context.Background(), dto.AdhocFlightRequest{
		AirlineID:       1,
		FlightNumber:    "8921",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "P",
		DateOfOperation: "2025-11-10",
		STOD:            "10:00",
		STOA:            "12:30",
		Registration:    &reg,
	})
	require.NoError(t, err)
	assert.Equal(t, "20251110-TG8921", flight.FlightID)
	assert.Nil(t, flight.ScheduleID)
	assert.Equal(t, models.StatusScheduled, flight.Status)
	assert.Equal(t, "HS-TKZ", flight.Registration)
	require.Len(t, repo.created, 1)
}

func TestDailyFlightCreateAdhocRejectsDuplicate(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	repo := newDailyRepoStub(scheduledFlight("20251110-TG920", date))
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	_, err := svc.CreateAdhoc(context.Background(), dto.AdhocFlightRequest{
		AirlineID:       1,
		FlightNumber:    "920",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "J",
		DateOfOperation: "2025-11-10",
		STOD:            "23:40",
		STOA:            "05:25",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDailyFlightOperationalUpdateSetsManualLock(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	repo := newDailyRepoStub(scheduledFlight("20251110-TG920", date))
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	gate := int64(12)
	flight, err := svc.ApplyOperationalUpdate(context.Background(), "20251110-TG920", dto.FlightOperationalUpdate{
		GateID: &gate,
	})
	require.NoError(t, err)
	assert.True(t, flight.IsManuallyModified)
	require.NotNil(t, flight.GateID)
	assert.Equal(t, int64(12), *flight.GateID)
	// Schedule-derived fields are untouched by an operator edit.
	assert.Equal(t, date.Add(23*time.Hour+40*time.Minute), flight.STOD)
}

func TestDailyFlightOperationalUpdateParsesMovementTimes(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	repo := newDailyRepoStub(scheduledFlight("20251110-TG920", date))
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	aobt := "2025-11-10T23:45:00Z"
	status := string(models.StatusOffBlock)
	flight, err := svc.ApplyOperationalUpdate(context.Background(), "20251110-TG920", dto.FlightOperationalUpdate{
		Status: &status,
		AOBT:   &aobt,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffBlock, flight.Status)
	require.NotNil(t, flight.AOBT)
	assert.Equal(t, time.Date(2025, 11, 10, 23, 45, 0, 0, time.UTC), *flight.AOBT)
}

func TestDailyFlightOperationalUpdateRejectsBadStatus(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	repo := newDailyRepoStub(scheduledFlight("20251110-TG920", date))
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	bogus := "GONE"
	_, err := svc.ApplyOperationalUpdate(context.Background(), "20251110-TG920", dto.FlightOperationalUpdate{
		Status: &bogus,
	})
	require.Error(t, err)
	assert.Empty(t, repo.updated)
}

func TestDailyFlightStatusUpdateKeepsAutoManaged(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	repo := newDailyRepoStub(scheduledFlight("20251110-TG920", date))
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	require.NoError(t, svc.UpdateStatus(context.Background(), "20251110-TG920", "AIR"))
	stored := repo.flights["20251110-TG920"]
	assert.Equal(t, models.StatusAirborne, stored.Status)
	assert.False(t, stored.IsManuallyModified)
}

func TestDailyFlightBuildDailySheet(t *testing.T) {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	flight := scheduledFlight("20251110-TG920", date)
	flight.AirlineIATA = "TG"
	flight.OriginIATA = "BKK"
	flight.DestinationIATA = "CDG"
	flight.AircraftICAO = "B77W"
	repo := newDailyRepoStub(flight)
	svc := NewDailyFlightService(repo, thaiAirways(), nil, nil)

	sheet, err := svc.BuildDailySheet(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "TG920", sheet.Rows[0]["Flight"])
	assert.Equal(t, "BKK-CDG", sheet.Rows[0]["Route"])
	assert.Equal(t, "23:40", sheet.Rows[0]["STD"])
}

func errNoRows() error {
	return sql.ErrNoRows
}
