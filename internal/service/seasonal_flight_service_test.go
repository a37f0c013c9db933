package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
)

type seasonalRepoStub struct {
	series   map[int64]*models.SeasonalFlight
	existing bool
	created  []models.SeasonalFlight
	updated  []models.SeasonalFlight
	nextID   int64
}

func newSeasonalRepoStub() *seasonalRepoStub {
	return &seasonalRepoStub{series: map[int64]*models.SeasonalFlight{}, nextID: 1}
}

func (s *seasonalRepoStub) List(ctx context.Context, filter models.SeasonalFlightFilter) ([]models.SeasonalFlight, int, error) {
	var list []models.SeasonalFlight
	for _, sf := range s.series {
		list = append(list, *sf)
	}
	return list, len(list), nil
}

func (s *seasonalRepoStub) FindByID(ctx context.Context, id int64) (*models.SeasonalFlight, error) {
	if sf, ok := s.series[id]; ok {
		clone := *sf
		return &clone, nil
	}
	return nil, errNoRows()
}

func (s *seasonalRepoStub) ExistsBySeries(ctx context.Context, airlineID int64, flightNumber string, startDate time.Time, excludeID int64) (bool, error) {
	return s.existing, nil
}

func (s *seasonalRepoStub) Create(ctx context.Context, series *models.SeasonalFlight) error {
	series.ID = s.nextID
	s.nextID++
	s.series[series.ID] = series
	s.created = append(s.created, *series)
	return nil
}

func (s *seasonalRepoStub) Update(ctx context.Context, series *models.SeasonalFlight) error {
	if _, ok := s.series[series.ID]; !ok {
		return errNoRows()
	}
	s.series[series.ID] = series
	s.updated = append(s.updated, *series)
	return nil
}

func (s *seasonalRepoStub) Deactivate(ctx context.Context, id int64) error {
	sf, ok := s.series[id]
	if !ok {
		return errNoRows()
	}
	sf.IsActive = false
	return nil
}

func (s *seasonalRepoStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.series[id]; !ok {
		return errNoRows()
	}
	delete(s.series, id)
	return nil
}

type airportStub struct{ ids map[int64]bool }

func (s *airportStub) FindByID(ctx context.Context, id int64) (*models.Airport, error) {
	if s.ids[id] {
		return &models.Airport{ID: id}, nil
	}
	return nil, errNoRows()
}

type aircraftStub struct{ ids map[int64]bool }

func (s *aircraftStub) FindByID(ctx context.Context, id int64) (*models.AircraftType, error) {
	if s.ids[id] {
		return &models.AircraftType{ID: id}, nil
	}
	return nil, errNoRows()
}

func newSeasonalService(repo *seasonalRepoStub) *SeasonalFlightService {
	return NewSeasonalFlightService(
		repo,
		thaiAirways(),
		&airportStub{ids: map[int64]bool{2: true, 3: true}},
		&aircraftStub{ids: map[int64]bool{4: true}},
		nil, nil,
	)
}

func validSeriesRequest() dto.SeasonalFlightRequest {
	return dto.SeasonalFlightRequest{
		AirlineID:       1,
		FlightNumber:    "920",
		OriginID:        2,
		DestinationID:   3,
		AircraftTypeID:  4,
		ServiceType:     "J",
		STOD:            "23:40",
		STOA:            "05:25",
		StartDate:       "2025-10-26",
		EndDate:         "2026-03-28",
		DaysOfOperation: "135",
	}
}

func TestSeasonalFlightCreateNormalisesDays(t *testing.T) {
	repo := newSeasonalRepoStub()
	svc := newSeasonalService(repo)

	req := validSeriesRequest()
	req.DaysOfOperation = "531"
	series, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "135", string(series.DaysOfOperation))
	assert.True(t, series.IsActive)
	assert.Equal(t, int64(1), series.ID)
}

func TestSeasonalFlightCreateRejectsBadDays(t *testing.T) {
	svc := newSeasonalService(newSeasonalRepoStub())

	req := validSeriesRequest()
	req.DaysOfOperation = "108"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
}

func TestSeasonalFlightCreateRejectsInvertedDates(t *testing.T) {
	svc := newSeasonalService(newSeasonalRepoStub())

	req := validSeriesRequest()
	req.StartDate = "2026-03-28"
	req.EndDate = "2025-10-26"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
}

func TestSeasonalFlightCreateRejectsUnknownAirport(t *testing.T) {
	svc := newSeasonalService(newSeasonalRepoStub())

	req := validSeriesRequest()
	req.DestinationID = 99
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination")
}

func TestSeasonalFlightCreateRejectsDuplicateSeries(t *testing.T) {
	repo := newSeasonalRepoStub()
	repo.existing = true
	svc := newSeasonalService(repo)

	_, err := svc.Create(context.Background(), validSeriesRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSeasonalFlightUpdateRewritesSeries(t *testing.T) {
	repo := newSeasonalRepoStub()
	svc := newSeasonalService(repo)
	created, err := svc.Create(context.Background(), validSeriesRequest())
	require.NoError(t, err)

	req := validSeriesRequest()
	req.STOD = "23:55"
	updated, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "23:55", updated.STOD.String())
	require.Len(t, repo.updated, 1)
}

func TestSeasonalFlightDeactivate(t *testing.T) {
	repo := newSeasonalRepoStub()
	svc := newSeasonalService(repo)
	created, err := svc.Create(context.Background(), validSeriesRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), created.ID))
	assert.False(t, repo.series[created.ID].IsActive)

	err = svc.Deactivate(context.Background(), 999)
	assert.Error(t, err)
}
