package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type seasonalFlightRepository interface {
	List(ctx context.Context, filter models.SeasonalFlightFilter) ([]models.SeasonalFlight, int, error)
	FindByID(ctx context.Context, id int64) (*models.SeasonalFlight, error)
	ExistsBySeries(ctx context.Context, airlineID int64, flightNumber string, startDate time.Time, excludeID int64) (bool, error)
	Create(ctx context.Context, series *models.SeasonalFlight) error
	Update(ctx context.Context, series *models.SeasonalFlight) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type airlineReader interface {
	FindByID(ctx context.Context, id int64) (*models.Airline, error)
}

type airportReader interface {
	FindByID(ctx context.Context, id int64) (*models.Airport, error)
}

type aircraftTypeReader interface {
	FindByID(ctx context.Context, id int64) (*models.AircraftType, error)
}

// SeasonalFlightService manages recurring flight series.
type SeasonalFlightService struct {
	series    seasonalFlightRepository
	airlines  airlineReader
	airports  airportReader
	aircraft  aircraftTypeReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSeasonalFlightService wires the series CRUD surface.
func NewSeasonalFlightService(
	series seasonalFlightRepository,
	airlines airlineReader,
	airports airportReader,
	aircraft aircraftTypeReader,
	validate *validator.Validate,
	logger *zap.Logger,
) *SeasonalFlightService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeasonalFlightService{
		series:    series,
		airlines:  airlines,
		airports:  airports,
		aircraft:  aircraft,
		validator: validate,
		logger:    logger,
	}
}

// List returns series matching the filter.
func (s *SeasonalFlightService) List(ctx context.Context, filter models.SeasonalFlightFilter) ([]models.SeasonalFlight, *models.Pagination, error) {
	list, total, err := s.series.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list seasonal flights")
	}
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return list, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// Get loads one series.
func (s *SeasonalFlightService) Get(ctx context.Context, id int64) (*models.SeasonalFlight, error) {
	series, err := s.series.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrPatternNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load seasonal flight")
	}
	return series, nil
}

// Create validates and stores a new series.
func (s *SeasonalFlightService) Create(ctx context.Context, req dto.SeasonalFlightRequest) (*models.SeasonalFlight, error) {
	series, err := s.buildSeries(ctx, req)
	if err != nil {
		return nil, err
	}

	exists, err := s.series.ExistsBySeries(ctx, series.AirlineID, series.FlightNumber, series.StartDate, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check series identity")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a series with this airline, flight number and start date already exists")
	}

	if err := s.series.Create(ctx, series); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create seasonal flight")
	}
	s.logger.Info("seasonal flight created",
		zap.Int64("id", series.ID),
		zap.String("designator", series.Designator()))
	return series, nil
}

// Update validates and rewrites an existing series. It never touches the
// daily flights already generated from it; run propagation for that.
func (s *SeasonalFlightService) Update(ctx context.Context, id int64, req dto.SeasonalFlightRequest) (*models.SeasonalFlight, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	series, err := s.buildSeries(ctx, req)
	if err != nil {
		return nil, err
	}
	series.ID = id

	exists, err := s.series.ExistsBySeries(ctx, series.AirlineID, series.FlightNumber, series.StartDate, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check series identity")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a series with this airline, flight number and start date already exists")
	}

	if err := s.series.Update(ctx, series); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrPatternNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update seasonal flight")
	}
	s.logger.Info("seasonal flight updated", zap.Int64("id", id))
	return series, nil
}

// Deactivate stops a series from generating new flights.
func (s *SeasonalFlightService) Deactivate(ctx context.Context, id int64) error {
	if err := s.series.Deactivate(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrPatternNotFound
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "deactivate seasonal flight")
	}
	return nil
}

// Delete removes a series permanently. Existing daily flights keep
// flying with their schedule reference cleared.
func (s *SeasonalFlightService) Delete(ctx context.Context, id int64) error {
	if err := s.series.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrPatternNotFound
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "delete seasonal flight")
	}
	s.logger.Info("seasonal flight deleted", zap.Int64("id", id))
	return nil
}

func (s *SeasonalFlightService) buildSeries(ctx context.Context, req dto.SeasonalFlightRequest) (*models.SeasonalFlight, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid seasonal flight payload")
	}

	stod, err := models.ParseTimeOfDay(req.STOD)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid stod: %v", err))
	}
	stoa, err := models.ParseTimeOfDay(req.STOA)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid stoa: %v", err))
	}
	days, err := models.ParseDaysOfOperation(req.DaysOfOperation)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid days of operation: %v", err))
	}
	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidDateRange, "invalid start date")
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidDateRange, "invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, appErrors.Clone(appErrors.ErrInvalidDateRange, "end date precedes start date")
	}

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.SeasonalFlight{
		AirlineID:       req.AirlineID,
		FlightNumber:    req.FlightNumber,
		OriginID:        req.OriginID,
		DestinationID:   req.DestinationID,
		AircraftTypeID:  req.AircraftTypeID,
		ServiceType:     req.ServiceType,
		STOD:            stod,
		STOA:            stoa,
		StartDate:       startDate,
		EndDate:         endDate,
		DaysOfOperation: days,
		IsActive:        active,
	}, nil
}

func (s *SeasonalFlightService) checkReferences(ctx context.Context, req dto.SeasonalFlightRequest) error {
	if _, err := s.airlines.FindByID(ctx, req.AirlineID); err != nil {
		return referenceError(err, "airline")
	}
	if _, err := s.airports.FindByID(ctx, req.OriginID); err != nil {
		return referenceError(err, "origin airport")
	}
	if _, err := s.airports.FindByID(ctx, req.DestinationID); err != nil {
		return referenceError(err, "destination airport")
	}
	if _, err := s.aircraft.FindByID(ctx, req.AircraftTypeID); err != nil {
		return referenceError(err, "aircraft type")
	}
	return nil
}

func referenceError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown %s", entity))
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("load %s", entity))
}
