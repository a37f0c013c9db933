package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type airportRepository interface {
	List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, int, error)
	FindByID(ctx context.Context, id int64) (*models.Airport, error)
	ExistsByCode(ctx context.Context, iata, icao string, excludeID int64) (bool, error)
	Create(ctx context.Context, airport *models.Airport) error
	Update(ctx context.Context, airport *models.Airport) error
	Deactivate(ctx context.Context, id int64) error
}

// AirportService manages airport reference data.
type AirportService struct {
	airports  airportRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAirportService wires airport CRUD.
func NewAirportService(airports airportRepository, validate *validator.Validate, logger *zap.Logger) *AirportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AirportService{airports: airports, validator: validate, logger: logger}
}

// List returns airports matching the filter.
func (s *AirportService) List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, *models.Pagination, error) {
	list, total, err := s.airports.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list airports")
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

// Get loads one airport.
func (s *AirportService) Get(ctx context.Context, id int64) (*models.Airport, error) {
	airport, err := s.airports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "airport not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load airport")
	}
	return airport, nil
}

// Create validates and stores a new airport.
func (s *AirportService) Create(ctx context.Context, req dto.AirportRequest) (*models.Airport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid airport payload")
	}
	exists, err := s.airports.ExistsByCode(ctx, req.IATACode, req.ICAOCode, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check airport codes")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an airport with this IATA or ICAO code already exists")
	}

	airport := airportFromRequest(req)
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create airport")
	}
	s.logger.Info("airport created", zap.Int64("id", airport.ID), zap.String("iata", airport.IATACode))
	return airport, nil
}

// Update validates and rewrites an airport.
func (s *AirportService) Update(ctx context.Context, id int64, req dto.AirportRequest) (*models.Airport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid airport payload")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	exists, err := s.airports.ExistsByCode(ctx, req.IATACode, req.ICAOCode, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check airport codes")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an airport with this IATA or ICAO code already exists")
	}

	airport := airportFromRequest(req)
	airport.ID = id
	if err := s.airports.Update(ctx, airport); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "airport not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update airport")
	}
	return airport, nil
}

// Deactivate soft-deletes an airport.
func (s *AirportService) Deactivate(ctx context.Context, id int64) error {
	if err := s.airports.Deactivate(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "airport not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "deactivate airport")
	}
	return nil
}

func airportFromRequest(req dto.AirportRequest) *models.Airport {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Airport{
		IATACode:  req.IATACode,
		ICAOCode:  req.ICAOCode,
		Name:      req.Name,
		City:      req.City,
		Country:   req.Country,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsActive:  active,
	}
}
