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

type airlineRepository interface {
	List(ctx context.Context, filter models.AirlineFilter) ([]models.Airline, int, error)
	FindByID(ctx context.Context, id int64) (*models.Airline, error)
	ExistsByCode(ctx context.Context, iata, icao string, excludeID int64) (bool, error)
	Create(ctx context.Context, airline *models.Airline) error
	Update(ctx context.Context, airline *models.Airline) error
	Deactivate(ctx context.Context, id int64) error
}

// AirlineService manages carrier master data.
type AirlineService struct {
	airlines  airlineRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAirlineService wires airline CRUD.
func NewAirlineService(airlines airlineRepository, validate *validator.Validate, logger *zap.Logger) *AirlineService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AirlineService{airlines: airlines, validator: validate, logger: logger}
}

// List returns airlines matching the filter.
func (s *AirlineService) List(ctx context.Context, filter models.AirlineFilter) ([]models.Airline, *models.Pagination, error) {
	list, total, err := s.airlines.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list airlines")
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

// Get loads one airline.
func (s *AirlineService) Get(ctx context.Context, id int64) (*models.Airline, error) {
	airline, err := s.airlines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "airline not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load airline")
	}
	return airline, nil
}

// Create validates and stores a new airline.
func (s *AirlineService) Create(ctx context.Context, req dto.AirlineRequest) (*models.Airline, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid airline payload")
	}
	exists, err := s.airlines.ExistsByCode(ctx, req.IATACode, req.ICAOCode, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check airline codes")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an airline with this IATA or ICAO code already exists")
	}

	airline := airlineFromRequest(req)
	if err := s.airlines.Create(ctx, airline); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create airline")
	}
	s.logger.Info("airline created", zap.Int64("id", airline.ID), zap.String("iata", airline.IATACode))
	return airline, nil
}

// Update validates and rewrites an airline.
func (s *AirlineService) Update(ctx context.Context, id int64, req dto.AirlineRequest) (*models.Airline, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid airline payload")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	exists, err := s.airlines.ExistsByCode(ctx, req.IATACode, req.ICAOCode, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check airline codes")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an airline with this IATA or ICAO code already exists")
	}

	airline := airlineFromRequest(req)
	airline.ID = id
	if err := s.airlines.Update(ctx, airline); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "airline not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update airline")
	}
	return airline, nil
}

// Deactivate soft-deletes an airline. Its existing flights are untouched.
func (s *AirlineService) Deactivate(ctx context.Context, id int64) error {
	if err := s.airlines.Deactivate(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "airline not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "deactivate airline")
	}
	return nil
}

func airlineFromRequest(req dto.AirlineRequest) *models.Airline {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Airline{
		IATACode:     req.IATACode,
		ICAOCode:     req.ICAOCode,
		Name:         req.Name,
		Country:      req.Country,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     active,
	}
}
