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

type aircraftTypeRepository interface {
	List(ctx context.Context, filter models.AircraftTypeFilter) ([]models.AircraftType, int, error)
	FindByID(ctx context.Context, id int64) (*models.AircraftType, error)
	ExistsByICAO(ctx context.Context, icao string, excludeID int64) (bool, error)
	Create(ctx context.Context, at *models.AircraftType) error
	Update(ctx context.Context, at *models.AircraftType) error
	Deactivate(ctx context.Context, id int64) error
}

// AircraftTypeService manages equipment master data.
type AircraftTypeService struct {
	types     aircraftTypeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAircraftTypeService wires aircraft type CRUD.
func NewAircraftTypeService(types aircraftTypeRepository, validate *validator.Validate, logger *zap.Logger) *AircraftTypeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AircraftTypeService{types: types, validator: validate, logger: logger}
}

// List returns aircraft types matching the filter.
func (s *AircraftTypeService) List(ctx context.Context, filter models.AircraftTypeFilter) ([]models.AircraftType, *models.Pagination, error) {
	list, total, err := s.types.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list aircraft types")
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

// Get loads one aircraft type.
func (s *AircraftTypeService) Get(ctx context.Context, id int64) (*models.AircraftType, error) {
	at, err := s.types.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "aircraft type not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load aircraft type")
	}
	return at, nil
}

// Create validates and stores a new aircraft type.
func (s *AircraftTypeService) Create(ctx context.Context, req dto.AircraftTypeRequest) (*models.AircraftType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid aircraft type payload")
	}
	exists, err := s.types.ExistsByICAO(ctx, req.ICAOCode, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check aircraft type code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an aircraft type with this ICAO code already exists")
	}

	at := aircraftTypeFromRequest(req)
	if err := s.types.Create(ctx, at); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create aircraft type")
	}
	s.logger.Info("aircraft type created", zap.Int64("id", at.ID), zap.String("icao", at.ICAOCode))
	return at, nil
}

// Update validates and rewrites an aircraft type.
func (s *AircraftTypeService) Update(ctx context.Context, id int64, req dto.AircraftTypeRequest) (*models.AircraftType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid aircraft type payload")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	exists, err := s.types.ExistsByICAO(ctx, req.ICAOCode, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check aircraft type code")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an aircraft type with this ICAO code already exists")
	}

	at := aircraftTypeFromRequest(req)
	at.ID = id
	if err := s.types.Update(ctx, at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "aircraft type not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update aircraft type")
	}
	return at, nil
}

// Deactivate soft-deletes an aircraft type.
func (s *AircraftTypeService) Deactivate(ctx context.Context, id int64) error {
	if err := s.types.Deactivate(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "aircraft type not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "deactivate aircraft type")
	}
	return nil
}

func aircraftTypeFromRequest(req dto.AircraftTypeRequest) *models.AircraftType {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.AircraftType{
		ICAOCode:           req.ICAOCode,
		IATACode:           req.IATACode,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
		WakeTurbulence:     models.WakeTurbulence(req.WakeTurbulence),
		SizeCategory:       models.SizeCategory(req.SizeCategory),
		WingspanMeters:     req.WingspanMeters,
		LengthMeters:       req.LengthMeters,
		MaxTakeoffWeightKg: req.MaxTakeoffWeightKg,
		TypicalCapacity:    req.TypicalCapacity,
		IsActive:           active,
	}
}
