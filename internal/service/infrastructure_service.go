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

type infrastructureRepository interface {
	ListTerminals(ctx context.Context) ([]models.Terminal, error)
	FindTerminalByID(ctx context.Context, id int64) (*models.Terminal, error)
	CreateTerminal(ctx context.Context, t *models.Terminal) error
	UpdateTerminal(ctx context.Context, t *models.Terminal) error
	ListGates(ctx context.Context) ([]models.Gate, error)
	FindGateByID(ctx context.Context, id int64) (*models.Gate, error)
	CreateGate(ctx context.Context, g *models.Gate) error
	UpdateGate(ctx context.Context, g *models.Gate) error
	SetGateAvailability(ctx context.Context, id int64, available bool) error
	ListStands(ctx context.Context) ([]models.Stand, error)
	FindStandByID(ctx context.Context, id int64) (*models.Stand, error)
	CreateStand(ctx context.Context, s *models.Stand) error
	UpdateStand(ctx context.Context, s *models.Stand) error
	SetStandAvailability(ctx context.Context, id int64, available bool) error
	ListCounters(ctx context.Context) ([]models.CheckInCounter, error)
	CreateCounter(ctx context.Context, c *models.CheckInCounter) error
	ListCarousels(ctx context.Context) ([]models.BaggageCarousel, error)
	CreateCarousel(ctx context.Context, c *models.BaggageCarousel) error
	ListRunways(ctx context.Context) ([]models.Runway, error)
	CreateRunway(ctx context.Context, rw *models.Runway) error
}

// InfrastructureService manages the airport's physical resources.
type InfrastructureService struct {
	repo      infrastructureRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInfrastructureService wires infrastructure CRUD.
func NewInfrastructureService(repo infrastructureRepository, validate *validator.Validate, logger *zap.Logger) *InfrastructureService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InfrastructureService{repo: repo, validator: validate, logger: logger}
}

// ListTerminals returns every terminal.
func (s *InfrastructureService) ListTerminals(ctx context.Context) ([]models.Terminal, error) {
	list, err := s.repo.ListTerminals(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list terminals")
	}
	return list, nil
}

// CreateTerminal validates and stores a terminal.
func (s *InfrastructureService) CreateTerminal(ctx context.Context, req dto.TerminalRequest) (*models.Terminal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid terminal payload")
	}
	terminal := &models.Terminal{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    boolOrTrue(req.IsActive),
	}
	if err := s.repo.CreateTerminal(ctx, terminal); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create terminal")
	}
	return terminal, nil
}

// UpdateTerminal rewrites a terminal.
func (s *InfrastructureService) UpdateTerminal(ctx context.Context, id int64, req dto.TerminalRequest) (*models.Terminal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid terminal payload")
	}
	terminal := &models.Terminal{
		ID:          id,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    boolOrTrue(req.IsActive),
	}
	if err := s.repo.UpdateTerminal(ctx, terminal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "terminal not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update terminal")
	}
	return terminal, nil
}

// ListGates returns every gate.
func (s *InfrastructureService) ListGates(ctx context.Context) ([]models.Gate, error) {
	list, err := s.repo.ListGates(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list gates")
	}
	return list, nil
}

// CreateGate validates and stores a gate against an existing terminal.
func (s *InfrastructureService) CreateGate(ctx context.Context, req dto.GateRequest) (*models.Gate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid gate payload")
	}
	if _, err := s.repo.FindTerminalByID(ctx, req.TerminalID); err != nil {
		return nil, referenceError(err, "terminal")
	}
	gate := &models.Gate{
		Code:              req.Code,
		TerminalID:        req.TerminalID,
		GateType:          models.GateType(req.GateType),
		MaxWingspanMeters: req.MaxWingspanMeters,
		IsActive:          boolOrTrue(req.IsActive),
		IsAvailable:       boolOrTrue(req.IsAvailable),
		Notes:             req.Notes,
	}
	if err := s.repo.CreateGate(ctx, gate); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create gate")
	}
	return gate, nil
}

// SetGateAvailability toggles a gate in or out of service.
func (s *InfrastructureService) SetGateAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.repo.SetGateAvailability(ctx, id, available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "gate not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "set gate availability")
	}
	s.logger.Info("gate availability changed", zap.Int64("id", id), zap.Bool("available", available))
	return nil
}

// ListStands returns every stand.
func (s *InfrastructureService) ListStands(ctx context.Context) ([]models.Stand, error) {
	list, err := s.repo.ListStands(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list stands")
	}
	return list, nil
}

// CreateStand validates and stores a stand.
func (s *InfrastructureService) CreateStand(ctx context.Context, req dto.StandRequest) (*models.Stand, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid stand payload")
	}
	stand := &models.Stand{
		Code:              req.Code,
		SizeCode:          models.StandSize(req.SizeCode),
		MaxWingspanMeters: req.MaxWingspanMeters,
		HasPushback:       req.HasPushback,
		IsActive:          boolOrTrue(req.IsActive),
		IsAvailable:       boolOrTrue(req.IsAvailable),
		Notes:             req.Notes,
	}
	if err := s.repo.CreateStand(ctx, stand); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create stand")
	}
	return stand, nil
}

// SetStandAvailability toggles a stand in or out of service.
func (s *InfrastructureService) SetStandAvailability(ctx context.Context, id int64, available bool) error {
	if err := s.repo.SetStandAvailability(ctx, id, available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "stand not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "set stand availability")
	}
	s.logger.Info("stand availability changed", zap.Int64("id", id), zap.Bool("available", available))
	return nil
}

// ListCounters returns every check-in counter.
func (s *InfrastructureService) ListCounters(ctx context.Context) ([]models.CheckInCounter, error) {
	list, err := s.repo.ListCounters(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list check-in counters")
	}
	return list, nil
}

// CreateCounter validates and stores a check-in counter.
func (s *InfrastructureService) CreateCounter(ctx context.Context, req dto.CounterRequest) (*models.CheckInCounter, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid counter payload")
	}
	if _, err := s.repo.FindTerminalByID(ctx, req.TerminalID); err != nil {
		return nil, referenceError(err, "terminal")
	}
	counter := &models.CheckInCounter{
		Code:         req.Code,
		TerminalID:   req.TerminalID,
		CounterGroup: req.CounterGroup,
		IsActive:     boolOrTrue(req.IsActive),
		IsAvailable:  boolOrTrue(req.IsAvailable),
	}
	if err := s.repo.CreateCounter(ctx, counter); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create check-in counter")
	}
	return counter, nil
}

// ListCarousels returns every baggage carousel.
func (s *InfrastructureService) ListCarousels(ctx context.Context) ([]models.BaggageCarousel, error) {
	list, err := s.repo.ListCarousels(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list baggage carousels")
	}
	return list, nil
}

// CreateCarousel validates and stores a baggage carousel.
func (s *InfrastructureService) CreateCarousel(ctx context.Context, req dto.CarouselRequest) (*models.BaggageCarousel, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid carousel payload")
	}
	if _, err := s.repo.FindTerminalByID(ctx, req.TerminalID); err != nil {
		return nil, referenceError(err, "terminal")
	}
	carousel := &models.BaggageCarousel{
		Code:        req.Code,
		TerminalID:  req.TerminalID,
		IsActive:    boolOrTrue(req.IsActive),
		IsAvailable: boolOrTrue(req.IsAvailable),
	}
	if err := s.repo.CreateCarousel(ctx, carousel); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create baggage carousel")
	}
	return carousel, nil
}

// ListRunways returns every runway.
func (s *InfrastructureService) ListRunways(ctx context.Context) ([]models.Runway, error) {
	list, err := s.repo.ListRunways(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list runways")
	}
	return list, nil
}

// CreateRunway validates and stores a runway.
func (s *InfrastructureService) CreateRunway(ctx context.Context, req dto.RunwayRequest) (*models.Runway, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid runway payload")
	}
	runway := &models.Runway{
		Name:         req.Name,
		LengthMeters: req.LengthMeters,
		WidthMeters:  req.WidthMeters,
		Surface:      models.RunwaySurface(req.Surface),
		IsActive:     boolOrTrue(req.IsActive),
	}
	if err := s.repo.CreateRunway(ctx, runway); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create runway")
	}
	return runway, nil
}

func boolOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
