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
	"github.com/Iotonix/osams/pkg/export"
)

type dailyFlightRepository interface {
	List(ctx context.Context, filter models.DailyFlightFilter) ([]models.DailyFlight, int, error)
	ListByDate(ctx context.Context, date time.Time) ([]models.DailyFlight, error)
	FindByFlightID(ctx context.Context, flightID string) (*models.DailyFlight, error)
	ExistsByFlightID(ctx context.Context, flightID string) (bool, error)
	Create(ctx context.Context, f *models.DailyFlight) error
	UpdateOperational(ctx context.Context, f *models.DailyFlight) error
	UpdateStatus(ctx context.Context, flightID string, status models.FlightStatus) error
}

type airlineIATAReader interface {
	FindByID(ctx context.Context, id int64) (*models.Airline, error)
}

// DailyFlightService is the operational surface over generated and
// ad-hoc flights.
type DailyFlightService struct {
	flights   dailyFlightRepository
	airlines  airlineIATAReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDailyFlightService wires the daily flight surface.
func NewDailyFlightService(
	flights dailyFlightRepository,
	airlines airlineIATAReader,
	validate *validator.Validate,
	logger *zap.Logger,
) *DailyFlightService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyFlightService{
		flights:   flights,
		airlines:  airlines,
		validator: validate,
		logger:    logger,
	}
}

// List returns flights matching the filter.
func (s *DailyFlightService) List(ctx context.Context, filter models.DailyFlightFilter) ([]models.DailyFlight, *models.Pagination, error) {
	list, total, err := s.flights.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "list daily flights")
	}
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return list, &models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}, nil
}

// Get loads one flight by its stable identifier.
func (s *DailyFlightService) Get(ctx context.Context, flightID string) (*models.DailyFlight, error) {
	flight, err := s.flights.FindByFlightID(ctx, flightID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("flight %s not found", flightID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load daily flight")
	}
	return flight, nil
}

// CreateAdhoc inserts a one-off flight outside any series. Its flight id
// follows the same derivation as generated flights, so a clash with a
// future generation run is rejected here.
func (s *DailyFlightService) CreateAdhoc(ctx context.Context, req dto.AdhocFlightRequest) (*models.DailyFlight, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid flight payload")
	}

	date, err := time.ParseInLocation("2006-01-02", req.DateOfOperation, time.UTC)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date of operation")
	}
	stod, err := models.ParseTimeOfDay(req.STOD)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid stod: %v", err))
	}
	stoa, err := models.ParseTimeOfDay(req.STOA)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid stoa: %v", err))
	}

	airline, err := s.airlines.FindByID(ctx, req.AirlineID)
	if err != nil {
		return nil, referenceError(err, "airline")
	}

	flightID := models.DeriveFlightID(date, airline.IATACode, req.FlightNumber)
	exists, err := s.flights.ExistsByFlightID(ctx, flightID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "check flight id")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("flight %s already exists", flightID))
	}

	depTime, arrTime := models.ScheduledTimes(date, stod, stoa)
	flight := &models.DailyFlight{
		FlightID:        flightID,
		AirlineID:       req.AirlineID,
		FlightNumber:    req.FlightNumber,
		OriginID:        req.OriginID,
		DestinationID:   req.DestinationID,
		AircraftTypeID:  req.AircraftTypeID,
		ServiceType:     req.ServiceType,
		DateOfOperation: date,
		Status:          models.StatusScheduled,
		STOD:            depTime,
		STOA:            arrTime,
		GateID:          req.GateID,
		StandID:         req.StandID,
		CarouselID:      req.CarouselID,
		ScheduleVersion: 1,
	}
	if req.Registration != nil {
		flight.Registration = *req.Registration
	}
	if req.PublicRemark != nil {
		flight.PublicRemark = *req.PublicRemark
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create daily flight")
	}
	s.logger.Info("ad-hoc flight created", zap.String("flight_id", flightID))
	return flight, nil
}

// ApplyOperationalUpdate applies an operator edit. The first edit flips
// is_manually_modified and the flight stays fenced off from propagation
// for the rest of its life.
func (s *DailyFlightService) ApplyOperationalUpdate(ctx context.Context, flightID string, req dto.FlightOperationalUpdate) (*models.DailyFlight, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update payload")
	}

	flight, err := s.Get(ctx, flightID)
	if err != nil {
		return nil, err
	}

	if req.Registration != nil {
		flight.Registration = *req.Registration
	}
	if req.Status != nil {
		status := models.FlightStatus(*req.Status)
		if !status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown flight status %q", *req.Status))
		}
		flight.Status = status
	}
	if err := applyMovementTimes(flight, req); err != nil {
		return nil, err
	}
	if req.GateID != nil {
		flight.GateID = req.GateID
	}
	if req.StandID != nil {
		flight.StandID = req.StandID
	}
	if req.CarouselID != nil {
		flight.CarouselID = req.CarouselID
	}
	if req.PublicRemark != nil {
		flight.PublicRemark = *req.PublicRemark
	}

	if err := s.flights.UpdateOperational(ctx, flight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("flight %s not found", flightID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update daily flight")
	}
	flight.IsManuallyModified = true
	s.logger.Info("flight manually updated", zap.String("flight_id", flightID))
	return flight, nil
}

// UpdateStatus advances a flight through its lifecycle. Status is an
// operational fact, so it does not mark the flight manually modified.
func (s *DailyFlightService) UpdateStatus(ctx context.Context, flightID string, raw string) error {
	status := models.FlightStatus(raw)
	if !status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown flight status %q", raw))
	}
	if err := s.flights.UpdateStatus(ctx, flightID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("flight %s not found", flightID))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "update flight status")
	}
	return nil
}

// BuildDailySheet assembles one operational day as a tabular dataset for
// the CSV and PDF exporters.
func (s *DailyFlightService) BuildDailySheet(ctx context.Context, date time.Time) (*export.Dataset, error) {
	flights, err := s.flights.ListByDate(ctx, atMidnightUTC(date))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load daily sheet")
	}

	dataset := &export.Dataset{
		Headers: []string{"Flight ID", "Airline", "Flight", "Route", "Aircraft", "STD", "STA", "Status", "Gate", "Remark"},
	}
	for i := range flights {
		f := &flights[i]
		row := map[string]string{
			"Flight ID": f.FlightID,
			"Airline":   f.AirlineIATA,
			"Flight":    f.AirlineIATA + f.FlightNumber,
			"Route":     f.OriginIATA + "-" + f.DestinationIATA,
			"Aircraft":  f.AircraftICAO,
			"STD":       f.STOD.Format("15:04"),
			"STA":       f.STOA.Format("15:04"),
			"Status":    string(f.Status),
		}
		if f.GateID != nil {
			row["Gate"] = fmt.Sprintf("%d", *f.GateID)
		}
		row["Remark"] = f.PublicRemark
		dataset.Rows = append(dataset.Rows, row)
	}
	return dataset, nil
}

func applyMovementTimes(flight *models.DailyFlight, req dto.FlightOperationalUpdate) error {
	assign := func(field string, raw *string, dest **time.Time) error {
		if raw == nil {
			return nil
		}
		if *raw == "" {
			*dest = nil
			return nil
		}
		ts, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s timestamp", field))
		}
		utc := ts.UTC()
		*dest = &utc
		return nil
	}
	if err := assign("etod", req.ETOD, &flight.ETOD); err != nil {
		return err
	}
	if err := assign("aobt", req.AOBT, &flight.AOBT); err != nil {
		return err
	}
	if err := assign("atod", req.ATOD, &flight.ATOD); err != nil {
		return err
	}
	if err := assign("etoa", req.ETOA, &flight.ETOA); err != nil {
		return err
	}
	if err := assign("atoa", req.ATOA, &flight.ATOA); err != nil {
		return err
	}
	return assign("aibt", req.AIBT, &flight.AIBT)
}
