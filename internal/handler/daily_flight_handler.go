package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
	"github.com/Iotonix/osams/pkg/export"
	"github.com/Iotonix/osams/pkg/response"
)

type dailyFlightProvider interface {
	List(ctx context.Context, filter models.DailyFlightFilter) ([]models.DailyFlight, *models.Pagination, error)
	Get(ctx context.Context, flightID string) (*models.DailyFlight, error)
	CreateAdhoc(ctx context.Context, req dto.AdhocFlightRequest) (*models.DailyFlight, error)
	ApplyOperationalUpdate(ctx context.Context, flightID string, req dto.FlightOperationalUpdate) (*models.DailyFlight, error)
	UpdateStatus(ctx context.Context, flightID string, raw string) error
	BuildDailySheet(ctx context.Context, date time.Time) (*export.Dataset, error)
}

// DailyFlightHandler exposes daily flight endpoints including exports.
type DailyFlightHandler struct {
	service   dailyFlightProvider
	dashboard cacheInvalidator
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewDailyFlightHandler constructs the handler.
func NewDailyFlightHandler(svc dailyFlightProvider, dashboard cacheInvalidator) *DailyFlightHandler {
	return &DailyFlightHandler{
		service:   svc,
		dashboard: dashboard,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// List godoc
// @Summary List daily flights
// @Tags DailyFlights
// @Produce json
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param date_from query string false "Window start (YYYY-MM-DD)"
// @Param date_to query string false "Window end (YYYY-MM-DD)"
// @Param airline_id query int false "Filter by airline"
// @Param status query string false "Filter by status code"
// @Param manual_only query bool false "Only manually modified flights"
// @Param search query string false "Search flight id or number"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /daily-flights [get]
func (h *DailyFlightHandler) List(c *gin.Context) {
	filter := models.DailyFlightFilter{
		Status:   models.FlightStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "limit", 50),
	}
	var err error
	if filter.Date, err = queryDatePtr(c, "date"); err != nil {
		response.Error(c, err)
		return
	}
	if filter.DateFrom, err = queryDatePtr(c, "date_from"); err != nil {
		response.Error(c, err)
		return
	}
	if filter.DateTo, err = queryDatePtr(c, "date_to"); err != nil {
		response.Error(c, err)
		return
	}
	filter.AirlineID = queryInt64Ptr(c, "airline_id")
	if manual := queryBoolPtr(c, "manual_only"); manual != nil {
		filter.ManualOnly = *manual
	}

	list, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, pagination)
}

// Get godoc
// @Summary Get one daily flight
// @Tags DailyFlights
// @Produce json
// @Param flight_id path string true "Flight ID"
// @Success 200 {object} response.Envelope
// @Router /daily-flights/{flight_id} [get]
func (h *DailyFlightHandler) Get(c *gin.Context) {
	flight, err := h.service.Get(c.Request.Context(), c.Param("flight_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flight, nil)
}

// CreateAdhoc godoc
// @Summary Create an ad-hoc daily flight
// @Tags DailyFlights
// @Accept json
// @Produce json
// @Param payload body dto.AdhocFlightRequest true "Flight payload"
// @Success 201 {object} response.Envelope
// @Router /daily-flights [post]
func (h *DailyFlightHandler) CreateAdhoc(c *gin.Context) {
	var req dto.AdhocFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	flight, err := h.service.CreateAdhoc(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.dashboard.Invalidate(c.Request.Context())
	response.Created(c, flight)
}

// UpdateOperational godoc
// @Summary Apply an operational update to a daily flight
// @Tags DailyFlights
// @Accept json
// @Produce json
// @Param flight_id path string true "Flight ID"
// @Param payload body dto.FlightOperationalUpdate true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /daily-flights/{flight_id} [patch]
func (h *DailyFlightHandler) UpdateOperational(c *gin.Context) {
	var req dto.FlightOperationalUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	flight, err := h.service.ApplyOperationalUpdate(c.Request.Context(), c.Param("flight_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.dashboard.Invalidate(c.Request.Context())
	response.JSON(c, http.StatusOK, flight, nil)
}

// UpdateStatus godoc
// @Summary Update the status of a daily flight
// @Tags DailyFlights
// @Accept json
// @Produce json
// @Param flight_id path string true "Flight ID"
// @Param payload body dto.StatusUpdateRequest true "New status"
// @Success 204
// @Router /daily-flights/{flight_id}/status [put]
func (h *DailyFlightHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("flight_id"), req.Status); err != nil {
		response.Error(c, err)
		return
	}
	h.dashboard.Invalidate(c.Request.Context())
	response.NoContent(c)
}

// ExportCSV godoc
// @Summary Export the daily flight sheet as CSV
// @Tags DailyFlights
// @Produce text/csv
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string "CSV payload"
// @Router /daily-flights/export/csv [get]
func (h *DailyFlightHandler) ExportCSV(c *gin.Context) {
	date, err := exportDate(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	sheet, err := h.service.BuildDailySheet(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := h.csv.Render(*sheet)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("daily-flights-%s.csv", date.Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", payload)
}

// ExportPDF godoc
// @Summary Export the daily flight sheet as PDF
// @Tags DailyFlights
// @Produce application/pdf
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string "PDF payload"
// @Router /daily-flights/export/pdf [get]
func (h *DailyFlightHandler) ExportPDF(c *gin.Context) {
	date, err := exportDate(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	sheet, err := h.service.BuildDailySheet(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	title := "Daily Flight Sheet " + date.Format("2006-01-02")
	payload, err := h.pdf.Render(*sheet, title)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("daily-flights-%s.pdf", date.Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", payload)
}

func exportDate(c *gin.Context) (time.Time, error) {
	if ptr, err := queryDatePtr(c, "date"); err != nil {
		return time.Time{}, err
	} else if ptr != nil {
		return *ptr, nil
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}
