package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	"github.com/Iotonix/osams/internal/service"
	appErrors "github.com/Iotonix/osams/pkg/errors"
	"github.com/Iotonix/osams/pkg/response"
)

// SeasonalFlightHandler exposes seasonal series CRUD endpoints.
type SeasonalFlightHandler struct {
	service *service.SeasonalFlightService
}

// NewSeasonalFlightHandler constructs the handler.
func NewSeasonalFlightHandler(svc *service.SeasonalFlightService) *SeasonalFlightHandler {
	return &SeasonalFlightHandler{service: svc}
}

// List godoc
// @Summary List seasonal flights
// @Tags SeasonalFlights
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param airline_id query int false "Filter by airline"
// @Param search query string false "Search flight number or carrier code"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /seasonal-flights [get]
func (h *SeasonalFlightHandler) List(c *gin.Context) {
	filter := models.SeasonalFlightFilter{
		Active:    queryBoolPtr(c, "active"),
		AirlineID: queryInt64Ptr(c, "airline_id"),
		Search:    strings.TrimSpace(c.Query("search")),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "limit", 20),
	}
	list, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, pagination)
}

// Get godoc
// @Summary Get one seasonal flight
// @Tags SeasonalFlights
// @Produce json
// @Param id path int true "Series ID"
// @Success 200 {object} response.Envelope
// @Router /seasonal-flights/{id} [get]
func (h *SeasonalFlightHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	series, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series, nil)
}

// Create godoc
// @Summary Create a seasonal flight
// @Tags SeasonalFlights
// @Accept json
// @Produce json
// @Param payload body dto.SeasonalFlightRequest true "Series payload"
// @Success 201 {object} response.Envelope
// @Router /seasonal-flights [post]
func (h *SeasonalFlightHandler) Create(c *gin.Context) {
	var req dto.SeasonalFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	series, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, series)
}

// Update godoc
// @Summary Update a seasonal flight
// @Tags SeasonalFlights
// @Accept json
// @Produce json
// @Param id path int true "Series ID"
// @Param payload body dto.SeasonalFlightRequest true "Series payload"
// @Success 200 {object} response.Envelope
// @Router /seasonal-flights/{id} [put]
func (h *SeasonalFlightHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SeasonalFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	series, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series, nil)
}

// Deactivate godoc
// @Summary Deactivate a seasonal flight
// @Tags SeasonalFlights
// @Produce json
// @Param id path int true "Series ID"
// @Success 204
// @Router /seasonal-flights/{id}/deactivate [post]
func (h *SeasonalFlightHandler) Deactivate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a seasonal flight
// @Tags SeasonalFlights
// @Produce json
// @Param id path int true "Series ID"
// @Success 204
// @Router /seasonal-flights/{id} [delete]
func (h *SeasonalFlightHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
