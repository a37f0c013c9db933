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

// AirportHandler exposes airport master data endpoints.
type AirportHandler struct {
	service *service.AirportService
}

// NewAirportHandler constructs the handler.
func NewAirportHandler(svc *service.AirportService) *AirportHandler {
	return &AirportHandler{service: svc}
}

// List godoc
// @Summary List airports
// @Tags Airports
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Search name or code"
// @Param country query string false "Filter by country"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /airports [get]
func (h *AirportHandler) List(c *gin.Context) {
	filter := models.AirportFilter{
		Active:   queryBoolPtr(c, "active"),
		Search:   strings.TrimSpace(c.Query("search")),
		Country:  strings.TrimSpace(c.Query("country")),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "limit", 20),
	}
	list, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, pagination)
}

// Get godoc
// @Summary Get one airport
// @Tags Airports
// @Produce json
// @Param id path int true "Airport ID"
// @Success 200 {object} response.Envelope
// @Router /airports/{id} [get]
func (h *AirportHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	airport, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, airport, nil)
}

// Create godoc
// @Summary Create an airport
// @Tags Airports
// @Accept json
// @Produce json
// @Param payload body dto.AirportRequest true "Airport payload"
// @Success 201 {object} response.Envelope
// @Router /airports [post]
func (h *AirportHandler) Create(c *gin.Context) {
	var req dto.AirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	airport, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, airport)
}

// Update godoc
// @Summary Update an airport
// @Tags Airports
// @Accept json
// @Produce json
// @Param id path int true "Airport ID"
// @Param payload body dto.AirportRequest true "Airport payload"
// @Success 200 {object} response.Envelope
// @Router /airports/{id} [put]
func (h *AirportHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	airport, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, airport, nil)
}

// Deactivate godoc
// @Summary Deactivate an airport
// @Tags Airports
// @Produce json
// @Param id path int true "Airport ID"
// @Success 204
// @Router /airports/{id} [delete]
func (h *AirportHandler) Deactivate(c *gin.Context) {
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
