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

// AircraftTypeHandler exposes aircraft type master data endpoints.
type AircraftTypeHandler struct {
	service *service.AircraftTypeService
}

// NewAircraftTypeHandler constructs the handler.
func NewAircraftTypeHandler(svc *service.AircraftTypeService) *AircraftTypeHandler {
	return &AircraftTypeHandler{service: svc}
}

// List godoc
// @Summary List aircraft types
// @Tags AircraftTypes
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Search code or manufacturer"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /aircraft-types [get]
func (h *AircraftTypeHandler) List(c *gin.Context) {
	filter := models.AircraftTypeFilter{
		Active:   queryBoolPtr(c, "active"),
		Search:   strings.TrimSpace(c.Query("search")),
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
// @Summary Get one aircraft type
// @Tags AircraftTypes
// @Produce json
// @Param id path int true "Aircraft type ID"
// @Success 200 {object} response.Envelope
// @Router /aircraft-types/{id} [get]
func (h *AircraftTypeHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	aircraft, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, aircraft, nil)
}

// Create godoc
// @Summary Create an aircraft type
// @Tags AircraftTypes
// @Accept json
// @Produce json
// @Param payload body dto.AircraftTypeRequest true "Aircraft type payload"
// @Success 201 {object} response.Envelope
// @Router /aircraft-types [post]
func (h *AircraftTypeHandler) Create(c *gin.Context) {
	var req dto.AircraftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	aircraft, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, aircraft)
}

// Update godoc
// @Summary Update an aircraft type
// @Tags AircraftTypes
// @Accept json
// @Produce json
// @Param id path int true "Aircraft type ID"
// @Param payload body dto.AircraftTypeRequest true "Aircraft type payload"
// @Success 200 {object} response.Envelope
// @Router /aircraft-types/{id} [put]
func (h *AircraftTypeHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AircraftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	aircraft, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, aircraft, nil)
}

// Deactivate godoc
// @Summary Deactivate an aircraft type
// @Tags AircraftTypes
// @Produce json
// @Param id path int true "Aircraft type ID"
// @Success 204
// @Router /aircraft-types/{id} [delete]
func (h *AircraftTypeHandler) Deactivate(c *gin.Context) {
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
