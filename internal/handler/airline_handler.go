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

// AirlineHandler exposes airline master data endpoints.
type AirlineHandler struct {
	service *service.AirlineService
}

// NewAirlineHandler constructs the handler.
func NewAirlineHandler(svc *service.AirlineService) *AirlineHandler {
	return &AirlineHandler{service: svc}
}

// List godoc
// @Summary List airlines
// @Tags Airlines
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Param search query string false "Search name or code"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /airlines [get]
func (h *AirlineHandler) List(c *gin.Context) {
	filter := models.AirlineFilter{
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
// @Summary Get one airline
// @Tags Airlines
// @Produce json
// @Param id path int true "Airline ID"
// @Success 200 {object} response.Envelope
// @Router /airlines/{id} [get]
func (h *AirlineHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	airline, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, airline, nil)
}

// Create godoc
// @Summary Create an airline
// @Tags Airlines
// @Accept json
// @Produce json
// @Param payload body dto.AirlineRequest true "Airline payload"
// @Success 201 {object} response.Envelope
// @Router /airlines [post]
func (h *AirlineHandler) Create(c *gin.Context) {
	var req dto.AirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	airline, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, airline)
}

// Update godoc
// @Summary Update an airline
// @Tags Airlines
// @Accept json
// @Produce json
// @Param id path int true "Airline ID"
// @Param payload body dto.AirlineRequest true "Airline payload"
// @Success 200 {object} response.Envelope
// @Router /airlines/{id} [put]
func (h *AirlineHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	airline, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, airline, nil)
}

// Deactivate godoc
// @Summary Deactivate an airline
// @Tags Airlines
// @Produce json
// @Param id path int true "Airline ID"
// @Success 204
// @Router /airlines/{id} [delete]
func (h *AirlineHandler) Deactivate(c *gin.Context) {
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
