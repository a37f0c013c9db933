package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/service"
	appErrors "github.com/Iotonix/osams/pkg/errors"
	"github.com/Iotonix/osams/pkg/response"
)

// InfrastructureHandler exposes terminal, gate, stand, counter, carousel
// and runway endpoints.
type InfrastructureHandler struct {
	service *service.InfrastructureService
}

// NewInfrastructureHandler constructs the handler.
func NewInfrastructureHandler(svc *service.InfrastructureService) *InfrastructureHandler {
	return &InfrastructureHandler{service: svc}
}

// ListTerminals godoc
// @Summary List terminals
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /infrastructure/terminals [get]
func (h *InfrastructureHandler) ListTerminals(c *gin.Context) {
	list, err := h.service.ListTerminals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// CreateTerminal godoc
// @Summary Create a terminal
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param payload body dto.TerminalRequest true "Terminal payload"
// @Success 201 {object} response.Envelope
// @Router /infrastructure/terminals [post]
func (h *InfrastructureHandler) CreateTerminal(c *gin.Context) {
	var req dto.TerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	terminal, err := h.service.CreateTerminal(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, terminal)
}

// UpdateTerminal godoc
// @Summary Update a terminal
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param id path int true "Terminal ID"
// @Param payload body dto.TerminalRequest true "Terminal payload"
// @Success 200 {object} response.Envelope
// @Router /infrastructure/terminals/{id} [put]
func (h *InfrastructureHandler) UpdateTerminal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.TerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	terminal, err := h.service.UpdateTerminal(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, terminal, nil)
}

// ListGates godoc
// @Summary List gates
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /infrastructure/gates [get]
func (h *InfrastructureHandler) ListGates(c *gin.Context) {
	list, err := h.service.ListGates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// CreateGate godoc
// @Summary Create a gate
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param payload body dto.GateRequest true "Gate payload"
// @Success 201 {object} response.Envelope
// @Router /infrastructure/gates [post]
func (h *InfrastructureHandler) CreateGate(c *gin.Context) {
	var req dto.GateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	gate, err := h.service.CreateGate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gate)
}

// SetGateAvailability godoc
// @Summary Toggle availability of a gate
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param id path int true "Gate ID"
// @Param payload body dto.AvailabilityRequest true "Availability flag"
// @Success 204
// @Router /infrastructure/gates/{id}/availability [put]
func (h *InfrastructureHandler) SetGateAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.SetGateAvailability(c.Request.Context(), id, *req.Available); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListStands godoc
// @Summary List stands
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /infrastructure/stands [get]
func (h *InfrastructureHandler) ListStands(c *gin.Context) {
	list, err := h.service.ListStands(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// CreateStand godoc
// @Summary Create a stand
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param payload body dto.StandRequest true "Stand payload"
// @Success 201 {object} response.Envelope
// @Router /infrastructure/stands [post]
func (h *InfrastructureHandler) CreateStand(c *gin.Context) {
	var req dto.StandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	stand, err := h.service.CreateStand(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, stand)
}

// SetStandAvailability godoc
// @Summary Toggle availability of a stand
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param id path int true "Stand ID"
// @Param payload body dto.AvailabilityRequest true "Availability flag"
// @Success 204
// @Router /infrastructure/stands/{id}/availability [put]
func (h *InfrastructureHandler) SetStandAvailability(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.SetStandAvailability(c.Request.Context(), id, *req.Available); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListCounters godoc
// @Summary List check-in counters
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /infrastructure/counters [get]
func (h *InfrastructureHandler) ListCounters(c *gin.Context) {
	list, err := h.service.ListCounters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// CreateCounter godoc
// @Summary Create a check-in counter
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param payload body dto.CounterRequest true "Counter payload"
// @Success 201 {object} response.Envelope
// @Router /infrastructure/counters [post]
func (h *InfrastructureHandler) CreateCounter(c *gin.Context) {
	var req dto.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	counter, err := h.service.CreateCounter(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, counter)
}

// ListCarousels godoc
// @Summary List baggage carousels
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /infrastructure/carousels [get]
func (h *InfrastructureHandler) ListCarousels(c *gin.Context) {
	list, err := h.service.ListCarousels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// CreateCarousel godoc
// @Summary Create a baggage carousel
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param payload body dto.CarouselRequest true "Carousel payload"
// @Success 201 {object} response.Envelope
// @Router /infrastructure/carousels [post]
func (h *InfrastructureHandler) CreateCarousel(c *gin.Context) {
	var req dto.CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	carousel, err := h.service.CreateCarousel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, carousel)
}

// ListRunways godoc
// @Summary List runways
// @Tags Infrastructure
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /infrastructure/runways [get]
func (h *InfrastructureHandler) ListRunways(c *gin.Context) {
	list, err := h.service.ListRunways(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, list, nil)
}

// CreateRunway godoc
// @Summary Create a runway
// @Tags Infrastructure
// @Accept json
// @Produce json
// @Param payload body dto.RunwayRequest true "Runway payload"
// @Success 201 {object} response.Envelope
// @Router /infrastructure/runways [post]
func (h *InfrastructureHandler) CreateRunway(c *gin.Context) {
	var req dto.RunwayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	runway, err := h.service.CreateRunway(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, runway)
}
