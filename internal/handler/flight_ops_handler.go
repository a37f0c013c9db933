package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/dto"
	appErrors "github.com/Iotonix/osams/pkg/errors"
	"github.com/Iotonix/osams/pkg/response"
)

type generationRunner interface {
	Run(ctx context.Context, params dto.GenerateParams) (*dto.GenerationReport, error)
}

type propagationRunner interface {
	Run(ctx context.Context, params dto.PropagateParams) (*dto.PropagationReport, error)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// FlightOpsHandler exposes the generation and propagation engines.
type FlightOpsHandler struct {
	generator  generationRunner
	propagator propagationRunner
	dashboard  cacheInvalidator
	windowDays int
}

// NewFlightOpsHandler constructs the engine handler. windowDays is the
// default forward horizon when a request does not name one.
func NewFlightOpsHandler(generator generationRunner, propagator propagationRunner, dashboard cacheInvalidator, windowDays int) *FlightOpsHandler {
	if windowDays < 1 {
		windowDays = 90
	}
	return &FlightOpsHandler{
		generator:  generator,
		propagator: propagator,
		dashboard:  dashboard,
		windowDays: windowDays,
	}
}

// Generate godoc
// @Summary Run daily flight generation
// @Tags FlightOps
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRequest true "Generation parameters"
// @Success 200 {object} response.Envelope
// @Router /flight-ops/generate [post]
func (h *FlightOpsHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	start := time.Now().UTC()
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid start_date, expected YYYY-MM-DD"))
			return
		}
		start = parsed
	}
	days := req.Days
	if days < 1 {
		days = h.windowDays
	}
	mode := dto.ModeFull
	if req.Incremental {
		mode = dto.ModeIncremental
	}

	report, err := h.generator.Run(c.Request.Context(), dto.GenerateParams{
		WindowStart: start,
		WindowEnd:   start.AddDate(0, 0, days-1),
		Mode:        mode,
		DryRun:      req.DryRun,
		Force:       req.Force,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if !req.DryRun && h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Propagate godoc
// @Summary Push seasonal schedule changes to daily flights
// @Tags FlightOps
// @Accept json
// @Produce json
// @Param payload body dto.PropagateRequest true "Propagation parameters"
// @Success 200 {object} response.Envelope
// @Router /flight-ops/propagate [post]
func (h *FlightOpsHandler) Propagate(c *gin.Context) {
	var req dto.PropagateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	params := dto.PropagateParams{
		ScheduleID:  req.ScheduleID,
		All:         req.All,
		BufferHours: req.BufferHours,
		DryRun:      req.DryRun,
	}
	if req.FromDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.FromDate, time.UTC)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid from_date, expected YYYY-MM-DD"))
			return
		}
		params.FromDate = parsed
	}

	report, err := h.propagator.Run(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !req.DryRun && h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
	response.JSON(c, http.StatusOK, report, nil)
}
