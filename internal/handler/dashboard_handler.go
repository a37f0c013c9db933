package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/pkg/response"
)

type summaryProvider interface {
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

// DashboardHandler exposes the operations dashboard endpoint.
type DashboardHandler struct {
	service summaryProvider
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(svc summaryProvider) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Summary godoc
// @Summary Today's operations summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
