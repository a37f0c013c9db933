package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type fakeSummaryProvider struct {
	summary *dto.DashboardSummary
	err     error
}

func (f *fakeSummaryProvider) Summary(context.Context) (*dto.DashboardSummary, error) {
	return f.summary, f.err
}

func TestDashboardHandlerSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&fakeSummaryProvider{
		summary: &dto.DashboardSummary{
			Today: models.DailyOpsStats{
				TotalFlights: 18,
				ByStatus:     map[string]int{"SCH": 12, "AIR": 4, "CXX": 2},
			},
			CachedAt: time.Date(2025, 11, 10, 8, 0, 0, 0, time.UTC),
		},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)

	h.Summary(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	today, ok := envelope.Data["today"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(18), today["total_flights"])
}

func TestDashboardHandlerSummaryError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&fakeSummaryProvider{err: appErrors.ErrInternal})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)

	h.Summary(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
