package test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "stayhaven/internal/handler"
	"stayhaven/internal/models"
)

func TestGetDashboardStats(t *testing.T) {
	t.Run("returns the aggregate", func(t *testing.T) {
		analyticsService := new(MockAnalyticsService)
		analyticsService.On("DashboardStats", mock.Anything).Return(&models.DashboardStats{
			TotalProperties: 10,
			TotalInquiries:  20,
			PropertyViews:   1200,
		}, nil)

		h := &handlers.Handlers{AnalyticsService: analyticsService}

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := httptest.NewRecorder()

		h.GetDashboardStats(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var stats models.DashboardStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, int64(10), stats.TotalProperties)
		assert.Equal(t, int64(1200), stats.PropertyViews)
	})

	t.Run("degraded aggregation still responds 200 with zeroed stats", func(t *testing.T) {
		analyticsService := new(MockAnalyticsService)
		analyticsService.On("DashboardStats", mock.Anything).
			Return(&models.DashboardStats{}, errors.New("failed to aggregate dashboard stats"))

		h := &handlers.Handlers{AnalyticsService: analyticsService}

		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := httptest.NewRecorder()

		h.GetDashboardStats(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var stats models.DashboardStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, models.DashboardStats{}, stats)
	})
}
