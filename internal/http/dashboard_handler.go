package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/internal/service"
)

// DashboardHandler provides HTTP handlers for the aggregated dashboard routes.
type DashboardHandler struct {
	dashboard service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard handles GET /api/dashboard requests.
//
// @Summary      Dashboard data
// @Description  Returns weather, market price, crops, and finance data in one payload. Failed sections carry an error message while the rest still render
// @Tags         Dashboard
// @Produce      json
// @Param        city query string false "City for weather (defaults to the configured city)"
// @Param        crop query string false "Crop for price (defaults to the configured crop)"
// @Success      200 {object} dto.DashboardResponse "Dashboard data"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	city := sanitizeName(c.Query("city"))
	crop := sanitizeName(c.Query("crop"))

	resp, err := h.dashboard.Overview(c.Request.Context(), city, crop)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetInsight handles GET /api/dashboard/insight requests.
//
// @Summary      Dashboard insight
// @Description  Returns a one-sentence AI-generated farming tip based on current weather and price data
// @Tags         Dashboard
// @Produce      json
// @Param        city query string false "City for weather (defaults to the configured city)"
// @Param        crop query string false "Crop for price (defaults to the configured crop)"
// @Success      200 {object} dto.InsightResponse "Generated insight"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dashboard/insight [get]
func (h *DashboardHandler) GetInsight(c *gin.Context) {
	city := sanitizeName(c.Query("city"))
	crop := sanitizeName(c.Query("crop"))

	resp, err := h.dashboard.Insight(c.Request.Context(), city, crop)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
