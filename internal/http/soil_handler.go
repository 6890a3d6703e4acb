package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// SoilHandler provides HTTP handlers for soil report routes.
type SoilHandler struct {
	soil service.SoilService
}

// NewSoilHandler creates a new SoilHandler instance.
func NewSoilHandler(soil service.SoilService) *SoilHandler {
	return &SoilHandler{soil: soil}
}

// ListReports handles GET /api/soil requests.
//
// @Summary      List soil reports
// @Description  Returns all soil reports, newest first
// @Tags         Soil
// @Produce      json
// @Success      200 {array} model.SoilReport "Soil reports"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/soil [get]
func (h *SoilHandler) ListReports(c *gin.Context) {
	reports, err := h.soil.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// AddReport handles POST /api/soil/add requests.
//
// @Summary      Add soil report
// @Description  Records a soil test result. The location defaults to "default" and the test date to today
// @Tags         Soil
// @Accept       json
// @Produce      json
// @Param        request body dto.SoilReportCreateRequest true "Soil test values"
// @Success      201 {object} dto.StatusResponse "Report added"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Router       /api/soil/add [post]
func (h *SoilHandler) AddReport(c *gin.Context) {
	var req dto.SoilReportCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.soil.Add(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStatus("Report added", report))
}
