package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// CropHandler provides HTTP handlers for crop tracking routes.
type CropHandler struct {
	crops service.CropService
}

// NewCropHandler creates a new CropHandler instance.
func NewCropHandler(crops service.CropService) *CropHandler {
	return &CropHandler{crops: crops}
}

// parseObjectID reads a hex ObjectID path param, writing a 400 on failure.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		respondError(c, http.StatusBadRequest, param+": is not a valid ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// ListCrops handles GET /api/crops requests.
//
// @Summary      List crops
// @Description  Returns all tracked crops, newest first
// @Tags         Crops
// @Produce      json
// @Success      200 {array} model.Crop "Tracked crops"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/crops [get]
func (h *CropHandler) ListCrops(c *gin.Context) {
	crops, err := h.crops.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, crops)
}

// AddCrop handles POST /api/crops/add requests.
//
// @Summary      Add crop
// @Description  Starts tracking a new planting. The sown date defaults to today and the stage to Sown
// @Tags         Crops
// @Accept       json
// @Produce      json
// @Param        request body dto.CropCreateRequest true "Crop details"
// @Success      201 {object} dto.StatusResponse "Crop added"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Router       /api/crops/add [post]
func (h *CropHandler) AddCrop(c *gin.Context) {
	var req dto.CropCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	crop, err := h.crops.Add(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStatus("Crop added", crop))
}

// UpdateCropStage handles PATCH /api/crops/:id/stage requests.
//
// @Summary      Update crop stage
// @Description  Moves a crop to a new growth stage
// @Tags         Crops
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Crop ID"
// @Param        request body dto.CropStageUpdateRequest true "New stage"
// @Success      200 {object} dto.StatusResponse "Stage updated"
// @Failure      400 {object} dto.ErrorResponse "Invalid stage"
// @Failure      404 {object} dto.ErrorResponse "Crop not found"
// @Router       /api/crops/{id}/stage [patch]
func (h *CropHandler) UpdateCropStage(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req dto.CropStageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	crop, err := h.crops.UpdateStage(c.Request.Context(), id, req.Stage)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatus("Stage updated", crop))
}

// DeleteCrop handles DELETE /api/crops/:id requests.
//
// @Summary      Delete crop
// @Description  Stops tracking a crop
// @Tags         Crops
// @Produce      json
// @Param        id path string true "Crop ID"
// @Success      200 {object} dto.StatusResponse "Crop deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid ID"
// @Failure      404 {object} dto.ErrorResponse "Crop not found"
// @Router       /api/crops/{id} [delete]
func (h *CropHandler) DeleteCrop(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.crops.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatus("Crop deleted", nil))
}
