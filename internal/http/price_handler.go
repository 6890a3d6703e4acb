package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// PriceHandler provides HTTP handlers for mandi price routes.
type PriceHandler struct {
	price    service.PriceService
	defaults config.DefaultsConfig
}

// NewPriceHandler creates a new PriceHandler instance.
func NewPriceHandler(price service.PriceService, defaults config.DefaultsConfig) *PriceHandler {
	return &PriceHandler{price: price, defaults: defaults}
}

// GetPrice handles GET /api/price requests.
//
// @Summary      Market price
// @Description  Returns the mandi price for a crop in a state, with a synthesized trailing history series flagged as simulated
// @Tags         Prices
// @Produce      json
// @Param        crop  query string true  "Crop name"
// @Param        state query string false "State name (defaults to the configured state)"
// @Success      200 {object} dto.PriceResponse "Market price"
// @Failure      400 {object} dto.ErrorResponse "Missing or invalid crop name"
// @Failure      404 {object} dto.ErrorResponse "No data for this commodity"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable and no cached data"
// @Router       /api/price [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	crop := sanitizeName(c.Query("crop"))
	if crop == "" {
		respondError(c, http.StatusBadRequest, "Crop name is required")
		return
	}

	state := sanitizeName(c.Query("state"))
	if state == "" {
		state = h.defaults.State
	}

	resp, err := h.price.MarketPrice(c.Request.Context(), crop, state)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
