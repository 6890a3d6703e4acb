package http

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// maxNameLength bounds user-supplied city/crop/state query params.
const maxNameLength = 100

// sanitizeName trims a user-supplied name and strips characters outside
// letters, digits, spaces, hyphens, and apostrophes. Returns "" when nothing
// usable remains.
func sanitizeName(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxNameLength {
		s = s[:maxNameLength]
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// WeatherHandler provides HTTP handlers for weather routes.
type WeatherHandler struct {
	weather  service.WeatherService
	defaults config.DefaultsConfig
}

// NewWeatherHandler creates a new WeatherHandler instance.
func NewWeatherHandler(weather service.WeatherService, defaults config.DefaultsConfig) *WeatherHandler {
	return &WeatherHandler{weather: weather, defaults: defaults}
}

// GetWeather handles GET /api/weather requests.
//
// @Summary      Current weather
// @Description  Returns current weather for a city, served from cache when fresh and falling back to stale data when the provider is unreachable
// @Tags         Weather
// @Produce      json
// @Param        city query string false "City name (defaults to the configured city)"
// @Success      200 {object} dto.WeatherResponse "Current weather"
// @Failure      400 {object} dto.ErrorResponse "Invalid city name"
// @Failure      404 {object} dto.ErrorResponse "City not found"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable and no cached data"
// @Router       /api/weather [get]
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	city := sanitizeName(c.Query("city"))
	if city == "" {
		if c.Query("city") != "" {
			respondError(c, http.StatusBadRequest, "Invalid city name")
			return
		}
		city = h.defaults.City
	}

	resp, err := h.weather.Current(c.Request.Context(), city)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetForecast handles GET /api/weather/forecast requests.
//
// @Summary      5-day forecast
// @Description  Returns the aggregated daily forecast for a city
// @Tags         Weather
// @Produce      json
// @Param        city query string false "City name (defaults to the configured city)"
// @Success      200 {object} dto.ForecastResponse "Daily forecast"
// @Failure      400 {object} dto.ErrorResponse "Invalid city name"
// @Failure      404 {object} dto.ErrorResponse "City not found"
// @Failure      503 {object} dto.ErrorResponse "Provider unavailable and no cached data"
// @Router       /api/weather/forecast [get]
func (h *WeatherHandler) GetForecast(c *gin.Context) {
	city := sanitizeName(c.Query("city"))
	if city == "" {
		if c.Query("city") != "" {
			respondError(c, http.StatusBadRequest, "Invalid city name")
			return
		}
		city = h.defaults.City
	}

	resp, err := h.weather.Forecast(c.Request.Context(), city)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
