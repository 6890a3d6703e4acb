package dto

import "github.com/kisanmitra/kisan-service/internal/domain/model"

// WeatherResponse is the JSON payload for current weather.
//
// Temp/Temperature and Condition/Weather are intentional aliases kept for
// frontend compatibility. Cached and Stale describe where the record came
// from: a fresh cache hit sets only Cached, a stale fallback sets both.
// @Description Current weather for a city
type WeatherResponse struct {
	City        string  `json:"city" example:"Pune"`
	Temp        float64 `json:"temp" example:"28.4"`
	Temperature float64 `json:"temperature" example:"28.4"`
	Condition   string  `json:"condition" example:"scattered clouds"`
	Weather     string  `json:"weather" example:"scattered clouds"`
	Humidity    float64 `json:"humidity" example:"64"`
	WindSpeed   float64 `json:"wind_speed" example:"3.6"`
	Cached      bool    `json:"cached,omitempty"`
	Stale       bool    `json:"stale,omitempty"`
} // @name WeatherResponse

// NewWeatherResponse builds a WeatherResponse from a cached or live record.
func NewWeatherResponse(rec *model.WeatherRecord, cached, stale bool) WeatherResponse {
	return WeatherResponse{
		City:        rec.City,
		Temp:        rec.Temperature,
		Temperature: rec.Temperature,
		Condition:   rec.Condition,
		Weather:     rec.Condition,
		Humidity:    rec.Humidity,
		WindSpeed:   rec.WindSpeed,
		Cached:      cached,
		Stale:       stale,
	}
}

// ForecastResponse is the JSON payload for the 5-day forecast.
// @Description Aggregated daily forecast for a city
type ForecastResponse struct {
	City     string              `json:"city" example:"Pune"`
	Forecast []model.ForecastDay `json:"forecast"`
	Cached   bool                `json:"cached,omitempty"`
	Stale    bool                `json:"stale,omitempty"`
} // @name ForecastResponse
