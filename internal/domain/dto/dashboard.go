package dto

import "github.com/kisanmitra/kisan-service/internal/domain/model"

// DashboardResponse aggregates the home-screen data in one payload. Weather
// and price sections degrade independently: a failed section carries its
// error message while the rest of the dashboard still renders.
// @Description Aggregated dashboard data
type DashboardResponse struct {
	Weather      *WeatherResponse     `json:"weather,omitempty"`
	WeatherError string               `json:"weather_error,omitempty"`
	Price        *PriceResponse       `json:"price,omitempty"`
	PriceError   string               `json:"price_error,omitempty"`
	CropCount    int                  `json:"crop_count"`
	Crops        []model.Crop         `json:"crops"`
	Financials   model.FinanceSummary `json:"financials"`
} // @name DashboardResponse

// InsightResponse is a one-line AI-generated farming tip for the dashboard.
// @Description AI-generated dashboard insight
type InsightResponse struct {
	Insight   string `json:"insight"`
	Simulated bool   `json:"simulated,omitempty"`
} // @name InsightResponse
