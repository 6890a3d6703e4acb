// Package model contains the domain entities for the kisan service.
package model

import "time"

// WeatherRecord is a point-cached snapshot of current conditions for a city.
// At most one record exists per city; upserts overwrite the value fields and
// reset CachedAt.
type WeatherRecord struct {
	City        string    `bson:"city" json:"city"`
	Temperature float64   `bson:"temperature" json:"temperature"`
	Condition   string    `bson:"condition" json:"condition"`
	Humidity    float64   `bson:"humidity" json:"humidity"`
	WindSpeed   float64   `bson:"wind_speed" json:"wind_speed"`
	CachedAt    time.Time `bson:"cached_at" json:"cached_at"`
}

// ForecastDay is one aggregated day of a city's 5-day forecast. The forecast
// cache holds one row per (city, date) pair; the whole per-city set shares a
// single logical age taken from the oldest CachedAt.
type ForecastDay struct {
	City      string    `bson:"city" json:"-"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	Temp      float64   `bson:"temperature" json:"temp"`
	TempMin   float64   `bson:"temp_min" json:"temp_min"`
	TempMax   float64   `bson:"temp_max" json:"temp_max"`
	Condition string    `bson:"condition" json:"condition"`
	Humidity  float64   `bson:"humidity" json:"humidity"`
	CachedAt  time.Time `bson:"cached_at" json:"-"`
}
