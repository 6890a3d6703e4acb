package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/metrics"
)

type openWeatherForecast struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast fetches the 5-day/3-hour forecast for a city and aggregates the
// 3-hourly samples into at most five daily rows, ascending by date.
func (c *OpenWeatherClient) Forecast(ctx context.Context, city string) ([]model.ForecastDay, error) {
	if c.apiKey == "" {
		return nil, newError(KindConfigMissing, "Weather service configuration missing")
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": "metric",
		}).
		Get("/forecast")
	if err != nil {
		metrics.RecordUpstreamFetch("openweather", KindNetwork.String(), time.Since(start))
		return nil, newError(KindNetwork, "Unable to connect to weather service")
	}

	if err := classifyStatus(resp.StatusCode(), "Weather service", fmt.Sprintf("City '%s' not found", city)); err != nil {
		metrics.RecordUpstreamFetch("openweather", KindOf(err).String(), time.Since(start))
		return nil, err
	}

	var payload openWeatherForecast
	if err := json.Unmarshal(resp.Body(), &payload); err != nil || len(payload.List) == 0 {
		metrics.RecordUpstreamFetch("openweather", KindMalformed.String(), time.Since(start))
		return nil, newError(KindMalformed, "Forecast data not available")
	}
	metrics.RecordUpstreamFetch("openweather", "success", time.Since(start))

	return aggregateDaily(city, payload), nil
}

// aggregateDaily groups the 3-hourly forecast list by calendar date. Each
// day's temperature and humidity are averaged; TempMin/TempMax take the
// extremes; the condition comes from the midday-ish middle sample.
func aggregateDaily(city string, payload openWeatherForecast) []model.ForecastDay {
	type acc struct {
		temps      []float64
		tempMin    float64
		tempMax    float64
		humidity   float64
		conditions []string
	}
	byDate := make(map[string]*acc)

	for _, item := range payload.List {
		if len(item.Weather) == 0 {
			continue
		}
		date, _, found := strings.Cut(item.DtTxt, " ")
		if !found || date == "" {
			continue
		}
		a, ok := byDate[date]
		if !ok {
			a = &acc{tempMin: math.MaxFloat64, tempMax: -math.MaxFloat64}
			byDate[date] = a
		}
		a.temps = append(a.temps, item.Main.Temp)
		a.tempMin = math.Min(a.tempMin, item.Main.TempMin)
		a.tempMax = math.Max(a.tempMax, item.Main.TempMax)
		a.humidity += item.Main.Humidity
		a.conditions = append(a.conditions, item.Weather[0].Description)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > 5 {
		dates = dates[:5]
	}

	now := time.Now().UTC()
	days := make([]model.ForecastDay, 0, len(dates))
	for _, date := range dates {
		a := byDate[date]
		n := float64(len(a.temps))
		var tempSum float64
		for _, t := range a.temps {
			tempSum += t
		}
		days = append(days, model.ForecastDay{
			City:      city,
			Date:      date,
			Temp:      round1(tempSum / n),
			TempMin:   round1(a.tempMin),
			TempMax:   round1(a.tempMax),
			Condition: a.conditions[len(a.conditions)/2],
			Humidity:  round1(a.humidity / n),
			CachedAt:  now,
		})
	}
	return days
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
