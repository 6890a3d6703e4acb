package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/metrics"
)

// OpenWeatherClient fetches current conditions and forecasts from the
// OpenWeatherMap API. Both resources share one HTTP client and API key.
type OpenWeatherClient struct {
	http   *resty.Client
	apiKey string
}

// NewOpenWeatherClient creates a weather client from provider configuration.
func NewOpenWeatherClient(cfg config.ProviderConfig) *OpenWeatherClient {
	client := resty.New().
		SetBaseURL(cfg.OpenWeatherBaseURL).
		SetTimeout(cfg.FetchTimeout)
	return &OpenWeatherClient{http: client, apiKey: cfg.OpenWeatherKey}
}

type openWeatherCurrent struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches the current weather for a city. A missing API key
// short-circuits without any network I/O.
func (c *OpenWeatherClient) Current(ctx context.Context, city string) (*model.WeatherRecord, error) {
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
		Get("/weather")
	if err != nil {
		metrics.RecordUpstreamFetch("openweather", KindNetwork.String(), time.Since(start))
		return nil, newError(KindNetwork, "Unable to connect to weather service")
	}

	if err := classifyStatus(resp.StatusCode(), "Weather service", fmt.Sprintf("City '%s' not found", city)); err != nil {
		metrics.RecordUpstreamFetch("openweather", KindOf(err).String(), time.Since(start))
		return nil, err
	}

	var payload openWeatherCurrent
	if err := json.Unmarshal(resp.Body(), &payload); err != nil || len(payload.Weather) == 0 {
		metrics.RecordUpstreamFetch("openweather", KindMalformed.String(), time.Since(start))
		return nil, newError(KindMalformed, "Weather data not available")
	}
	metrics.RecordUpstreamFetch("openweather", "success", time.Since(start))

	return &model.WeatherRecord{
		City:        city,
		Temperature: payload.Main.Temp,
		Condition:   payload.Weather[0].Description,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		CachedAt:    time.Now().UTC(),
	}, nil
}

// classifyStatus maps an HTTP status to a fetch error, or nil for success.
// service names the upstream in auth and availability messages; notFound is
// the full user-facing message for a 404.
func classifyStatus(status int, service, notFound string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == 404:
		return newError(KindNotFound, "%s", notFound)
	case status == 401 || status == 403:
		return newError(KindAuthFailure, "%s authentication failed", service)
	default:
		return newError(KindRateOrServer, "%s is temporarily unavailable", service)
	}
}
