package service

import (
	"context"
	"time"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/fetcher"
	"github.com/kisanmitra/kisan-service/internal/repository"
)

// WeatherService provides current weather and forecast lookups with caching.
type WeatherService interface {
	Current(ctx context.Context, city string) (*dto.WeatherResponse, error)
	Forecast(ctx context.Context, city string) (*dto.ForecastResponse, error)
}

// WeatherProviderAPI is the upstream surface the weather service needs.
type WeatherProviderAPI interface {
	fetcher.WeatherProvider
	fetcher.ForecastProvider
}

// WeatherServiceImpl implements WeatherService.
type WeatherServiceImpl struct {
	weatherRepo  repository.WeatherCacheRepositoryInterface
	forecastRepo repository.ForecastCacheRepositoryInterface
	provider     WeatherProviderAPI
	weatherTTL   time.Duration
	forecastTTL  time.Duration
}

// NewWeatherService creates a new weather service.
func NewWeatherService(
	weatherRepo repository.WeatherCacheRepositoryInterface,
	forecastRepo repository.ForecastCacheRepositoryInterface,
	provider WeatherProviderAPI,
	weatherTTL, forecastTTL time.Duration,
) WeatherService {
	return &WeatherServiceImpl{
		weatherRepo:  weatherRepo,
		forecastRepo: forecastRepo,
		provider:     provider,
		weatherTTL:   weatherTTL,
		forecastTTL:  forecastTTL,
	}
}

// Current returns the current weather for a city, cached per the TTL.
func (s *WeatherServiceImpl) Current(ctx context.Context, city string) (*dto.WeatherResponse, error) {
	cached, err := s.weatherRepo.Get(ctx, city)
	if err != nil {
		return nil, err
	}

	var cachedAt time.Time
	if cached != nil {
		cachedAt = cached.CachedAt
	}

	rec, origin, err := resolveCached(ctx, "weather", s.weatherTTL,
		cached != nil, cached, cachedAt,
		func(ctx context.Context) (*model.WeatherRecord, error) {
			return s.provider.Current(ctx, city)
		},
		func(ctx context.Context, rec *model.WeatherRecord) error {
			return s.weatherRepo.Upsert(ctx, rec)
		},
	)
	if err != nil {
		return nil, err
	}

	resp := dto.NewWeatherResponse(rec, origin.Cached(), origin.Stale())
	return &resp, nil
}

// Forecast returns the aggregated 5-day forecast for a city. The whole
// per-city set is cached together; its age is the oldest row's timestamp.
func (s *WeatherServiceImpl) Forecast(ctx context.Context, city string) (*dto.ForecastResponse, error) {
	cached, err := s.forecastRepo.GetAll(ctx, city)
	if err != nil {
		return nil, err
	}

	var cachedAt time.Time
	for _, day := range cached {
		if cachedAt.IsZero() || day.CachedAt.Before(cachedAt) {
			cachedAt = day.CachedAt
		}
	}

	days, origin, err := resolveCached(ctx, "forecast", s.forecastTTL,
		len(cached) > 0, cached, cachedAt,
		func(ctx context.Context) ([]model.ForecastDay, error) {
			return s.provider.Forecast(ctx, city)
		},
		func(ctx context.Context, days []model.ForecastDay) error {
			return s.forecastRepo.ReplaceAll(ctx, city, days)
		},
	)
	if err != nil {
		return nil, err
	}

	return &dto.ForecastResponse{
		City:     city,
		Forecast: days,
		Cached:   origin.Cached(),
		Stale:    origin.Stale(),
	}, nil
}
