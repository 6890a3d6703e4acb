package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/fetcher"
	"github.com/kisanmitra/kisan-service/internal/mocks"
	"github.com/kisanmitra/kisan-service/internal/service"
)

func testWeatherRecord(city string, cachedAt time.Time) *model.WeatherRecord {
	return &model.WeatherRecord{
		City:        city,
		Temperature: 28.4,
		Condition:   "scattered clouds",
		Humidity:    64,
		WindSpeed:   3.6,
		CachedAt:    cachedAt,
	}
}

func TestWeatherService_Current(t *testing.T) {
	upstreamDown := &fetcher.Error{Kind: fetcher.KindNetwork, Message: "Unable to connect to weather service"}

	tests := []struct {
		name       string
		setupMocks func(*mocks.MockWeatherCacheRepositoryInterface, *mocks.MockWeatherProviderAPI)
		wantErr    error
		wantCached bool
		wantStale  bool
		wantTemp   float64
	}{
		{
			name: "fresh cache hit skips upstream",
			setupMocks: func(repo *mocks.MockWeatherCacheRepositoryInterface, provider *mocks.MockWeatherProviderAPI) {
				repo.On("Get", mock.Anything, "Pune").
					Return(testWeatherRecord("Pune", time.Now().UTC().Add(-time.Hour)), nil)
			},
			wantCached: true,
			wantTemp:   28.4,
		},
		{
			name: "cache miss fetches live and stores",
			setupMocks: func(repo *mocks.MockWeatherCacheRepositoryInterface, provider *mocks.MockWeatherProviderAPI) {
				repo.On("Get", mock.Anything, "Pune").Return(nil, nil)
				live := testWeatherRecord("Pune", time.Now().UTC())
				live.Temperature = 31.0
				provider.On("Current", mock.Anything, "Pune").Return(live, nil)
				repo.On("Upsert", mock.Anything, live).Return(nil)
			},
			wantTemp: 31.0,
		},
		{
			name: "expired cache refetches",
			setupMocks: func(repo *mocks.MockWeatherCacheRepositoryInterface, provider *mocks.MockWeatherProviderAPI) {
				repo.On("Get", mock.Anything, "Pune").
					Return(testWeatherRecord("Pune", time.Now().UTC().Add(-7*time.Hour)), nil)
				live := testWeatherRecord("Pune", time.Now().UTC())
				live.Temperature = 25.5
				provider.On("Current", mock.Anything, "Pune").Return(live, nil)
				repo.On("Upsert", mock.Anything, live).Return(nil)
			},
			wantTemp: 25.5,
		},
		{
			name: "upstream failure serves stale cache",
			setupMocks: func(repo *mocks.MockWeatherCacheRepositoryInterface, provider *mocks.MockWeatherProviderAPI) {
				repo.On("Get", mock.Anything, "Pune").
					Return(testWeatherRecord("Pune", time.Now().UTC().Add(-7*time.Hour)), nil)
				provider.On("Current", mock.Anything, "Pune").Return(nil, upstreamDown)
			},
			wantCached: true,
			wantStale:  true,
			wantTemp:   28.4,
		},
		{
			name: "upstream failure without cache returns the error",
			setupMocks: func(repo *mocks.MockWeatherCacheRepositoryInterface, provider *mocks.MockWeatherProviderAPI) {
				repo.On("Get", mock.Anything, "Pune").Return(nil, nil)
				provider.On("Current", mock.Anything, "Pune").Return(nil, upstreamDown)
			},
			wantErr: upstreamDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weatherRepo := new(mocks.MockWeatherCacheRepositoryInterface)
			forecastRepo := new(mocks.MockForecastCacheRepositoryInterface)
			provider := new(mocks.MockWeatherProviderAPI)
			tt.setupMocks(weatherRepo, provider)

			svc := service.NewWeatherService(weatherRepo, forecastRepo, provider, 6*time.Hour, 6*time.Hour)
			resp, err := svc.Current(context.Background(), "Pune")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Pune", resp.City)
				assert.Equal(t, tt.wantTemp, resp.Temp)
				assert.Equal(t, tt.wantTemp, resp.Temperature)
				assert.Equal(t, tt.wantCached, resp.Cached)
				assert.Equal(t, tt.wantStale, resp.Stale)
			}

			weatherRepo.AssertExpectations(t)
			provider.AssertExpectations(t)
		})
	}
}

func TestWeatherService_Forecast(t *testing.T) {
	upstreamDown := &fetcher.Error{Kind: fetcher.KindNetwork, Message: "Unable to connect to weather service"}

	forecastSet := func(cachedAt time.Time) []model.ForecastDay {
		return []model.ForecastDay{
			{City: "Nashik", Date: "2026-08-30", Temp: 26.7, TempMin: 22, TempMax: 31, Humidity: 60, Condition: "scattered clouds", CachedAt: cachedAt},
			{City: "Nashik", Date: "2026-08-31", Temp: 27.1, TempMin: 23, TempMax: 32, Humidity: 55, Condition: "clear sky", CachedAt: cachedAt.Add(time.Minute)},
		}
	}

	t.Run("fresh set served from cache", func(t *testing.T) {
		forecastRepo := new(mocks.MockForecastCacheRepositoryInterface)
		provider := new(mocks.MockWeatherProviderAPI)
		forecastRepo.On("GetAll", mock.Anything, "Nashik").
			Return(forecastSet(time.Now().UTC().Add(-time.Hour)), nil)

		svc := service.NewWeatherService(new(mocks.MockWeatherCacheRepositoryInterface), forecastRepo, provider, 6*time.Hour, 6*time.Hour)
		resp, err := svc.Forecast(context.Background(), "Nashik")

		require.NoError(t, err)
		assert.Len(t, resp.Forecast, 2)
		assert.True(t, resp.Cached)
		assert.False(t, resp.Stale)
		provider.AssertNotCalled(t, "Forecast", mock.Anything, mock.Anything)
	})

	t.Run("oldest row decides expiry for the whole set", func(t *testing.T) {
		forecastRepo := new(mocks.MockForecastCacheRepositoryInterface)
		provider := new(mocks.MockWeatherProviderAPI)

		// Second row is within the TTL but the first is past it.
		set := forecastSet(time.Now().UTC().Add(-6*time.Hour - time.Minute))
		set[1].CachedAt = time.Now().UTC()
		forecastRepo.On("GetAll", mock.Anything, "Nashik").Return(set, nil)

		live := forecastSet(time.Now().UTC())
		provider.On("Forecast", mock.Anything, "Nashik").Return(live, nil)
		forecastRepo.On("ReplaceAll", mock.Anything, "Nashik", live).Return(nil)

		svc := service.NewWeatherService(new(mocks.MockWeatherCacheRepositoryInterface), forecastRepo, provider, 6*time.Hour, 6*time.Hour)
		resp, err := svc.Forecast(context.Background(), "Nashik")

		require.NoError(t, err)
		assert.False(t, resp.Cached)
		forecastRepo.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("stale set served when upstream fails", func(t *testing.T) {
		forecastRepo := new(mocks.MockForecastCacheRepositoryInterface)
		provider := new(mocks.MockWeatherProviderAPI)
		forecastRepo.On("GetAll", mock.Anything, "Nashik").
			Return(forecastSet(time.Now().UTC().Add(-24*time.Hour)), nil)
		provider.On("Forecast", mock.Anything, "Nashik").Return(nil, upstreamDown)

		svc := service.NewWeatherService(new(mocks.MockWeatherCacheRepositoryInterface), forecastRepo, provider, 6*time.Hour, 6*time.Hour)
		resp, err := svc.Forecast(context.Background(), "Nashik")

		require.NoError(t, err)
		assert.True(t, resp.Stale)
		assert.Len(t, resp.Forecast, 2)
	})

	t.Run("empty cache with failed upstream returns the error", func(t *testing.T) {
		forecastRepo := new(mocks.MockForecastCacheRepositoryInterface)
		provider := new(mocks.MockWeatherProviderAPI)
		forecastRepo.On("GetAll", mock.Anything, "Nashik").Return([]model.ForecastDay{}, nil)
		provider.On("Forecast", mock.Anything, "Nashik").Return(nil, upstreamDown)

		svc := service.NewWeatherService(new(mocks.MockWeatherCacheRepositoryInterface), forecastRepo, provider, 6*time.Hour, 6*time.Hour)
		_, err := svc.Forecast(context.Background(), "Nashik")

		assert.ErrorIs(t, err, upstreamDown)
	})
}
