// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// MockWeatherProviderAPI mocks the combined current-weather and forecast
// provider surface.
type MockWeatherProviderAPI struct {
	mock.Mock
}

func (m *MockWeatherProviderAPI) Current(ctx context.Context, city string) (*model.WeatherRecord, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherRecord), args.Error(1)
}

func (m *MockWeatherProviderAPI) Forecast(ctx context.Context, city string) ([]model.ForecastDay, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ForecastDay), args.Error(1)
}

type MockPriceProvider struct {
	mock.Mock
}

func (m *MockPriceProvider) MarketPrice(ctx context.Context, commodity, state string) (*model.PriceRecord, error) {
	args := m.Called(ctx, commodity, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceRecord), args.Error(1)
}

type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}
