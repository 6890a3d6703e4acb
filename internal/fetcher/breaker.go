package fetcher

import (
	"context"
	"errors"

	"github.com/kisanmitra/kisan-service/internal/circuitbreaker"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// trips reports whether a fetch error should count against the circuit
// breaker. NotFound and ConfigMissing are valid provider answers, not
// infrastructure failures; Malformed is rare enough not to trip the breaker.
func trips(err error) bool {
	if err == nil {
		return false
	}
	switch KindOf(err) {
	case KindNetwork, KindRateOrServer:
		return true
	}
	return false
}

// openError is returned when the breaker rejects a call without reaching the
// provider. It classifies as a network failure so callers fall back to stale
// cached data.
func openError() error {
	return newError(KindNetwork, "Upstream service temporarily unavailable")
}

// BreakerWeatherProvider wraps a WeatherProvider with a circuit breaker.
type BreakerWeatherProvider struct {
	provider interface {
		WeatherProvider
		ForecastProvider
	}
	cb *circuitbreaker.CircuitBreaker
}

// NewBreakerWeatherProvider wraps the OpenWeather client. Current and
// forecast calls share one breaker since they hit the same upstream host.
func NewBreakerWeatherProvider(provider *OpenWeatherClient, cb *circuitbreaker.CircuitBreaker) *BreakerWeatherProvider {
	return &BreakerWeatherProvider{provider: provider, cb: cb}
}

// Current fetches current weather through the circuit breaker.
func (b *BreakerWeatherProvider) Current(ctx context.Context, city string) (*model.WeatherRecord, error) {
	var rec *model.WeatherRecord
	var fetchErr error
	err := b.cb.Execute(ctx, func() error {
		rec, fetchErr = b.provider.Current(ctx, city)
		if trips(fetchErr) {
			return fetchErr
		}
		return nil
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, openError()
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return rec, nil
}

// Forecast fetches the daily forecast through the circuit breaker.
func (b *BreakerWeatherProvider) Forecast(ctx context.Context, city string) ([]model.ForecastDay, error) {
	var days []model.ForecastDay
	var fetchErr error
	err := b.cb.Execute(ctx, func() error {
		days, fetchErr = b.provider.Forecast(ctx, city)
		if trips(fetchErr) {
			return fetchErr
		}
		return nil
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, openError()
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return days, nil
}

// BreakerPriceProvider wraps a PriceProvider with a circuit breaker.
type BreakerPriceProvider struct {
	provider PriceProvider
	cb       *circuitbreaker.CircuitBreaker
}

// NewBreakerPriceProvider wraps the mandi price client.
func NewBreakerPriceProvider(provider PriceProvider, cb *circuitbreaker.CircuitBreaker) *BreakerPriceProvider {
	return &BreakerPriceProvider{provider: provider, cb: cb}
}

// MarketPrice fetches the mandi price through the circuit breaker.
func (b *BreakerPriceProvider) MarketPrice(ctx context.Context, commodity, state string) (*model.PriceRecord, error) {
	var rec *model.PriceRecord
	var fetchErr error
	err := b.cb.Execute(ctx, func() error {
		rec, fetchErr = b.provider.MarketPrice(ctx, commodity, state)
		if trips(fetchErr) {
			return fetchErr
		}
		return nil
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, openError()
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return rec, nil
}
