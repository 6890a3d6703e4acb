// Package fetcher wraps the upstream data providers (weather, forecast,
// market prices). Each provider performs one outbound HTTP call with a fixed
// timeout and classifies the result into the outcome taxonomy below, so the
// caching layer never has to know provider specifics.
package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// Kind classifies a failed fetch outcome.
type Kind int

const (
	// KindNotFound means the upstream reports an unknown city or commodity.
	KindNotFound Kind = iota
	// KindAuthFailure means the provider rejected our credentials.
	KindAuthFailure
	// KindRateOrServer means the provider returned a rate-limit or 5xx error.
	KindRateOrServer
	// KindNetwork means a transport failure or timeout.
	KindNetwork
	// KindMalformed means the payload did not have the expected shape.
	KindMalformed
	// KindConfigMissing means no API key is configured; no network I/O was attempted.
	KindConfigMissing
)

// String returns the metrics label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuthFailure:
		return "auth_failure"
	case KindRateOrServer:
		return "rate_or_server"
	case KindNetwork:
		return "network"
	case KindMalformed:
		return "malformed"
	case KindConfigMissing:
		return "config_missing"
	default:
		return "unknown"
	}
}

// Error is a classified fetch failure. Message is user-facing and is what
// ends up in the JSON error field when no cached fallback exists.
type Error struct {
	Kind    Kind
	Message string
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the outcome kind from an error. Unclassified errors
// report as KindNetwork, the most conservative guess.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindNetwork
}

// WeatherProvider fetches current conditions for a city.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (*model.WeatherRecord, error)
}

// ForecastProvider fetches an aggregated daily forecast for a city.
type ForecastProvider interface {
	Forecast(ctx context.Context, city string) ([]model.ForecastDay, error)
}

// PriceProvider fetches the current mandi price for a commodity in a state.
type PriceProvider interface {
	MarketPrice(ctx context.Context, commodity, state string) (*model.PriceRecord, error)
}
