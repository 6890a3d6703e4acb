package app

import (
	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/circuitbreaker"
	"github.com/kisanmitra/kisan-service/internal/fetcher"
	"github.com/kisanmitra/kisan-service/internal/llm"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// ServiceComponents holds the business services and the circuit breakers
// guarding their upstream providers.
type ServiceComponents struct {
	Weather   service.WeatherService
	Price     service.PriceService
	Crops     service.CropService
	Expense   service.ExpenseService
	Soil      service.SoilService
	Auth      service.AuthService
	Chat      service.ChatService
	Dashboard service.DashboardService

	WeatherBreaker *circuitbreaker.CircuitBreaker
	PriceBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeServices wires upstream clients, circuit breakers, and business
// services on top of the repositories.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	weatherCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Providers.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Providers.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Providers.CircuitBreakerTimeout,
		Name:             "openweather",
	})
	priceCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Providers.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Providers.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Providers.CircuitBreakerTimeout,
		Name:             "mandi",
	})

	weatherProvider := fetcher.NewBreakerWeatherProvider(
		fetcher.NewOpenWeatherClient(cfg.Providers), weatherCB)
	priceProvider := fetcher.NewBreakerPriceProvider(
		fetcher.NewMandiClient(cfg.Providers), priceCB)

	llmClient := llm.NewOpenRouterClient(cfg.LLM)

	weather := service.NewWeatherService(
		db.WeatherCacheRepo, db.ForecastCacheRepo, weatherProvider,
		cfg.Cache.WeatherTTL, cfg.Cache.ForecastTTL)
	price := service.NewPriceService(db.PriceCacheRepo, priceProvider, cfg.Cache.PriceTTL)
	crops := service.NewCropService(db.CropRepo)
	expense := service.NewExpenseService(db.ExpenseRepo, db.CropRepo)
	soil := service.NewSoilService(db.SoilRepo)
	auth := service.NewAuthService(db.UserRepo, cfg.Auth)
	chat := service.NewChatService(llmClient, weather, price, soil, expense, cfg.Defaults)
	dashboard := service.NewDashboardService(weather, price, crops, expense, llmClient, cfg.Defaults)

	return &ServiceComponents{
		Weather:        weather,
		Price:          price,
		Crops:          crops,
		Expense:        expense,
		Soil:           soil,
		Auth:           auth,
		Chat:           chat,
		Dashboard:      dashboard,
		WeatherBreaker: weatherCB,
		PriceBreaker:   priceCB,
	}
}
