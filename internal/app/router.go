package app

import (
	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration from
// the wired services.
func InitializeRouter(cfg config.Config, db *DatabaseComponents, services *ServiceComponents) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("mongodb", db.DB)
	healthHandler.RegisterCircuitBreaker("openweather", services.WeatherBreaker)
	healthHandler.RegisterCircuitBreaker("mandi", services.PriceBreaker)

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		AuthEnabled:    cfg.Auth.Enabled,
		Defaults:       cfg.Defaults,

		WeatherService:   services.Weather,
		PriceService:     services.Price,
		CropService:      services.Crops,
		ExpenseService:   services.Expense,
		SoilService:      services.Soil,
		DashboardService: services.Dashboard,
		ChatService:      services.Chat,
		AuthService:      services.Auth,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
