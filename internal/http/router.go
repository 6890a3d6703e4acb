package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/metrics"
	"github.com/kisanmitra/kisan-service/internal/middleware"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	AuthEnabled    bool
	Defaults       config.DefaultsConfig

	WeatherService   service.WeatherService
	PriceService     service.PriceService
	CropService      service.CropService
	ExpenseService   service.ExpenseService
	SoilService      service.SoilService
	DashboardService service.DashboardService
	ChatService      service.ChatService
	AuthService      service.AuthService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the kisan service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	registerAuthRoutes(api, &cfg)

	data := api.Group("")
	if cfg.AuthEnabled && cfg.AuthService != nil {
		data.Use(middleware.JWTAuth(cfg.AuthService))
		if cfg.RateLimit > 0 {
			// Authenticated traffic gets a per-user budget on top of the
			// global per-IP limit.
			userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
			data.Use(userLimiter.UserRateLimit())
		}
	}
	registerDataRoutes(data, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// registerAuthRoutes registers the always-public authentication routes.
func registerAuthRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.AuthService == nil {
		return
	}
	handler := NewAuthHandler(cfg.AuthService)
	api.POST("/auth/login", handler.Login)
	api.POST("/auth/register", handler.Register)

	me := api.Group("")
	me.Use(middleware.JWTAuth(cfg.AuthService))
	me.GET("/auth/me", handler.Me)
}

// registerDataRoutes registers the domain routes. The group carries JWT auth
// when enforcement is enabled.
func registerDataRoutes(group *gin.RouterGroup, cfg *RouterConfig) {
	weather := NewWeatherHandler(cfg.WeatherService, cfg.Defaults)
	group.GET("/weather", weather.GetWeather)
	group.GET("/weather/forecast", weather.GetForecast)

	price := NewPriceHandler(cfg.PriceService, cfg.Defaults)
	group.GET("/price", price.GetPrice)

	crops := NewCropHandler(cfg.CropService)
	group.GET("/crops", crops.ListCrops)
	group.POST("/crops/add", crops.AddCrop)
	group.PATCH("/crops/:id/stage", crops.UpdateCropStage)
	group.DELETE("/crops/:id", crops.DeleteCrop)

	expenses := NewExpenseHandler(cfg.ExpenseService)
	group.POST("/expense/add", expenses.AddExpense)
	group.GET("/expense/list", expenses.ListExpenses)
	group.GET("/expense/summary", expenses.GetSummary)
	group.DELETE("/expense/:id", expenses.DeleteExpense)

	soil := NewSoilHandler(cfg.SoilService)
	group.GET("/soil", soil.ListReports)
	group.POST("/soil/add", soil.AddReport)

	dashboard := NewDashboardHandler(cfg.DashboardService)
	group.GET("/dashboard", dashboard.GetDashboard)
	group.GET("/dashboard/insight", dashboard.GetInsight)

	chat := NewChatHandler(cfg.ChatService)
	group.POST("/chatbot", chat.Ask)
}
