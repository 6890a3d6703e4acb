// Package config provides configuration management for the kisan service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Providers ProviderConfig
	LLM       LLMConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Defaults  DefaultsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	LogLevel       string
	LogPretty      bool
}

// CacheConfig holds TTL settings for the external-data caches.
type CacheConfig struct {
	WeatherTTL  time.Duration
	ForecastTTL time.Duration
	PriceTTL    time.Duration
}

// ProviderConfig holds upstream API endpoints and credentials.
type ProviderConfig struct {
	OpenWeatherKey     string
	OpenWeatherBaseURL string
	MandiAPIKey        string
	MandiBaseURL       string
	FetchTimeout       time.Duration
	// CircuitBreaker configuration for upstream providers
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LLMConfig holds chatbot LLM provider configuration.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled        bool
	JWTSecretKey   string
	AccessTokenTTL time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
}

// DefaultsConfig holds fallback parameters used when a request omits them.
type DefaultsConfig struct {
	City  string
	State string
	Crop  string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "9000"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogPretty:      getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			WeatherTTL:  getEnvDuration("WEATHER_CACHE_TTL", 6*time.Hour),
			ForecastTTL: getEnvDuration("FORECAST_CACHE_TTL", 6*time.Hour),
			PriceTTL:    getEnvDuration("PRICE_CACHE_TTL", 6*time.Hour),
		},
		Providers: ProviderConfig{
			OpenWeatherKey:                 getEnv("OPENWEATHER_KEY", ""),
			OpenWeatherBaseURL:             getEnv("OPENWEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5"),
			MandiAPIKey:                    getEnv("MANDI_API_KEY", ""),
			MandiBaseURL:                   getEnv("MANDI_BASE_URL", "https://api.data.gov.in/resource/35985678-0d79-46b4-9ed6-6f13308a1d24"),
			FetchTimeout:                   getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:   getEnv("LLM_MODEL", "openrouter/auto"),
			Timeout: getEnvDuration("LLM_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:        getEnvBool("AUTH_ENABLED", false),
			JWTSecretKey:   getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 30*time.Minute),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "kisan_service"),
		},
		Defaults: DefaultsConfig{
			City:  getEnv("DEFAULT_CITY", "Pune"),
			State: getEnv("DEFAULT_STATE", "Maharashtra"),
			Crop:  getEnv("DEFAULT_CROP", "Tomato"),
		},
	}
}

// Warnings returns human-readable notices about missing optional credentials.
// The service still starts without them but degrades to cached or simulated data.
func (c Config) Warnings() []string {
	var warnings []string
	if c.Providers.OpenWeatherKey == "" {
		warnings = append(warnings, "OPENWEATHER_KEY not set - weather endpoints serve cached data only")
	}
	if c.Providers.MandiAPIKey == "" {
		warnings = append(warnings, "MANDI_API_KEY not set - market prices may not be available")
	}
	if c.LLM.APIKey == "" {
		warnings = append(warnings, "OPENROUTER_API_KEY not set - chatbot uses simulated responses only")
	}
	return warnings
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go duration strings ("6h") and bare seconds ("21600").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
