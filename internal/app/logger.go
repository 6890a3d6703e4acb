package app

import (
	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/logger"
)

// InitializeLogger configures the global structured logger.
func InitializeLogger(cfg config.ServerConfig) {
	logger.Init(cfg.LogLevel, cfg.LogPretty)
}
