package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/http"
)

// Application holds the assembled router and the resources that need an
// orderly shutdown.
type Application struct {
	Router *gin.Engine
	db     *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*Application, error) {
	InitializeLogger(cfg.Server)

	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}

	db, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	services := InitializeServices(cfg, db)
	routerComponents := InitializeRouter(cfg, db, services)

	router := http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)

	return &Application{Router: router, db: db}, nil
}

// Close releases held resources.
func (a *Application) Close(ctx context.Context) error {
	return a.db.DB.Close(ctx)
}
