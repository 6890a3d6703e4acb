// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/repository"
)

// DatabaseComponents holds the MongoDB connection and repositories.
type DatabaseComponents struct {
	DB *repository.MongoDB

	WeatherCacheRepo  repository.WeatherCacheRepositoryInterface
	ForecastCacheRepo repository.ForecastCacheRepositoryInterface
	PriceCacheRepo    repository.PriceCacheRepositoryInterface
	CropRepo          repository.CropRepositoryInterface
	ExpenseRepo       repository.ExpenseRepositoryInterface
	SoilRepo          repository.SoilRepositoryInterface
	UserRepo          repository.UserRepositoryInterface
}

// InitializeDatabase connects to MongoDB and builds the repositories. The
// cache layer lives in MongoDB, so the service does not start without it.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	return &DatabaseComponents{
		DB:                db,
		WeatherCacheRepo:  repository.NewWeatherCacheRepository(db),
		ForecastCacheRepo: repository.NewForecastCacheRepository(db),
		PriceCacheRepo:    repository.NewPriceCacheRepository(db),
		CropRepo:          repository.NewCropRepository(db),
		ExpenseRepo:       repository.NewExpenseRepository(db),
		SoilRepo:          repository.NewSoilRepository(db),
		UserRepo:          repository.NewUserRepository(db),
	}, nil
}
