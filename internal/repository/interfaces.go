// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// WeatherCacheRepositoryInterface defines cache access for current-weather snapshots.
// Get returns (nil, nil) on a cache miss.
type WeatherCacheRepositoryInterface interface {
	Get(ctx context.Context, city string) (*model.WeatherRecord, error)
	Upsert(ctx context.Context, rec *model.WeatherRecord) error
}

// ForecastCacheRepositoryInterface defines cache access for per-city forecast sets.
// GetAll returns the full set ascending by date, or an empty slice on a miss.
type ForecastCacheRepositoryInterface interface {
	GetAll(ctx context.Context, city string) ([]model.ForecastDay, error)
	ReplaceAll(ctx context.Context, city string, days []model.ForecastDay) error
}

// PriceCacheRepositoryInterface defines cache access for mandi price snapshots.
// Get returns (nil, nil) on a cache miss.
type PriceCacheRepositoryInterface interface {
	Get(ctx context.Context, crop, state string) (*model.PriceRecord, error)
	Upsert(ctx context.Context, rec *model.PriceRecord) error
}

// CropRepositoryInterface defines persistence for tracked crops.
type CropRepositoryInterface interface {
	Create(ctx context.Context, crop *model.Crop) error
	List(ctx context.Context) ([]model.Crop, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Crop, error)
	UpdateStage(ctx context.Context, id primitive.ObjectID, stage string) (*model.Crop, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExpenseRepositoryInterface defines persistence for farm transactions.
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *model.Expense) error
	List(ctx context.Context) ([]model.Expense, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Summary(ctx context.Context) (*model.FinanceSummary, error)
}

// SoilRepositoryInterface defines persistence for soil test reports.
type SoilRepositoryInterface interface {
	Create(ctx context.Context, report *model.SoilReport) error
	List(ctx context.Context) ([]model.SoilReport, error)
	Latest(ctx context.Context) (*model.SoilReport, error)
}

// UserRepositoryInterface defines persistence for user accounts.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}
