// Package repository provides data access for the external-data caches.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// WeatherCacheRepository stores one current-weather snapshot per city.
type WeatherCacheRepository struct {
	collection *mongo.Collection
}

// NewWeatherCacheRepository creates a new weather cache repository.
func NewWeatherCacheRepository(db *MongoDB) *WeatherCacheRepository {
	return &WeatherCacheRepository{
		collection: db.WeatherCache,
	}
}

// Get returns the cached snapshot for a city, or (nil, nil) on a miss.
func (r *WeatherCacheRepository) Get(ctx context.Context, city string) (*model.WeatherRecord, error) {
	var rec model.WeatherRecord
	err := r.collection.FindOne(ctx, bson.M{"city": city}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert replaces the snapshot for the record's city and resets its age.
func (r *WeatherCacheRepository) Upsert(ctx context.Context, rec *model.WeatherRecord) error {
	if rec.CachedAt.IsZero() {
		rec.CachedAt = time.Now().UTC()
	}
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"city": rec.City},
		bson.M{"$set": rec},
		options.Update().SetUpsert(true),
	)
	return err
}
