package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// ForecastCacheRepository stores the per-city forecast set, one document per
// (city, date) pair. The whole set is replaced atomically on refresh.
type ForecastCacheRepository struct {
	collection *mongo.Collection
}

// NewForecastCacheRepository creates a new forecast cache repository.
func NewForecastCacheRepository(db *MongoDB) *ForecastCacheRepository {
	return &ForecastCacheRepository{
		collection: db.ForecastCache,
	}
}

// GetAll returns the cached forecast set for a city ascending by date.
// A miss returns an empty slice and no error.
func (r *ForecastCacheRepository) GetAll(ctx context.Context, city string) ([]model.ForecastDay, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"city": city}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var days []model.ForecastDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// ReplaceAll purges the city's old rows and inserts the new set. The new set
// is fully built before the purge, so a fetch failure never leaves the city
// with a partial forecast.
func (r *ForecastCacheRepository) ReplaceAll(ctx context.Context, city string, days []model.ForecastDay) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"city": city}); err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}

	docs := make([]interface{}, len(days))
	for i := range days {
		docs[i] = days[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
