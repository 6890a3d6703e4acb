package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// PriceCacheRepository stores one mandi price snapshot per (crop, state) pair.
type PriceCacheRepository struct {
	collection *mongo.Collection
}

// NewPriceCacheRepository creates a new price cache repository.
func NewPriceCacheRepository(db *MongoDB) *PriceCacheRepository {
	return &PriceCacheRepository{
		collection: db.PriceCache,
	}
}

// Get returns the cached price for a crop in a state, or (nil, nil) on a miss.
func (r *PriceCacheRepository) Get(ctx context.Context, crop, state string) (*model.PriceRecord, error) {
	var rec model.PriceRecord
	err := r.collection.FindOne(ctx, bson.M{"crop": crop, "state": state}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert replaces the snapshot for the record's (crop, state) pair and
// resets its age.
func (r *PriceCacheRepository) Upsert(ctx context.Context, rec *model.PriceRecord) error {
	if rec.CachedAt.IsZero() {
		rec.CachedAt = time.Now().UTC()
	}
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"crop": rec.Crop, "state": rec.State},
		bson.M{"$set": rec},
		options.Update().SetUpsert(true),
	)
	return err
}
