// Package repository provides data access for tracked crops.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// CropRepository provides methods for crop tracking operations.
type CropRepository struct {
	collection *mongo.Collection
}

// NewCropRepository creates a new crop repository.
func NewCropRepository(db *MongoDB) *CropRepository {
	return &CropRepository{
		collection: db.Crops,
	}
}

// Create inserts a new crop and assigns its ID.
func (r *CropRepository) Create(ctx context.Context, crop *model.Crop) error {
	now := time.Now().UTC()
	crop.ID = primitive.NewObjectID()
	crop.CreatedAt = now
	crop.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, crop)
	return err
}

// List returns all crops, newest first.
func (r *CropRepository) List(ctx context.Context) ([]model.Crop, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var crops []model.Crop
	if err := cursor.All(ctx, &crops); err != nil {
		return nil, err
	}
	return crops, nil
}

// GetByID returns a crop by its ID, or (nil, nil) when it does not exist.
func (r *CropRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Crop, error) {
	var crop model.Crop
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&crop)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &crop, nil
}

// UpdateStage moves a crop to a new growth stage and returns the updated
// document, or (nil, nil) when the crop does not exist.
func (r *CropRepository) UpdateStage(ctx context.Context, id primitive.ObjectID, stage string) (*model.Crop, error) {
	update := bson.M{
		"$set": bson.M{
			"stage":      stage,
			"updated_at": time.Now().UTC(),
		},
	}

	var crop model.Crop
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&crop)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &crop, nil
}

// Delete removes a crop. Returns ErrNotFound when no document matched.
func (r *CropRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
