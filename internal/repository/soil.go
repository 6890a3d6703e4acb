// Package repository provides data access for soil test reports.
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

// SoilRepository provides methods for soil report operations.
type SoilRepository struct {
	collection *mongo.Collection
}

// NewSoilRepository creates a new soil repository.
func NewSoilRepository(db *MongoDB) *SoilRepository {
	return &SoilRepository{
		collection: db.SoilReports,
	}
}

// Create inserts a new soil report and assigns its ID.
func (r *SoilRepository) Create(ctx context.Context, report *model.SoilReport) error {
	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// List returns all soil reports, newest first.
func (r *SoilRepository) List(ctx context.Context) ([]model.SoilReport, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []model.SoilReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Latest returns the most recent soil report, or (nil, nil) when none exist.
func (r *SoilRepository) Latest(ctx context.Context) (*model.SoilReport, error) {
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})
	var report model.SoilReport
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
