// Package repository provides data access for farm transactions.
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

// ExpenseRepository provides methods for income and expense transactions.
type ExpenseRepository struct {
	collection *mongo.Collection
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *MongoDB) *ExpenseRepository {
	return &ExpenseRepository{
		collection: db.Expenses,
	}
}

// Create inserts a new transaction and assigns its ID.
func (r *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	expense.ID = primitive.NewObjectID()
	expense.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, expense)
	return err
}

// List returns all transactions, newest first.
func (r *ExpenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []model.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Delete removes a transaction. Returns ErrNotFound when no document matched.
func (r *ExpenseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary aggregates all transactions into total income, total expense, and
// profit using a server-side group pipeline.
func (r *ExpenseRepository) Summary(ctx context.Context) (*model.FinanceSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Type  string  `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	summary := &model.FinanceSummary{}
	for _, row := range rows {
		switch row.Type {
		case model.TransactionIncome:
			summary.TotalIncome = row.Total
		case model.TransactionExpense:
			summary.TotalExpense = row.Total
		}
	}
	summary.Profit = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}
