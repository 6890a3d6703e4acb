package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Crop growth stages, in sowing-to-harvest order.
const (
	StageSown       = "Sown"
	StageGrowing    = "Growing"
	StageFlowering  = "Flowering"
	StageHarvesting = "Harvesting"
	StageHarvested  = "Harvested"
)

// Crop is a tracked planting on a plot.
type Crop struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Crop            string             `bson:"crop" json:"crop"`
	Plot            string             `bson:"plot" json:"plot"`
	SownDate        string             `bson:"sown_date" json:"sown_date"`
	Stage           string             `bson:"stage" json:"stage"`
	ExpectedHarvest string             `bson:"expected_harvest,omitempty" json:"expected_harvest,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// Transaction types for expenses.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Expense is a single income or expense transaction, optionally linked to a crop.
type Expense struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title     string              `bson:"title" json:"title"`
	Amount    float64             `bson:"amount" json:"amount"`
	Type      string              `bson:"type" json:"type"`
	Category  string              `bson:"category,omitempty" json:"category,omitempty"`
	Date      string              `bson:"date" json:"date"`
	CropID    *primitive.ObjectID `bson:"crop_id,omitempty" json:"crop_id,omitempty"`
	CropName  string              `bson:"-" json:"crop_name,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// FinanceSummary aggregates all transactions into income, expense, and profit.
type FinanceSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Profit       float64 `json:"profit"`
}

// SoilReport is a soil health test result for a field.
type SoilReport struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Field      string             `bson:"field" json:"location"`
	PH         float64            `bson:"ph" json:"ph"`
	Nitrogen   float64            `bson:"nitrogen" json:"nitrogen"`
	Phosphorus float64            `bson:"phosphorus" json:"phosphorus"`
	Potassium  float64            `bson:"potassium" json:"potassium"`
	Moisture   float64            `bson:"moisture" json:"moisture"`
	LastTested string             `bson:"last_tested" json:"date"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
