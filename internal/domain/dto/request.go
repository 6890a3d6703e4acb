package dto

import "strings"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CropCreateRequest represents the JSON request body for adding a crop.
//
// @Description Request to track a new crop
// @Example {"crop": "Tomato", "plot": "North field"}
type CropCreateRequest struct {
	// Crop is the crop name.
	Crop string `json:"crop" binding:"required" example:"Tomato"`
	// Plot identifies the field or plot the crop is sown on.
	Plot string `json:"plot" binding:"required" example:"North field"`
	// SownDate is optional; it defaults to today.
	SownDate string `json:"sown_date,omitempty" example:"20 Jan 2026"`
	// Stage is optional; new crops default to "Sown".
	Stage string `json:"stage,omitempty" example:"Sown"`
	// ExpectedHarvest is an optional expected harvest date.
	ExpectedHarvest string `json:"expected_harvest,omitempty" example:"15 Apr 2026"`
	// Notes holds optional free-form notes.
	Notes string `json:"notes,omitempty"`
} // @name CropCreateRequest

// Validate performs custom validation on the request.
func (r *CropCreateRequest) Validate() error {
	if strings.TrimSpace(r.Crop) == "" {
		return &ValidationError{Field: "crop", Message: "is required"}
	}
	if strings.TrimSpace(r.Plot) == "" {
		return &ValidationError{Field: "plot", Message: "is required"}
	}
	return nil
}

// CropStageUpdateRequest represents the JSON request body for a stage change.
//
// @Description Request to update a crop's growth stage
// @Example {"stage": "Flowering"}
type CropStageUpdateRequest struct {
	// Stage is the new growth stage.
	Stage string `json:"stage" binding:"required" example:"Flowering"`
} // @name CropStageUpdateRequest

// Validate performs custom validation on the request.
func (r *CropStageUpdateRequest) Validate() error {
	if strings.TrimSpace(r.Stage) == "" {
		return &ValidationError{Field: "stage", Message: "is required"}
	}
	return nil
}

// ExpenseCreateRequest represents the JSON request body for adding a transaction.
//
// @Description Request to record an income or expense transaction
// @Example {"title": "Urea bags", "amount": 1200, "type": "expense", "date": "2026-01-20"}
type ExpenseCreateRequest struct {
	// Title describes the transaction.
	Title string `json:"title" binding:"required" example:"Urea bags"`
	// Amount is the transaction value in rupees.
	Amount float64 `json:"amount" binding:"required,gt=0" example:"1200"`
	// Type is either "income" or "expense".
	Type string `json:"type" binding:"required" example:"expense"`
	// Category optionally groups the transaction (Inputs, Fuel, Labour...).
	Category string `json:"category,omitempty" example:"Inputs"`
	// Date is the transaction date in YYYY-MM-DD format.
	Date string `json:"date" binding:"required" example:"2026-01-20"`
	// CropID optionally links the transaction to a tracked crop.
	CropID string `json:"crop_id,omitempty"`
} // @name ExpenseCreateRequest

// Validate performs custom validation on the request.
func (r *ExpenseCreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if r.Type != "income" && r.Type != "expense" {
		return &ValidationError{Field: "type", Message: "must be \"income\" or \"expense\""}
	}
	if strings.TrimSpace(r.Date) == "" {
		return &ValidationError{Field: "date", Message: "is required"}
	}
	return nil
}

// SoilReportCreateRequest represents the JSON request body for a soil report.
//
// @Description Request to record a soil health report
// @Example {"location": "North field", "ph": 6.8, "nitrogen": 140, "phosphorus": 22, "potassium": 180, "moisture": 35}
type SoilReportCreateRequest struct {
	// Location is the field or plot the sample was taken from.
	Location string `json:"location" example:"North field"`
	// PH is the soil pH value (0-14).
	PH float64 `json:"ph" binding:"required" example:"6.8"`
	// Nitrogen level in kg/ha.
	Nitrogen float64 `json:"nitrogen" binding:"required" example:"140"`
	// Phosphorus level in kg/ha.
	Phosphorus float64 `json:"phosphorus" binding:"required" example:"22"`
	// Potassium level in kg/ha.
	Potassium float64 `json:"potassium" binding:"required" example:"180"`
	// Moisture percentage.
	Moisture float64 `json:"moisture" example:"35"`
} // @name SoilReportCreateRequest

// Validate performs custom validation on the request.
func (r *SoilReportCreateRequest) Validate() error {
	if r.PH < 0 || r.PH > 14 {
		return &ValidationError{Field: "ph", Message: "must be between 0 and 14"}
	}
	if r.Nitrogen < 0 || r.Phosphorus < 0 || r.Potassium < 0 {
		return &ValidationError{Field: "nutrients", Message: "must not be negative"}
	}
	return nil
}

// ChatRequest represents the JSON request body for the chatbot endpoint.
//
// @Description A natural-language question for the assistant
// @Example {"question": "What is the weather in Pune?"}
type ChatRequest struct {
	// Question is the user's natural-language question.
	Question string `json:"question" binding:"required,min=1,max=2000" example:"What is the weather in Pune?"`
} // @name ChatRequest

// Validate performs custom validation on the request.
func (r *ChatRequest) Validate() error {
	r.Question = strings.TrimSpace(r.Question)
	if r.Question == "" {
		return &ValidationError{Field: "question", Message: "cannot be empty"}
	}
	if len(r.Question) > 2000 {
		return &ValidationError{Field: "question", Message: "must be at most 2000 characters"}
	}
	return nil
}

// ChatResponse is the JSON payload returned by the chatbot endpoint.
// Simulated is true when the reply came from the offline fallback rather
// than the live LLM.
// @Description Assistant reply
type ChatResponse struct {
	Answer    string `json:"answer"`
	Simulated bool   `json:"simulated,omitempty"`
} // @name ChatResponse
