package dto

import "github.com/kisanmitra/kisan-service/internal/domain/model"

// PriceResponse is the JSON payload for a commodity market price.
//
// History is a synthesized trailing series, not real exchange data;
// HistorySimulated is always true so clients can never mistake it for
// genuine historical prices.
// @Description Mandi price for a commodity in a state
type PriceResponse struct {
	Crop             string             `json:"crop" example:"Tomato"`
	State            string             `json:"state" example:"Maharashtra"`
	ModalPrice       float64            `json:"modal_price" example:"1450"`
	MinPrice         float64            `json:"min_price" example:"1200"`
	MaxPrice         float64            `json:"max_price" example:"1700"`
	Market           string             `json:"market" example:"Pune Market"`
	District         string             `json:"district" example:"Pune"`
	ArrivalDate      string             `json:"arrival_date" example:"28-01-2026"`
	Unit             string             `json:"unit" example:"Quintal"`
	History          []model.PricePoint `json:"history"`
	HistorySimulated bool               `json:"history_simulated"`
	Cached           bool               `json:"cached,omitempty"`
	Stale            bool               `json:"stale,omitempty"`
} // @name PriceResponse

// NewPriceResponse builds a PriceResponse from a cached or live record.
// The history series is attached by the caller.
func NewPriceResponse(rec *model.PriceRecord, history []model.PricePoint, cached, stale bool) PriceResponse {
	return PriceResponse{
		Crop:             rec.Crop,
		State:            rec.State,
		ModalPrice:       rec.ModalPrice,
		MinPrice:         rec.MinPrice,
		MaxPrice:         rec.MaxPrice,
		Market:           rec.Market,
		District:         rec.District,
		ArrivalDate:      rec.ArrivalDate,
		Unit:             rec.Unit,
		History:          history,
		HistorySimulated: true,
		Cached:           cached,
		Stale:            stale,
	}
}
