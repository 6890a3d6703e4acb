package model

import "time"

// PriceRecord is a point-cached mandi price for a commodity in a state.
// The cache key is the (Crop, State) pair.
type PriceRecord struct {
	Crop        string    `bson:"crop" json:"crop"`
	State       string    `bson:"state" json:"state"`
	ModalPrice  float64   `bson:"modal_price" json:"modal_price"`
	MinPrice    float64   `bson:"min_price" json:"min_price"`
	MaxPrice    float64   `bson:"max_price" json:"max_price"`
	Market      string    `bson:"market" json:"market"`
	District    string    `bson:"district" json:"district"`
	ArrivalDate string    `bson:"arrival_date" json:"arrival_date"`
	Unit        string    `bson:"unit" json:"unit"`
	CachedAt    time.Time `bson:"cached_at" json:"cached_at"`
}

// PricePoint is one entry of the synthesized trailing price history.
type PricePoint struct {
	Date  string `json:"date"` // "02 Jan"
	Price int    `json:"price"`
}
