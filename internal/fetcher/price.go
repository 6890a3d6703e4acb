package fetcher

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/metrics"
)

// MandiClient fetches mandi (wholesale market) prices from the data.gov.in
// commodity price dataset.
type MandiClient struct {
	http   *resty.Client
	apiKey string
}

// NewMandiClient creates a price client from provider configuration.
func NewMandiClient(cfg config.ProviderConfig) *MandiClient {
	client := resty.New().
		SetBaseURL(cfg.MandiBaseURL).
		SetTimeout(cfg.FetchTimeout)
	return &MandiClient{http: client, apiKey: cfg.MandiAPIKey}
}

// mandiRecord carries the raw dataset row. The dataset serves numeric fields
// as strings, so prices are parsed separately.
type mandiRecord struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

type mandiPayload struct {
	Records []mandiRecord `json:"records"`
}

// MarketPrice fetches the latest mandi price for a commodity in a state.
// An empty records list means the dataset has no entry for the commodity.
func (c *MandiClient) MarketPrice(ctx context.Context, commodity, state string) (*model.PriceRecord, error) {
	if c.apiKey == "" {
		return nil, newError(KindConfigMissing, "Price service configuration missing")
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api-key":            c.apiKey,
			"format":             "json",
			"filters[Commodity]": commodity,
			"filters[State]":     state,
			"limit":              "1",
		}).
		Get("")
	if err != nil {
		metrics.RecordUpstreamFetch("mandi", KindNetwork.String(), time.Since(start))
		return nil, newError(KindNetwork, "Unable to fetch price data")
	}

	if err := classifyStatus(resp.StatusCode(), "Price service", "No data found for this commodity"); err != nil {
		metrics.RecordUpstreamFetch("mandi", KindOf(err).String(), time.Since(start))
		return nil, err
	}

	var payload mandiPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		metrics.RecordUpstreamFetch("mandi", KindMalformed.String(), time.Since(start))
		return nil, newError(KindMalformed, "Unable to fetch price data")
	}
	if len(payload.Records) == 0 {
		metrics.RecordUpstreamFetch("mandi", KindNotFound.String(), time.Since(start))
		return nil, newError(KindNotFound, "No data found for this commodity")
	}

	rec := payload.Records[0]
	modal, err := strconv.ParseFloat(rec.ModalPrice, 64)
	if err != nil {
		metrics.RecordUpstreamFetch("mandi", KindMalformed.String(), time.Since(start))
		return nil, newError(KindMalformed, "Unable to fetch price data")
	}
	minPrice, _ := strconv.ParseFloat(rec.MinPrice, 64)
	maxPrice, _ := strconv.ParseFloat(rec.MaxPrice, 64)
	metrics.RecordUpstreamFetch("mandi", "success", time.Since(start))

	return &model.PriceRecord{
		Crop:        commodity,
		State:       state,
		ModalPrice:  modal,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Market:      rec.Market,
		District:    rec.District,
		ArrivalDate: rec.ArrivalDate,
		Unit:        "Quintal",
		CachedAt:    time.Now().UTC(),
	}, nil
}
