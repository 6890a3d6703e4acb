package service

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/fetcher"
	"github.com/kisanmitra/kisan-service/internal/repository"
)

// historyDays is the length of the synthesized trailing price series.
const historyDays = 7

// PriceService provides mandi price lookups with caching.
type PriceService interface {
	MarketPrice(ctx context.Context, crop, state string) (*dto.PriceResponse, error)
}

// PriceServiceImpl implements PriceService.
type PriceServiceImpl struct {
	priceRepo repository.PriceCacheRepositoryInterface
	provider  fetcher.PriceProvider
	priceTTL  time.Duration
	// jitter returns a uniform value in [0, 1). Injectable for tests.
	jitter func() float64
}

// NewPriceService creates a new price service.
func NewPriceService(
	priceRepo repository.PriceCacheRepositoryInterface,
	provider fetcher.PriceProvider,
	priceTTL time.Duration,
) PriceService {
	return &PriceServiceImpl{
		priceRepo: priceRepo,
		provider:  provider,
		priceTTL:  priceTTL,
		jitter:    rand.Float64,
	}
}

// MarketPrice returns the current mandi price for a crop in a state, cached
// per the TTL, with a synthesized trailing history attached.
func (s *PriceServiceImpl) MarketPrice(ctx context.Context, crop, state string) (*dto.PriceResponse, error) {
	cached, err := s.priceRepo.Get(ctx, crop, state)
	if err != nil {
		return nil, err
	}

	var cachedAt time.Time
	if cached != nil {
		cachedAt = cached.CachedAt
	}

	rec, origin, err := resolveCached(ctx, "price", s.priceTTL,
		cached != nil, cached, cachedAt,
		func(ctx context.Context) (*model.PriceRecord, error) {
			return s.provider.MarketPrice(ctx, crop, state)
		},
		func(ctx context.Context, rec *model.PriceRecord) error {
			return s.priceRepo.Upsert(ctx, rec)
		},
	)
	if err != nil {
		return nil, err
	}

	history := s.generateHistory(rec.ModalPrice)
	resp := dto.NewPriceResponse(rec, history, origin.Cached(), origin.Stale())
	return &resp, nil
}

// generateHistory synthesizes a 7-day trailing price series around the modal
// price, oldest first, ending today. No historical price API is available, so
// each point fluctuates within ±10% of the base; responses flag the series
// as simulated.
func (s *PriceServiceImpl) generateHistory(basePrice float64) []model.PricePoint {
	if basePrice <= 0 {
		return []model.PricePoint{}
	}

	today := time.Now()
	history := make([]model.PricePoint, 0, historyDays)
	for i := historyDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("02 Jan")
		fluctuation := 1 + (s.jitter()*0.2 - 0.1)
		history = append(history, model.PricePoint{
			Date:  date,
			Price: int(math.Round(basePrice * fluctuation)),
		})
	}
	return history
}
