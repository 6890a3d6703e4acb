package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/llm"
)

// insightFallback is served when the tip cannot be generated.
const insightFallback = "Unable to generate insights at this time. Please try again later."

// DashboardService aggregates the home-screen data. Each section is fetched
// independently so one failing upstream does not blank the whole dashboard.
type DashboardService interface {
	Overview(ctx context.Context, city, crop string) (*dto.DashboardResponse, error)
	Insight(ctx context.Context, city, crop string) (*dto.InsightResponse, error)
}

// DashboardServiceImpl implements DashboardService.
type DashboardServiceImpl struct {
	weather  WeatherService
	price    PriceService
	crops    CropService
	expense  ExpenseService
	llm      llm.Client
	defaults config.DefaultsConfig
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	weather WeatherService,
	price PriceService,
	crops CropService,
	expense ExpenseService,
	llmClient llm.Client,
	defaults config.DefaultsConfig,
) DashboardService {
	return &DashboardServiceImpl{
		weather:  weather,
		price:    price,
		crops:    crops,
		expense:  expense,
		llm:      llmClient,
		defaults: defaults,
	}
}

// Overview returns weather, price, crop, and finance data in one payload.
// City and crop fall back to configured defaults when empty.
func (s *DashboardServiceImpl) Overview(ctx context.Context, city, crop string) (*dto.DashboardResponse, error) {
	city, crop = s.applyDefaults(city, crop)

	resp := &dto.DashboardResponse{}

	weather, err := s.weather.Current(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("dashboard weather fetch failed")
		resp.WeatherError = "Failed to fetch weather"
	} else {
		resp.Weather = weather
	}

	price, err := s.price.MarketPrice(ctx, crop, s.defaults.State)
	if err != nil {
		log.Error().Err(err).Str("crop", crop).Msg("dashboard price fetch failed")
		resp.PriceError = "Failed to fetch prices"
	} else {
		resp.Price = price
	}

	crops, err := s.crops.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard crops fetch failed")
		crops = []model.Crop{}
	}
	resp.Crops = crops
	resp.CropCount = len(crops)

	summary, err := s.expense.Summary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard finance fetch failed")
		summary = &model.FinanceSummary{}
	}
	resp.Financials = *summary

	return resp, nil
}

// Insight generates a one-sentence farming tip from current weather and
// price data. Failed lookups become "Unknown" in the prompt, and any LLM
// failure yields a static fallback message.
func (s *DashboardServiceImpl) Insight(ctx context.Context, city, crop string) (*dto.InsightResponse, error) {
	city, crop = s.applyDefaults(city, crop)

	weatherSummary := "Unknown"
	if w, err := s.weather.Current(ctx, city); err == nil {
		weatherSummary = fmt.Sprintf("%gC, %s", w.Temp, w.Condition)
	}

	priceSummary := "Unknown"
	if p, err := s.price.MarketPrice(ctx, crop, s.defaults.State); err == nil {
		priceSummary = fmt.Sprintf("%s: %g", p.Crop, p.ModalPrice)
	}

	prompt := fmt.Sprintf(`Generate a 1-sentence farming tip based on this data:
Weather: %s
Prices: %s

Keep it practical and actionable for an Indian farmer.`, weatherSummary, priceSummary)

	insight, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("dashboard insight generation failed")
		return &dto.InsightResponse{Insight: insightFallback, Simulated: true}, nil
	}
	return &dto.InsightResponse{Insight: insight}, nil
}

func (s *DashboardServiceImpl) applyDefaults(city, crop string) (string, string) {
	if city == "" {
		city = s.defaults.City
	}
	if crop == "" {
		crop = s.defaults.Crop
	}
	return city, crop
}
