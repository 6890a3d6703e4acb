package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/llm"
)

// systemPrompt frames every LLM call made on behalf of the chatbot.
const systemPrompt = "You are KisanAI, a helpful farming assistant. Keep answers short, clear, and farmer-friendly."

// offlineAnswer is returned for open-ended questions when no LLM is reachable.
const offlineAnswer = "I am in offline mode. Please check your internet or API key for live AI answers. Meanwhile: Farming is essential!"

// ChatService answers natural-language farming questions. Questions about
// weather, prices, soil, or finances are answered from live data; open-ended
// questions go to the LLM. Without an LLM the service degrades to keyword
// routing and canned answers, flagged via the Simulated field.
type ChatService interface {
	Ask(ctx context.Context, question string) (*dto.ChatResponse, error)
}

// ChatServiceImpl implements ChatService.
type ChatServiceImpl struct {
	llm      llm.Client
	weather  WeatherService
	price    PriceService
	soil     SoilService
	expense  ExpenseService
	defaults config.DefaultsConfig
}

// NewChatService creates a new chat service.
func NewChatService(
	llmClient llm.Client,
	weather WeatherService,
	price PriceService,
	soil SoilService,
	expense ExpenseService,
	defaults config.DefaultsConfig,
) ChatService {
	return &ChatServiceImpl{
		llm:      llmClient,
		weather:  weather,
		price:    price,
		soil:     soil,
		expense:  expense,
		defaults: defaults,
	}
}

// Ask routes a question by intent and returns a formatted answer. Data-backed
// intents surface upstream error messages as the answer rather than failing
// the request.
func (s *ChatServiceImpl) Ask(ctx context.Context, question string) (*dto.ChatResponse, error) {
	intent := s.detectIntent(ctx, question)
	log.Debug().Str("intent", intent).Msg("chat intent detected")

	switch {
	case strings.Contains(intent, "weather"):
		city := s.extractCity(ctx, question)
		resp, err := s.weather.Current(ctx, city)
		if err != nil {
			return &dto.ChatResponse{Answer: err.Error()}, nil
		}
		rec := &model.WeatherRecord{
			City:        resp.City,
			Temperature: resp.Temp,
			Condition:   resp.Condition,
			Humidity:    resp.Humidity,
			WindSpeed:   resp.WindSpeed,
		}
		return &dto.ChatResponse{Answer: FormatWeather(city, rec)}, nil

	case strings.Contains(intent, "price"):
		crop := s.extractCrop(ctx, question)
		resp, err := s.price.MarketPrice(ctx, crop, s.defaults.State)
		if err != nil {
			return &dto.ChatResponse{Answer: err.Error()}, nil
		}
		rec := &model.PriceRecord{
			Crop:       resp.Crop,
			State:      resp.State,
			ModalPrice: resp.ModalPrice,
			MinPrice:   resp.MinPrice,
			MaxPrice:   resp.MaxPrice,
			Market:     resp.Market,
		}
		return &dto.ChatResponse{Answer: FormatPrice(rec)}, nil

	case strings.Contains(intent, "soil"):
		report, err := s.soil.Latest(ctx)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return &dto.ChatResponse{Answer: "No soil data"}, nil
		}
		return &dto.ChatResponse{Answer: FormatSoil(report)}, nil

	case strings.Contains(intent, "finance"):
		summary, err := s.expense.Summary(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.ChatResponse{Answer: FormatFinance(summary)}, nil

	case strings.Contains(intent, "crop_advice"):
		prompt := fmt.Sprintf("Give practical crop advice for a farmer: %s. Keep it short and in simple language.", question)
		answer, simulated := s.askLLM(ctx, prompt, question)
		return &dto.ChatResponse{Answer: answer, Simulated: simulated}, nil
	}

	prompt := fmt.Sprintf("You are KisanAI. Explain answer simply for farmers: %s", question)
	answer, simulated := s.askLLM(ctx, prompt, question)
	return &dto.ChatResponse{Answer: answer, Simulated: simulated}, nil
}

// askLLM sends a prompt to the LLM and falls back to a canned answer keyed on
// the question when the LLM is unconfigured or unreachable.
func (s *ChatServiceImpl) askLLM(ctx context.Context, prompt, question string) (string, bool) {
	answer, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			log.Warn().Err(err).Msg("llm request failed, using canned answer")
		}
		return mockAnswer(question), true
	}
	return strings.TrimSpace(answer), false
}

// detectIntent classifies a question into one of the supported intents.
// Without an LLM it scans the question itself for intent keywords.
func (s *ChatServiceImpl) detectIntent(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(`Classify the intent of this question into one word:
- weather
- price
- soil
- finance
- crop_advice
- general

Question: %q

ONLY return one word.`, question)

	intent, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return keywordIntent(question)
	}
	return strings.ToLower(strings.TrimSpace(intent))
}

// extractCity pulls a city name out of the question, defaulting when the LLM
// is unavailable or finds none.
func (s *ChatServiceImpl) extractCity(ctx context.Context, question string) string {
	prompt := fmt.Sprintf("Extract the city name from: %q\nIf none found, return %q.\nONLY return the city.", question, s.defaults.City)
	city, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil || strings.TrimSpace(city) == "" {
		return s.defaults.City
	}
	return strings.TrimSpace(city)
}

// extractCrop pulls a crop name out of the question, defaulting when the LLM
// is unavailable or finds none.
func (s *ChatServiceImpl) extractCrop(ctx context.Context, question string) string {
	prompt := fmt.Sprintf("Extract the crop name from: %q\nONLY return the crop. If not found, return %q.", question, s.defaults.Crop)
	crop, err := s.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil || strings.TrimSpace(crop) == "" {
		return s.defaults.Crop
	}
	return strings.TrimSpace(crop)
}

// keywordIntent is the offline intent classifier.
func keywordIntent(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "weather") || strings.Contains(q, "rain") || strings.Contains(q, "temperature"):
		return "weather"
	case strings.Contains(q, "price") || strings.Contains(q, "mandi") || strings.Contains(q, "market"):
		return "price"
	case strings.Contains(q, "soil"):
		return "soil"
	case strings.Contains(q, "finance") || strings.Contains(q, "expense") || strings.Contains(q, "profit"):
		return "finance"
	case strings.Contains(q, "advice") || strings.Contains(q, "tip"):
		return "crop_advice"
	}
	return "general"
}

// mockAnswer returns a plausible canned answer keyed on the question.
func mockAnswer(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "weather"):
		return "The weather looks clear for the next few days. Good for spraying pesticides."
	case strings.Contains(q, "price"):
		return "Market prices are fluctuating. It might be good to hold for a week if you have storage."
	case strings.Contains(q, "soil"):
		return "Your soil nitrogen levels seem low. Consider adding Urea or compost."
	case strings.Contains(q, "finance"):
		return "You are in profit this season! Keep tracking your expenses."
	case strings.Contains(q, "advice"), strings.Contains(q, "tip"):
		return "Rotate your crops to maintain soil health and reduce pest attacks."
	}
	return offlineAnswer
}
