package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/kisan-service/config"
	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/fetcher"
	"github.com/kisanmitra/kisan-service/internal/llm"
	"github.com/kisanmitra/kisan-service/internal/mocks"
	"github.com/kisanmitra/kisan-service/internal/service"
)

func testDefaults() config.DefaultsConfig {
	return config.DefaultsConfig{City: "Pune", State: "Maharashtra", Crop: "Tomato"}
}

type chatMocks struct {
	llm     *mocks.MockLLMClient
	weather *mocks.MockWeatherService
	price   *mocks.MockPriceService
	soil    *mocks.MockSoilService
	expense *mocks.MockExpenseService
}

func newChatService(t *testing.T) (service.ChatService, *chatMocks) {
	t.Helper()
	m := &chatMocks{
		llm:     new(mocks.MockLLMClient),
		weather: new(mocks.MockWeatherService),
		price:   new(mocks.MockPriceService),
		soil:    new(mocks.MockSoilService),
		expense: new(mocks.MockExpenseService),
	}
	svc := service.NewChatService(m.llm, m.weather, m.price, m.soil, m.expense, testDefaults())
	return svc, m
}

// promptContaining matches the user prompt of an LLM call by substring.
func promptContaining(substr string) interface{} {
	return mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, substr)
	})
}

func TestChatService_WeatherIntent(t *testing.T) {
	svc, m := newChatService(t)

	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("weather", nil)
	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Extract the city")).Return("Nashik", nil)
	m.weather.On("Current", mock.Anything, "Nashik").Return(&dto.WeatherResponse{
		City: "Nashik", Temp: 28.4, Temperature: 28.4, Condition: "scattered clouds", Humidity: 64,
	}, nil)

	resp, err := svc.Ask(context.Background(), "How is the weather in Nashik?")

	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "Weather Update – Nashik")
	assert.Contains(t, resp.Answer, "28.4°C")
	assert.False(t, resp.Simulated)
}

func TestChatService_WeatherIntent_UpstreamErrorBecomesAnswer(t *testing.T) {
	svc, m := newChatService(t)

	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("weather", nil)
	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Extract the city")).Return("Atlantis", nil)
	m.weather.On("Current", mock.Anything, "Atlantis").
		Return(nil, &fetcher.Error{Kind: fetcher.KindNotFound, Message: "City 'Atlantis' not found"})

	resp, err := svc.Ask(context.Background(), "How is the weather in Atlantis?")

	require.NoError(t, err)
	assert.Equal(t, "City 'Atlantis' not found", resp.Answer)
}

func TestChatService_PriceIntent(t *testing.T) {
	svc, m := newChatService(t)

	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("price", nil)
	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Extract the crop")).Return("Onion", nil)
	m.price.On("MarketPrice", mock.Anything, "Onion", "Maharashtra").Return(&dto.PriceResponse{
		Crop: "Onion", State: "Maharashtra", ModalPrice: 900, MinPrice: 700, MaxPrice: 1100, Market: "Lasalgaon",
	}, nil)

	resp, err := svc.Ask(context.Background(), "What is the onion price?")

	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "Market Price for Onion – Maharashtra")
	assert.Contains(t, resp.Answer, "₹900")
}

func TestChatService_SoilIntent(t *testing.T) {
	t.Run("formats the latest report", func(t *testing.T) {
		svc, m := newChatService(t)
		m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("soil", nil)
		m.soil.On("Latest", mock.Anything).Return(&model.SoilReport{Field: "North Plot", PH: 6.5}, nil)

		resp, err := svc.Ask(context.Background(), "How is my soil?")

		require.NoError(t, err)
		assert.Contains(t, resp.Answer, "Soil Report")
		assert.Contains(t, resp.Answer, "North Plot")
	})

	t.Run("no report yet", func(t *testing.T) {
		svc, m := newChatService(t)
		m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("soil", nil)
		m.soil.On("Latest", mock.Anything).Return(nil, nil)

		resp, err := svc.Ask(context.Background(), "How is my soil?")

		require.NoError(t, err)
		assert.Equal(t, "No soil data", resp.Answer)
	})
}

func TestChatService_FinanceIntent(t *testing.T) {
	svc, m := newChatService(t)

	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("finance", nil)
	m.expense.On("Summary", mock.Anything).Return(&model.FinanceSummary{TotalIncome: 50000, TotalExpense: 32000, Profit: 18000}, nil)

	resp, err := svc.Ask(context.Background(), "Am I making money this season?")

	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "Farm Finance Summary")
	assert.Contains(t, resp.Answer, "₹18000")
}

func TestChatService_CropAdviceUsesLLM(t *testing.T) {
	svc, m := newChatService(t)

	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("crop_advice", nil)
	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Give practical crop advice")).
		Return("Mulch your tomato beds before the dry spell.", nil)

	resp, err := svc.Ask(context.Background(), "Any advice for my tomatoes?")

	require.NoError(t, err)
	assert.Equal(t, "Mulch your tomato beds before the dry spell.", resp.Answer)
	assert.False(t, resp.Simulated)
}

func TestChatService_OfflineMode(t *testing.T) {
	t.Run("weather question routes by keyword", func(t *testing.T) {
		svc, m := newChatService(t)
		m.llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", llm.ErrNotConfigured)
		m.weather.On("Current", mock.Anything, "Pune").Return(&dto.WeatherResponse{
			City: "Pune", Temp: 30, Temperature: 30, Condition: "clear sky",
		}, nil)

		resp, err := svc.Ask(context.Background(), "Will it rain? How is the weather?")

		require.NoError(t, err)
		assert.Contains(t, resp.Answer, "Weather Update – Pune")
	})

	t.Run("finance question routes by keyword", func(t *testing.T) {
		svc, m := newChatService(t)
		m.llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", llm.ErrNotConfigured)
		m.expense.On("Summary", mock.Anything).Return(&model.FinanceSummary{Profit: 100}, nil)

		resp, err := svc.Ask(context.Background(), "Show my expense total")

		require.NoError(t, err)
		assert.Contains(t, resp.Answer, "Farm Finance Summary")
	})

	t.Run("advice question gets the canned tip", func(t *testing.T) {
		svc, m := newChatService(t)
		m.llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", llm.ErrNotConfigured)

		resp, err := svc.Ask(context.Background(), "Give me a farming tip")

		require.NoError(t, err)
		assert.Equal(t, "Rotate your crops to maintain soil health and reduce pest attacks.", resp.Answer)
		assert.True(t, resp.Simulated)
	})

	t.Run("open question gets the offline notice", func(t *testing.T) {
		svc, m := newChatService(t)
		m.llm.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", llm.ErrNotConfigured)

		resp, err := svc.Ask(context.Background(), "Tell me about crop insurance schemes")

		require.NoError(t, err)
		assert.Contains(t, resp.Answer, "offline mode")
		assert.True(t, resp.Simulated)
	})
}

func TestChatService_CityExtractionFallsBackToDefault(t *testing.T) {
	svc, m := newChatService(t)

	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Classify the intent")).Return("weather", nil)
	m.llm.On("Complete", mock.Anything, mock.Anything, promptContaining("Extract the city")).Return("  ", nil)
	m.weather.On("Current", mock.Anything, "Pune").Return(&dto.WeatherResponse{City: "Pune", Temp: 30}, nil)

	resp, err := svc.Ask(context.Background(), "How is the weather?")

	require.NoError(t, err)
	assert.Contains(t, resp.Answer, "Pune")
	m.weather.AssertExpectations(t)
}
