package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/mocks"
	"github.com/kisanmitra/kisan-service/internal/service"
)

func newExpenseRouter(svc *mocks.MockExpenseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewExpenseHandler(svc)
	router.POST("/expense/add", handler.AddExpense)
	router.GET("/expense/list", handler.ListExpenses)
	router.GET("/expense/summary", handler.GetSummary)
	router.DELETE("/expense/:id", handler.DeleteExpense)
	return router
}

func TestExpenseHandler_AddExpense(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockExpenseService)
		expectedStatus int
	}{
		{
			name: "valid expense",
			body: `{"title": "Urea bags", "amount": 1200, "type": "expense", "date": "12 Aug 2026"}`,
			setupMocks: func(svc *mocks.MockExpenseService) {
				svc.On("Add", mock.Anything, mock.AnythingOfType("*dto.ExpenseCreateRequest")).
					Return(&model.Expense{Title: "Urea bags", Amount: 1200}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid type",
			body:           `{"title": "Urea bags", "amount": 1200, "type": "loan", "date": "12 Aug 2026"}`,
			setupMocks:     func(svc *mocks.MockExpenseService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "linked crop missing",
			body: `{"title": "Seeds", "amount": 500, "type": "expense", "date": "12 Aug 2026", "crop_id": "000000000000000000000001"}`,
			setupMocks: func(svc *mocks.MockExpenseService) {
				svc.On("Add", mock.Anything, mock.AnythingOfType("*dto.ExpenseCreateRequest")).
					Return(nil, service.ErrCropNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockExpenseService)
			tt.setupMocks(svc)
			router := newExpenseRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/expense/add", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestExpenseHandler_GetSummary(t *testing.T) {
	svc := new(mocks.MockExpenseService)
	svc.On("Summary", mock.Anything).
		Return(&model.FinanceSummary{TotalIncome: 50000, TotalExpense: 32000, Profit: 18000}, nil)
	router := newExpenseRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/expense/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary model.FinanceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 18000.0, summary.Profit)
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("unknown transaction", func(t *testing.T) {
		svc := new(mocks.MockExpenseService)
		svc.On("Delete", mock.Anything, id).Return(service.ErrExpenseNotFound)
		router := newExpenseRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/expense/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		router := newExpenseRouter(new(mocks.MockExpenseService))

		req := httptest.NewRequest(http.MethodDelete, "/expense/xyz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
