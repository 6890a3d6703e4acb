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

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/mocks"
)

func newChatRouter(svc *mocks.MockChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewChatHandler(svc)
	router.POST("/chatbot", handler.Ask)
	return router
}

func TestChatHandler_Ask(t *testing.T) {
	t.Run("returns the assistant answer", func(t *testing.T) {
		svc := new(mocks.MockChatService)
		svc.On("Ask", mock.Anything, "When should I sow wheat?").
			Return(&dto.ChatResponse{Answer: "Sow wheat in early November once soil moisture is adequate."}, nil)
		router := newChatRouter(svc)

		body := `{"question": "When should I sow wheat?"}`
		req := httptest.NewRequest(http.MethodPost, "/chatbot", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Answer, "Sow wheat")
		assert.False(t, resp.Simulated)
		svc.AssertExpectations(t)
	})

	t.Run("question is trimmed before dispatch", func(t *testing.T) {
		svc := new(mocks.MockChatService)
		svc.On("Ask", mock.Anything, "mandi rates?").
			Return(&dto.ChatResponse{Answer: "ok", Simulated: true}, nil)
		router := newChatRouter(svc)

		body := `{"question": "  mandi rates?  "}`
		req := httptest.NewRequest(http.MethodPost, "/chatbot", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Simulated)
		svc.AssertExpectations(t)
	})

	t.Run("blank question rejected", func(t *testing.T) {
		router := newChatRouter(new(mocks.MockChatService))

		body := `{"question": "   "}`
		req := httptest.NewRequest(http.MethodPost, "/chatbot", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing question rejected", func(t *testing.T) {
		router := newChatRouter(new(mocks.MockChatService))

		req := httptest.NewRequest(http.MethodPost, "/chatbot", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
