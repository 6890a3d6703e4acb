package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// ChatHandler provides the HTTP handler for the chatbot route.
type ChatHandler struct {
	chat service.ChatService
}

// NewChatHandler creates a new ChatHandler instance.
func NewChatHandler(chat service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Ask handles POST /api/chatbot requests.
//
// @Summary      Ask the assistant
// @Description  Answers a natural-language farming question. Data questions are answered from live weather, price, soil, or finance data; open-ended questions go to the LLM. Without an LLM key the reply is a canned answer flagged simulated
// @Tags         Chatbot
// @Accept       json
// @Produce      json
// @Param        request body dto.ChatRequest true "Question"
// @Success      200 {object} dto.ChatResponse "Assistant reply"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/chatbot [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.chat.Ask(c.Request.Context(), req.Question)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
