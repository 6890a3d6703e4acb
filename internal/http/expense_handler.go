package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// ExpenseHandler provides HTTP handlers for farm transaction routes.
type ExpenseHandler struct {
	expenses service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler instance.
func NewExpenseHandler(expenses service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// AddExpense handles POST /api/expense/add requests.
//
// @Summary      Add transaction
// @Description  Records an income or expense transaction, optionally linked to a tracked crop
// @Tags         Expenses
// @Accept       json
// @Produce      json
// @Param        request body dto.ExpenseCreateRequest true "Transaction details"
// @Success      201 {object} dto.StatusResponse "Transaction added"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Linked crop not found"
// @Router       /api/expense/add [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var req dto.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.expenses.Add(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewStatus("Transaction added", expense))
}

// ListExpenses handles GET /api/expense/list requests.
//
// @Summary      List transactions
// @Description  Returns all transactions, newest first, with linked crop names resolved
// @Tags         Expenses
// @Produce      json
// @Success      200 {array} model.Expense "Transactions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/expense/list [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenses.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GetSummary handles GET /api/expense/summary requests.
//
// @Summary      Finance summary
// @Description  Returns total income, total expense, and profit across all transactions
// @Tags         Expenses
// @Produce      json
// @Success      200 {object} model.FinanceSummary "Finance summary"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/expense/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	summary, err := h.expenses.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeleteExpense handles DELETE /api/expense/:id requests.
//
// @Summary      Delete transaction
// @Description  Removes a transaction
// @Tags         Expenses
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Success      200 {object} dto.StatusResponse "Transaction deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid ID"
// @Failure      404 {object} dto.ErrorResponse "Transaction not found"
// @Router       /api/expense/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatus("Transaction deleted", nil))
}
