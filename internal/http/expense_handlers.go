package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/http/middleware"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type expenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	SpentAt     string  `json:"spent_at"`
}

func (h *Handler) createExpense(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := model.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		CreatedByID: principal.UserID,
	}
	if req.SpentAt != "" {
		spentAt, err := parseDate(req.SpentAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spent_at"})
			return
		}
		expense.SpentAt = spentAt
	}

	saved, err := h.expenses.Create(c.Request.Context(), expense)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) deleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listExpenses(c *gin.Context) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		to = &parsed
	}

	expenses, err := h.expenses.List(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}
