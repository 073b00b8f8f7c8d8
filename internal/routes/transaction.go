package routes

import (
	"net/http"

	"Piggyvault/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTransactions(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.ListPaged(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetStreak(c *gin.Context) {
	ctx := c.Request.Context()
	streak, err := h.TransactionService.Streak(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
