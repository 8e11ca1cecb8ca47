package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-shelf-scm-server/internal/models"
	"smart-shelf-scm-server/internal/store"
)

type StockHandler struct {
	Store       *store.Store
	Replenisher *store.Replenisher
}

type UpdateStockPayload struct {
	Product string `json:"product" binding:"required"`
	Stock   *int   `json:"stock" binding:"required"`
}

// GetStock returns the full product table.
func (h *StockHandler) GetStock(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Products())
}

// UpdateStock applies a counted stock level and may raise a restock
// request as a side effect.
func (h *StockHandler) UpdateStock(c *gin.Context) {
	var payload UpdateStockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Replenisher.UpdateStock(c.Request.Context(), payload.Product, *payload.Stock)
	if err != nil {
		if errors.Is(err, models.ErrUnknownProduct) || errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{payload.Product: product})
}
