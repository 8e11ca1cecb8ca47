package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-shelf-scm-server/internal/store"
)

type ConfigHandler struct {
	Store *store.Store
}

type UpdateConfigPayload struct {
	Product      string      `json:"product" binding:"required"`
	Threshold    *int        `json:"threshold"`
	SafeTemp     *[2]float64 `json:"safe_temp"`
	SafeHumidity *[2]float64 `json:"safe_humidity"`
}

// UpdateConfig applies a partial threshold/bounds update for one product.
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var payload UpdateConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SetEnvConfig(payload.Product, payload.Threshold, payload.SafeTemp, payload.SafeHumidity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}
