package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-shelf-scm-server/internal/sensors"
	"smart-shelf-scm-server/internal/store"
)

type SensorHandler struct {
	Store   *store.Store
	Monitor *sensors.Monitor
}

type ReportEnvironmentPayload struct {
	Product string `json:"product" binding:"required"`
}

// GetSensorHistory returns the rolling sample history per product.
func (h *SensorHandler) GetSensorHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.Monitor.History())
}

// ReportEnvironment kicks off the simulated corrective adjustment for a
// product's shelf sensors.
func (h *SensorHandler) ReportEnvironment(c *gin.Context) {
	var payload ReportEnvironmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.Store.Product(payload.Product); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product"})
		return
	}

	// The adjustment outlives this request, so it gets its own context.
	h.Monitor.Resolve(context.Background(), payload.Product)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Environmental issue reported for %s, auto-adjustment started.", payload.Product),
	})
}
