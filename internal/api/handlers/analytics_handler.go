package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-shelf-scm-server/internal/models"
	"smart-shelf-scm-server/internal/sensors"
	"smart-shelf-scm-server/internal/store"
)

// InventoryFetcher reads the supplier's full ledger snapshot.
type InventoryFetcher interface {
	Inventory(ctx context.Context) (map[string]int, error)
}

type AnalyticsHandler struct {
	Store    *store.Store
	Monitor  *sensors.Monitor
	Supplier InventoryFetcher
}

// GetAnalytics aggregates request counts, sales, stock, a live supplier
// snapshot and the sensor subsystem's alerts into one dashboard payload.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	requests := h.Store.Requests()
	pending, approved, rejected := 0, 0, 0
	for _, r := range requests {
		switch r.Status {
		case models.StatusPending:
			pending++
		case models.StatusApproved:
			approved++
		case models.StatusRejected:
			rejected++
		}
	}

	products := h.Store.Products()
	sales := make(map[string]int, len(products))
	stock := make(map[string]int, len(products))
	sensorReadings := make(map[string]map[string]models.SensorReading, len(products))
	for name, p := range products {
		sales[name] = p.Sales
		stock[name] = p.Stock
		sensorReadings[name] = p.Sensors
	}

	// Supplier data is best-effort: an unreachable supplier yields an
	// empty snapshot, not a failed analytics call.
	supplierSnapshot, err := h.Supplier.Inventory(c.Request.Context())
	if err != nil {
		supplierSnapshot = map[string]int{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(requests),
		"pending":  pending,
		"approved": approved,
		"rejected": rejected,
		"sales":    sales,
		"stock":    stock,
		"supplier": supplierSnapshot,
		"sensors":  sensorReadings,
		"alerts":   sensors.Alerts(products),
	})
}
