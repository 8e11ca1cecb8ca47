package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-shelf-scm-server/internal/models"
	"smart-shelf-scm-server/internal/socket"
	"smart-shelf-scm-server/internal/supplier"
)

type SupplierHandler struct {
	Ledger *supplier.Ledger
	Queue  *supplier.Queue
	Hub    *socket.Hub
}

type NewRequestPayload struct {
	Product  string               `json:"product" binding:"required"`
	Quantity *int                 `json:"quantity" binding:"required"`
	Store    models.StoreIdentity `json:"store"`
}

type ManualDecisionPayload struct {
	ID     string `json:"id" binding:"required"`
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// GetInventory returns the current inventory ledger.
func (h *SupplierHandler) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Snapshot())
}

// GetRequests returns the request queue in intake order.
func (h *SupplierHandler) GetRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.Queue.Snapshot())
}

// NewRequest queues an incoming replenishment request from a store.
func (h *SupplierHandler) NewRequest(c *gin.Context) {
	var payload NewRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product or quantity"})
		return
	}

	id, err := h.Queue.Intake(payload.Product, *payload.Quantity, payload.Store)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product or quantity"})
		return
	}

	if req, ok := h.Queue.Get(id); ok {
		h.Hub.Broadcast("request-updated", req)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request received", "id": id})
}

// UpdateRequestStatus applies a manual approve/reject. Only Pending
// requests change; repeated calls are no-ops.
func (h *SupplierHandler) UpdateRequestStatus(c *gin.Context) {
	var payload ManualDecisionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, changed := h.Queue.Decide(payload.ID, payload.Action)
	if changed {
		h.Hub.Broadcast("request-updated", req)
	}

	c.JSON(http.StatusOK, h.Queue.Snapshot())
}
