package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-shelf-scm-server/internal/store"
)

type RequestHandler struct {
	Store       *store.Store
	Replenisher *store.Replenisher
}

type DecideRequestPayload struct {
	ID      int    `json:"id" binding:"required"`
	Action  string `json:"action" binding:"required,oneof=approve reject"`
	Comment string `json:"comment"`
}

// GetRequests returns the store's request ledger.
func (h *RequestHandler) GetRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Requests())
}

// DecideRequest approves or rejects a pending request. Unknown or
// already-decided ids are a no-op; the full ledger is returned either way.
func (h *RequestHandler) DecideRequest(c *gin.Context) {
	var payload DecideRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests := h.Replenisher.DecideRequest(c.Request.Context(), payload.ID, payload.Action, payload.Comment)
	c.JSON(http.StatusOK, requests)
}
