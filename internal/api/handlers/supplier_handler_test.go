package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/models"
	"smart-shelf-scm-server/internal/socket"
	"smart-shelf-scm-server/internal/supplier"
)

func newSupplierTestRouter(seed map[string]int) (*gin.Engine, *supplier.Queue) {
	gin.SetMode(gin.TestMode)
	ledger := supplier.NewLedger(seed)
	queue := supplier.NewQueue(ledger)
	hub := socket.NewHub(zap.NewNop().Sugar())
	h := &SupplierHandler{Ledger: ledger, Queue: queue, Hub: hub}

	router := gin.New()
	router.GET("/inventory", h.GetInventory)
	router.GET("/requests", h.GetRequests)
	router.POST("/new-request", h.NewRequest)
	router.POST("/update-request-status", h.UpdateRequestStatus)
	return router, queue
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSupplierAPI_GetInventory(t *testing.T) {
	router, _ := newSupplierTestRouter(map[string]int{"Milk": 20, "Bread": 15})

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var inventory map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &inventory); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if inventory["Milk"] != 20 || inventory["Bread"] != 15 {
		t.Errorf("Unexpected inventory: %v", inventory)
	}
}

func TestSupplierAPI_NewRequest(t *testing.T) {
	router, queue := newSupplierTestRouter(map[string]int{"Milk": 20})

	qty := 4
	w := postJSON(t, router, "/new-request", gin.H{
		"product":  "Milk",
		"quantity": qty,
		"store":    models.StoreIdentity{Name: "Smart Shelf"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if resp.Message != "Request received" || resp.ID == "" {
		t.Errorf("Unexpected response: %+v", resp)
	}

	stored, ok := queue.Get(resp.ID)
	if !ok {
		t.Fatal("Request not stored in queue")
	}
	if stored.Quantity != qty || stored.Status != models.StatusPending {
		t.Errorf("Unexpected stored request: %+v", stored)
	}
}

func TestSupplierAPI_NewRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload gin.H
	}{
		{name: "unknown_product", payload: gin.H{"product": "Caviar", "quantity": 4}},
		{name: "zero_quantity", payload: gin.H{"product": "Milk", "quantity": 0}},
		{name: "missing_product", payload: gin.H{"quantity": 4}},
		{name: "missing_quantity", payload: gin.H{"product": "Milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, queue := newSupplierTestRouter(map[string]int{"Milk": 20})
			w := postJSON(t, router, "/new-request", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
			if len(queue.Snapshot()) != 0 {
				t.Error("Invalid request must not be queued")
			}
		})
	}
}

func TestSupplierAPI_UpdateRequestStatus(t *testing.T) {
	router, queue := newSupplierTestRouter(map[string]int{"Milk": 20})
	id, _ := queue.Intake("Milk", 4, models.StoreIdentity{Name: "Smart Shelf"})

	w := postJSON(t, router, "/update-request-status", gin.H{"id": id, "action": "approve"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var requests []models.SupplierRequest
	if err := json.Unmarshal(w.Body.Bytes(), &requests); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if len(requests) != 1 || requests[0].Status != models.StatusApproved {
		t.Errorf("Expected one Approved request, got %+v", requests)
	}

	// Unknown id: still 200, ledger unchanged.
	w = postJSON(t, router, "/update-request-status", gin.H{"id": "REQ-MISSING1", "action": "reject"})
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for unknown id, got %d", w.Code)
	}
	if req, _ := queue.Get(id); req.Status != models.StatusApproved {
		t.Errorf("Unknown-id decision mutated a request: %s", req.Status)
	}

	// Bad action fails binding.
	w = postJSON(t, router, "/update-request-status", gin.H{"id": id, "action": "escalate"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid action, got %d", w.Code)
	}
}
