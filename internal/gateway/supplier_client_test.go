package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/models"
)

func testClient(baseURL string) *Client {
	identity := models.StoreIdentity{Name: "Smart Shelf", Phone: "555-0100", Address: "1 Main St"}
	return NewClient(baseURL, 2*time.Second, identity, zap.NewNop().Sugar())
}

func TestClient_Inventory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inventory" || r.Method != http.MethodGet {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]int{"Milk": 20, "Bread": 15})
	}))
	defer server.Close()

	inventory, err := testClient(server.URL).Inventory(context.Background())
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}
	if inventory["Milk"] != 20 || inventory["Bread"] != 15 {
		t.Errorf("Unexpected inventory: %v", inventory)
	}
}

func TestClient_AvailabilityMissingProductReadsZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"Milk": 20})
	}))
	defer server.Close()

	avail, err := testClient(server.URL).Availability(context.Background(), "Caviar")
	if err != nil {
		t.Fatalf("Availability failed: %v", err)
	}
	if avail != 0 {
		t.Errorf("Expected 0 for a product the supplier does not carry, got %d", avail)
	}
}

func TestClient_InventoryUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := testClient(server.URL).Inventory(context.Background())
	if !errors.Is(err, models.ErrSupplierUnreachable) {
		t.Fatalf("Expected ErrSupplierUnreachable, got %v", err)
	}
}

func TestClient_InventoryBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Inventory(context.Background())
	if !errors.Is(err, models.ErrSupplierUnreachable) {
		t.Fatalf("Expected ErrSupplierUnreachable, got %v", err)
	}
}

func TestClient_Submit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/new-request" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload struct {
			Product  string               `json:"product"`
			Quantity int                  `json:"quantity"`
			Store    models.StoreIdentity `json:"store"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Bad intake payload: %v", err)
		}
		if payload.Product != "Milk" || payload.Quantity != 4 {
			t.Errorf("Unexpected payload: %+v", payload)
		}
		if payload.Store.Name != "Smart Shelf" {
			t.Errorf("Expected store identity forwarded, got %+v", payload.Store)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Request received", "id": "REQ-AB12CD34"})
	}))
	defer server.Close()

	id, err := testClient(server.URL).Submit(context.Background(), "Milk", 4)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if id != "REQ-AB12CD34" {
		t.Errorf("Expected supplier token, got %q", id)
	}
}

func TestClient_SubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Submit(context.Background(), "Caviar", 4); err == nil {
		t.Fatal("Expected error on rejected submission")
	}
}
