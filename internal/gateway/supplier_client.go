// Package gateway is the store's HTTP client for the supplier service.
// Calls carry a bounded timeout and are never made while holding locks.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/models"
)

// Client talks to the supplier's /inventory and /new-request endpoints.
type Client struct {
	baseURL  string
	identity models.StoreIdentity
	http     *http.Client
	log      *zap.SugaredLogger
}

// NewClient creates a supplier client. timeout bounds every call; a timed
// out call is reported the same way as any other transport failure.
func NewClient(baseURL string, timeout time.Duration, identity models.StoreIdentity, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:  baseURL,
		identity: identity,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Inventory fetches the supplier's full ledger snapshot.
func (c *Client) Inventory(ctx context.Context) (map[string]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/inventory", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSupplierUnreachable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("supplier inventory query failed", "error", err)
		return nil, fmt.Errorf("%w: %v", models.ErrSupplierUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: inventory returned status %d", models.ErrSupplierUnreachable, resp.StatusCode)
	}

	var inventory map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&inventory); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSupplierUnreachable, err)
	}
	return inventory, nil
}

// Availability returns the supplier's available unit count for a product.
// A product the supplier does not carry reads as 0.
func (c *Client) Availability(ctx context.Context, product string) (int, error) {
	inventory, err := c.Inventory(ctx)
	if err != nil {
		return 0, err
	}
	return inventory[product], nil
}

type newRequestPayload struct {
	Product  string               `json:"product"`
	Quantity int                  `json:"quantity"`
	Store    models.StoreIdentity `json:"store"`
}

type newRequestResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Submit sends an approved quantity to the supplier intake endpoint and
// returns the supplier's request token.
func (c *Client) Submit(ctx context.Context, product string, quantity int) (string, error) {
	body, err := json.Marshal(newRequestPayload{
		Product:  product,
		Quantity: quantity,
		Store:    c.identity,
	})
	if err != nil {
		return "", fmt.Errorf("marshal intake payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/new-request", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSupplierUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("supplier intake call failed", "product", product, "quantity", quantity, "error", err)
		return "", fmt.Errorf("%w: %v", models.ErrSupplierUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("supplier rejected request: status %d", resp.StatusCode)
	}

	var result newRequestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSupplierUnreachable, err)
	}
	return result.ID, nil
}
