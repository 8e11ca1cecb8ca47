package models

import "time"

// Request lifecycle statuses. Pending may move to Approved or Rejected; an
// approved supplier request walks the fulfillment stages in order and ends
// in Dispatched or FailedOutOfStock. Transitions never reverse.
const (
	StatusPending          = "Pending"
	StatusApproved         = "Approved"
	StatusRejected         = "Rejected"
	StatusProcessing       = "processing-started"
	StatusPicking          = "picking-items"
	StatusPacking          = "packing-items"
	StatusDispatched       = "Dispatched"
	StatusFailedOutOfStock = "Failed-out-of-stock"
)

// RestockRequest is the store's own record of a replenishment ask. Quantity
// is fixed at creation; a partial approval creates a new request for the
// remainder instead of editing this one.
type RestockRequest struct {
	ID         int        `json:"id"`
	Product    string     `json:"product"`
	Quantity   int        `json:"quantity"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"timestamp"`
	DecisionAt *time.Time `json:"decision_time,omitempty"`
	Comment    string     `json:"comment"`
}

// StoreIdentity identifies the requesting store on supplier-side requests.
type StoreIdentity struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierRequest is an incoming replenishment request as the supplier sees
// it, identified by an opaque short token.
type SupplierRequest struct {
	ID           string        `json:"id"`
	Product      string        `json:"product"`
	Quantity     int           `json:"quantity"`
	Store        StoreIdentity `json:"store"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	DispatchedAt *time.Time    `json:"dispatched_at"`
}
