package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/models"
)

// SupplierGateway is the store's view of the supplier service. Both calls
// are blocking network calls with a bounded timeout; the replenisher never
// holds a lock across either of them.
type SupplierGateway interface {
	Availability(ctx context.Context, product string) (int, error)
	Submit(ctx context.Context, product string, quantity int) (string, error)
}

// Replenisher implements the replenishment protocol: computing need,
// netting against in-flight requests, and walking requests through
// approval and supplier submission.
type Replenisher struct {
	store   *Store
	gateway SupplierGateway
	// cushion is the configured extra quantity added beyond the bare
	// shortfall to reduce request churn.
	cushion int
	log     *zap.SugaredLogger
}

// NewReplenisher wires the manager over a store and a supplier gateway.
func NewReplenisher(store *Store, gateway SupplierGateway, cushion int, log *zap.SugaredLogger) *Replenisher {
	return &Replenisher{
		store:   store,
		gateway: gateway,
		cushion: cushion,
		log:     log,
	}
}

// UpdateStock applies a counted stock level, records sales on a decrease,
// and raises a new restock request when the shortfall exceeds what is
// already in flight. Netting against Pending and Approved requests is what
// keeps repeated polling from raising duplicate asks.
func (r *Replenisher) UpdateStock(ctx context.Context, product string, newStock int) (models.Product, error) {
	if newStock < 0 {
		return models.Product{}, models.ErrInvalidInput
	}
	p, lock, ok := r.store.lookup(product)
	if !ok {
		return models.Product{}, models.ErrUnknownProduct
	}

	lock.Lock()
	old := p.Stock
	p.Stock = newStock
	if newStock < old {
		p.Sales += old - newStock
	}
	needed := max(0, p.Threshold-p.Stock)
	inFlight := r.store.inFlight(product, models.StatusPending, models.StatusApproved)
	lock.Unlock()

	if needed <= inFlight {
		view, _ := r.store.Product(product)
		return view, nil
	}

	// Availability is queried without holding any lock; an unreachable
	// supplier leaves all local state as already written above.
	avail, err := r.gateway.Availability(ctx, product)
	if err != nil {
		r.log.Warnw("skipping restock request, supplier unavailable", "product", product, "error", err)
		view, _ := r.store.Product(product)
		return view, nil
	}
	if avail <= 0 {
		view, _ := r.store.Product(product)
		return view, nil
	}

	lock.Lock()
	// Re-derive under the lock: a concurrent update or approval may have
	// changed the shortfall while the availability call was in flight.
	needed = max(0, p.Threshold-p.Stock)
	inFlight = r.store.inFlight(product, models.StatusPending, models.StatusApproved)
	if needed > inFlight {
		qty := min(needed-inFlight+r.cushion, avail)
		req := r.store.appendRequest(product, qty, "")
		r.log.Infow("raised restock request", "request", req.ID, "product", product, "quantity", qty, "needed", needed, "in_flight", inFlight, "supplier_available", avail)
	}
	view := cloneProduct(p)
	lock.Unlock()

	return view, nil
}

// DecideRequest approves or rejects a Pending request and returns the full
// request ledger. Unknown ids and already-decided requests are silent
// no-ops, which makes repeated decisions idempotent.
func (r *Replenisher) DecideRequest(ctx context.Context, id int, action, comment string) []models.RestockRequest {
	req, ok := r.store.beginDecision(id)
	if !ok {
		return r.store.Requests()
	}
	defer r.store.endDecision(id)
	product := req.Product

	// A failed availability query must not transition state: the request
	// stays Pending and carries a diagnostic for the next attempt.
	avail, err := r.gateway.Availability(ctx, product)
	if err != nil {
		r.store.appendComment(req, fmt.Sprintf("Supplier unreachable, decision deferred: %v", err))
		return r.store.Requests()
	}

	if action != "approve" {
		r.store.setDecision(req, models.StatusRejected, comment)
		r.log.Infow("rejected restock request", "request", id, "product", product)
		return r.store.Requests()
	}

	if avail <= 0 {
		// Approving something unfulfillable would strand the request in
		// the supplier queue; leave it Pending instead.
		r.store.appendComment(req, "Skipped: no supplier stock available.")
		return r.store.Requests()
	}

	p, lock, ok := r.store.lookup(product)
	if !ok {
		return r.store.Requests()
	}

	lock.Lock()
	currentNeed := max(0, p.Threshold-p.Stock)
	otherPending := r.store.otherPending(product, id)
	netNeed := max(0, currentNeed-otherPending)
	granted := min(req.Quantity, min(avail, netNeed))
	lock.Unlock()

	// Remote call first, local mutation only on success: a transport
	// failure leaves the request Pending and the stock untouched.
	if granted > 0 {
		supplierID, err := r.gateway.Submit(ctx, product, granted)
		if err != nil {
			r.store.appendComment(req, fmt.Sprintf("Submission to supplier failed, left pending: %v", err))
			return r.store.Requests()
		}
		r.store.appendComment(req, fmt.Sprintf("Forwarded to supplier as %s", supplierID))
	}

	lock.Lock()
	r.store.setDecision(req, models.StatusApproved, comment)
	p.Stock += granted
	if granted < req.Quantity {
		split := r.store.appendRequest(product, req.Quantity-granted,
			fmt.Sprintf("Partial restock, awaiting inventory (carried over from request %d)", id))
		r.log.Infow("partial approval, split raised", "request", id, "granted", granted, "split", split.ID, "remainder", split.Quantity)
	}
	lock.Unlock()

	r.log.Infow("approved restock request", "request", id, "product", product, "granted", granted, "available", avail, "net_need", netNeed)
	return r.store.Requests()
}
