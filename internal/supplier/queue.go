package supplier

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-shelf-scm-server/internal/models"
)

// entry pairs a request with its own lock so status transitions are
// serialized per request, independent of the rest of the queue.
type entry struct {
	mu  sync.Mutex
	req models.SupplierRequest
}

// Queue is the ordered collection of incoming replenishment requests.
type Queue struct {
	ledger *Ledger

	mu    sync.RWMutex
	order []*entry
	byID  map[string]*entry
}

// NewQueue creates an empty queue validating intake against ledger.
func NewQueue(ledger *Ledger) *Queue {
	return &Queue{
		ledger: ledger,
		byID:   make(map[string]*entry),
	}
}

// Intake appends a new Pending request and returns its generated id.
// Unknown products and non-positive quantities are rejected up front.
func (q *Queue) Intake(product string, quantity int, store models.StoreIdentity) (string, error) {
	if !q.ledger.Has(product) {
		return "", models.ErrUnknownProduct
	}
	if quantity <= 0 {
		return "", models.ErrInvalidInput
	}

	e := &entry{req: models.SupplierRequest{
		ID:        fmt.Sprintf("REQ-%s", strings.ToUpper(uuid.New().String()[:8])),
		Product:   product,
		Quantity:  quantity,
		Store:     store,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}}

	q.mu.Lock()
	q.order = append(q.order, e)
	q.byID[e.req.ID] = e
	q.mu.Unlock()

	return e.req.ID, nil
}

// Decide approves or rejects a Pending request. Anything else (unknown id,
// already decided, already in the pipeline) is an idempotent no-op.
func (q *Queue) Decide(id, action string) (models.SupplierRequest, bool) {
	q.mu.RLock()
	e, ok := q.byID[id]
	q.mu.RUnlock()
	if !ok {
		return models.SupplierRequest{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.req.Status != models.StatusPending {
		return e.req, false
	}
	if action == "approve" {
		e.req.Status = models.StatusApproved
	} else {
		e.req.Status = models.StatusRejected
	}
	return e.req, true
}

// Get returns a copy of one request.
func (q *Queue) Get(id string) (models.SupplierRequest, bool) {
	q.mu.RLock()
	e, ok := q.byID[id]
	q.mu.RUnlock()
	if !ok {
		return models.SupplierRequest{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.req, true
}

// Snapshot returns copies of all requests in intake order. Each copy is
// taken under the request's lock, so no half-applied transition leaks out.
func (q *Queue) Snapshot() []models.SupplierRequest {
	q.mu.RLock()
	entries := make([]*entry, len(q.order))
	copy(entries, q.order)
	q.mu.RUnlock()

	requests := make([]models.SupplierRequest, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		requests = append(requests, e.req)
		e.mu.Unlock()
	}
	return requests
}

// approved returns the entries currently in the Approved state.
func (q *Queue) approved() []*entry {
	q.mu.RLock()
	entries := make([]*entry, len(q.order))
	copy(entries, q.order)
	q.mu.RUnlock()

	var result []*entry
	for _, e := range entries {
		e.mu.Lock()
		if e.req.Status == models.StatusApproved {
			result = append(result, e)
		}
		e.mu.Unlock()
	}
	return result
}

// advance moves a request from one status to the next. It returns false if
// the request is not in the expected state, which is how concurrent
// pipeline passes lose the race for the same request.
func (q *Queue) advance(e *entry, from, to string) (models.SupplierRequest, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.req.Status != from {
		return e.req, false
	}
	e.req.Status = to
	return e.req, true
}

// finalize runs the dispatch step: the ledger check-and-decrement and the
// terminal status transition happen as one atomic unit under the request
// lock. Nothing was reserved earlier, so a failed check rolls back nothing.
func (q *Queue) finalize(e *entry, ledger *Ledger) models.SupplierRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.req.Status != models.StatusPacking {
		return e.req
	}
	if ledger.TryDeduct(e.req.Product, e.req.Quantity) {
		now := time.Now()
		e.req.Status = models.StatusDispatched
		e.req.DispatchedAt = &now
	} else {
		e.req.Status = models.StatusFailedOutOfStock
	}
	return e.req
}
