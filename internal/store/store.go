// Package store owns the retail side: the product table, the store's own
// ledger of raised restock requests, and the replenishment manager that
// drives both against the supplier service.
package store

import (
	"sync"
	"time"

	"smart-shelf-scm-server/internal/models"
)

// Store is the in-memory repository for products and the request ledger.
// Product mutations take the per-product lock; request mutations take
// ledgerMu. When both are needed the product lock is taken first.
type Store struct {
	mu       sync.RWMutex
	products map[string]*models.Product
	locks    map[string]*sync.Mutex

	ledgerMu sync.Mutex
	requests []*models.RestockRequest
	nextID   int
	deciding map[int]bool
}

// NewStore creates a store around a seeded product table.
func NewStore(products map[string]*models.Product) *Store {
	locks := make(map[string]*sync.Mutex, len(products))
	for name := range products {
		locks[name] = &sync.Mutex{}
	}
	return &Store{
		products: products,
		locks:    locks,
		nextID:   1,
		deciding: make(map[int]bool),
	}
}

func (s *Store) lookup(name string) (*models.Product, *sync.Mutex, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[name]
	if !ok {
		return nil, nil, false
	}
	return p, s.locks[name], true
}

func cloneProduct(p *models.Product) models.Product {
	cp := *p
	cp.Sensors = make(map[string]models.SensorReading, len(p.Sensors))
	for loc, reading := range p.Sensors {
		cp.Sensors[loc] = reading
	}
	return cp
}

// Product returns a copy of one product.
func (s *Store) Product(name string) (models.Product, bool) {
	p, lock, ok := s.lookup(name)
	if !ok {
		return models.Product{}, false
	}
	lock.Lock()
	defer lock.Unlock()
	return cloneProduct(p), true
}

// Products returns a copy of the whole product table.
func (s *Store) Products() map[string]models.Product {
	s.mu.RLock()
	names := make([]string, 0, len(s.products))
	for name := range s.products {
		names = append(names, name)
	}
	s.mu.RUnlock()

	view := make(map[string]models.Product, len(names))
	for _, name := range names {
		if p, ok := s.Product(name); ok {
			view[name] = p
		}
	}
	return view
}

// Requests returns a copy of the request ledger in creation order.
func (s *Store) Requests() []models.RestockRequest {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	view := make([]models.RestockRequest, 0, len(s.requests))
	for _, r := range s.requests {
		view = append(view, *r)
	}
	return view
}

// appendRequest adds a new Pending request and returns a copy of it.
func (s *Store) appendRequest(product string, quantity int, comment string) models.RestockRequest {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	r := &models.RestockRequest{
		ID:        s.nextID,
		Product:   product,
		Quantity:  quantity,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		Comment:   comment,
	}
	s.nextID++
	s.requests = append(s.requests, r)
	return *r
}

func (s *Store) findRequestLocked(id int) *models.RestockRequest {
	for _, r := range s.requests {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// beginDecision claims a Pending request for a decision. It fails when the
// request is unknown, already decided, or mid-decision in another call;
// the claim keeps two decisions from racing across the network calls.
func (s *Store) beginDecision(id int) (*models.RestockRequest, bool) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	r := s.findRequestLocked(id)
	if r == nil || r.Status != models.StatusPending || s.deciding[id] {
		return nil, false
	}
	s.deciding[id] = true
	return r, true
}

func (s *Store) endDecision(id int) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	delete(s.deciding, id)
}

// inFlight sums quantities of a product's requests in the given statuses.
func (s *Store) inFlight(product string, statuses ...string) int {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	total := 0
	for _, r := range s.requests {
		if r.Product != product {
			continue
		}
		for _, status := range statuses {
			if r.Status == status {
				total += r.Quantity
				break
			}
		}
	}
	return total
}

// otherPending sums quantities of a product's Pending requests, excluding
// the one being decided.
func (s *Store) otherPending(product string, excludeID int) int {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	total := 0
	for _, r := range s.requests {
		if r.Product == product && r.Status == models.StatusPending && r.ID != excludeID {
			total += r.Quantity
		}
	}
	return total
}

// appendComment adds to a request's audit trail without touching status.
func (s *Store) appendComment(r *models.RestockRequest, text string) {
	s.ledgerMu.Lock()
	defer s.ledgerMu.Unlock()
	if r.Comment == "" {
		r.Comment = text
	} else {
		r.Comment += " | " + text
	}
}

// setDecision records a terminal-or-approved decision with its timestamp.
func (s *Store) setDecision(r *models.RestockRequest, status, comment string) {
	s.ledgerMu.Lock()
	now := time.Now()
	r.Status = status
	r.DecisionAt = &now
	s.ledgerMu.Unlock()
	if comment != "" {
		s.appendComment(r, comment)
	}
}

// UpdateSensor overwrites the last reading for one sensor location.
func (s *Store) UpdateSensor(name, location string, reading models.SensorReading) {
	p, lock, ok := s.lookup(name)
	if !ok {
		return
	}
	lock.Lock()
	defer lock.Unlock()
	p.Sensors[location] = reading
}

// SetEnvConfig applies a partial configuration update for a product.
func (s *Store) SetEnvConfig(name string, threshold *int, safeTemp, safeHumidity *[2]float64) error {
	p, lock, ok := s.lookup(name)
	if !ok {
		return models.ErrUnknownProduct
	}
	lock.Lock()
	defer lock.Unlock()
	if threshold != nil {
		p.Threshold = *threshold
	}
	if safeTemp != nil {
		p.SafeTemp = *safeTemp
	}
	if safeHumidity != nil {
		p.SafeHumidity = *safeHumidity
	}
	return nil
}
