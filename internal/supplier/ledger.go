// Package supplier owns the supplier-side inventory ledger, the incoming
// request queue and the fulfillment pipeline that connects them.
package supplier

import "sync"

// Ledger is the authoritative count of available units per product. It is
// decremented exactly once per request, at the dispatch step, and never
// goes negative.
type Ledger struct {
	// mu guards the maps themselves; locks serializes check-and-mutate
	// sequences per product.
	mu    sync.RWMutex
	locks map[string]*sync.Mutex
	units map[string]int
}

// NewLedger creates a ledger holding the given seed counts.
func NewLedger(seed map[string]int) *Ledger {
	units := make(map[string]int, len(seed))
	for product, qty := range seed {
		units[product] = qty
	}
	return &Ledger{
		locks: make(map[string]*sync.Mutex),
		units: units,
	}
}

func (l *Ledger) lockFor(product string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[product]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[product] = lock
	}
	return lock
}

// Has reports whether the product exists in the ledger.
func (l *Ledger) Has(product string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.units[product]
	return ok
}

// Available returns the current unit count for a product (0 if unknown).
func (l *Ledger) Available(product string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.units[product]
}

// TryDeduct atomically checks availability and decrements. It returns false
// without mutating anything when fewer than qty units are on hand.
func (l *Ledger) TryDeduct(product string, qty int) bool {
	lock := l.lockFor(product)
	lock.Lock()
	defer lock.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.units[product] < qty {
		return false
	}
	l.units[product] -= qty
	return true
}

// Snapshot returns a copy of the ledger for display and analytics.
func (l *Ledger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make(map[string]int, len(l.units))
	for product, qty := range l.units {
		snapshot[product] = qty
	}
	return snapshot
}
