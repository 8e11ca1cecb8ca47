package supplier

import (
	"sync"
	"testing"
)

func TestLedger_TryDeduct(t *testing.T) {
	tests := []struct {
		name      string
		seed      int
		qty       int
		want      bool
		remaining int
	}{
		{name: "exact", seed: 5, qty: 5, want: true, remaining: 0},
		{name: "partial", seed: 5, qty: 3, want: true, remaining: 2},
		{name: "insufficient", seed: 5, qty: 6, want: false, remaining: 5},
		{name: "empty", seed: 0, qty: 1, want: false, remaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewLedger(map[string]int{"Milk": tt.seed})
			if got := ledger.TryDeduct("Milk", tt.qty); got != tt.want {
				t.Errorf("TryDeduct(%d) = %v, want %v", tt.qty, got, tt.want)
			}
			if got := ledger.Available("Milk"); got != tt.remaining {
				t.Errorf("Available after deduct = %d, want %d", got, tt.remaining)
			}
		})
	}
}

func TestLedger_UnknownProduct(t *testing.T) {
	ledger := NewLedger(map[string]int{"Milk": 5})

	if ledger.Has("Caviar") {
		t.Error("Has(Caviar) = true, want false")
	}
	if got := ledger.Available("Caviar"); got != 0 {
		t.Errorf("Available(Caviar) = %d, want 0", got)
	}
	if ledger.TryDeduct("Caviar", 1) {
		t.Error("TryDeduct on unknown product must fail")
	}
}

func TestLedger_ConcurrentDeducts(t *testing.T) {
	ledger := NewLedger(map[string]int{"Milk": 5})

	const attempts = 10
	results := make([]bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ledger.TryDeduct("Milk", 1)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	if succeeded != 5 {
		t.Errorf("Expected exactly 5 successful deducts, got %d", succeeded)
	}
	if got := ledger.Available("Milk"); got != 0 {
		t.Errorf("Expected ledger drained to 0, got %d", got)
	}
}
