package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"smart-shelf-scm-server/internal/models"
)

func TestStore_ProductCopiesAreIsolated(t *testing.T) {
	s := newTestStore(10, 5)

	view, ok := s.Product("Milk")
	if !ok {
		t.Fatal("Product not found")
	}
	view.Stock = 999
	view.Sensors[models.LocationShelf] = models.SensorReading{Temp: 99}

	fresh, _ := s.Product("Milk")
	if fresh.Stock != 10 {
		t.Errorf("Mutating a view leaked into the store: stock %d", fresh.Stock)
	}
	if _, ok := fresh.Sensors[models.LocationShelf]; ok {
		t.Error("Mutating a view's sensor map leaked into the store")
	}
}

func TestStore_AppendCommentBuildsAuditTrail(t *testing.T) {
	s := newTestStore(10, 5)
	s.appendRequest("Milk", 4, "")

	s.ledgerMu.Lock()
	r := s.findRequestLocked(1)
	s.ledgerMu.Unlock()

	s.appendComment(r, "first note")
	s.appendComment(r, "second note")

	if r.Comment != "first note | second note" {
		t.Errorf("Unexpected audit trail: %q", r.Comment)
	}
}

func TestStore_RequestIDsAreSequential(t *testing.T) {
	s := newTestStore(10, 5)

	first := s.appendRequest("Milk", 1, "")
	second := s.appendRequest("Milk", 2, "")

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestStore_SetEnvConfig(t *testing.T) {
	s := newTestStore(10, 5)

	before, _ := s.Product("Milk")
	threshold := 8
	temp := [2]float64{1, 6}
	if err := s.SetEnvConfig("Milk", &threshold, &temp, nil); err != nil {
		t.Fatalf("SetEnvConfig failed: %v", err)
	}

	p, _ := s.Product("Milk")
	if p.Threshold != 8 {
		t.Errorf("Expected threshold 8, got %d", p.Threshold)
	}
	if p.SafeTemp != temp {
		t.Errorf("Expected safe temp %v, got %v", temp, p.SafeTemp)
	}
	// Humidity was nil in the payload and must be untouched.
	if p.SafeHumidity != before.SafeHumidity {
		t.Errorf("Humidity changed unexpectedly: %v", p.SafeHumidity)
	}

	if err := s.SetEnvConfig("Caviar", &threshold, nil, nil); !errors.Is(err, models.ErrUnknownProduct) {
		t.Errorf("Expected ErrUnknownProduct, got %v", err)
	}
}

func TestStore_BeginDecisionClaimsOnce(t *testing.T) {
	s := newTestStore(10, 5)
	req := s.appendRequest("Milk", 4, "")

	if _, ok := s.beginDecision(req.ID); !ok {
		t.Fatal("First claim should succeed")
	}
	if _, ok := s.beginDecision(req.ID); ok {
		t.Error("Second claim while mid-decision should fail")
	}

	s.endDecision(req.ID)
	if _, ok := s.beginDecision(req.ID); !ok {
		t.Error("Claim after release should succeed while still Pending")
	}
}

func TestDecideRequest_ConcurrentDecisionsApplyOnce(t *testing.T) {
	s := newTestStore(3, 5)
	gw := &fakeGateway{avail: 10}
	r := newTestReplenisher(s, gw, 2)
	req := s.appendRequest("Milk", 2, "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.DecideRequest(context.Background(), req.ID, "approve", "")
		}()
	}
	wg.Wait()

	if len(gw.submitted) != 1 {
		t.Errorf("Expected exactly one supplier submission, got %d", len(gw.submitted))
	}
	if p, _ := s.Product("Milk"); p.Stock != 5 {
		t.Errorf("Expected stock applied exactly once (3+2=5), got %d", p.Stock)
	}
}
