package supplier

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/models"
	"smart-shelf-scm-server/internal/socket"
)

// Pipeline advances approved requests through the fulfillment stages:
//
//	Approved -> processing-started -> picking-items -> packing-items
//	         -> Dispatched | Failed-out-of-stock
//
// Stock is checked against the ledger only at the dispatch instant, never
// reserved at approval, so Failed-out-of-stock is an expected terminal
// outcome rather than an error.
type Pipeline struct {
	queue      *Queue
	ledger     *Ledger
	hub        *socket.Hub
	log        *zap.SugaredLogger
	interval   time.Duration
	stageDelay time.Duration
}

// NewPipeline wires a pipeline over the queue and ledger. hub may be nil.
// stageDelay is a simulation aid; zero is valid and changes no contract.
func NewPipeline(queue *Queue, ledger *Ledger, hub *socket.Hub, log *zap.SugaredLogger, interval, stageDelay time.Duration) *Pipeline {
	return &Pipeline{
		queue:      queue,
		ledger:     ledger,
		hub:        hub,
		log:        log,
		interval:   interval,
		stageDelay: stageDelay,
	}
}

// Run scans the queue on a fixed interval until ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single scan-and-process pass. Exposed so tests can
// drive the pipeline deterministically without the ticker.
func (p *Pipeline) RunOnce(ctx context.Context) {
	for _, e := range p.queue.approved() {
		p.process(ctx, e)
	}
}

func (p *Pipeline) process(ctx context.Context, e *entry) {
	// Claiming the Approved->processing transition is the exclusivity
	// point: a request claimed here is invisible to other passes.
	req, ok := p.queue.advance(e, models.StatusApproved, models.StatusProcessing)
	if !ok {
		return
	}
	p.log.Infow("processing started", "request", req.ID, "product", req.Product, "quantity", req.Quantity)
	p.notify(req)
	if !p.pause(ctx) {
		return
	}

	if req, ok = p.queue.advance(e, models.StatusProcessing, models.StatusPicking); !ok {
		return
	}
	p.log.Infow("picking items", "request", req.ID, "product", req.Product, "quantity", req.Quantity)
	p.notify(req)
	if !p.pause(ctx) {
		return
	}

	if req, ok = p.queue.advance(e, models.StatusPicking, models.StatusPacking); !ok {
		return
	}
	p.log.Infow("packing items", "request", req.ID, "product", req.Product, "quantity", req.Quantity)
	p.notify(req)
	if !p.pause(ctx) {
		return
	}

	req = p.queue.finalize(e, p.ledger)
	switch req.Status {
	case models.StatusDispatched:
		p.log.Infow("dispatched", "request", req.ID, "product", req.Product, "quantity", req.Quantity, "store", req.Store.Name)
		if p.hub != nil {
			p.hub.Broadcast("inventory-updated", p.ledger.Snapshot())
		}
	case models.StatusFailedOutOfStock:
		p.log.Warnw("not enough stock to dispatch", "request", req.ID, "product", req.Product, "quantity", req.Quantity)
	}
	p.notify(req)
}

// pause sleeps for the per-stage delay, returning false when cancelled.
func (p *Pipeline) pause(ctx context.Context) bool {
	if p.stageDelay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(p.stageDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (p *Pipeline) notify(req models.SupplierRequest) {
	if p.hub != nil {
		p.hub.Broadcast("request-updated", req)
	}
}
