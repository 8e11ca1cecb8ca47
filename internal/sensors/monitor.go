package sensors

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/models"
)

// History keeps the last 20 samples per product.
const historyLimit = 20

// Wiggle margins matching how far readings may drift out of bounds.
const (
	tempWiggle          = 2
	humidityLowerWiggle = 5
	humidityUpperWiggle = 10
)

// ProductRepo is the slice of the store the monitor needs.
type ProductRepo interface {
	Products() map[string]models.Product
	UpdateSensor(name, location string, reading models.SensorReading)
}

// HistoryEntry is one sampling round for a product.
type HistoryEntry struct {
	Timestamp time.Time            `json:"timestamp"`
	Shelf     models.SensorReading `json:"shelf"`
	Inventory models.SensorReading `json:"inventory"`
}

// Monitor periodically re-samples every product's sensors.
type Monitor struct {
	repo         ProductRepo
	log          *zap.SugaredLogger
	interval     time.Duration
	resolveDelay time.Duration

	mu      sync.Mutex
	rng     *rand.Rand
	history map[string][]HistoryEntry
}

// NewMonitor creates a monitor over the given repository.
func NewMonitor(repo ProductRepo, interval time.Duration, log *zap.SugaredLogger) *Monitor {
	return &Monitor{
		repo:         repo,
		log:          log,
		interval:     interval,
		resolveDelay: 5 * time.Second,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		history:      make(map[string][]HistoryEntry),
	}
}

// Run samples on a fixed interval until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Tick performs one sampling round across all products.
func (m *Monitor) Tick() {
	for name, p := range m.repo.Products() {
		m.mu.Lock()
		shelf := models.SensorReading{
			Temp:     Sample(p.SafeTemp, tempWiggle, tempWiggle, m.rng),
			Humidity: int(Sample(p.SafeHumidity, humidityLowerWiggle, humidityUpperWiggle, m.rng)),
		}
		// Back-room air runs a couple of degrees warmer than the shelf.
		inventory := models.SensorReading{
			Temp:     Sample([2]float64{p.SafeTemp[0] + 2, p.SafeTemp[1] + 2}, tempWiggle, tempWiggle, m.rng),
			Humidity: int(Sample(p.SafeHumidity, humidityLowerWiggle, humidityUpperWiggle, m.rng)),
		}
		m.mu.Unlock()

		m.repo.UpdateSensor(name, models.LocationShelf, shelf)
		m.repo.UpdateSensor(name, models.LocationInventory, inventory)
		m.record(name, shelf, inventory)
	}
}

func (m *Monitor) record(name string, shelf, inventory models.SensorReading) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := append(m.history[name], HistoryEntry{
		Timestamp: time.Now(),
		Shelf:     shelf,
		Inventory: inventory,
	})
	if len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}
	m.history[name] = entries
}

// History returns a copy of the rolling sample history.
func (m *Monitor) History() map[string][]HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	view := make(map[string][]HistoryEntry, len(m.history))
	for name, entries := range m.history {
		view[name] = append([]HistoryEntry(nil), entries...)
	}
	return view
}

// Resolve simulates corrective action after a reported environmental
// issue: the shelf sensor is nudged back inside safe bounds a few times.
func (m *Monitor) Resolve(ctx context.Context, name string) {
	p, ok := m.repo.Products()[name]
	if !ok {
		return
	}
	go func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for i := 0; i < 3; i++ {
			reading := models.SensorReading{
				Temp:     SampleWithin(p.SafeTemp, rng),
				Humidity: int(SampleWithin(p.SafeHumidity, rng)),
			}
			m.repo.UpdateSensor(name, models.LocationShelf, reading)
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.resolveDelay):
			}
		}
		m.log.Infow("environmental adjustment finished", "product", name)
	}()
}

// Alerts derives out-of-range alert strings from the current readings.
// Read-only; consumed by the analytics endpoint.
func Alerts(products map[string]models.Product) map[string][]string {
	alerts := make(map[string][]string, len(products))
	for name, p := range products {
		alerts[name] = []string{}
		for _, loc := range []string{models.LocationShelf, models.LocationInventory} {
			reading, ok := p.Sensors[loc]
			if !ok {
				continue
			}
			label := capitalize(loc)
			if reading.Temp < p.SafeTemp[0] || reading.Temp > p.SafeTemp[1] {
				alerts[name] = append(alerts[name], fmt.Sprintf("%s temp out of range: %.1f°C", label, reading.Temp))
			}
			if float64(reading.Humidity) < p.SafeHumidity[0] || float64(reading.Humidity) > p.SafeHumidity[1] {
				alerts[name] = append(alerts[name], fmt.Sprintf("%s humidity out of range: %d%%", label, reading.Humidity))
			}
		}
	}
	return alerts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
