package models

// SensorReading is the last sampled environment at one sensor location.
type SensorReading struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

// Sensor locations tracked per product.
const (
	LocationShelf     = "shelf"
	LocationInventory = "inventory"
)

// Product is the store's view of one catalog entry. Stock and Sales are
// mutated only by the replenishment manager; the sensor fields only by the
// environment monitor.
type Product struct {
	Name         string                   `json:"name"`
	Stock        int                      `json:"stock"`
	Threshold    int                      `json:"threshold"`
	Sales        int                      `json:"sales"`
	SafeTemp     [2]float64               `json:"safe_temp"`
	SafeHumidity [2]float64               `json:"safe_humidity"`
	Sensors      map[string]SensorReading `json:"sensors"`
}
