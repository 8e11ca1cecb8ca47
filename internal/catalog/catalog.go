// Package catalog holds the bootstrap data both services start from.
// Nothing here survives a restart; persistence is out of scope.
package catalog

import "smart-shelf-scm-server/internal/models"

// SeedProducts returns the store's initial product table.
func SeedProducts() map[string]*models.Product {
	return map[string]*models.Product{
		"Milk": {
			Name:         "Milk",
			Stock:        10,
			Threshold:    5,
			SafeTemp:     [2]float64{2, 8},
			SafeHumidity: [2]float64{60, 90},
			Sensors: map[string]models.SensorReading{
				models.LocationShelf:     {Temp: 5.0, Humidity: 75},
				models.LocationInventory: {Temp: 7.0, Humidity: 65},
			},
		},
		"Bread": {
			Name:         "Bread",
			Stock:        20,
			Threshold:    8,
			SafeTemp:     [2]float64{20, 25},
			SafeHumidity: [2]float64{30, 60},
			Sensors: map[string]models.SensorReading{
				models.LocationShelf:     {Temp: 22.0, Humidity: 45},
				models.LocationInventory: {Temp: 25.0, Humidity: 55},
			},
		},
	}
}

// SeedSupplierInventory returns the supplier's initial ledger.
func SeedSupplierInventory() map[string]int {
	return map[string]int{
		"Milk":  20,
		"Bread": 15,
		"Eggs":  30,
	}
}
