// server/internal/api/routes/routes.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smart-shelf-scm-server/internal/api/handlers"
	"smart-shelf-scm-server/internal/sensors"
	"smart-shelf-scm-server/internal/socket"
	"smart-shelf-scm-server/internal/store"
	"smart-shelf-scm-server/internal/supplier"
)

// SetupStoreRouter wires the store service's endpoints.
func SetupStoreRouter(
	st *store.Store,
	replenisher *store.Replenisher,
	monitor *sensors.Monitor,
	supplierClient handlers.InventoryFetcher,
) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	stockHandler := &handlers.StockHandler{Store: st, Replenisher: replenisher}
	requestHandler := &handlers.RequestHandler{Store: st, Replenisher: replenisher}
	analyticsHandler := &handlers.AnalyticsHandler{Store: st, Monitor: monitor, Supplier: supplierClient}
	configHandler := &handlers.ConfigHandler{Store: st}
	sensorHandler := &handlers.SensorHandler{Store: st, Monitor: monitor}

	router.GET("/stock", stockHandler.GetStock)
	router.POST("/stock", stockHandler.UpdateStock)
	router.GET("/requests", requestHandler.GetRequests)
	router.POST("/requests", requestHandler.DecideRequest)
	router.GET("/analytics", analyticsHandler.GetAnalytics)
	router.POST("/config", configHandler.UpdateConfig)
	router.GET("/sensor-history", sensorHandler.GetSensorHistory)
	router.POST("/report-environment", sensorHandler.ReportEnvironment)

	return router
}

// SetupSupplierRouter wires the supplier service's endpoints.
func SetupSupplierRouter(
	ledger *supplier.Ledger,
	queue *supplier.Queue,
	hub *socket.Hub,
	log *zap.SugaredLogger,
) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	supplierHandler := &handlers.SupplierHandler{Ledger: ledger, Queue: queue, Hub: hub}
	webSocketHandler := &handlers.WebSocketHandler{Hub: hub, Log: log}

	router.GET("/inventory", supplierHandler.GetInventory)
	router.GET("/requests", supplierHandler.GetRequests)
	router.POST("/new-request", supplierHandler.NewRequest)
	router.POST("/update-request-status", supplierHandler.UpdateRequestStatus)
	router.GET("/ws", webSocketHandler.ServeWs)

	return router
}
