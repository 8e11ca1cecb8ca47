// server/cmd/store/main.go
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smart-shelf-scm-server/config"
	"smart-shelf-scm-server/internal/api/routes"
	"smart-shelf-scm-server/internal/catalog"
	"smart-shelf-scm-server/internal/gateway"
	"smart-shelf-scm-server/internal/models"
	"smart-shelf-scm-server/internal/sensors"
	"smart-shelf-scm-server/internal/store"
)

func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Could not create logger: %v", err)
	}
	defer zlog.Sync()
	logger := zlog.Sugar()

	st := store.NewStore(catalog.SeedProducts())

	supplierClient := gateway.NewClient(
		cfg.Store.SupplierURL,
		cfg.Store.RequestTimeout,
		models.StoreIdentity{
			Name:    cfg.Store.Identity.Name,
			Phone:   cfg.Store.Identity.Phone,
			Address: cfg.Store.Identity.Address,
		},
		logger,
	)
	replenisher := store.NewReplenisher(st, supplierClient, cfg.Store.RestockCushion, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := sensors.NewMonitor(st, cfg.Store.SensorInterval, logger)
	go monitor.Run(ctx)

	router := routes.SetupStoreRouter(st, replenisher, monitor, supplierClient)

	logger.Infof("starting store service on port %s", cfg.Store.Port)
	if err := router.Run(":" + cfg.Store.Port); err != nil {
		logger.Fatalf("failed to run store service: %v", err)
	}
}
