// server/cmd/supplier/main.go
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smart-shelf-scm-server/config"
	"smart-shelf-scm-server/internal/api/routes"
	"smart-shelf-scm-server/internal/catalog"
	"smart-shelf-scm-server/internal/socket"
	"smart-shelf-scm-server/internal/supplier"
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

	ledger := supplier.NewLedger(catalog.SeedSupplierInventory())
	queue := supplier.NewQueue(ledger)
	hub := socket.NewHub(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipeline := supplier.NewPipeline(queue, ledger, hub, logger,
		cfg.Supplier.PipelineInterval, cfg.Supplier.StageDelay)
	go pipeline.Run(ctx)

	router := routes.SetupSupplierRouter(ledger, queue, hub, logger)

	logger.Infof("starting supplier service on port %s", cfg.Supplier.Port)
	if err := router.Run(":" + cfg.Supplier.Port); err != nil {
		logger.Fatalf("failed to run supplier service: %v", err)
	}
}
