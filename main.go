package main

import (
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/config"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/database"
	logger "github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/logging"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/models"
	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/router"

	"go.uber.org/zap"
)

func main() {
	// Load configuration with a console-only logger, then build the full
	// logger from the configured rotation settings.
	log := logger.Bootstrap()
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	full, err := logger.Init(config.Conf.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger", zap.Error(err))
	}
	log = full
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Load the static reference data at startup. Both tables are immutable
	// for the lifetime of the process.
	catalog, err := models.LoadScaleCatalog(config.Conf.Catalog.ScalesPath)
	if err != nil {
		log.Fatal("Failed to load scale catalog", zap.Error(err))
	}
	regions, err := models.LoadRegionMap(config.Conf.Catalog.RegionsPath)
	if err != nil {
		log.Fatal("Failed to load region map", zap.Error(err))
	}

	// Setup router, passing the logger and reference data to it
	r := router.Setup(log, catalog, regions)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
