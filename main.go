package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"chargecompare-api/config"
	"chargecompare-api/database"
	"chargecompare-api/jobs"
	"chargecompare-api/middleware"
	"chargecompare-api/routes"
	"chargecompare-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// The region-price cache is owned here and injected into the
	// resolver; it does not survive restarts.
	priceCache := services.NewPriceCache(cfg.PriceCacheTTL)
	priceService := services.NewPriceService(cfg, nil, priceCache)

	sweepJob := jobs.NewPriceCacheSweepJob(priceCache, time.Hour)
	sweepJob.Start()
	defer sweepJob.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS and error handling middleware
	router.Use(routes.SetupCORS())
	router.Use(middleware.ErrorHandler())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, priceService)

	// Start server
	log.Printf("Starting ChargeCompare API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
