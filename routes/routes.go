package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"chargecompare-api/config"
	"chargecompare-api/controllers"
	"chargecompare-api/middleware"
	"chargecompare-api/repositories"
	"chargecompare-api/services"
)

func SetupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, priceService *services.PriceService) {
	// Services
	costService := services.NewCostService()
	vehicleService := services.NewVehicleService()
	emailService := services.NewEmailService(cfg)
	comparisonRepo := repositories.NewComparisonRepository(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	calculatorController := controllers.NewCalculatorController(costService, comparisonRepo, emailService)
	priceController := controllers.NewPriceController(priceService)
	vehicleController := controllers.NewVehicleController(vehicleService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Calculator routes (public; the engine is stateless)
	calculator := v1.Group("/calculator")
	{
		calculator.POST("/calculate", calculatorController.Calculate)
		calculator.POST("/parity", calculatorController.Parity)
	}

	// Price lookup routes (public, rate-limited: lookups hit metered
	// external sources)
	prices := v1.Group("/prices")
	prices.Use(middleware.RateLimit(30, 10))
	{
		prices.GET("", priceController.GetPrices)
	}

	// Vehicle reference routes (public)
	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("/efficiencies", vehicleController.GetEfficiencies)
		vehicles.GET("/prefill", vehicleController.Prefill)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		comparisons := protected.Group("/comparisons")
		{
			comparisons.POST("", calculatorController.SaveComparison)
			comparisons.GET("", calculatorController.GetHistory)
			comparisons.DELETE("", calculatorController.ClearHistory)
			comparisons.POST("/:id/email", calculatorController.EmailComparison)
		}
	}
}
