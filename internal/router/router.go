// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/freshchain/pos-backend/internal/config"
	"github.com/freshchain/pos-backend/internal/database"
	"github.com/freshchain/pos-backend/internal/handlers"
	"github.com/freshchain/pos-backend/internal/middleware"
	"github.com/freshchain/pos-backend/internal/repository"
	"github.com/freshchain/pos-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	catalogRepo := repository.NewGormCatalogRepo(db)
	customerRepo := repository.NewGormCustomerRepo(db)
	purchaseRepo := repository.NewGormPurchaseRepo(db)

	// Initialize services
	catalogService := services.NewCatalogService(catalogRepo)
	customerService := services.NewCustomerService(customerRepo)
	purchaseService := services.NewPurchaseService(catalogService, customerService, purchaseRepo)
	analyticsService := services.NewAnalyticsService(purchaseRepo)

	// Initialize handlers
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	rateLimiter := middleware.NewRateLimiter(
		rate.Limit(cfg.RateLimit.RequestsPerSecond),
		cfg.RateLimit.Burst,
	)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Supermarket Chain POS API",
			"version": "1.0.0",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		if err := database.Ping(db); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Transaction endpoint
	r.POST("/purchase", purchaseHandler.RegisterPurchase)

	// Catalog selectors
	r.GET("/supermarkets", catalogHandler.GetSupermarkets)
	r.GET("/products", catalogHandler.GetProducts)

	// Analytics reads
	r.GET("/unique-customers", analyticsHandler.GetUniqueCustomers)
	r.GET("/loyal-customers", analyticsHandler.GetLoyalCustomers)
	r.GET("/top-products", analyticsHandler.GetTopProducts)

	return r
}
