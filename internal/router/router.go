// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/techtrove/storefront-backend/internal/cart"
	"github.com/techtrove/storefront-backend/internal/catalog"
	"github.com/techtrove/storefront-backend/internal/config"
	"github.com/techtrove/storefront-backend/internal/handlers"
	"github.com/techtrove/storefront-backend/internal/middleware"
	"github.com/techtrove/storefront-backend/internal/services"
	"github.com/techtrove/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, store *cart.Store, cfg *config.Config) *gin.Engine {
	// Initialize collaborator clients
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, time.Duration(cfg.Catalog.FetchTimeout)*time.Second)
	listingCache := cart.NewListingCache(store, time.Duration(cfg.Catalog.CacheTTL)*time.Minute)

	// Initialize services
	catalogService := services.NewCatalogService(db, catalogClient)
	quoteService := services.NewQuoteService(catalogService)
	cartService := services.NewCartService(store, quoteService)
	checkoutService := services.NewCheckoutService(store, cfg.Orders)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, listingCache)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.Session())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product catalog routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
			products.POST("/sync", middleware.SyncRateLimit(), catalogHandler.SyncProduct)
			products.POST("/:id/quote", quoteHandler.Quote)
			products.POST("/:id/stock-alerts", catalogHandler.CreateStockAlert)
		}

		// Cart routes (session-scoped)
		cartRoutes := v1.Group("/cart")
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.POST("/order-now", cartHandler.OrderNow)
			cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
			cartRoutes.DELETE("", cartHandler.ClearCart)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.CheckoutRateLimit())
		{
			checkout.POST("", checkoutHandler.Submit)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", getCategoriesHandler)
			categories.GET("/:category/products", catalogHandler.GetProducts)
		}
	}

	return r
}

// Helper handlers for simple endpoints
func getCategoriesHandler(c *gin.Context) {
	categories := []map[string]interface{}{
		{"id": "phone", "name": "Phones", "icon": "smartphone"},
		{"id": "tablet", "name": "Tablets", "icon": "tablet"},
		{"id": "laptop", "name": "Laptops", "icon": "laptop"},
		{"id": "accessory", "name": "Accessories", "icon": "headphones"},
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
