// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comparisonmarket/cm-backend/internal/cache"
	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/config"
	"github.com/comparisonmarket/cm-backend/internal/handlers"
	"github.com/comparisonmarket/cm-backend/internal/middleware"
	"github.com/comparisonmarket/cm-backend/internal/services"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, cat catalog.Repository, searchCache *cache.SearchCache) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	searchService := services.NewSearchService(cat, searchCache)
	productService := services.NewProductService(cat)
	wishlistService := services.NewWishlistService(services.NewMemoryWishlistStore(), cat)
	alertService := services.NewAlertService(db, cat)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	searchHandler := handlers.NewSearchHandler(searchService)
	productHandler := handlers.NewProductHandler(productService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	alertHandler := handlers.NewAlertHandler(alertService)

	// Set session cookie signing secret
	utils.SetJWTSecret(cfg.Session.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.I18nMiddleware())
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
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.OptionalSession(cfg, authService), authHandler.Logout)
			auth.GET("/me", middleware.OptionalSession(cfg, authService), authHandler.Me)
		}

		// Catalog routes
		v1.GET("/search", searchHandler.Search)
		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/:id", productHandler.GetProduct)
		v1.GET("/deals", productHandler.GetDeals)
		v1.GET("/categories", productHandler.GetCategories)

		// User routes
		user := v1.Group("/user")
		{
			// Wishlist works without an account via the demo user fallback
			wishlist := user.Group("/wishlist")
			wishlist.Use(middleware.OptionalSession(cfg, authService))
			{
				wishlist.GET("", wishlistHandler.GetWishlist)
				wishlist.POST("", wishlistHandler.AddToWishlist)
				wishlist.DELETE("", wishlistHandler.RemoveFromWishlist)
			}

			// Price alerts require a session
			alerts := user.Group("/alerts")
			alerts.Use(middleware.SessionRequired(cfg, authService))
			{
				alerts.GET("", alertHandler.GetAlerts)
				alerts.POST("", alertHandler.CreateAlert)
				alerts.DELETE("/:id", alertHandler.DeleteAlert)
			}
		}
	}

	return r
}
