package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/lvicens/blanca-med/backend/internal/api"
	"github.com/lvicens/blanca-med/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	allergenHandler *api.AllergenHandler,
	profileHandler *api.ProfileHandler,
	protocolHandler *api.ProtocolHandler,
	validator middleware.TokenValidator,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Auth routes
	loginLimiter := middleware.NewLoginRateLimiter(redisClient)
	auth := v1.Group("/auth")
	auth.Use(loginLimiter.Middleware())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Public lookup routes; no account needed for an emergency lookup
	allergens := v1.Group("/allergens")
	{
		allergens.GET("/search", allergenHandler.Search)
		allergens.GET("/categories", allergenHandler.Categories)
		allergens.GET("/categories/:category", allergenHandler.Category)
	}

	protocols := v1.Group("/protocols")
	{
		protocols.GET("", protocolHandler.List)
		protocols.GET("/:id", protocolHandler.Get)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		exportLimiter := middleware.NewExportRateLimiter(redisClient)
		protected.POST("/allergens/export", exportLimiter.Middleware(), allergenHandler.Export)

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.GET("/allergens", profileHandler.ListAllergens)
			profile.POST("/allergens", profileHandler.CreateAllergen)
			profile.PUT("/allergens/:id", profileHandler.UpdateAllergen)
			profile.DELETE("/allergens/:id", profileHandler.DeleteAllergen)
			profile.GET("/allergens/search", profileHandler.SearchAllergens)
		}
	}

	return router
}
