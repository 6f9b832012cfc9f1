package handlers

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/SscSPs/project_budget_app/cmd/docs"
	portssvc "github.com/SscSPs/project_budget_app/internal/core/ports/services"
	"github.com/SscSPs/project_budget_app/internal/middleware"
	"github.com/SscSPs/project_budget_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	api := r.Group("/api", middleware.BodyLimit(cfg.BodyLimitBytes))
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
		api.Use(middleware.RateLimit(limiterInstance))
	}

	// Mutating budget routes require a bearer token when a secret is configured
	var guard []gin.HandlerFunc
	if cfg.JWTSecret != "" {
		guard = append(guard, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}

	registerHealthRoutes(r, api, services.Health, cfg.AppVersion)
	registerBudgetRoutes(api, services.Budget, services.Conversion, guard...)
	registerConversionRoutes(api, services.Conversion)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Version = cfg.AppVersion
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
