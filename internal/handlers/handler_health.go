package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/project_budget_app/internal/core/ports/repositories"
	"github.com/SscSPs/project_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func registerHealthRoutes(r *gin.Engine, api *gin.RouterGroup, health repositories.HealthChecker, version string) {
	r.GET("/health", healthCheck(health, version))
	api.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

// healthCheck godoc
// @Summary Service health
// @Description Reports whether the service and its storage backend are reachable
// @Tags health
// @Produce  json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthCheck(health repositories.HealthChecker, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(ctx).Error("Health check failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version})
	}
}
