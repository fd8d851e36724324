package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resident-records-service/internal/domain/services"
	"resident-records-service/internal/domain/services/container"
	"resident-records-service/pkg/logger"
)

// checkUnavailable is reported for a failing dependency; details go to the log
const checkUnavailable = "unavailable"

// HealthCheckController reports liveness and dependency health
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping reports liveness
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Health pings the store and redis
// @Summary      Readiness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /api/health [get]
func (h *HealthCheckController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}

	if err := h.Container.GetStore().Ping(ctx); err != nil {
		logger.Error("health: store ping failed: %v", err)
		status = http.StatusServiceUnavailable
		checks["store"] = checkUnavailable
	} else {
		checks["store"] = "ok"
	}

	if redisService, ok := h.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		if err := redisService.Ping(ctx); err != nil {
			// redis is optional for readiness
			logger.Warning("health: redis ping failed: %v", err)
			checks["redis"] = checkUnavailable
		} else {
			checks["redis"] = "ok"
		}
	} else {
		checks["redis"] = "disabled"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "unhealthy"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
