package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redis,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func (h *HealthHandler) checkDatabase(ctx context.Context) (string, bool) {
	if h.db == nil {
		return "not configured", true
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return "error: " + err.Error(), false
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}

func (h *HealthHandler) checkRedis(ctx context.Context) (string, bool) {
	if h.redis == nil {
		return "not configured", true
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	dbStatus, dbOK := h.checkDatabase(ctx)
	components["database"] = dbStatus
	healthy = healthy && dbOK

	redisStatus, redisOK := h.checkRedis(ctx)
	components["redis"] = redisStatus
	healthy = healthy && redisOK

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if h.db != nil {
		if _, ok := h.checkDatabase(ctx); !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "database unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
