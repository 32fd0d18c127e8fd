package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// Pinger is a dependency that can report if it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the state of the storage dependencies.
type HealthHandler struct {
	db    *gorm.DB
	redis Pinger
}

type HealthHandlerDependencies struct {
	DB *gorm.DB
	// Optional, nil when the in-process counter store is used.
	Redis Pinger
}

func NewHealthHandler(deps *HealthHandlerDependencies) *HealthHandler {
	return &HealthHandler{db: deps.DB, redis: deps.Redis}
}

// Health answers 200 when the database (and Redis, if configured) respond.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
