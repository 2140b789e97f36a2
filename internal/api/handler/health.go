package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/veterinario/clinic-system/pkg/logger"
)

const dependencyPingTimeout = 2 * time.Second

// HealthHandler reports process liveness and backing-store readiness.
type HealthHandler struct {
	db    *sql.DB
	redis *redis.Client
	mongo *mongo.Client
}

func NewHealthHandler(db *sql.DB, redisClient *redis.Client, mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, mongo: mongoClient}
}

// Live answers as soon as the process can serve requests.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready pings postgres, redis, and mongo; any failing dependency flips the
// response to 503 with a per-dependency breakdown.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dependencyPingTimeout)
	defer cancel()

	log := logger.Get()
	status := http.StatusOK
	deps := map[string]string{}

	if err := h.db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("readiness: postgres unreachable")
		deps["postgres"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		deps["postgres"] = "ok"
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("readiness: redis unreachable")
		deps["redis"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		deps["redis"] = "ok"
	}

	if err := h.mongo.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("readiness: mongo unreachable")
		deps["mongo"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		deps["mongo"] = "ok"
	}

	return c.JSON(status, map[string]any{
		"status":       httpStatusLabel(status),
		"dependencies": deps,
	})
}

func httpStatusLabel(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
