package handler // declare the package name; contains HTTP handlers

import (
    "context"
    "database/sql"
    "net/http" // net/http provides status codes and response helpers
    "time"

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
    "github.com/redis/go-redis/v9"
)

// HealthHandler reports whether the service and its backing stores are
// reachable.  Either dependency may be nil: a nil DB is skipped and a nil
// Redis client is reported as disabled.
type HealthHandler struct {
    DB    *sql.DB
    Redis *redis.Client
}

// Check handles GET /healthz.  It answers 200 while MySQL is reachable and
// 503 otherwise; Redis being down only degrades the response.
func (h *HealthHandler) Check(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
    defer cancel()

    status := http.StatusOK
    resp := echo.Map{"status": "ok", "db": "up", "redis": "disabled"}

    if h.DB != nil {
        if err := h.DB.PingContext(ctx); err != nil {
            status = http.StatusServiceUnavailable
            resp["status"] = "unavailable"
            resp["db"] = "down"
        }
    }
    if h.Redis != nil {
        resp["redis"] = "up"
        if err := h.Redis.Ping(ctx).Err(); err != nil {
            resp["redis"] = "down" // cache and rate limiting fail open
            if status == http.StatusOK {
                resp["status"] = "degraded"
            }
        }
    }
    return c.JSON(status, resp)
}
