package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/openspace-organizer/internal/handler" // handlers that implement each endpoint
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	// Load balancers and monitoring probe this path.
	e.GET("/healthz", h.Check)
}

// RegisterAuth registers the token endpoint under /v1/auth.  The limiter is
// applied so the organizer key cannot be guessed at full speed.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	g.POST("/token", a.IssueToken, limiter)
}
