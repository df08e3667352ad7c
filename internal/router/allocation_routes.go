package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/openspace-organizer/internal/handler"
	"github.com/iliyamo/openspace-organizer/internal/middleware"
	"github.com/iliyamo/openspace-organizer/internal/utils"
)

// RegisterAllocations registers the allocation endpoints under /v1.
// Reads are public and pass through the response cache.  Writes require a
// valid JWT carrying the ORGANIZER role and are rate limited per caller.
func RegisterAllocations(e *echo.Echo, h *handler.AllocationHandler, jwtSecret string, cache, limiter echo.MiddlewareFunc) {
	public := e.Group("/v1/allocations", cache)
	public.GET("", h.List)
	public.GET("/:id", h.Get)
	public.GET("/:id/render", h.Render)
	public.GET("/:id/export", h.Export)

	// The limiter runs after JWTAuth so the ip_user strategy sees the subject.
	g := e.Group(
		"/v1/allocations",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(utils.RoleOrganizer),
		limiter,
	)
	g.POST("", h.Create)
	g.DELETE("/:id/occupants/:name", h.Unseat)
}
