package handler // handler package contains allocation handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/openspace-organizer/internal/allocator"
	"github.com/iliyamo/openspace-organizer/internal/config"
	"github.com/iliyamo/openspace-organizer/internal/middleware"
	"github.com/iliyamo/openspace-organizer/internal/model"
	"github.com/iliyamo/openspace-organizer/internal/repository"
	"github.com/iliyamo/openspace-organizer/internal/roster"
	"github.com/iliyamo/openspace-organizer/internal/service"
)

var validate = validator.New()

// AllocationHandler exposes the organizer over HTTP.  Redis may be nil, in
// which case nothing is cached and nothing needs invalidating.
type AllocationHandler struct {
	Organizer *service.Organizer
	CacheCfg  config.CacheConfig
	Redis     *redis.Client
}

// NewAllocationHandler constructs an AllocationHandler and panics if the
// organizer is missing.
func NewAllocationHandler(o *service.Organizer, cacheCfg config.CacheConfig, rdb *redis.Client) *AllocationHandler {
	if o == nil {
		panic("nil organizer passed to NewAllocationHandler")
	}
	return &AllocationHandler{Organizer: o, CacheCfg: cacheCfg, Redis: rdb}
}

type createAllocationReq struct {
	Names []string `json:"names" validate:"max=10000,dive,max=255"`
	Seed  *uint64  `json:"seed"`
}

// Create handles POST /v1/allocations.  The body lists the names to seat
// and optionally the seed to draw with.  A roster larger than the open
// space, or one naming somebody twice, is rejected with 422.
func (h *AllocationHandler) Create(c echo.Context) error {
	var body createAllocationReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "names must be at most 10000 entries of at most 255 characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	space, err := h.Organizer.Organize(ctx, body.Names, body.Seed, middleware.Subject(c))
	if err != nil {
		switch {
		case errors.Is(err, allocator.ErrCapacity), errors.Is(err, allocator.ErrDuplicateName):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":    err.Error(),
				"capacity": h.Organizer.Layout().Capacity(),
			})
		default:
			c.Logger().Errorf("create allocation: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create allocation"})
		}
	}
	if err := middleware.InvalidateCache(ctx, h.CacheCfg, h.Redis, "/v1/allocations"); err != nil {
		c.Logger().Warnf("cache invalidation after create failed: %v", err)
	}
	return c.JSON(http.StatusCreated, space)
}

// List handles GET /v1/allocations?limit=N.
func (h *AllocationHandler) List(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}
	items, err := h.Organizer.List(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(items), "items": items})
}

// Get handles GET /v1/allocations/:id and returns the full allocation.
func (h *AllocationHandler) Get(c echo.Context) error {
	space, failed := h.load(c)
	if space == nil {
		return failed
	}
	return c.JSON(http.StatusOK, space)
}

// Render handles GET /v1/allocations/:id/render.  ?format=grid switches
// from the plain listing to a boxed table.
func (h *AllocationHandler) Render(c echo.Context) error {
	space, failed := h.load(c)
	if space == nil {
		return failed
	}
	if c.QueryParam("format") == "grid" {
		return c.String(http.StatusOK, allocator.RenderGrid(space))
	}
	return c.String(http.StatusOK, allocator.Render(space))
}

// Export handles GET /v1/allocations/:id/export and streams the CSV the CLI
// would have written.
func (h *AllocationHandler) Export(c echo.Context) error {
	space, failed := h.load(c)
	if space == nil {
		return failed
	}
	var buf bytes.Buffer
	if err := roster.WriteCSV(&buf, space); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="allocation-`+space.ID+`.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Unseat handles DELETE /v1/allocations/:id/occupants/:name.
func (h *AllocationHandler) Unseat(c echo.Context) error {
	id, ok := allocationID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	name, err := occupantName(c)
	if err != nil || name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid name"})
	}

	ctx := c.Request().Context()
	if err := h.Organizer.Unseat(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, repository.ErrAllocationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "allocation not found"})
		case errors.Is(err, repository.ErrOccupantNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "occupant not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}

	base := "/v1/allocations/" + id
	if err := middleware.InvalidateCache(ctx, h.CacheCfg, h.Redis, base, base+"/render", base+"/export", "/v1/allocations"); err != nil {
		c.Logger().Warnf("cache invalidation for %s failed: %v", id, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// load fetches the allocation named by the :id path parameter.  On failure
// it returns a nil space and the already-written error response.
func (h *AllocationHandler) load(c echo.Context) (*model.OpenSpace, error) {
	id, ok := allocationID(c)
	if !ok {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	space, err := h.Organizer.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAllocationNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "allocation not found"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return space, nil
}

// occupantName returns the :name path parameter.  Echo routes on RawPath
// when the client used a non-canonical escaping, and only then is the
// parameter still escaped.
func occupantName(c echo.Context) (string, error) {
	name := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

// allocationID validates the :id path parameter as a UUID.
func allocationID(c echo.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
