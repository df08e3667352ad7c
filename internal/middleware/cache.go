package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/openspace-organizer/internal/config"
)

// cachedResponse is what gets stored in Redis for a cache hit.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder tees the response body into a buffer, up to limit bytes.
type bodyRecorder struct {
	http.ResponseWriter
	status    int
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if !w.truncated {
		if w.limit > 0 && w.buf.Len()+len(b) > w.limit {
			w.truncated = true
			w.buf.Reset()
		} else {
			w.buf.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// CacheKey builds the Redis key for a request.  The real path is used, not
// the route pattern, so /v1/allocations/a and /v1/allocations/b never share
// an entry.  Every query-string variant of a path lives under the same
// per-path namespace.
func CacheKey(prefix, method, path, rawQuery string) string {
	return fmt.Sprintf("%s:%x:%x", prefix, pathSum(method, path), sha1.Sum([]byte(rawQuery)))
}

// CacheIndexKey names the set holding every cached key for path, so that
// invalidation can reach the query-string variants too.
func CacheIndexKey(prefix, method, path string) string {
	return fmt.Sprintf("%s:idx:%x", prefix, pathSum(method, path))
}

func pathSum(method, path string) [sha1.Size]byte {
	return sha1.Sum([]byte(strings.ToUpper(method) + " " + path))
}

// NewRedisCache caches successful responses for the configured methods.
// Only 200 responses whose body fits MaxBodyBytes are stored.  Responses
// carry X-Cache: HIT or MISS.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			if !cfg.Methods[strings.ToUpper(r.Method)] {
				return next(c)
			}
			key := CacheKey(cfg.Prefix, r.Method, r.URL.Path, r.URL.RawQuery)

			if raw, err := rdb.Get(r.Context(), key).Bytes(); err == nil {
				var hit cachedResponse
				if json.Unmarshal(raw, &hit) == nil {
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(hit.Status, hit.ContentType, hit.Body)
				}
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if rec.status != http.StatusOK || rec.truncated {
				return nil
			}
			payload, err := json.Marshal(cachedResponse{
				Status:      rec.status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        rec.buf.Bytes(),
			})
			if err != nil {
				return nil
			}
			ctx := context.WithoutCancel(r.Context())
			index := CacheIndexKey(cfg.Prefix, r.Method, r.URL.Path)
			_, _ = rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.Set(ctx, key, payload, ttl)
				p.SAdd(ctx, index, key)
				p.Expire(ctx, index, ttl)
				return nil
			})
			return nil
		}
	}
}

// InvalidateCache drops every cached GET response for paths, whatever
// their query string.  It is a no-op when caching is disabled.
func InvalidateCache(ctx context.Context, cfg config.CacheConfig, rdb *redis.Client, paths ...string) error {
	if !cfg.Enabled || rdb == nil || len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		index := CacheIndexKey(cfg.Prefix, http.MethodGet, p)
		members, err := rdb.SMembers(ctx, index).Result()
		if err != nil {
			return err
		}
		keys = append(keys, index)
		keys = append(keys, members...)
	}
	return rdb.Del(ctx, keys...).Err()
}
