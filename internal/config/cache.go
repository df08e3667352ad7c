package config

import (
    "strings"
    "time"

    "github.com/kelseyhightower/envconfig"
)

// CacheConfig defines settings for the response cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled.  Methods lists the HTTP methods to cache (e.g. GET, HEAD) and TTL
// the lifetime of cache entries.  Prefix namespaces the keys and
// MaxBodyBytes caps the size of a cached response.
type CacheConfig struct {
    Enabled      bool          `envconfig:"CACHE_ENABLED" default:"true"`
    RawMethods   string        `envconfig:"CACHE_METHODS" default:"GET"`
    TTL          time.Duration `envconfig:"CACHE_TTL" default:"30s"`
    Prefix       string        `envconfig:"CACHE_PREFIX" default:"cache"`
    MaxBodyBytes int           `envconfig:"CACHE_MAX_BODY_BYTES" default:"1048576"`
    Methods      map[string]bool `ignored:"true"`
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.  All methods are
// upper-cased.
func LoadCacheConfig() (CacheConfig, error) {
    var cfg CacheConfig
    if err := envconfig.Process("", &cfg); err != nil {
        return CacheConfig{}, err
    }
    cfg.Methods = parseMethods(cfg.RawMethods)
    if cfg.TTL <= 0 {
        cfg.TTL = time.Second
    }
    return cfg, nil
}

func parseMethods(s string) map[string]bool {
    m := map[string]bool{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(strings.ToUpper(p))
        if p != "" {
            m[p] = true
        }
    }
    return m
}
