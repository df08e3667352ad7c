package config

import (
    "time"

    "github.com/kelseyhightower/envconfig"
)

// RateLimitConfig controls the fixed-window limiter placed in front of the
// write endpoints.  Limit requests are allowed per Window for each key; the
// key is built from the client IP and, when authenticated, the subject.
type RateLimitConfig struct {
    Enabled     bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
    Limit       int           `envconfig:"RATE_LIMIT_LIMIT" default:"30"`
    Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
    KeyStrategy string        `envconfig:"RATE_LIMIT_KEY_STRATEGY" default:"ip_user"`
    Prefix      string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
}

func LoadRateLimitConfig() (RateLimitConfig, error) {
    var cfg RateLimitConfig
    if err := envconfig.Process("", &cfg); err != nil {
        return RateLimitConfig{}, err
    }
    if cfg.Limit < 1 { cfg.Limit = 1 }
    if cfg.Window <= 0 { cfg.Window = time.Minute }
    return cfg, nil
}
