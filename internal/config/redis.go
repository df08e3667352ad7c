package config

// This file defines a Redis client constructor for the application.  Redis
// backs the response cache and the rate limiter.  If the server cannot be
// reached at startup the constructor returns nil and callers disable both.

import (
    "context"
    "crypto/tls"
    "strings"
    "time"

    "github.com/kelseyhightower/envconfig"
    "github.com/redis/go-redis/v9"
)

// RedisConfig lists the connection settings.  Addr is used unless both
// Host and Port are given.
type RedisConfig struct {
    Host     string `envconfig:"REDIS_HOST"`
    Port     string `envconfig:"REDIS_PORT"`
    Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
    Password string `envconfig:"REDIS_PASSWORD"`
    DB       int    `envconfig:"REDIS_DB" default:"0"`
    TLS      string `envconfig:"REDIS_TLS"`
}

// Address resolves the host:port to dial.
func (c RedisConfig) Address() string {
    if c.Host != "" && c.Port != "" {
        return c.Host + ":" + c.Port
    }
    return c.Addr
}

// NewRedisClient instantiates a Redis client from the environment and pings
// it with a short timeout.  The returned client is nil when the server is
// unreachable or the configuration is invalid.
func NewRedisClient() *redis.Client {
    var cfg RedisConfig
    if err := envconfig.Process("", &cfg); err != nil {
        return nil
    }
    var tlsConf *tls.Config
    if strings.EqualFold(cfg.TLS, "true") || cfg.TLS == "1" {
        tlsConf = &tls.Config{InsecureSkipVerify: true}
    }
    client := redis.NewClient(&redis.Options{
        Addr:      cfg.Address(),
        Password:  cfg.Password,
        DB:        cfg.DB,
        TLSConfig: tlsConf,
    })
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil
    }
    return client
}
