// Package redis opens the connection shared by every replica's list cache.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vocprez/internal/platform/config"
)

// Client is a go-redis client that has answered at least one PING.
type Client struct {
	*redis.Client
}

// New dials cfg.URL. An empty URL means the backend is not configured and
// yields a nil client with no error.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{Client: redis.NewClient(opts)}
	if err := c.Health(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", opts.Addr, err)
	}
	return c, nil
}

// options overlays the non-zero config fields on what the URL carries.
func options(cfg config.RedisConfig) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.MinIdleConns = cfg.MinIdleConns
	for _, o := range []struct {
		set bool
		fn  func()
	}{
		{cfg.PoolSize > 0, func() { opts.PoolSize = cfg.PoolSize }},
		{cfg.DialTimeout > 0, func() { opts.DialTimeout = cfg.DialTimeout }},
		{cfg.ReadTimeout > 0, func() { opts.ReadTimeout = cfg.ReadTimeout }},
		{cfg.WriteTimeout > 0, func() { opts.WriteTimeout = cfg.WriteTimeout }},
	} {
		if o.set {
			o.fn()
		}
	}
	return opts, nil
}

// Health is registered as the "redis" dependency on /health.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
