//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"vocprez/internal/platform/config"
	"vocprez/internal/platform/redis"
)

// RedisContainer is a shared list-cache backend for integration suites.
// Client is dialled through the same constructor the server uses.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *redis.Client
}

// NewRedisContainer is normally reached through Manager.GetRedis. The
// container outlives the test and is reaped by Ryuk.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	c, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	abort := func(step string, err error) {
		_ = c.Terminate(ctx)
		t.Fatalf("%s: %v", step, err)
	}

	rc := &RedisContainer{Container: c}
	if rc.URL, err = c.ConnectionString(ctx); err != nil {
		abort("redis connection string", err)
	}
	if rc.Client, err = redis.New(ctx, config.RedisConfig{URL: rc.URL, PoolSize: 4}); err != nil {
		abort("dial redis", err)
	}
	return rc
}

// FlushAll drops every cached list slot so each test starts cold.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushDB(ctx).Err()
}
