package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"VOCPREZ_ADDR", "SPARQL_SELECT_TIMEOUT", "SPARQL_CONSTRUCT_TIMEOUT", "CACHE_BACKEND", "REGISTRY_CACHE_TTL", "REGISTRY_TIMEOUT", "SYSTEM_URI"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 60*time.Second, cfg.SPARQL.SelectTimeout)
	assert.Equal(t, 90*time.Second, cfg.SPARQL.ConstructTimeout)
	assert.Equal(t, CacheBackendFile, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.RegistryCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.RegistryTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Site.SystemURI)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("VOCPREZ_ADDR", ":9000")
	t.Setenv("SPARQL_SELECT_TIMEOUT", "15")
	t.Setenv("SPARQL_CONSTRUCT_TIMEOUT", "2m")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("SYSTEM_URI", "https://vocab.example.org/")
	t.Setenv("ORDS_ENDPOINT_URL", "https://registry.example.org/ords/")
	t.Setenv("REGISTRY_TIMEOUT", "3s")

	cfg := FromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 15*time.Second, cfg.SPARQL.SelectTimeout)
	assert.Equal(t, 2*time.Minute, cfg.SPARQL.ConstructTimeout)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "https://vocab.example.org", cfg.Site.SystemURI)
	assert.Equal(t, "https://registry.example.org/ords", cfg.RegistryURL)
	assert.Equal(t, 3*time.Second, cfg.RegistryTimeout)
}

func TestGetDurationRejectsGarbage(t *testing.T) {
	t.Setenv("X_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getDuration("X_TIMEOUT", time.Second))
	t.Setenv("X_TIMEOUT", "-5")
	assert.Equal(t, time.Second, getDuration("X_TIMEOUT", time.Second))
}
