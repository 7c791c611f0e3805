package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures process-level configuration. It is built once at start up
// and handed to constructors; nothing reads the environment after that.
type Server struct {
	Addr    string
	SPARQL  SPARQLConfig
	Site    SiteConfig
	Cache   CacheConfig
	Redis   RedisConfig
	DB      DBConfig
	Logging LoggingConfig

	// RegistryURL is the base of the alternate-profile registry. Empty
	// disables alternate profiles.
	RegistryURL      string
	RegistryCacheTTL time.Duration
	RegistryTimeout  time.Duration
	AdminAPIToken    string
}

type SPARQLConfig struct {
	Endpoint         string
	Username         string
	Password         string
	SelectTimeout    time.Duration
	ConstructTimeout time.Duration
}

// SiteConfig holds the URI bases used to mint and strip resource URIs.
type SiteConfig struct {
	SystemURI string
	DataURI   string
}

type CacheConfig struct {
	// Backend is one of file, memory, redis or postgres.
	Backend string
	Dir     string
}

// RedisConfig configures the optional Redis list-cache backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	URL string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Cache backends.
const (
	CacheBackendFile     = "file"
	CacheBackendMemory   = "memory"
	CacheBackendRedis    = "redis"
	CacheBackendPostgres = "postgres"
)

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Server {
	_ = godotenv.Load()

	systemURI := strings.TrimSuffix(getEnv("SYSTEM_URI", "http://localhost:8080"), "/")
	return Server{
		Addr: getEnv("VOCPREZ_ADDR", ":8080"),
		SPARQL: SPARQLConfig{
			Endpoint:         os.Getenv("SPARQL_ENDPOINT"),
			Username:         os.Getenv("SPARQL_USERNAME"),
			Password:         os.Getenv("SPARQL_PASSWORD"),
			SelectTimeout:    getDuration("SPARQL_SELECT_TIMEOUT", 60*time.Second),
			ConstructTimeout: getDuration("SPARQL_CONSTRUCT_TIMEOUT", 90*time.Second),
		},
		Site: SiteConfig{
			SystemURI: systemURI,
			DataURI:   strings.TrimSuffix(getEnv("DATA_URI", "http://vocab.nerc.ac.uk"), "/"),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendFile)),
			Dir:     getEnv("CACHE_DIR", "cache"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		DB: DBConfig{URL: os.Getenv("DATABASE_URL")},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RegistryURL:      strings.TrimSuffix(os.Getenv("ORDS_ENDPOINT_URL"), "/"),
		RegistryCacheTTL: getDuration("REGISTRY_CACHE_TTL", 5*time.Minute),
		RegistryTimeout:  getDuration("REGISTRY_TIMEOUT", 10*time.Second),
		AdminAPIToken:    os.Getenv("ADMIN_API_TOKEN"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("90s") and bare seconds ("90").
func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil && n > 0 {
		return n
	}
	return fallback
}
