package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"

	"vocprez/internal/platform/config"
	"vocprez/internal/platform/logger"
	"vocprez/internal/platform/metrics"
	"vocprez/internal/platform/redis"
	"vocprez/internal/platform/sparql"
	"vocprez/internal/vocab/altprofile"
	"vocprez/internal/vocab/handler"
	"vocprez/internal/vocab/listcache"
	"vocprez/internal/vocab/listcache/store"
	vmetrics "vocprez/internal/vocab/metrics"
	"vocprez/internal/vocab/render"
	"vocprez/internal/vocab/service"
)

// app holds every long-lived dependency one command needs.
type app struct {
	cfg             config.Server
	logger          *slog.Logger
	platformMetrics *metrics.Metrics
	lists           *listcache.Cache
	service         *service.Service
	postgres        *store.Postgres
	checks          map[string]handler.HealthCheck
	closers         []func() error
}

func newApp(ctx context.Context, cfg config.Server) (*app, error) {
	a := &app{
		cfg:             cfg,
		logger:          logger.New(cfg.Logging.Level, cfg.Logging.Format),
		platformMetrics: metrics.New(),
		checks:          map[string]handler.HealthCheck{},
	}
	vocabMetrics := vmetrics.New()

	client, err := sparql.New(cfg.SPARQL.Endpoint,
		sparql.WithBasicAuth(cfg.SPARQL.Username, cfg.SPARQL.Password),
		sparql.WithTimeouts(cfg.SPARQL.SelectTimeout, cfg.SPARQL.ConstructTimeout),
		sparql.WithMetrics(a.platformMetrics),
	)
	if err != nil {
		return nil, err
	}

	blobs, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.lists, err = listcache.New(blobs, client, a.logger, listcache.WithMetrics(vocabMetrics))
	if err != nil {
		a.Close()
		return nil, err
	}

	// A nil fetcher disables alternate profiles.
	var fetcher altprofile.Fetcher
	if cfg.RegistryURL != "" {
		fetcher = altprofile.NewHTTPRegistry(cfg.RegistryURL, &http.Client{Timeout: cfg.RegistryTimeout})
	}
	loader := altprofile.NewLoader(fetcher, a.logger,
		altprofile.WithTTL(cfg.RegistryCacheTTL),
		altprofile.WithFetchTimeout(cfg.RegistryTimeout),
		altprofile.WithMetrics(vocabMetrics),
	)

	templates, err := render.NewHTMLTemplates()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.service, err = service.New(client, a.lists, templates, a.site(),
		service.WithLogger(a.logger),
		service.WithMetrics(vocabMetrics),
		service.WithAltProfiles(loader),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) site() service.Site {
	return service.Site{SystemURI: a.cfg.Site.SystemURI, DataURI: a.cfg.Site.DataURI}
}

// openStore builds the list cache backend named by CACHE_BACKEND.
func (a *app) openStore(ctx context.Context) (listcache.BlobStore, error) {
	switch a.cfg.Cache.Backend {
	case config.CacheBackendFile:
		return store.NewFile(a.cfg.Cache.Dir)
	case config.CacheBackendMemory:
		return store.NewMemory(), nil
	case config.CacheBackendRedis:
		client, err := redis.New(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, errors.New("REDIS_URL is required for the redis cache backend")
		}
		a.closers = append(a.closers, client.Close)
		a.checks["redis"] = client.Health
		return store.NewRedis(client.Client)
	case config.CacheBackendPostgres:
		if a.cfg.DB.URL == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres cache backend")
		}
		db, err := sql.Open("postgres", a.cfg.DB.URL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.checks["postgres"] = db.PingContext
		pg, err := store.NewPostgres(db)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		a.postgres = pg
		return pg, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", a.cfg.Cache.Backend)
}

// clearCache invalidates lists; on Postgres every slot goes in one
// transaction.
func (a *app) clearCache(ctx context.Context, name string) error {
	if a.postgres == nil {
		return a.service.ClearCache(ctx, name)
	}
	return a.postgres.RunInTx(ctx, func(ctx context.Context) error {
		return a.service.ClearCache(ctx, name)
	})
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
