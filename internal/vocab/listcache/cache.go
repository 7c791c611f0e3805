// Package listcache keeps the collection and concept-scheme indexes that
// every container page and alternate-profile lookup reads. A slot is filled
// from one bulk SELECT on first use and replaced only in full.
package listcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/singleflight"

	"vocprez/internal/platform/sparql"
	vmetrics "vocprez/internal/vocab/metrics"
	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/query"
	"vocprez/pkg/platform/sentinel"
	"vocprez/pkg/requestcontext"
)

// BlobStore persists one serialized list per key. Get returns
// sentinel.ErrNotFound for an empty slot; Put replaces the slot atomically.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
	Delete(ctx context.Context, key string) error
}

// Source runs the bulk SELECT.
type Source interface {
	Select(ctx context.Context, query string) ([]sparql.Binding, error)
}

// UnknownListError names a slot that does not exist.
type UnknownListError struct {
	Name string
}

func (e *UnknownListError) Error() string {
	return fmt.Sprintf("unknown list %q", e.Name)
}

type Cache struct {
	store   BlobStore
	source  Source
	logger  *slog.Logger
	metrics *vmetrics.Metrics
	group   singleflight.Group
}

type Option func(*Cache)

func WithMetrics(m *vmetrics.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

func New(store BlobStore, source Source, logger *slog.Logger, opts ...Option) (*Cache, error) {
	if store == nil {
		return nil, errors.New("blob store is required")
	}
	if source == nil {
		return nil, errors.New("sparql source is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{store: store, source: source, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the named list, filling the slot on a miss. Concurrent misses
// share one fill.
func (c *Cache) Get(ctx context.Context, name models.ListName) ([]Entry, error) {
	if _, ok := models.ParseListName(string(name)); !ok {
		return nil, &UnknownListError{Name: string(name)}
	}

	if entries, ok := c.read(ctx, name); ok {
		c.metrics.IncrementCacheHit(string(name))
		return entries, nil
	}
	c.metrics.IncrementCacheMiss(string(name))

	v, err, _ := c.group.Do(string(name), func() (any, error) {
		return c.fill(context.WithoutCancel(ctx), name)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]Entry)), nil
}

// FindByURI looks an entry up in the named list.
func (c *Cache) FindByURI(ctx context.Context, name models.ListName, uri string) (Entry, bool, error) {
	return c.find(ctx, name, func(e Entry) bool { return e.URI == uri })
}

// FindByID looks an entry up by its short identifier.
func (c *Cache) FindByID(ctx context.Context, name models.ListName, id string) (Entry, bool, error) {
	return c.find(ctx, name, func(e Entry) bool { return e.ID == id })
}

func (c *Cache) find(ctx context.Context, name models.ListName, match func(Entry) bool) (Entry, bool, error) {
	entries, err := c.Get(ctx, name)
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if match(e) {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// Invalidate drops one slot, or every slot when name is "" or "all".
func (c *Cache) Invalidate(ctx context.Context, name string) error {
	names := models.Lists
	if name != "" && name != "all" {
		l, ok := models.ParseListName(name)
		if !ok {
			return &UnknownListError{Name: name}
		}
		names = []models.ListName{l}
	}
	for _, l := range names {
		if err := c.store.Delete(ctx, string(l)); err != nil {
			return fmt.Errorf("invalidate %s: %w", l, err)
		}
		c.logger.InfoContext(ctx, "list cache invalidated",
			"request_id", requestcontext.RequestID(ctx),
			"list", string(l),
		)
	}
	return nil
}

// Warm fills every slot from the store, replacing what is cached.
func (c *Cache) Warm(ctx context.Context) error {
	for _, l := range models.Lists {
		if _, err := c.fill(ctx, l); err != nil {
			return fmt.Errorf("warm %s: %w", l, err)
		}
	}
	return nil
}

func (c *Cache) read(ctx context.Context, name models.ListName) ([]Entry, bool) {
	body, err := c.store.Get(ctx, string(name))
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			c.logger.WarnContext(ctx, "list cache unavailable, treating as miss",
				"request_id", requestcontext.RequestID(ctx),
				"list", string(name),
				"error", err,
			)
		}
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		c.logger.WarnContext(ctx, "list cache slot unreadable, treating as miss",
			"request_id", requestcontext.RequestID(ctx),
			"list", string(name),
			"error", err,
		)
		return nil, false
	}
	return entries, true
}

func (c *Cache) fill(ctx context.Context, name models.ListName) ([]Entry, error) {
	q, err := query.ListQuery(name)
	if err != nil {
		return nil, err
	}
	rows, err := c.source.Select(ctx, q)
	if err != nil {
		c.metrics.IncrementCacheFill(string(name), "error")
		if !sparql.IsUpstreamQueryError(err) {
			err = &sparql.UpstreamQueryError{Form: sparql.FormSelect, Err: err}
		}
		return nil, err
	}
	entries := entriesFromBindings(rows)
	c.metrics.IncrementCacheFill(string(name), "ok")

	body, err := json.Marshal(entries)
	if err == nil {
		err = c.store.Put(ctx, string(name), body)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "list cache write failed",
			"request_id", requestcontext.RequestID(ctx),
			"list", string(name),
			"error", err,
		)
	}
	c.logger.InfoContext(ctx, "list cache filled",
		"request_id", requestcontext.RequestID(ctx),
		"list", string(name),
		"entries", len(entries),
	)
	return entries, nil
}
