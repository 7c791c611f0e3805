// Package handler exposes the vocabulary resources over HTTP. Paths are
// turned into resource addresses, negotiation inputs are read from headers
// and query parameters, and every failure leaves through httputil.WriteError.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vocprez/internal/vocab/conneg"
	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/service"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/platform/httputil"
	"vocprez/pkg/platform/middleware/admin"
	"vocprez/pkg/platform/middleware/metadata"
	"vocprez/pkg/platform/middleware/request"
	"vocprez/pkg/platform/middleware/requesttime"
	"vocprez/pkg/requestcontext"
)

// Service is what the handler needs from the vocabulary service.
type Service interface {
	Represent(ctx context.Context, req service.Request) (*service.Representation, error)
	SPARQL(ctx context.Context, query, accept string) ([]byte, string, error)
	SPARQLPage() ([]byte, error)
	SPARQLDescription(mediaType string) ([]byte, error)
	ClearCache(ctx context.Context, name string) error
}

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

// Handler serves the vocabulary routes.
type Handler struct {
	service    Service
	site       service.Site
	logger     *slog.Logger
	latency    request.LatencyObserver
	adminToken string
	checks     map[string]HealthCheck
}

type Option func(*Handler)

// WithLatencyObserver records per-route request durations.
func WithLatencyObserver(o request.LatencyObserver) Option {
	return func(h *Handler) {
		h.latency = o
	}
}

// WithAdminToken enables /cache-clear for callers presenting token.
func WithAdminToken(token string) Option {
	return func(h *Handler) {
		h.adminToken = token
	}
}

// WithHealthCheck adds a named dependency to /health.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) {
		if h.checks == nil {
			h.checks = map[string]HealthCheck{}
		}
		h.checks[name] = check
	}
}

func New(svc Service, site service.Site, logger *slog.Logger, opts ...Option) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("vocabulary service is required")
	}
	if site.DataURI == "" || site.SystemURI == "" {
		return nil, errors.New("system and data URIs are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{service: svc, site: site, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Register installs the middleware chain and every route on r.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(request.Recovery(h.logger))
	router.Use(request.RequestID)
	router.Use(metadata.ClientMetadata)
	router.Use(requesttime.Middleware)
	router.Use(request.Logger(h.logger))
	router.Use(request.Latency(h.latency))
	router.Use(chimw.GetHead)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no resource at "+r.URL.Path))
	})

	router.Get("/", h.represent(func(*http.Request) (models.Resource, error) {
		return models.NewDataset(h.site.SystemURI), nil
	}))

	router.Get("/collection/", h.represent(func(*http.Request) (models.Resource, error) {
		return models.NewContainer(h.site.SystemURI, models.ListCollections, models.FilterNone), nil
	}))
	router.Get("/collection/{id}", h.redirect("/collection/{id}/current/"))
	router.Get("/collection/{id}/", h.redirect("/collection/{id}/current/"))
	router.Get("/collection/{id}/current/", h.represent(func(r *http.Request) (models.Resource, error) {
		return models.NewCollection(h.site.DataURI, chi.URLParam(r, "id"), models.FilterNone), nil
	}))
	router.Get("/collection/{id}/current/{segment}", h.redirect("/collection/{id}/current/{segment}/"))
	router.Get("/collection/{id}/current/{segment}/", h.represent(h.collectionOrConcept))
	router.Get("/collection/{id}/current/{segment}/{vnum:[0-9]+}/", h.represent(func(r *http.Request) (models.Resource, error) {
		return models.NewConcept(h.site.DataURI, chi.URLParam(r, "id"), chi.URLParam(r, "segment"), chi.URLParam(r, "vnum")), nil
	}))
	router.Get("/standard_name/{concept}", h.redirect("/standard_name/{concept}/"))
	router.Get("/standard_name/{concept}/", h.represent(func(r *http.Request) (models.Resource, error) {
		return models.NewStandardName(h.site.DataURI, chi.URLParam(r, "concept")), nil
	}))

	router.Get("/scheme/", h.represent(func(*http.Request) (models.Resource, error) {
		return models.NewContainer(h.site.SystemURI, models.ListConceptSchemes, models.FilterNone), nil
	}))
	router.Get("/scheme/{id}", h.redirect("/scheme/{id}/current/"))
	router.Get("/scheme/{id}/", h.redirect("/scheme/{id}/current/"))
	router.Get("/scheme/{id}/current/", h.represent(func(r *http.Request) (models.Resource, error) {
		return models.NewScheme(h.site.DataURI, chi.URLParam(r, "id"), models.FilterNone), nil
	}))
	router.Get("/scheme/{id}/current/{filter}", h.redirect("/scheme/{id}/current/{filter}/"))
	router.Get("/scheme/{id}/current/{filter}/", h.represent(h.filteredScheme))

	router.Get("/mapping/{side}/{id}/", h.represent(func(r *http.Request) (models.Resource, error) {
		return models.NewMapping(h.site.DataURI, chi.URLParam(r, "side")+"/"+chi.URLParam(r, "id")), nil
	}))

	router.Get("/.well_known/", h.redirect("/.well_known/void"))
	router.Get("/.well_known/void", h.represent(func(*http.Request) (models.Resource, error) {
		return models.NewWellKnown(h.site.DataURI), nil
	}))

	for _, path := range []string{"/sparql", "/sparql/", "/endpoint"} {
		router.Get(path, h.handleSPARQL)
		router.Post(path, h.handleSPARQL)
	}

	router.Group(func(admins chi.Router) {
		admins.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		admins.Get("/cache-clear", h.handleCacheClear)
		admins.Post("/cache-clear", h.handleCacheClear)
	})

	router.Get("/health", h.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	r.Mount("/", router)
}

// collectionOrConcept resolves the segment after /current/: a filter term
// narrows the collection, anything else names a concept.
func (h *Handler) collectionOrConcept(r *http.Request) (models.Resource, error) {
	id, segment := chi.URLParam(r, "id"), chi.URLParam(r, "segment")
	if f, ok := models.ParseFilter(segment); ok {
		return models.NewCollection(h.site.DataURI, id, f), nil
	}
	return models.NewConcept(h.site.DataURI, id, segment, ""), nil
}

func (h *Handler) filteredScheme(r *http.Request) (models.Resource, error) {
	f, ok := models.ParseFilter(chi.URLParam(r, "filter"))
	if !ok {
		return models.Resource{}, dErrors.New(dErrors.CodeNotFound,
			"scheme listings can only be filtered by accepted, deprecated or all")
	}
	return models.NewScheme(h.site.DataURI, chi.URLParam(r, "id"), f), nil
}

type resolver func(r *http.Request) (models.Resource, error)

func (h *Handler) represent(resolve resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		res, err := resolve(r)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}

		rep, err := h.service.Represent(ctx, service.Request{
			Resource:    res,
			Negotiation: negotiation(r),
			Search:      r.URL.Query().Get("filter"),
		})
		if err != nil {
			if de, ok := dErrors.As(err); ok && !de.Code.Internal() {
				h.logger.InfoContext(ctx, "request refused",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
					"code", string(de.Code),
				)
			}
			httputil.WriteError(w, err)
			return
		}

		writeNegotiationHeaders(w, r.URL.Path, rep)
		httputil.WriteBody(w, http.StatusOK, contentType(rep.MediaType), rep.Body)
	}
}

// negotiation collects the explicit and implicit negotiation inputs. A "+"
// in _mediatype arrives as a space when the client did not escape it.
func negotiation(r *http.Request) conneg.Request {
	q := r.URL.Query()
	return conneg.Request{
		Accept:        r.Header.Get("Accept"),
		AcceptProfile: r.Header.Get("Accept-Profile"),
		Profile:       strings.TrimSpace(q.Get("_profile")),
		MediaType:     strings.ReplaceAll(strings.TrimSpace(q.Get("_mediatype")), " ", "+"),
	}
}

// redirect sends the client to target with its {params} filled from the
// matched route. The query string is kept.
func (h *Handler) redirect(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location := target
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				location = strings.ReplaceAll(location, "{"+key+"}", rctx.URLParams.Values[i])
			}
		}
		if r.URL.RawQuery != "" {
			location += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, location, http.StatusTemporaryRedirect)
	}
}

func (h *Handler) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "all"
	}
	if err := h.service.ClearCache(ctx, name); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"cleared": name})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := map[string]string{"status": "ok"}
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed",
				"request_id", requestcontext.RequestID(ctx),
				"dependency", name,
				"error", err,
			)
			status[name] = "unavailable"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		status[name] = "ok"
	}
	httputil.WriteJSON(w, code, status)
}
