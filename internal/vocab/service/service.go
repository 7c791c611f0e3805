// Package service turns a resource address and negotiation inputs into one
// finished representation. It is the only place errors from the store, the
// registry and negotiation are translated into client-facing codes.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"vocprez/internal/platform/sparql"
	"vocprez/internal/vocab/altprofile"
	"vocprez/internal/vocab/conneg"
	"vocprez/internal/vocab/listcache"
	vmetrics "vocprez/internal/vocab/metrics"
	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
	"vocprez/internal/vocab/query"
	"vocprez/internal/vocab/render"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/requestcontext"
)

// Executor runs queries against the triplestore.
type Executor interface {
	Select(ctx context.Context, query string) ([]sparql.Binding, error)
	Construct(ctx context.Context, form sparql.Form, query, mediaType string) ([]byte, error)
	Passthrough(ctx context.Context, query, accept string) ([]byte, string, error)
}

// ListCache serves the cached collection and scheme indexes.
type ListCache interface {
	Get(ctx context.Context, name models.ListName) ([]listcache.Entry, error)
	FindByURI(ctx context.Context, name models.ListName, uri string) (listcache.Entry, bool, error)
	Invalidate(ctx context.Context, name string) error
}

// AltProfiles supplies externally registered profiles.
type AltProfiles interface {
	ProfilesFor(ctx context.Context, entry listcache.Entry, kind models.Kind) ([]profiles.Profile, altprofile.Snapshot)
	Invalidate()
}

// Request is one resolved request.
type Request struct {
	Resource    models.Resource
	Negotiation conneg.Request
	// Search narrows container listings to entries whose id, label or
	// description contain it.
	Search string
}

// Representation is a finished response body.
type Representation struct {
	MediaType  string
	Body       []byte
	Profile    profiles.Profile
	Alternates profiles.Set
}

// Service renders vocabulary resources.
type Service struct {
	executor   Executor
	lists      ListCache
	alts       AltProfiles
	templates  render.TemplateRenderer
	dispatcher *query.Dispatcher
	site       Site
	logger     *slog.Logger
	metrics    *vmetrics.Metrics
}

// Site holds the URI bases used when rendering.
type Site struct {
	SystemURI string
	DataURI   string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *vmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAltProfiles enables externally registered profiles.
func WithAltProfiles(a AltProfiles) Option {
	return func(s *Service) {
		s.alts = a
	}
}

func New(executor Executor, lists ListCache, templates render.TemplateRenderer, site Site, opts ...Option) (*Service, error) {
	if executor == nil {
		return nil, errors.New("sparql executor is required")
	}
	if lists == nil {
		return nil, errors.New("list cache is required")
	}
	if templates == nil {
		return nil, errors.New("template renderer is required")
	}
	if site.DataURI == "" {
		return nil, errors.New("data URI is required")
	}
	s := &Service{
		executor:   executor,
		lists:      lists,
		templates:  templates,
		dispatcher: query.NewDispatcher(site.DataURI),
		site:       site,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// resolved is everything a kind renderer needs.
type resolved struct {
	req        Request
	res        models.Resource
	set        profiles.Set
	result     conneg.Result
	ontologies []profiles.Ontology
	entry      listcache.Entry
}

// Represent negotiates and renders one resource.
func (s *Service) Represent(ctx context.Context, req Request) (*Representation, error) {
	res := req.Resource
	if err := res.Validate(); err != nil {
		return nil, s.translate(ctx, err)
	}

	rv, err := s.resolve(ctx, req)
	if err != nil {
		s.metrics.IncrementNegotiation(string(res.Kind), "", "rejected")
		return nil, s.translate(ctx, err)
	}
	s.metrics.IncrementNegotiation(string(res.Kind), rv.result.Profile.Token, "ok")

	if needsExistenceCheck(res.Kind) {
		found, err := s.exists(ctx, res.URI)
		if err != nil {
			return nil, s.translate(ctx, err)
		}
		if !found {
			return nil, dErrors.New(dErrors.CodeNotFound, "resource not found: "+res.URI)
		}
	}

	var body []byte
	if rv.result.Profile.Token == profiles.TokenAlt {
		body, err = s.alternates(rv)
	} else {
		body, err = s.renderKind(ctx, rv)
	}
	if err != nil {
		return nil, s.translate(ctx, err)
	}

	s.logger.InfoContext(ctx, "representation rendered",
		"request_id", requestcontext.RequestID(ctx),
		"kind", string(res.Kind),
		"uri", res.URI,
		"profile", rv.result.Profile.Token,
		"media_type", rv.result.MediaType,
	)
	return &Representation{
		MediaType:  rv.result.MediaType,
		Body:       body,
		Profile:    rv.result.Profile,
		Alternates: rv.set,
	}, nil
}

// Profiles returns the profile set a resource offers, alternates included.
func (s *Service) Profiles(ctx context.Context, res models.Resource) (profiles.Set, error) {
	rv, err := s.resolve(ctx, Request{Resource: res})
	if err != nil {
		return profiles.Set{}, s.translate(ctx, err)
	}
	return rv.set, nil
}

func (s *Service) resolve(ctx context.Context, req Request) (resolved, error) {
	res := req.Resource
	rv := resolved{req: req, res: res, set: profiles.ForKind(res.Kind)}

	switch res.Kind {
	case models.KindCollection:
		entry, _, err := s.lists.FindByURI(ctx, models.ListCollections, res.URI)
		if err != nil {
			return rv, err
		}
		rv.entry = entry
		s.withAlternates(ctx, &rv, entry)
	case models.KindConcept:
		entry, _, err := s.lists.FindByURI(ctx, models.ListCollections, res.CollectionURI())
		if err != nil {
			return rv, err
		}
		rv.entry = entry
		s.withAlternates(ctx, &rv, entry)
	case models.KindScheme:
		entry, _, err := s.lists.FindByURI(ctx, models.ListConceptSchemes, res.URI)
		if err != nil {
			return rv, err
		}
		rv.entry = entry
	}

	result, err := conneg.Negotiate(req.Negotiation, rv.set)
	if err != nil {
		return rv, err
	}
	rv.result = result
	return rv, nil
}

func (s *Service) withAlternates(ctx context.Context, rv *resolved, entry listcache.Entry) {
	if s.alts == nil {
		return
	}
	extra, snap := s.alts.ProfilesFor(ctx, entry, rv.res.Kind)
	rv.set = rv.set.With(extra...)
	rv.ontologies = snap.OntologyList()
}

func needsExistenceCheck(kind models.Kind) bool {
	switch kind {
	case models.KindCollection, models.KindConcept, models.KindScheme:
		return true
	}
	return false
}

func (s *Service) exists(ctx context.Context, uri string) (bool, error) {
	rows, err := s.executor.Select(ctx, query.ExistsQuery(uri))
	if err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	n, err := strconv.Atoi(rows[0].Value("count"))
	if err != nil {
		return false, &sparql.UpstreamQueryError{Form: sparql.FormSelect, Err: fmt.Errorf("count is not a number: %w", err)}
	}
	return n > 0, nil
}

func (s *Service) build(rv resolved, purpose query.Purpose) (query.Query, error) {
	return s.dispatcher.Build(query.Request{
		Resource:   rv.res,
		Profile:    rv.result.Profile,
		Purpose:    purpose,
		Ontologies: rv.ontologies,
	})
}

func (s *Service) page(rv resolved, name, title string, view any) ([]byte, error) {
	var buf bytes.Buffer
	err := s.templates.Render(&buf, name, render.Page{
		Title:        title,
		URI:          rv.res.URI,
		ProfileToken: rv.result.Profile.Token,
		View:         view,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
