package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"vocprez/internal/vocab/handler/mocks"
	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
	"vocprez/internal/vocab/service"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/testutil"
)

var site = service.Site{SystemURI: "http://localhost:8080", DataURI: "http://vocab.nerc.ac.uk"}

// =============================================================================
// Handler Suite
// =============================================================================
// Justification: the handler owns path-to-resource mapping, negotiation
// inputs and response headers; the service is mocked so each route can be
// checked for the exact resource address it produces.

type HandlerSuite struct {
	suite.Suite
	svc    *mocks.MockService
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.svc = mocks.NewMockService(ctrl)
	h, err := New(s.svc, site, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithAdminToken("secret"),
	)
	s.Require().NoError(err)
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	req := testutil.NewRequest(s.T(), method, target)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return testutil.DoRequest(s.router, req)
}

// expectResource answers one Represent call with an NVS HTML page and
// records the request it was given.
func (s *HandlerSuite) expectResource(want models.Resource) *service.Request {
	var got service.Request
	s.svc.EXPECT().Represent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req service.Request) (*service.Representation, error) {
			got = req
			return &service.Representation{
				MediaType:  profiles.MediaHTML,
				Body:       []byte("<html></html>"),
				Profile:    profiles.NVS,
				Alternates: profiles.ForKind(want.Kind),
			}, nil
		})
	return &got
}

// =============================================================================
// Routing
// =============================================================================

func (s *HandlerSuite) TestRoutesMapToResources() {
	tests := []struct {
		path string
		want models.Resource
	}{
		{"/", models.NewDataset(site.SystemURI)},
		{"/collection/", models.NewContainer(site.SystemURI, models.ListCollections, models.FilterNone)},
		{"/collection/P01/current/", models.NewCollection(site.DataURI, "P01", models.FilterNone)},
		{"/collection/P01/current/accepted/", models.NewCollection(site.DataURI, "P01", models.FilterAccepted)},
		{"/collection/P01/current/SAGEMSFM/", models.NewConcept(site.DataURI, "P01", "SAGEMSFM", "")},
		{"/collection/P01/current/SAGEMSFM/2/", models.NewConcept(site.DataURI, "P01", "SAGEMSFM", "2")},
		{"/standard_name/sea_water_temperature/", models.NewStandardName(site.DataURI, "sea_water_temperature")},
		{"/scheme/", models.NewContainer(site.SystemURI, models.ListConceptSchemes, models.FilterNone)},
		{"/scheme/ICES/current/", models.NewScheme(site.DataURI, "ICES", models.FilterNone)},
		{"/scheme/ICES/current/deprecated/", models.NewScheme(site.DataURI, "ICES", models.FilterDeprecated)},
		{"/mapping/I/1234/", models.NewMapping(site.DataURI, "I/1234")},
		{"/.well_known/void", models.NewWellKnown(site.DataURI)},
	}
	for _, tt := range tests {
		s.Run(tt.path, func() {
			got := s.expectResource(tt.want)
			rr := s.do(http.MethodGet, tt.path, nil)
			s.Equal(http.StatusOK, rr.Code)
			s.Equal(tt.want, got.Resource)
		})
	}
}

func (s *HandlerSuite) TestRedirects() {
	tests := map[string]string{
		"/collection/P01":                       "/collection/P01/current/",
		"/collection/P01/":                      "/collection/P01/current/",
		"/collection/P01/current/SAGEMSFM":      "/collection/P01/current/SAGEMSFM/",
		"/scheme/ICES":                          "/scheme/ICES/current/",
		"/.well_known/":                         "/.well_known/void",
		"/standard_name/sea_water_temperature":  "/standard_name/sea_water_temperature/",
		"/collection/P01/?_profile=skos":        "/collection/P01/current/?_profile=skos",
		"/scheme/ICES/current/accepted?x=1&y=2": "/scheme/ICES/current/accepted/?x=1&y=2",
	}
	for from, to := range tests {
		s.Run(from, func() {
			rr := s.do(http.MethodGet, from, nil)
			s.Equal(http.StatusTemporaryRedirect, rr.Code)
			s.Equal(to, rr.Header().Get("Location"))
		})
	}
}

func (s *HandlerSuite) TestUnknownSchemeFilterIsNotFound() {
	rr := s.do(http.MethodGet, "/scheme/ICES/current/bogus/", nil)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *HandlerSuite) TestUnknownPathIsNotFound() {
	rr := s.do(http.MethodGet, "/nowhere", nil)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
}

func (s *HandlerSuite) TestHeadServesHeadersOnly() {
	s.expectResource(models.NewDataset(site.SystemURI))
	rr := s.do(http.MethodHead, "/", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("text/html; charset=utf-8", rr.Header().Get("Content-Type"))
}

// =============================================================================
// Negotiation inputs and headers
// =============================================================================

func (s *HandlerSuite) TestNegotiationInputsReachService() {
	got := s.expectResource(models.NewCollection(site.DataURI, "P01", models.FilterNone))
	header := http.Header{}
	header.Set("Accept", "text/turtle")
	header.Set("Accept-Profile", "<https://w3id.org/profile/vocpub>")

	// An unescaped "+" is decoded as a space.
	rr := s.do(http.MethodGet, "/collection/P01/current/?_profile=skos&_mediatype=application/rdf+xml", header)
	s.Require().Equal(http.StatusOK, rr.Code)

	s.Equal("text/turtle", got.Negotiation.Accept)
	s.Equal("<https://w3id.org/profile/vocpub>", got.Negotiation.AcceptProfile)
	s.Equal("skos", got.Negotiation.Profile)
	s.Equal("application/rdf+xml", got.Negotiation.MediaType)
}

func (s *HandlerSuite) TestContainerSearchParameter() {
	got := s.expectResource(models.NewContainer(site.SystemURI, models.ListCollections, models.FilterNone))
	rr := s.do(http.MethodGet, "/collection/?filter=Argo", nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	s.Equal("Argo", got.Search)
}

func (s *HandlerSuite) TestResponseHeaders() {
	s.expectResource(models.NewCollection(site.DataURI, "P01", models.FilterNone))
	rr := s.do(http.MethodGet, "/collection/P01/current/", nil)

	s.Equal("<https://w3id.org/profile/nvs>", rr.Header().Get("Content-Profile"))
	s.Equal([]string{"Accept", "Accept-Profile"}, rr.Header().Values("Vary"))
	link := rr.Header().Get("Link")
	s.True(strings.HasPrefix(link, `<https://w3id.org/profile/nvs>; rel="profile"`))
	s.Contains(link, `</collection/P01/current/?_mediatype=text%2Fturtle&_profile=skos>; rel="alternate"`)
	s.Contains(link, `_profile=dd`)
	s.NotContains(link, `_profile=nvs`)
	s.NotEmpty(rr.Header().Get("X-Request-ID"))
}

func (s *HandlerSuite) TestServiceErrorsUseEnvelope() {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown profile", dErrors.New(dErrors.CodeProfileNotFound, `profile "bogus" is not available`), http.StatusNotFound, "profile_not_found"},
		{"not acceptable", dErrors.New(dErrors.CodeNotAcceptable, "no profile serves application/pdf"), http.StatusBadRequest, "not_acceptable"},
		{"malformed mapping", dErrors.New(dErrors.CodeBadRequest, `must contain either "I" or "E"`), http.StatusBadRequest, "bad_request"},
		{"upstream", dErrors.New(dErrors.CodeUpstream, "the vocabulary store could not answer the request"), http.StatusBadGateway, "upstream_error"},
		{"uncoded", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.svc.EXPECT().Represent(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			rr := s.do(http.MethodGet, "/mapping/X/1/", nil)
			testutil.AssertStatusAndError(s.T(), rr, tt.status, tt.code)
		})
	}
}

// =============================================================================
// SPARQL endpoint
// =============================================================================

func (s *HandlerSuite) TestSPARQLQueryViaGet() {
	q := "SELECT * WHERE { ?s ?p ?o } LIMIT 1"
	s.svc.EXPECT().SPARQL(gomock.Any(), q, "application/sparql-results+json").
		Return([]byte(`{"head":{}}`), "application/sparql-results+json", nil)

	header := http.Header{}
	header.Set("Accept", "application/sparql-results+json")
	rr := s.do(http.MethodGet, "/sparql?query="+url.QueryEscape(q), header)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("application/sparql-results+json", rr.Header().Get("Content-Type"))
	s.JSONEq(`{"head":{}}`, rr.Body.String())
}

func (s *HandlerSuite) TestSPARQLAliases() {
	q := "SELECT * WHERE { ?s ?p ?o } LIMIT 1"
	for _, path := range []string{"/sparql/", "/endpoint"} {
		s.Run("GET "+path, func() {
			s.svc.EXPECT().SPARQL(gomock.Any(), q, gomock.Any()).Return([]byte(`{"head":{}}`), "application/sparql-results+json", nil)
			rr := s.do(http.MethodGet, path+"?query="+url.QueryEscape(q), nil)
			s.Equal(http.StatusOK, rr.Code)
		})
		s.Run("POST "+path, func() {
			s.svc.EXPECT().SPARQL(gomock.Any(), q, gomock.Any()).Return([]byte(`{"head":{}}`), "application/sparql-results+json", nil)
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(q))
			req.Header.Set("Content-Type", "application/sparql-query")
			rr := testutil.DoRequest(s.router, req)
			s.Equal(http.StatusOK, rr.Code)
		})
	}
}

func (s *HandlerSuite) TestSPARQLQueryViaPost() {
	q := "ASK { ?s ?p ?o }"

	s.Run("direct body", func() {
		s.svc.EXPECT().SPARQL(gomock.Any(), q, gomock.Any()).Return([]byte("true"), "text/plain", nil)
		req := httptest.NewRequest(http.MethodPost, "/sparql", strings.NewReader(q))
		req.Header.Set("Content-Type", "application/sparql-query")
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("url-encoded form", func() {
		s.svc.EXPECT().SPARQL(gomock.Any(), q, gomock.Any()).Return([]byte("true"), "text/plain", nil)
		req := httptest.NewRequest(http.MethodPost, "/sparql", strings.NewReader(url.Values{"query": {q}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := testutil.DoRequest(s.router, req)
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("other body", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/sparql", map[string]string{"query": q})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestSPARQLUpdateForbidden() {
	s.svc.EXPECT().SPARQL(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", dErrors.New(dErrors.CodeForbidden, "only read queries are accepted"))
	rr := s.do(http.MethodGet, "/sparql?query="+url.QueryEscape("DROP ALL"), nil)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
}

func (s *HandlerSuite) TestSPARQLLanding() {
	s.Run("browser gets the query page", func() {
		s.svc.EXPECT().SPARQLPage().Return([]byte("<form/>"), nil)
		header := http.Header{}
		header.Set("Accept", "text/html,application/xhtml+xml")
		rr := s.do(http.MethodGet, "/sparql", header)
		s.Equal(http.StatusOK, rr.Code)
		s.Equal("<form/>", rr.Body.String())
	})

	s.Run("RDF client gets the service description", func() {
		s.svc.EXPECT().SPARQLDescription(profiles.MediaTurtle).Return([]byte("@prefix sd: <x> ."), nil)
		header := http.Header{}
		header.Set("Accept", "text/turtle")
		rr := s.do(http.MethodGet, "/sparql", header)
		s.Equal(http.StatusOK, rr.Code)
		s.Equal("text/turtle; charset=utf-8", rr.Header().Get("Content-Type"))
	})
}

// =============================================================================
// Administration and health
// =============================================================================

func (s *HandlerSuite) TestCacheClear() {
	s.Run("requires the admin token", func() {
		rr := s.do(http.MethodGet, "/cache-clear", nil)
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("clears everything by default", func() {
		s.svc.EXPECT().ClearCache(gomock.Any(), "all").Return(nil)
		header := http.Header{}
		header.Set("X-Admin-Token", "secret")
		rr := s.do(http.MethodGet, "/cache-clear", header)
		s.Equal(http.StatusOK, rr.Code)
		testutil.AssertJSONContains(s.T(), rr, "cleared", "all")
	})

	s.Run("clears one list", func() {
		s.svc.EXPECT().ClearCache(gomock.Any(), "collections").Return(nil)
		header := http.Header{}
		header.Set("X-Admin-Token", "secret")
		rr := s.do(http.MethodPost, "/cache-clear?name=collections", header)
		s.Equal(http.StatusOK, rr.Code)
	})
}

func (s *HandlerSuite) TestMetricsExposed() {
	rr := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rr.Code)
}

// =============================================================================
// Standalone tests
// =============================================================================

func TestHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	h, err := New(svc, site, logger,
		WithHealthCheck("redis", func(context.Context) error { return errors.New("connection refused") }),
		WithHealthCheck("store", func(context.Context) error { return nil }),
	)
	require.NoError(t, err)
	r := chi.NewRouter()
	h.Register(r)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/health"))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](t, rr)
	assert.Equal(t, "degraded", (*body)["status"])
	assert.Equal(t, "unavailable", (*body)["redis"])
	assert.Equal(t, "ok", (*body)["store"])
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(nil, site, nil)
	assert.ErrorContains(t, err, "service is required")

	ctrl := gomock.NewController(t)
	_, err = New(mocks.NewMockService(ctrl), service.Site{}, nil)
	assert.ErrorContains(t, err, "URIs are required")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", contentType(profiles.MediaHTML))
	assert.Equal(t, "application/ld+json", contentType(profiles.MediaJSONLD))
}
