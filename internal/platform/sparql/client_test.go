package sparql

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const selectResult = `{
  "head": {"vars": ["uri", "prefLabel", "deprecated"]},
  "results": {"bindings": [
    {"uri": {"type": "uri", "value": "http://vocab.nerc.ac.uk/collection/P01/current/"},
     "prefLabel": {"type": "literal", "value": "BODC parameter usage vocabulary", "xml:lang": "en"},
     "deprecated": {"type": "literal", "datatype": "http://www.w3.org/2001/XMLSchema#boolean", "value": "false"}}
  ]}
}`

// =============================================================================
// SPARQL Client Test Suite
// =============================================================================
// Justification: the client is the only component that talks to the store, so
// the request shape (method, content type, auth) and the error translation are
// verified against a fake endpoint here rather than in every caller.

type ClientSuite struct {
	suite.Suite
	lastRequest *http.Request
	lastBody    string
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) endpoint(status int, contentType, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		s.lastRequest = r
		s.lastBody = string(raw)
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	s.T().Cleanup(srv.Close)
	return srv
}

func (s *ClientSuite) TestSelectDecodesBindings() {
	srv := s.endpoint(http.StatusOK, mediaTypeResultsJSON, selectResult)
	c, err := New(srv.URL, WithBasicAuth("reader", "pw"))
	s.Require().NoError(err)

	rows, err := c.Select(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)

	s.Equal("http://vocab.nerc.ac.uk/collection/P01/current/", rows[0].Value("uri"))
	s.Equal("en", rows[0]["prefLabel"].Lang)
	s.Equal("false", rows[0].Value("deprecated"))
	s.False(rows[0].Has("missing"))

	s.Equal(http.MethodPost, s.lastRequest.Method)
	s.Equal(mediaTypeQuery, s.lastRequest.Header.Get("Content-Type"))
	s.Equal(mediaTypeResultsJSON, s.lastRequest.Header.Get("Accept"))
	user, pass, ok := s.lastRequest.BasicAuth()
	s.True(ok)
	s.Equal("reader", user)
	s.Equal("pw", pass)
	s.Equal("SELECT * WHERE { ?s ?p ?o }", s.lastBody)
}

func (s *ClientSuite) TestConstructReturnsBodyVerbatim() {
	graph := "<http://a> <http://b> <http://c> .\n"
	srv := s.endpoint(http.StatusOK, "application/n-triples", graph)
	c, err := New(srv.URL)
	s.Require().NoError(err)

	body, err := c.Construct(context.Background(), FormConstruct, "CONSTRUCT { ?s ?p ?o } WHERE { ?s ?p ?o }", "application/n-triples")
	s.Require().NoError(err)
	s.Equal(graph, string(body))
	s.Equal("application/n-triples", s.lastRequest.Header.Get("Accept"))
	_, _, ok := s.lastRequest.BasicAuth()
	s.False(ok, "no credentials configured")
}

func (s *ClientSuite) TestNon2xxBecomesUpstreamQueryError() {
	srv := s.endpoint(http.StatusInternalServerError, "text/plain", "parse error at line 3")
	c, err := New(srv.URL)
	s.Require().NoError(err)

	_, err = c.Select(context.Background(), "SELECT broken")
	s.Require().Error(err)

	var upstream *UpstreamQueryError
	s.Require().True(errors.As(err, &upstream))
	s.Equal(http.StatusInternalServerError, upstream.Status)
	s.Equal("parse error at line 3", upstream.Body)
	s.Equal("SELECT broken", upstream.Query)
	s.NotContains(upstream.Error(), "SELECT broken", "query text stays out of the message")
}

func (s *ClientSuite) TestMalformedJSONBecomesUpstreamQueryError() {
	srv := s.endpoint(http.StatusOK, mediaTypeResultsJSON, "{not json")
	c, err := New(srv.URL)
	s.Require().NoError(err)

	_, err = c.Select(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	s.True(IsUpstreamQueryError(err))
}

func (s *ClientSuite) TestPassthroughKeepsContentType() {
	srv := s.endpoint(http.StatusOK, "text/turtle", "<a> <b> <c> .")
	c, err := New(srv.URL)
	s.Require().NoError(err)

	body, ct, err := c.Passthrough(context.Background(), "DESCRIBE <http://a>", "text/turtle")
	s.Require().NoError(err)
	s.Equal("text/turtle", ct)
	s.Equal("<a> <b> <c> .", string(body))
}

func TestSelectTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := New(srv.URL, WithTimeouts(50*time.Millisecond, time.Second))
	require.NoError(t, err)

	_, err = c.Select(context.Background(), "SELECT * WHERE { ?s ?p ?o }")
	var upstream *UpstreamQueryError
	require.True(t, errors.As(err, &upstream))
	assert.True(t, upstream.Timeout)
	assert.Contains(t, upstream.Error(), "timed out")
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New("  ")
	assert.Error(t, err)
}
