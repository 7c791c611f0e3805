// Package sparql is the read-only client for the vocabulary triplestore. It
// posts queries as application/sparql-query with basic auth and a per-form
// timeout, and turns every failure into an UpstreamQueryError.
package sparql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ksparql "github.com/knakk/sparql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vocprez/internal/platform/metrics"
)

// Form distinguishes the result shape the caller expects.
type Form string

const (
	FormSelect    Form = "select"
	FormConstruct Form = "construct"
	FormDescribe  Form = "describe"
)

const (
	mediaTypeQuery       = "application/sparql-query"
	mediaTypeResultsJSON = "application/sparql-results+json"
	maxErrorBody         = 4 << 10
)

// Term is one bound value of a SELECT row.
type Term struct {
	Type     string
	Value    string
	Lang     string
	DataType string
}

// Binding is one SELECT row keyed by variable name.
type Binding map[string]Term

// Value returns the lexical value bound to name, or "".
func (b Binding) Value(name string) string {
	return b[name].Value
}

// Has reports whether name is bound in the row.
func (b Binding) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Client talks to one SPARQL endpoint.
type Client struct {
	endpoint         string
	username         string
	password         string
	selectTimeout    time.Duration
	constructTimeout time.Duration
	httpClient       *http.Client
	metrics          *metrics.Metrics
	tracer           trace.Tracer
}

type Option func(*Client)

func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

func WithTimeouts(selectTimeout, constructTimeout time.Duration) Option {
	return func(c *Client) {
		if selectTimeout > 0 {
			c.selectTimeout = selectTimeout
		}
		if constructTimeout > 0 {
			c.constructTimeout = constructTimeout
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func New(endpoint string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("sparql endpoint is required")
	}
	c := &Client{
		endpoint:         endpoint,
		selectTimeout:    60 * time.Second,
		constructTimeout: 90 * time.Second,
		httpClient:       &http.Client{},
		tracer:           otel.Tracer("vocprez/sparql"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Select runs a SELECT query and decodes the JSON result bindings.
func (c *Client) Select(ctx context.Context, query string) ([]Binding, error) {
	body, _, err := c.do(ctx, FormSelect, query, mediaTypeResultsJSON)
	if err != nil {
		return nil, err
	}
	res, err := ksparql.ParseJSON(bytes.NewReader(body))
	if err != nil {
		c.metrics.IncrementSPARQLFailure(string(FormSelect), "decode")
		return nil, &UpstreamQueryError{Form: FormSelect, Query: query, Body: truncate(body), Err: fmt.Errorf("decode results: %w", err)}
	}
	rows := make([]Binding, 0, len(res.Results.Bindings))
	for _, raw := range res.Results.Bindings {
		row := make(Binding, len(raw))
		for name, b := range raw {
			row[name] = Term{Type: b.Type, Value: b.Value, Lang: b.Lang, DataType: b.DataType}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Construct runs a CONSTRUCT or DESCRIBE query and returns the graph as
// serialized by the store in mediaType.
func (c *Client) Construct(ctx context.Context, form Form, query, mediaType string) ([]byte, error) {
	if form == FormSelect {
		return nil, fmt.Errorf("construct called with %s form", form)
	}
	body, _, err := c.do(ctx, form, query, mediaType)
	return body, err
}

// Passthrough forwards an arbitrary read query and hands back the store's
// body and content type untouched.
func (c *Client) Passthrough(ctx context.Context, query, accept string) ([]byte, string, error) {
	form := FormSelect
	upper := strings.ToUpper(query)
	if strings.Contains(upper, "CONSTRUCT") {
		form = FormConstruct
	} else if strings.Contains(upper, "DESCRIBE") {
		form = FormDescribe
	}
	if accept == "" {
		accept = mediaTypeResultsJSON
	}
	return c.do(ctx, form, query, accept)
}

func (c *Client) do(ctx context.Context, form Form, query, accept string) ([]byte, string, error) {
	timeout := c.constructTimeout
	if form == FormSelect {
		timeout = c.selectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ctx, span := c.tracer.Start(ctx, "sparql."+string(form), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "sparql"),
		attribute.String("sparql.form", string(form)),
		attribute.String("http.request.header.accept", accept),
	)

	start := time.Now()
	defer c.metrics.ObserveSPARQL(string(form), start)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, "", c.fail(span, form, "transport", &UpstreamQueryError{Form: form, Query: query, Err: err})
	}
	req.Header.Set("Content-Type", mediaTypeQuery)
	req.Header.Set("Accept", accept)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, "", c.fail(span, form, "timeout", &UpstreamQueryError{Form: form, Query: query, Timeout: true, Err: err})
		}
		return nil, "", c.fail(span, form, "transport", &UpstreamQueryError{Form: form, Query: query, Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
		return nil, "", c.fail(span, form, "transport", &UpstreamQueryError{Form: form, Query: query, Timeout: timedOut, Err: err})
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", c.fail(span, form, "status", &UpstreamQueryError{Form: form, Query: query, Status: resp.StatusCode, Body: truncate(body)})
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) fail(span trace.Span, form Form, reason string, err *UpstreamQueryError) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, reason)
	c.metrics.IncrementSPARQLFailure(string(form), reason)
	return err
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}
