// Package altprofile loads externally registered profiles and ontologies and
// turns them into extra profiles for collections and concepts that declare
// conformance to them.
package altprofile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vocprez/internal/vocab/profiles"
	"vocprez/pkg/platform/sentinel"
	pstrings "vocprez/pkg/platform/strings"
)

// Descriptor is one alternate profile as published by the registry.
type Descriptor struct {
	URL            string `json:"url"`
	Token          string `json:"token"`
	Name           string `json:"name"`
	Description    string `json:"vocprezdesc"`
	OntologyPrefix string `json:"ontology_prefix"`
}

// Prefixes splits the comma separated ontology prefixes.
func (d Descriptor) Prefixes() []string {
	return pstrings.SplitList(d.OntologyPrefix, ",")
}

// Fetcher reads the registry. Implementations return an error for any
// failure; the Loader decides what to serve instead.
type Fetcher interface {
	AlternateProfiles(ctx context.Context) (map[string]Descriptor, error)
	Ontologies(ctx context.Context) (map[string]profiles.Ontology, error)
}

// ErrNotConfigured is returned when no registry URL is set.
var ErrNotConfigured = errors.New("profile registry URL is not configured")

// StatusError is a non-2xx registry answer.
type StatusError struct {
	Endpoint string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry %s returned status %d", e.Endpoint, e.Status)
}

// Unwrap reports server-side failures as sentinel.ErrUnavailable.
func (e *StatusError) Unwrap() error {
	if e.Status >= http.StatusInternalServerError {
		return sentinel.ErrUnavailable
	}
	return nil
}

const (
	endpointAltProf  = "altprof"
	endpointOntology = "ontology"
)

// HTTPRegistry talks to the JSON registry at base.
type HTTPRegistry struct {
	base   string
	client *http.Client
	tracer trace.Tracer
}

func NewHTTPRegistry(base string, client *http.Client) *HTTPRegistry {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPRegistry{
		base:   strings.TrimSuffix(base, "/"),
		client: client,
		tracer: otel.Tracer("vocprez/altprofile"),
	}
}

type altProfItems struct {
	Items []Descriptor `json:"items"`
}

type ontologyItems struct {
	Items []profiles.Ontology `json:"items"`
}

func (r *HTTPRegistry) AlternateProfiles(ctx context.Context) (map[string]Descriptor, error) {
	var body altProfItems
	if err := r.get(ctx, endpointAltProf, &body); err != nil {
		return nil, err
	}
	out := make(map[string]Descriptor, len(body.Items))
	for _, d := range body.Items {
		if d.URL == "" || d.Token == "" {
			continue
		}
		out[d.URL] = d
	}
	return out, nil
}

func (r *HTTPRegistry) Ontologies(ctx context.Context) (map[string]profiles.Ontology, error) {
	var body ontologyItems
	if err := r.get(ctx, endpointOntology, &body); err != nil {
		return nil, err
	}
	out := make(map[string]profiles.Ontology, len(body.Items))
	for _, o := range body.Items {
		if o.Prefix == "" {
			continue
		}
		out[o.Prefix] = o
	}
	return out, nil
}

func (r *HTTPRegistry) get(ctx context.Context, endpoint string, into any) (err error) {
	if r.base == "" {
		return ErrNotConfigured
	}
	ctx, span := r.tracer.Start(ctx, "registry."+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "registry request failed")
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+"/"+endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("registry %s: %w: %w", endpoint, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Endpoint: endpoint, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode registry %s: %w", endpoint, err)
	}
	return nil
}
