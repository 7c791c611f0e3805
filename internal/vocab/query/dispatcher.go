// Package query maps a resolved (resource, profile, purpose) to SPARQL text.
// It never talks to the store; output is a pure function of its input.
package query

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
)

// Purpose says which result shape the caller is after.
type Purpose string

const (
	PurposeListing         Purpose = "listing"
	PurposeDetailSelect    Purpose = "detail-select"
	PurposeDetailConstruct Purpose = "detail-construct"
)

// Form tells the executor which response shape to expect.
type Form string

const (
	FormSelect    Form = "select"
	FormConstruct Form = "construct"
	FormDescribe  Form = "describe"
)

// Query is generated SPARQL plus its form.
type Query struct {
	Form Form
	Text string
}

// Request identifies the query to build. Ontologies is every ontology known
// to the registry; the profile's own list decides which are kept.
type Request struct {
	Resource   models.Resource
	Profile    profiles.Profile
	Purpose    Purpose
	Ontologies []profiles.Ontology
}

// UnsupportedQueryError means no template exists for the combination.
type UnsupportedQueryError struct {
	Kind    models.Kind
	Token   string
	Purpose Purpose
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("no %s query for profile %q on %s resources", e.Purpose, e.Token, e.Kind)
}

// templateData is what every query template may reference.
type templateData struct {
	URI      string
	DataURI  string
	Filter   string
	Prefixes []profiles.Ontology
	Excludes []string
	Restrict bool
}

type entry struct {
	form Form
	// member is the variable the filter clause binds to.
	member string
	tmpl   *template.Template
}

// anyProfile keys the templates used for externally registered profiles.
const anyProfile = "*"

type key struct {
	kind    string
	token   string
	purpose Purpose
}

// Dispatcher holds the parsed template table.
type Dispatcher struct {
	dataURI string
	table   map[key]entry
}

func NewDispatcher(dataURI string) *Dispatcher {
	return &Dispatcher{dataURI: strings.TrimSuffix(dataURI, "/"), table: catalogue}
}

// Build renders the query for req.
func (d *Dispatcher) Build(req Request) (Query, error) {
	e, ok := d.lookup(req)
	if !ok {
		return Query{}, &UnsupportedQueryError{Kind: req.Resource.Kind, Token: req.Profile.Token, Purpose: req.Purpose}
	}

	data := templateData{
		URI:     req.Resource.URI,
		DataURI: d.dataURI,
		Filter:  FilterClause(req.Resource.Filter, e.member),
	}
	primary := profiles.ForKind(req.Resource.Kind).Primary().Token
	data.Restrict = req.Profile.Token != primary
	for _, ont := range profiles.SortOntologies(req.Ontologies) {
		if req.Profile.HasOntology(ont.Prefix) {
			data.Prefixes = append(data.Prefixes, ont)
		} else {
			data.Excludes = append(data.Excludes, ont.URL)
		}
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return Query{}, fmt.Errorf("render %s query: %w", req.Purpose, err)
	}
	return Query{Form: e.form, Text: buf.String()}, nil
}

func (d *Dispatcher) lookup(req Request) (entry, bool) {
	kind := string(req.Resource.Kind)
	if req.Resource.Kind == models.KindContainer {
		kind += ":" + string(req.Resource.List)
	}
	if e, ok := d.table[key{kind, req.Profile.Token, req.Purpose}]; ok {
		return e, true
	}
	if _, base := profiles.ForKind(req.Resource.Kind).Get(req.Profile.Token); base {
		return entry{}, false
	}
	e, ok := d.table[key{kind, anyProfile, req.Purpose}]
	return e, ok
}

// ExistsQuery counts the triples with uri as subject.
func ExistsQuery(uri string) string {
	return fmt.Sprintf("SELECT (COUNT(*) AS ?count) WHERE { <%s> ?p ?o . }", uri)
}

// ListQuery returns the bulk SELECT that fills a cached index.
func ListQuery(name models.ListName) (string, error) {
	switch name {
	case models.ListCollections:
		return collectionsListQuery, nil
	case models.ListConceptSchemes:
		return conceptSchemesListQuery, nil
	}
	return "", fmt.Errorf("unknown list %q", name)
}
