package models

import (
	"fmt"
	"strings"
)

// Kind is the class of an addressable resource.
type Kind string

const (
	KindContainer  Kind = "container"
	KindCollection Kind = "collection"
	KindConcept    Kind = "concept"
	KindScheme     Kind = "scheme"
	KindMapping    Kind = "mapping"
	KindDataset    Kind = "dataset"
	KindWellKnown  Kind = "wellknown"
)

// Filter narrows a container-like resource to accepted or deprecated members.
// FilterNone and FilterAll both mean "no filtering".
type Filter string

const (
	FilterNone       Filter = ""
	FilterAccepted   Filter = "accepted"
	FilterDeprecated Filter = "deprecated"
	FilterAll        Filter = "all"
)

// ParseFilter recognises a path segment as a filter term.
func ParseFilter(segment string) (Filter, bool) {
	switch Filter(segment) {
	case FilterAccepted, FilterDeprecated, FilterAll:
		return Filter(segment), true
	}
	return FilterNone, false
}

// ListName names one of the cached container indexes.
type ListName string

const (
	ListCollections    ListName = "collections"
	ListConceptSchemes ListName = "conceptschemes"
)

// Lists is every cached index, in warm-up order.
var Lists = []ListName{ListCollections, ListConceptSchemes}

// ParseListName accepts the exact slot names used by the cache.
func ParseListName(s string) (ListName, bool) {
	for _, l := range Lists {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// standardNameCollection is the collection every standard name belongs to.
const standardNameCollection = "P07"

// Resource is the immutable address of one request's subject.
type Resource struct {
	URI    string
	Kind   Kind
	Filter Filter
	// ID is the short identifier taken from the path (collection, scheme or
	// concept id); empty for containers, the dataset and the well-known
	// description.
	ID string
	// List is set on containers only.
	List ListName
	// Label and Comment describe static resources (containers, dataset).
	Label   string
	Comment string
}

// Filterable reports whether the filter term means anything for the kind.
func (r Resource) Filterable() bool {
	switch r.Kind {
	case KindContainer, KindCollection, KindScheme:
		return true
	}
	return false
}

// CollectionURI returns the URI of the collection a concept belongs to.
// Standard names live under their own path but belong to P07.
func (r Resource) CollectionURI() string {
	if r.Kind != KindConcept {
		return ""
	}
	if base, _, ok := strings.Cut(r.URI, "/standard_name/"); ok {
		return base + "/collection/" + standardNameCollection + "/current/"
	}
	if base, _, ok := strings.Cut(r.URI, "/current/"); ok {
		return base + "/current/"
	}
	return ""
}

// IsStandardName reports whether the concept is addressed by standard name.
func (r Resource) IsStandardName() bool {
	return r.Kind == KindConcept && strings.Contains(r.URI, "/standard_name/")
}

// SystemPath strips base from the URI, leaving the local path.
func (r Resource) SystemPath(base string) string {
	return strings.TrimPrefix(r.URI, strings.TrimSuffix(base, "/"))
}

// Validate rejects addresses that cannot be turned into a safe query.
func (r Resource) Validate() error {
	if r.URI == "" {
		return &MalformedAddressError{Message: "resource address is empty"}
	}
	if strings.ContainsAny(r.URI, "<>\"{}|\\^` \t\n\r") {
		return &MalformedAddressError{URI: r.URI, Message: "resource address contains characters not allowed in an IRI"}
	}
	if r.Kind == KindMapping && !strings.Contains(r.URI, "/I/") && !strings.Contains(r.URI, "/E/") {
		return &MalformedAddressError{URI: r.URI, Message: `All requests for Mappings must contain either "I" or "E" in the URI`}
	}
	return nil
}

// MalformedAddressError reports a resource address the server refuses to
// query, with a message that tells the caller how to fix it.
type MalformedAddressError struct {
	URI     string
	Message string
}

func (e *MalformedAddressError) Error() string {
	if e.URI == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.URI)
}
