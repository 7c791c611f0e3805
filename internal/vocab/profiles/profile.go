// Package profiles holds the named views a resource can be rendered in and
// the fixed per-kind tables of base profiles.
package profiles

import (
	"slices"
	"sort"
	"strings"
)

// Media types served by the vocabulary endpoints.
const (
	MediaHTML     = "text/html"
	MediaJSON     = "application/json"
	MediaTurtle   = "text/turtle"
	MediaRDFXML   = "application/rdf+xml"
	MediaJSONLD   = "application/ld+json"
	MediaN3       = "text/n3"
	MediaNTriples = "application/n-triples"
)

// RDFMediaTypes lists the RDF serializations in preference order.
var RDFMediaTypes = []string{MediaTurtle, MediaRDFXML, MediaJSONLD, MediaN3, MediaNTriples}

// IsRDF reports whether mediaType is one of the RDF serializations.
func IsRDF(mediaType string) bool {
	return slices.Contains(RDFMediaTypes, mediaType)
}

// Ontology is a namespace registered with the profile registry.
type Ontology struct {
	Prefix string `json:"prefix"`
	URL    string `json:"url"`
}

// SortOntologies orders ontologies by prefix so generated text is stable.
func SortOntologies(onts []Ontology) []Ontology {
	out := slices.Clone(onts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Profile is one view of a resource. Values are immutable once built by New.
type Profile struct {
	Token            string
	URI              string
	Label            string
	Comment          string
	MediaTypes       []string
	DefaultMediaType string
	Languages        []string
	DefaultLanguage  string
	Ontologies       []Ontology
}

// New builds a profile, adding the default media type to the list when the
// caller left it out so the two can never disagree.
func New(token, uri, label, comment string, mediaTypes []string, defaultMediaType string, ontologies ...Ontology) Profile {
	mts := slices.Clone(mediaTypes)
	if defaultMediaType == "" && len(mts) > 0 {
		defaultMediaType = mts[0]
	}
	if !slices.Contains(mts, defaultMediaType) {
		mts = append([]string{defaultMediaType}, mts...)
	}
	return Profile{
		Token:            token,
		URI:              uri,
		Label:            label,
		Comment:          comment,
		MediaTypes:       mts,
		DefaultMediaType: defaultMediaType,
		Languages:        []string{"en"},
		DefaultLanguage:  "en",
		Ontologies:       SortOntologies(ontologies),
	}
}

// Supports reports whether the profile can be served as mediaType.
func (p Profile) Supports(mediaType string) bool {
	return slices.Contains(p.MediaTypes, mediaType)
}

// MatchRange returns the first supported media type within a "type/*" range.
func (p Profile) MatchRange(typ string) (string, bool) {
	prefix := strings.TrimSuffix(typ, "*")
	for _, mt := range p.MediaTypes {
		if strings.HasPrefix(mt, prefix) {
			return mt, true
		}
	}
	return "", false
}

// HasOntology reports whether the profile declares the prefix.
func (p Profile) HasOntology(prefix string) bool {
	for _, o := range p.Ontologies {
		if o.Prefix == prefix {
			return true
		}
	}
	return false
}
