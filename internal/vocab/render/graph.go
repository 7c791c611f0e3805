package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/deiu/rdf2go"
	"github.com/knakk/rdf"

	"vocprez/internal/vocab/profiles"
)

// Well-known IRIs used while building and repairing graphs.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSSKOS = "http://www.w3.org/2004/02/skos/core#"
	NSDCT  = "http://purl.org/dc/terms/"
	NSOWL  = "http://www.w3.org/2002/07/owl#"
	NSORG  = "http://www.w3.org/ns/org#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"

	orgOrganization = NSORG + "Organization"
	xsdString       = NSXSD + "string"
)

// Graph is an ordered list of triples. Order is kept so serializations of
// the same input are byte-identical.
type Graph struct {
	triples []rdf.Triple
}

func NewGraph() *Graph {
	return &Graph{}
}

// Decode parses an N-Triples or Turtle body as returned by the store.
func Decode(body []byte, mediaType string) (*Graph, error) {
	format := rdf.Turtle
	if mediaType == profiles.MediaNTriples {
		format = rdf.NTriples
	}
	triples, err := rdf.NewTripleDecoder(bytes.NewReader(body), format).DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("decode %s graph: %w", mediaType, err)
	}
	return &Graph{triples: triples}, nil
}

func (g *Graph) Len() int { return len(g.triples) }

func (g *Graph) Triples() []rdf.Triple { return g.triples }

// Add appends a triple.
func (g *Graph) Add(s rdf.Subject, p rdf.Predicate, o rdf.Object) {
	g.triples = append(g.triples, rdf.Triple{Subj: s, Pred: p, Obj: o})
}

// AddIRIs is a convenience for building graphs from strings.
func (g *Graph) AddIRIs(s, p, o string) error {
	subj, err := rdf.NewIRI(s)
	if err != nil {
		return err
	}
	pred, err := rdf.NewIRI(p)
	if err != nil {
		return err
	}
	obj, err := rdf.NewIRI(o)
	if err != nil {
		return err
	}
	g.Add(subj, pred, obj)
	return nil
}

// AddLiteral adds a plain, language-tagged literal when lang is set.
func (g *Graph) AddLiteral(s, p, value, lang string) error {
	subj, err := rdf.NewIRI(s)
	if err != nil {
		return err
	}
	pred, err := rdf.NewIRI(p)
	if err != nil {
		return err
	}
	var lit rdf.Literal
	if lang != "" {
		lit, err = rdf.NewLangLiteral(value, lang)
	} else {
		lit, err = rdf.NewLiteral(value)
	}
	if err != nil {
		return err
	}
	g.Add(subj, pred, lit)
	return nil
}

// Objects returns every object of (subject, predicate), in graph order.
func (g *Graph) Objects(subject, predicate string) []rdf.Object {
	var out []rdf.Object
	for _, t := range g.triples {
		if t.Subj.String() == subject && t.Pred.String() == predicate {
			out = append(out, t.Obj)
		}
	}
	return out
}

// Value returns the first object of (subject, predicate) as a string.
func (g *Graph) Value(subject, predicate string) (string, bool) {
	objs := g.Objects(subject, predicate)
	if len(objs) == 0 {
		return "", false
	}
	return objs[0].String(), true
}

// RepairOrganization rewrites the truncated predicate org: to
// org:Organization. It returns how many triples changed.
func (g *Graph) RepairOrganization() int {
	fixed, err := rdf.NewIRI(orgOrganization)
	if err != nil {
		return 0
	}
	n := 0
	for i, t := range g.triples {
		if t.Pred.String() == NSORG {
			g.triples[i].Pred = fixed
			n++
		}
	}
	return n
}

// IsolateProfile drops triples whose predicate lies in one of the excluded
// ontology namespaces.
func (g *Graph) IsolateProfile(excluded []string) int {
	if len(excluded) == 0 {
		return 0
	}
	kept := g.triples[:0]
	dropped := 0
	for _, t := range g.triples {
		if hasAnyPrefix(t.Pred.String(), excluded) {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	g.triples = kept
	return dropped
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Serialize writes the graph in mediaType.
func (g *Graph) Serialize(w io.Writer, mediaType string) error {
	switch mediaType {
	case profiles.MediaNTriples:
		enc := rdf.NewTripleEncoder(w, rdf.NTriples)
		if err := enc.EncodeAll(g.triples); err != nil {
			return fmt.Errorf("encode n-triples: %w", err)
		}
		return enc.Close()
	case profiles.MediaRDFXML:
		return writeRDFXML(w, g.triples)
	case profiles.MediaTurtle, profiles.MediaN3, profiles.MediaJSONLD:
		// Turtle is valid N3, so both go through the turtle serializer.
		return g.toRDF2Go().Serialize(w, mediaType)
	}
	return fmt.Errorf("no serializer for %q", mediaType)
}

// Bytes is Serialize into a buffer.
func (g *Graph) Bytes(mediaType string) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Serialize(&buf, mediaType); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Graph) toRDF2Go() *rdf2go.Graph {
	out := rdf2go.NewGraph("")
	for _, t := range g.triples {
		out.Add(rdf2go.NewTriple(convertTerm(t.Subj), convertTerm(t.Pred), convertTerm(t.Obj)))
	}
	return out
}

func convertTerm(t rdf.Term) rdf2go.Term {
	switch v := t.(type) {
	case rdf.IRI:
		return rdf2go.NewResource(v.String())
	case rdf.Blank:
		return rdf2go.NewBlankNode(strings.TrimPrefix(v.String(), "_:"))
	case rdf.Literal:
		if lang := v.Lang(); lang != "" {
			return rdf2go.NewLiteralWithLanguage(v.String(), lang)
		}
		if dt := v.DataType.String(); dt != "" && dt != xsdString {
			return rdf2go.NewLiteralWithDatatype(v.String(), rdf2go.NewResource(dt))
		}
		return rdf2go.NewLiteral(v.String())
	}
	return rdf2go.NewLiteral(t.String())
}

// EnsureXMLDeclaration prefixes an RDF/XML body with an XML declaration
// unless it already has one.
func EnsureXMLDeclaration(body []byte) []byte {
	if bytes.HasPrefix(bytes.TrimLeft(body, " \t\r\n\ufeff"), []byte("<?xml")) {
		return body
	}
	out := make([]byte, 0, len(xmlDeclaration)+len(body))
	out = append(out, xmlDeclaration...)
	return append(out, body...)
}
