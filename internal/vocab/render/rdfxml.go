package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/knakk/rdf"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

var wellKnownPrefixes = map[string]string{
	NSRDF:                                   "rdf",
	NSRDFS:                                  "rdfs",
	NSSKOS:                                  "skos",
	NSDCT:                                   "dcterms",
	NSOWL:                                   "owl",
	NSORG:                                   "org",
	NSXSD:                                   "xsd",
	"http://purl.org/dc/elements/1.1/":      "dc",
	"http://purl.org/pav/":                  "pav",
	"http://rdfs.org/ns/void#":              "void",
	"https://schema.org/":                   "sdo",
	"http://www.w3.org/ns/dcat#":            "dcat",
	"http://www.w3.org/ns/dx/prof/":         "prof",
	"http://www.w3.org/ns/dx/conneg/altr#":  "altr",
	"http://purl.org/linked-data/registry#": "reg",
	"http://www.isotc211.org/schemas/grg/":  "grg",
	"http://www.w3.org/ns/sparql-service-description#": "sd",
}

// writeRDFXML emits a flat RDF/XML document: one rdf:Description per
// subject, in first-seen order.
func writeRDFXML(w io.Writer, triples []rdf.Triple) error {
	ns := newNamespaces()
	type predicateName struct{ space, local string }
	names := make([]predicateName, len(triples))
	for i, t := range triples {
		space, local, ok := splitPredicate(t.Pred.String())
		if !ok {
			return fmt.Errorf("predicate %s cannot be written as an XML element", t.Pred)
		}
		ns.add(space)
		names[i] = predicateName{space, local}
	}

	var order []string
	bySubject := make(map[string][]int)
	for i, t := range triples {
		key := t.Subj.String()
		if _, seen := bySubject[key]; !seen {
			order = append(order, key)
		}
		bySubject[key] = append(bySubject[key], i)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(xmlDeclaration)
	bw.WriteString("<rdf:RDF")
	for _, space := range ns.order {
		fmt.Fprintf(bw, "\n    xmlns:%s=\"%s\"", ns.prefix[space], escapeAttr(space))
	}
	bw.WriteString(">\n")

	for _, key := range order {
		idx := bySubject[key]
		subj := triples[idx[0]].Subj
		if b, ok := subj.(rdf.Blank); ok {
			fmt.Fprintf(bw, "  <rdf:Description rdf:nodeID=\"%s\">\n", escapeAttr(strings.TrimPrefix(b.String(), "_:")))
		} else {
			fmt.Fprintf(bw, "  <rdf:Description rdf:about=\"%s\">\n", escapeAttr(subj.String()))
		}
		for _, i := range idx {
			qname := ns.prefix[names[i].space] + ":" + names[i].local
			writeProperty(bw, qname, triples[i].Obj)
		}
		bw.WriteString("  </rdf:Description>\n")
	}
	bw.WriteString("</rdf:RDF>\n")
	return bw.Flush()
}

func writeProperty(bw *bufio.Writer, qname string, obj rdf.Object) {
	switch o := obj.(type) {
	case rdf.IRI:
		fmt.Fprintf(bw, "    <%s rdf:resource=\"%s\"/>\n", qname, escapeAttr(o.String()))
	case rdf.Blank:
		fmt.Fprintf(bw, "    <%s rdf:nodeID=\"%s\"/>\n", qname, escapeAttr(strings.TrimPrefix(o.String(), "_:")))
	case rdf.Literal:
		fmt.Fprintf(bw, "    <%s", qname)
		if lang := o.Lang(); lang != "" {
			fmt.Fprintf(bw, " xml:lang=\"%s\"", escapeAttr(lang))
		} else if dt := o.DataType.String(); dt != "" && dt != xsdString {
			fmt.Fprintf(bw, " rdf:datatype=\"%s\"", escapeAttr(dt))
		}
		bw.WriteString(">")
		_ = xml.EscapeText(bw, []byte(o.String()))
		fmt.Fprintf(bw, "</%s>\n", qname)
	}
}

type namespaces struct {
	order  []string
	prefix map[string]string
	used   map[string]bool
}

func newNamespaces() *namespaces {
	n := &namespaces{prefix: map[string]string{}, used: map[string]bool{}}
	n.add(NSRDF)
	return n
}

func (n *namespaces) add(space string) {
	if _, ok := n.prefix[space]; ok {
		return
	}
	p, known := wellKnownPrefixes[space]
	if !known || n.used[p] {
		p = fmt.Sprintf("ns%d", len(n.order))
	}
	n.prefix[space] = p
	n.used[p] = true
	n.order = append(n.order, space)
}

// splitPredicate cuts an IRI into namespace and an NCName local part.
func splitPredicate(iri string) (string, string, bool) {
	cut := strings.LastIndexAny(iri, "#/")
	if cut < 0 || cut == len(iri)-1 {
		return "", "", false
	}
	local := iri[cut+1:]
	// Local names may not start with a digit; move leading digits to the
	// namespace side.
	start := 0
	for start < len(local) {
		r, size := utf8.DecodeRuneInString(local[start:])
		if isNameStart(r) {
			break
		}
		start += size
	}
	if start == len(local) {
		return "", "", false
	}
	for _, r := range local[start:] {
		if !isNameChar(r) {
			return "", "", false
		}
	}
	return iri[:cut+1+start], local[start:], true
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r)
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
