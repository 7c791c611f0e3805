package render

import "strings"

// DisplayKind selects how the HTML template draws a property's object.
type DisplayKind string

const (
	DisplayVersion  DisplayKind = "version"
	DisplayConcept  DisplayKind = "concept"
	DisplayLabelled DisplayKind = "labelled"
	DisplayURI      DisplayKind = "uri"
	DisplayLiteral  DisplayKind = "literal"
)

var versionPredicates = map[string]bool{
	"http://purl.org/pav/hasCurrentVersion": true,
	"http://purl.org/pav/previousVersion":   true,
	NSDCT + "isVersionOf":                   true,
	"http://purl.org/pav/hasVersion":        true,
}

// DisplayProperty is one predicate/object row of a concept page.
type DisplayProperty struct {
	PredicateURI   string
	PredicateLabel string
	// ShowPredicate is false when the previous row in the same list has
	// the same label.
	ShowPredicate bool
	Kind          DisplayKind
	Value         string
	Label         string
	Notation      string
	// Href is the local link for versions and related concepts.
	Href           string
	CollectionID   string
	CollectionHref string
	ConceptID      string
}

// NewDisplayProperty classifies the object the way the concept page shows
// it: version links, related concepts (which carry a notation), labelled
// IRIs, bare IRIs and literals.
func NewDisplayProperty(predicate, predicateLabel, value, label, notation string) DisplayProperty {
	d := DisplayProperty{
		PredicateURI:   predicate,
		PredicateLabel: predicateLabel,
		ShowPredicate:  true,
		Value:          value,
		Label:          label,
		Notation:       notation,
	}
	_, local, inCollection := strings.Cut(value, "/collection/")
	switch {
	case versionPredicates[predicate] && inCollection:
		d.Kind = DisplayVersion
		d.Href = "/collection/" + local
		segs := strings.Split(strings.TrimSuffix(value, "/"), "/")
		d.Label = segs[len(segs)-1]
	case notation != "" && inCollection:
		d.Kind = DisplayConcept
		colPart, conceptPart, _ := strings.Cut(local, "/current/")
		d.CollectionID = colPart
		d.CollectionHref = "/collection/" + colPart + "/current/"
		d.ConceptID = strings.TrimSuffix(conceptPart, "/")
		d.Href = "/collection/" + local
	case label != "":
		d.Kind = DisplayLabelled
	case strings.HasPrefix(value, "http"):
		d.Kind = DisplayURI
	default:
		d.Kind = DisplayLiteral
	}
	return d
}

// hideRepeatedPredicates blanks adjacent duplicate labels.
func hideRepeatedPredicates(props []DisplayProperty) {
	last := ""
	for i := range props {
		props[i].ShowPredicate = i == 0 || props[i].PredicateLabel != last
		last = props[i].PredicateLabel
	}
}
