package render

import (
	"sort"
	"strings"

	"vocprez/internal/platform/sparql"
)

type propGroup string

const (
	groupAgent      propGroup = "agent"
	groupAnnotation propGroup = "annotation"
	groupRelated    propGroup = "related"
	groupProvenance propGroup = "provenance"
	groupIgnore     propGroup = "ignore"
)

type knownProp struct {
	label string
	group propGroup
}

const (
	nsPAV    = "http://purl.org/pav/"
	nsStatus = "http://www.opengis.net/def/metamodel/ogc-na/"
)

var conceptProps = map[string]knownProp{
	NSDCT + "contributor":                        {"Contributor", groupAgent},
	NSDCT + "creator":                            {"Creator", groupAgent},
	NSDCT + "publisher":                          {"Publisher", groupAgent},
	NSSKOS + "notation":                          {"Identifier", groupAnnotation},
	nsStatus + "status":                          {"Status", groupAnnotation},
	NSSKOS + "altLabel":                          {"Alternative Label", groupAnnotation},
	NSSKOS + "note":                              {"Note", groupAnnotation},
	NSSKOS + "scopeNote":                         {"Scope Note", groupAnnotation},
	NSSKOS + "historyNote":                       {"History Note", groupAnnotation},
	NSOWL + "sameAs":                             {"Same As", groupRelated},
	NSSKOS + "broader":                           {"Broader", groupRelated},
	NSSKOS + "related":                           {"Related", groupRelated},
	NSSKOS + "narrower":                          {"Narrower", groupRelated},
	NSSKOS + "exactMatch":                        {"Exact Match", groupRelated},
	NSSKOS + "broadMatch":                        {"Broad Match", groupRelated},
	NSSKOS + "closeMatch":                        {"Close Match", groupRelated},
	NSSKOS + "narrowMatch":                       {"Narrow Match", groupRelated},
	nsPAV + "hasCurrentVersion":                  {"Has Current Version", groupProvenance},
	nsPAV + "hasVersion":                         {"Version", groupProvenance},
	nsPAV + "previousVersion":                    {"Previous Version", groupProvenance},
	NSDCT + "isVersionOf":                        {"Is Version Of", groupProvenance},
	nsPAV + "authoredOn":                         {"", groupIgnore},
	"http://purl.org/dc/elements/1.1/identifier": {"", groupIgnore},
	NSDCT + "identifier":                         {"", groupIgnore},
	"http://rdfs.org/ns/void#inDataset":          {"", groupIgnore},
	NSRDF + "type":                               {"", groupIgnore},
	NSOWL + "versionInfo":                        {"", groupIgnore},
}

// ConceptView is the model behind the concept HTML page.
type ConceptView struct {
	URI                 string
	ProfileToken        string
	ProfileLabel        string
	Deprecated          bool
	PrefLabel           string
	Definition          string
	Date                string
	AltLabels           []string
	CollectionSystemURI string
	CollectionLabel     string
	ProfileProperties   []DisplayProperty
	Agent               []DisplayProperty
	Annotation          []DisplayProperty
	Related             []DisplayProperty
	Provenance          []DisplayProperty
	Other               []DisplayProperty
	// ConformsTo lists the collection's alternate profiles for which the
	// concept actually carries properties.
	ConformsTo []string
}

// ConceptInput is what BuildConceptView needs besides the SELECT rows.
type ConceptInput struct {
	URI          string
	ProfileToken string
	ProfileLabel string
	// ProfileNamespace is the namespace of an alternate profile's own
	// properties; empty for the base profiles.
	ProfileNamespace string
	// CollectionConformsTo is the conforms_to list of the concept's
	// collection, from the list cache.
	CollectionConformsTo []string
}

// BuildConceptView buckets the properties SELECT rows (?p ?o ?o_label
// ?o_notation ?collection_systemUri ?collection_label).
func BuildConceptView(in ConceptInput, rows []sparql.Binding) ConceptView {
	v := ConceptView{URI: in.URI, ProfileToken: in.ProfileToken, ProfileLabel: in.ProfileLabel}
	seenAlt := map[string]bool{}
	predicates := make([]string, 0, len(rows))

	for _, row := range rows {
		p, o := row.Value("p"), row.Value("o")
		predicates = append(predicates, p)
		if cs := row.Value("collection_systemUri"); cs != "" {
			v.CollectionSystemURI = cs
			v.CollectionLabel = row.Value("collection_label")
		}

		switch p {
		case NSOWL + "deprecated":
			if o == "true" {
				v.Deprecated = true
			}
			continue
		case NSSKOS + "prefLabel":
			v.PrefLabel = o
			continue
		case NSSKOS + "altLabel":
			if !seenAlt[o] {
				seenAlt[o] = true
				v.AltLabels = append(v.AltLabels, o)
			}
			continue
		case NSSKOS + "definition":
			v.Definition = o
			continue
		case NSDCT + "date":
			v.Date = strings.TrimSuffix(strings.Replace(o, " ", "T", 1), ".0")
			continue
		}

		label, notation := row.Value("o_label"), row.Value("o_notation")
		if known, ok := conceptProps[p]; ok {
			prop := NewDisplayProperty(p, known.label, o, label, notation)
			switch known.group {
			case groupAgent:
				v.Agent = append(v.Agent, prop)
			case groupAnnotation:
				v.Annotation = append(v.Annotation, prop)
			case groupRelated:
				v.Related = append(v.Related, prop)
			case groupProvenance:
				v.Provenance = append(v.Provenance, prop)
			}
			continue
		}
		if in.ProfileNamespace != "" && strings.HasPrefix(p, in.ProfileNamespace) {
			name := strings.TrimPrefix(strings.TrimPrefix(p, in.ProfileNamespace), "#")
			v.ProfileProperties = append(v.ProfileProperties, NewDisplayProperty(p, name, o, label, notation))
			continue
		}
		v.Other = append(v.Other, NewDisplayProperty(p, localName(p), o, label, ""))
	}

	sort.Strings(v.AltLabels)
	for _, list := range []*[]DisplayProperty{&v.ProfileProperties, &v.Agent, &v.Annotation, &v.Related, &v.Provenance, &v.Other} {
		sort.SliceStable(*list, func(i, j int) bool { return (*list)[i].PredicateLabel < (*list)[j].PredicateLabel })
		hideRepeatedPredicates(*list)
	}

	for _, c := range in.CollectionConformsTo {
		for _, p := range predicates {
			if c != "" && strings.Contains(p, c) {
				v.ConformsTo = append(v.ConformsTo, c)
				break
			}
		}
	}
	return v
}

func localName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		iri = iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		iri = iri[i+1:]
	}
	return iri
}
