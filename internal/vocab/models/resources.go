package models

import "strings"

const (
	collectionsLabel   = "NVS Vocabularies"
	collectionsComment = "SKOS concept collections held in the NERC Vocabulary Server. A concept collection " +
		"is useful where a group of concepts shares something in common, and it is convenient " +
		"to group them under a common label. In the NVS, concept collections are synonymous " +
		"with controlled vocabularies or code lists. Each collection is associated with its " +
		"governance body. An external website link is displayed when applicable."

	schemesLabel   = "NVS Thesauri"
	schemesComment = "SKOS concept schemes managed by the NERC Vocabulary Server. A concept scheme can be " +
		"viewed as an aggregation of one or more SKOS concepts. Semantic relationships (links) " +
		"between those concepts may also be viewed as part of a concept scheme. A concept scheme " +
		"is therefore useful for containing the concepts registered in multiple concept " +
		"collections that relate to each other as a single semantic unit, such as a thesaurus."

	datasetLabel   = "NERC Vocabulary Server Content"
	datasetComment = "The NVS gives access to standardised and hierarchically-organized vocabularies. It is " +
		"managed by the British Oceanographic Data Centre at the National Oceanography Centre " +
		"(NOC) in Liverpool and Southampton, and receives funding from the Natural Environment " +
		"Research Council (NERC) in the United Kingdom. Major technical developments have also " +
		"been funded by European Union's projects notably the Open Service Network for Marine " +
		"Environmental Data (NETMAR) programme, and the SeaDataNet and SeaDataCloud projects."
)

func trim(base string) string { return strings.TrimSuffix(base, "/") }

// NewContainer addresses the collections or concept-schemes listing.
func NewContainer(systemURI string, list ListName, filter Filter) Resource {
	r := Resource{Kind: KindContainer, List: list, Filter: filter}
	switch list {
	case ListConceptSchemes:
		r.URI = trim(systemURI) + "/scheme/"
		r.Label, r.Comment = schemesLabel, schemesComment
	default:
		r.URI = trim(systemURI) + "/collection/"
		r.Label, r.Comment = collectionsLabel, collectionsComment
	}
	return r
}

func NewCollection(dataURI, id string, filter Filter) Resource {
	return Resource{
		URI:    trim(dataURI) + "/collection/" + id + "/current/",
		Kind:   KindCollection,
		ID:     id,
		Filter: filter,
	}
}

// NewConcept addresses a concept inside a collection, optionally at a
// specific version.
func NewConcept(dataURI, collectionID, conceptID, version string) Resource {
	uri := trim(dataURI) + "/collection/" + collectionID + "/current/" + conceptID + "/"
	if version != "" {
		uri += version + "/"
	}
	return Resource{URI: uri, Kind: KindConcept, ID: conceptID}
}

func NewStandardName(dataURI, name string) Resource {
	return Resource{URI: trim(dataURI) + "/standard_name/" + name + "/", Kind: KindConcept, ID: name}
}

func NewScheme(dataURI, id string, filter Filter) Resource {
	return Resource{
		URI:    trim(dataURI) + "/scheme/" + id + "/current/",
		Kind:   KindScheme,
		ID:     id,
		Filter: filter,
	}
}

// NewMapping addresses a mapping by its path below /mapping/, e.g. "I/1234".
func NewMapping(dataURI, path string) Resource {
	path = strings.Trim(path, "/")
	id := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		id = path[i+1:]
	}
	return Resource{URI: trim(dataURI) + "/mapping/" + path + "/", Kind: KindMapping, ID: id}
}

func NewDataset(systemURI string) Resource {
	return Resource{URI: trim(systemURI) + "/", Kind: KindDataset, Label: datasetLabel, Comment: datasetComment}
}

func NewWellKnown(dataURI string) Resource {
	return Resource{URI: trim(dataURI) + "/.well_known/void", Kind: KindWellKnown, Label: "VoID description"}
}
