package profiles

import (
	"fmt"

	"vocprez/internal/vocab/models"
)

// Profile tokens.
const (
	TokenNVS      = "nvs"
	TokenSKOS     = "skos"
	TokenVocPub   = "vocpub"
	TokenDD       = "dd"
	TokenSDO      = "sdo"
	TokenDCAT     = "dcat"
	TokenVoID     = "void"
	TokenMem      = "mem"
	TokenContanno = "contanno"
	TokenAlt      = "alt"
)

func withHTML(rest ...string) []string {
	return append([]string{MediaHTML}, rest...)
}

var (
	NVS = New(TokenNVS, "https://w3id.org/profile/nvs", "NVS",
		"The NERC Vocabulary Server's own profile with NVS-specific properties",
		withHTML(RDFMediaTypes...), MediaHTML)

	SKOS = New(TokenSKOS, "https://www.w3.org/TR/skos-reference/", "SKOS",
		"Simple Knowledge Organization System (SKOS) is a W3C-authored, common data model for sharing "+
			"and linking knowledge organization systems via the Web.",
		RDFMediaTypes, MediaTurtle)

	VocPub = New(TokenVocPub, "https://w3id.org/profile/vocpub", "VocPub",
		"This is a profile of the taxonomy data model SKOS - i.e. SKOS with additional constraints.",
		RDFMediaTypes, MediaTurtle)

	DD = New(TokenDD, "https://w3id.org/profile/dd", "Drop-Down List",
		"A simple data model to provide items for form drop-down lists. The basic information is an "+
			"ID & name tuple and the optional extra value is an item's parent.",
		[]string{MediaJSON}, MediaJSON)

	SDO = New(TokenSDO, "https://schema.org", "schema.org",
		"A common vocabulary for structured data used across the Web.",
		RDFMediaTypes, MediaTurtle)

	DCAT = New(TokenDCAT, "https://www.w3.org/TR/vocab-dcat/", "DCAT",
		"Dataset Catalogue Vocabulary (DCAT) is a W3C-authored RDF vocabulary designed to facilitate "+
			"interoperability between data catalogs published on the Web.",
		withHTML(RDFMediaTypes...), MediaHTML)

	VoID = New(TokenVoID, "http://rdfs.org/ns/void#", "VoID",
		"The Vocabulary of Interlinked Datasets (VoID) is an RDF Schema vocabulary for expressing "+
			"metadata about RDF datasets.",
		RDFMediaTypes, MediaTurtle)

	Mem = New(TokenMem, "https://w3id.org/profile/mem", "Members",
		"A very basic data model that lists the members of container objects only, i.e. not their other properties",
		withHTML(append([]string{MediaJSON}, RDFMediaTypes...)...), MediaHTML)

	Contanno = New(TokenContanno, "https://w3id.org/profile/contanno", "Container Annotation",
		"A profile describing a container object's own annotations, not its members.",
		withHTML(RDFMediaTypes...), MediaHTML)

	Alt = New(TokenAlt, "http://www.w3.org/ns/dx/conneg/altr", "Alternate Profiles",
		"The representation of the resource that lists all other representations (profiles and Media Types)",
		withHTML(append([]string{MediaJSON}, RDFMediaTypes...)...), MediaHTML)
)

var tables = map[models.Kind]Set{
	models.KindDataset:    NewSet(TokenDCAT, DCAT, SDO, Alt),
	models.KindContainer:  NewSet(TokenNVS, NVS, Mem, Contanno, Alt),
	models.KindCollection: NewSet(TokenNVS, NVS, SKOS, VocPub, DD, Alt),
	models.KindConcept:    NewSet(TokenNVS, NVS, SKOS, VocPub, SDO, Alt),
	models.KindScheme:     NewSet(TokenNVS, NVS, SKOS, VocPub, DD, Alt),
	models.KindMapping:    NewSet(TokenNVS, NVS, Alt),
	models.KindWellKnown:  NewSet(TokenVoID, VoID, Alt),
}

// ForKind returns the base profiles for a resource kind. An unknown kind is a
// programming error and panics.
func ForKind(kind models.Kind) Set {
	s, ok := tables[kind]
	if !ok {
		panic(fmt.Sprintf("profiles: no profile table for kind %q", kind))
	}
	return s
}

// AlternateMediaTypes returns the media types and default given to externally
// registered profiles for a kind. Concepts get an HTML view; collections are
// RDF only.
func AlternateMediaTypes(kind models.Kind) ([]string, string) {
	if kind == models.KindConcept {
		return withHTML(RDFMediaTypes...), MediaHTML
	}
	return append([]string(nil), RDFMediaTypes...), MediaTurtle
}
