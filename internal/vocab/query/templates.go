package query

import (
	"text/template"

	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
)

func mustEntry(name string, form Form, member, text string) entry {
	return entry{
		form:   form,
		member: member,
		tmpl:   template.Must(template.New(name).Parse(text)),
	}
}

// Shared fragments. Prefix lines declare the profile's ontologies; exclusion
// lines drop predicates of every other ontology; restriction lines drop the
// hierarchy links that only the primary profile shows.
const (
	profilePrefixes = `{{range .Prefixes}}PREFIX {{.Prefix}}: <{{.URL}}>
{{end}}`
	excludeP = `{{range .Excludes}}FILTER (!STRSTARTS(STR(?p), "{{.}}"))
{{end}}`
	excludeP2 = `{{range .Excludes}}FILTER (!STRSTARTS(STR(?p2), "{{.}}"))
{{end}}`
	restrictP = `{{if .Restrict}}FILTER ( ?p != skos:broader )
FILTER ( ?p != skos:narrower )
FILTER ( ?p != skos:related )
FILTER ( ?p != owl:sameAs )
{{end}}`
	restrictP2 = `{{if .Restrict}}FILTER ( ?p2 != skos:broader )
FILTER ( ?p2 != skos:narrower )
FILTER ( ?p2 != skos:related )
FILTER ( ?p2 != owl:sameAs )
{{end}}`
)

const collectionsContainerConstruct = `PREFIX dc: <http://purl.org/dc/terms/>
PREFIX grg: <http://www.isotc211.org/schemas/grg/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
CONSTRUCT {
    ?cs a skos:Collection ;
        dc:alternative ?alternative ;
        dc:creator ?creator ;
        dc:date ?date ;
        dc:description ?description ;
        dc:publisher ?publisher ;
        dc:title ?title ;
        rdfs:comment ?comment ;
        owl:versionInfo ?version ;
        skos:altLabel ?al ;
        skos:narrower ?narrower ;
        skos:prefLabel ?pl .
    ?cs grg:RE_RegisterManager ?registermanager ;
        grg:RE_RegisterOwner ?registerowner .
    ?cs rdfs:seeAlso ?seeAlso .
    ?cs dc:conformsTo ?conformsTo .
}
WHERE {
    ?cs a skos:Collection ;
        dc:alternative ?alternative ;
        dc:creator ?creator ;
        dc:date ?date ;
        dc:description ?description ;
        dc:publisher ?publisher ;
        dc:title ?title ;
        rdfs:comment ?comment ;
        owl:versionInfo ?version ;
        skos:prefLabel ?pl .
    {{.Filter}}
    OPTIONAL { ?cs skos:altLabel ?al }
    OPTIONAL { ?cs skos:narrower ?narrower }
    OPTIONAL {
        ?cs grg:RE_RegisterManager ?registermanager .
        ?cs grg:RE_RegisterOwner ?registerowner .
    }
    OPTIONAL { ?cs rdfs:seeAlso ?seeAlso }
    OPTIONAL { ?cs dc:conformsTo ?conformsTo }
}
`

const schemesContainerConstruct = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX dc: <http://purl.org/dc/terms/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
CONSTRUCT {
    ?cs a skos:ConceptScheme ;
        dc:alternative ?alt ;
        dc:creator ?creator ;
        dc:date ?modified ;
        dc:publisher ?publisher ;
        dc:title ?title ;
        owl:versionInfo ?version ;
        skos:hasTopConcept ?tc ;
        skos:altLabel ?al ;
        dc:description ?description ;
        skos:prefLabel ?pl .
}
WHERE {
    ?cs a skos:ConceptScheme ;
        dc:alternative ?alt ;
        dc:creator ?creator ;
        dc:date ?m ;
        dc:publisher ?publisher ;
        dc:title ?title ;
        owl:versionInfo ?version .
    {{.Filter}}
    BIND (STRDT(REPLACE(STRBEFORE(?m, "."), " ", "T"), xsd:dateTime) AS ?modified)
    OPTIONAL { ?cs skos:hasTopConcept ?tc . }
    OPTIONAL { ?cs skos:altLabel ?al . }
    {
        ?cs dc:description ?description .
        FILTER(lang(?description) = "en" || lang(?description) = "")
    }
    {
        ?cs skos:prefLabel ?pl .
        FILTER(lang(?pl) = "en" || lang(?pl) = "")
    }
}
`

const collectionMembersSelect = `PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT DISTINCT ?c ?systemUri ?id ?pl ?def ?date ?dep
WHERE {
    <{{.URI}}> skos:member ?c .
    BIND (STRBEFORE(STRAFTER(STR(?c), "/current/"), "/") AS ?id)
    BIND (STRAFTER(STR(?c), "{{.DataURI}}") AS ?systemUri)
    {{.Filter}}
    OPTIONAL { ?c <http://www.w3.org/2002/07/owl#deprecated> ?dep . }
    ?c skos:prefLabel ?pl ;
       skos:definition ?def ;
       dcterms:date ?date .
    FILTER(lang(?pl) = "en" || lang(?pl) = "")
    FILTER(lang(?def) = "en" || lang(?def) = "")
}
ORDER BY ?pl
`

// collectionProfileConstruct is the collection graph with its members,
// limited to what the profile owns.
const collectionProfileConstruct = `PREFIX dc: <http://purl.org/dc/terms/>
PREFIX dce: <http://purl.org/dc/elements/1.1/>
PREFIX grg: <http://www.isotc211.org/schemas/grg/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX pav: <http://purl.org/pav/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX void: <http://rdfs.org/ns/void#>
` + profilePrefixes + `CONSTRUCT {
    <{{.URI}}> ?p ?o .
    <{{.URI}}> skos:member ?m .
    ?m ?p2 ?o2 .
}
WHERE {
    {
        <{{.URI}}> ?p ?o .
        MINUS { <{{.URI}}> skos:member ?o . }
    }
    UNION
    {
        <{{.URI}}> skos:member ?m .
        ?m a skos:Concept .
        {{.Filter}}
        ?m ?p2 ?o2 .
        FILTER ( ?p2 != skos:broaderTransitive )
        FILTER ( ?p2 != skos:narrowerTransitive )
` + restrictP2 + excludeP2 + `    }
}
`

const collectionDDSelect = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT DISTINCT ?c ?pl
WHERE {
    <{{.URI}}> skos:member ?c .
    {{.Filter}}
    ?c skos:prefLabel ?pl .
}
ORDER BY ?pl
`

const collectionSKOSConstruct = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
CONSTRUCT {
    <{{.URI}}> a skos:Collection ;
        skos:prefLabel ?prefLabel ;
        skos:definition ?description ;
        skos:member ?c .
    ?c skos:prefLabel ?c_pl .
}
WHERE {
    <{{.URI}}> a skos:Collection ;
        skos:prefLabel ?prefLabel ;
        <http://purl.org/dc/terms/description> ?description ;
        skos:member ?c .
    {{.Filter}}
    ?c skos:prefLabel ?c_pl .
}
`

const collectionVocPubConstruct = `PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
CONSTRUCT {
    <{{.URI}}> a skos:Collection ;
        skos:prefLabel ?prefLabel ;
        skos:definition ?description ;
        dcterms:creator ?creator ;
        dcterms:publisher ?publisher ;
        dcterms:provenance "Made by NERC and maintained within the NERC Vocabulary Server" ;
        skos:member ?c .
    ?c skos:prefLabel ?c_pl .
}
WHERE {
    <{{.URI}}> a skos:Collection ;
        skos:prefLabel ?prefLabel ;
        dcterms:description ?description ;
        dcterms:creator ?creator ;
        dcterms:publisher ?publisher ;
        skos:member ?c .
    {{.Filter}}
    ?c skos:prefLabel ?c_pl .
}
`

// conceptPropertiesSelect feeds the concept HTML page.
const conceptPropertiesSelect = `PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
` + profilePrefixes + `SELECT DISTINCT ?p ?o ?o_label ?o_notation ?collection_uri ?collection_systemUri ?collection_label
WHERE {
    BIND (<{{.URI}}> AS ?concept)
    ?concept ?p ?o .
    FILTER ( ?p != skos:broaderTransitive )
    FILTER ( ?p != skos:narrowerTransitive )
` + restrictP + excludeP + `    FILTER(!isLiteral(?o) || lang(?o) = "en" || lang(?o) = "")
    OPTIONAL {
        ?o skos:prefLabel ?o_label ;
           skos:notation ?o_notation .
        FILTER(!isLiteral(?o_label) || lang(?o_label) = "en" || lang(?o_label) = "")
    }
    BIND(
        IF(
            CONTAINS(STR(?concept), "standard_name"),
            <{{.DataURI}}/standard_name/>,
            IRI(CONCAT(STRBEFORE(STR(?concept), "/current/"), "/current/"))
        )
        AS ?collection_uri
    )
    BIND (REPLACE(STR(?collection_uri), "{{.DataURI}}", "") AS ?collection_systemUri)
    OPTIONAL { ?collection_uri skos:prefLabel ?x }
    BIND (COALESCE(?x, "Climate and Forecast Standard Names") AS ?collection_label)
}
`

// conceptProfileConstruct serves the primary and externally registered
// profiles; the exclusion list decides which ontologies survive.
const conceptProfileConstruct = `PREFIX dc: <http://purl.org/dc/terms/>
PREFIX dce: <http://purl.org/dc/elements/1.1/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX pav: <http://purl.org/pav/>
PREFIX prov: <https://www.w3.org/ns/prov#>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX void: <http://rdfs.org/ns/void#>
` + profilePrefixes + `CONSTRUCT {
    <{{.URI}}> ?p ?o .
}
WHERE {
    <{{.URI}}> ?p ?o .
{{if .Restrict}}    FILTER ( ?p != skos:broaderTransitive )
    FILTER ( ?p != skos:narrowerTransitive )
{{end}}` + restrictP + excludeP + `}
`

const conceptSKOSConstruct = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
CONSTRUCT {
    <{{.URI}}> ?p ?o .
    ?s ?p2 <{{.URI}}> .
}
WHERE {
    <{{.URI}}> ?p ?o .
    ?s ?p2 <{{.URI}}> .
    FILTER (STRSTARTS(STR(?p), "http://www.w3.org/2004/02/skos/core#"))
    FILTER (STRSTARTS(STR(?p2), "http://www.w3.org/2004/02/skos/core#"))
}
`

const conceptVocPubConstruct = `PREFIX dce: <http://purl.org/dc/elements/1.1/>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX pav: <http://purl.org/pav/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX void: <http://rdfs.org/ns/void#>
CONSTRUCT {
    <{{.URI}}> ?p ?o .
    ?s ?p2 <{{.URI}}> .
}
WHERE {
    <{{.URI}}> ?p ?o .
    ?s ?p2 <{{.URI}}> .
    FILTER (!STRSTARTS(STR(?p2), "http://www.w3.org/1999/02/22-rdf-syntax-ns#"))
}
`

const conceptSDOConstruct = `PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX sdo: <https://schema.org/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
CONSTRUCT {
    <{{.URI}}> a sdo:DefinedTerm ;
        sdo:name ?pl ;
        sdo:alternateName ?al ;
        sdo:description ?def ;
        sdo:identifier ?id ;
        sdo:dateModified ?modified ;
        sdo:version ?versionInfo ;
        sdo:inDefinedTermSet ?collection ;
        sdo:isPartOf ?scheme ;
        sdo:sameAs ?sameAs .
}
WHERE {
    <{{.URI}}> skos:prefLabel ?pl ;
        skos:definition ?def ;
        dcterms:identifier ?id ;
        dcterms:date ?date ;
        owl:versionInfo ?versionInfo .
    BIND (STRDT(REPLACE(STRBEFORE(?date, "."), " ", "T"), xsd:dateTime) AS ?modified)
    ?collection skos:member <{{.URI}}> .
    OPTIONAL { <{{.URI}}> skos:altLabel ?al . }
    OPTIONAL { <{{.URI}}> skos:inScheme ?scheme . }
    OPTIONAL { <{{.URI}}> owl:sameAs ?sameAs . }
}
`

const schemeHierarchySelect = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT DISTINCT ?c ?pl ?broader ?systemUri
WHERE {
    { ?c skos:inScheme <{{.URI}}> . }
    UNION
    { ?c skos:topConceptOf <{{.URI}}> . }
    UNION
    { <{{.URI}}> skos:hasTopConcept ?c . }
    ?c skos:prefLabel ?pl .
    BIND (STRAFTER(STR(?c), "{{.DataURI}}") AS ?systemUri)
    {{.Filter}}
    OPTIONAL {
        ?c skos:broader ?broader .
        { ?broader skos:inScheme <{{.URI}}> . }
        UNION
        { ?broader skos:topConceptOf <{{.URI}}> . }
        UNION
        { <{{.URI}}> skos:hasTopConcept ?broader . }
    }
    FILTER(lang(?pl) = "en" || lang(?pl) = "")
}
ORDER BY ?pl
`

const schemeFlatSelect = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT DISTINCT ?c ?pl ?systemUri
WHERE {
    ?c skos:inScheme <{{.URI}}> .
    ?c skos:prefLabel ?pl .
    BIND (STRAFTER(STR(?c), "{{.DataURI}}") AS ?systemUri)
    {{.Filter}}
    FILTER(lang(?pl) = "en" || lang(?pl) = "")
}
ORDER BY ?pl
`

const schemeNVSConstruct = `PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
CONSTRUCT {
    <{{.URI}}> ?p ?o .
    ?c skos:inScheme <{{.URI}}> .
    ?c a skos:Concept ;
        skos:prefLabel ?pl ;
        skos:definition ?def ;
        dcterms:date ?date ;
        skos:broader ?broader .
    ?broader skos:narrower ?c .
}
WHERE {
    <{{.URI}}> ?p ?o .
    { ?c skos:inScheme <{{.URI}}> . }
    {
        ?c a skos:Concept ;
            skos:prefLabel ?pl ;
            skos:definition ?def ;
            dcterms:date ?xdate .
        BIND (STRDT(REPLACE(STRBEFORE(?xdate, "."), " ", "T"), xsd:dateTime) AS ?date)
        FILTER(lang(?pl) = "en" || lang(?pl) = "")
    }
    {{.Filter}}
    OPTIONAL {
        {
            ?c skos:broader ?broader .
            ?broader skos:inScheme <{{.URI}}> .
        }
        UNION
        {
            ?broader skos:narrower ?c .
            ?broader skos:inScheme <{{.URI}}> .
        }
    }
}
`

const schemeDDSelect = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT DISTINCT ?c ?pl ?b
WHERE {
    ?c skos:inScheme <{{.URI}}> ;
       skos:prefLabel ?pl .
    {{.Filter}}
    OPTIONAL {
        ?b skos:inScheme <{{.URI}}> .
        ?c skos:broader ?b .
    }
    FILTER(lang(?pl) = "en" || lang(?pl) = "")
}
ORDER BY ?pl
`

const schemeSKOSConstruct = `PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
CONSTRUCT {
    <{{.URI}}> a skos:ConceptScheme ;
        skos:prefLabel ?pl ;
        skos:definition ?def ;
        skos:hasTopConcept ?tc .
    ?c a skos:Concept ;
        skos:prefLabel ?c_pl ;
        skos:definition ?c_def ;
        skos:broader ?broader ;
        skos:inScheme <{{.URI}}> .
    ?tc skos:topConceptOf <{{.URI}}> .
    ?broader skos:narrower ?c .
}
WHERE {
    <{{.URI}}> skos:prefLabel ?pl ;
        dcterms:description ?def ;
        skos:hasTopConcept ?tc .
    { ?c skos:inScheme <{{.URI}}> }
    UNION
    { ?c skos:topConceptOf <{{.URI}}> }
    UNION
    { <{{.URI}}> skos:hasTopConcept ?c }
    ?c skos:prefLabel ?c_pl ;
        skos:definition ?c_def .
    {{.Filter}}
    OPTIONAL {
        ?c skos:broader ?broader .
        { ?broader skos:inScheme <{{.URI}}> . }
        UNION
        { ?broader skos:topConceptOf <{{.URI}}> . }
        UNION
        { <{{.URI}}> skos:hasTopConcept ?broader . }
    }
    FILTER(lang(?pl) = "en" || lang(?pl) = "")
    FILTER(lang(?def) = "en" || lang(?def) = "")
    FILTER(lang(?c_pl) = "en" || lang(?c_pl) = "")
    FILTER(lang(?c_def) = "en" || lang(?c_def) = "")
}
`

const schemeVocPubConstruct = `PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
CONSTRUCT {
    <{{.URI}}> a skos:ConceptScheme ;
        skos:prefLabel ?pl ;
        skos:definition ?def ;
        skos:hasTopConcept ?tc ;
        dcterms:creator ?creator ;
        dcterms:publisher ?publisher ;
        dcterms:modified ?modified ;
        dcterms:provenance "Made by NERC and maintained within the NERC Vocabulary Server" .
    ?c a skos:Concept ;
        skos:prefLabel ?c_pl ;
        skos:definition ?c_def ;
        skos:broader ?broader ;
        skos:inScheme <{{.URI}}> .
    ?tc skos:topConceptOf <{{.URI}}> .
    ?broader skos:narrower ?c .
}
WHERE {
    <{{.URI}}> skos:prefLabel ?pl ;
        dcterms:description ?def ;
        skos:hasTopConcept ?tc ;
        dcterms:publisher ?publisher ;
        dcterms:date ?m .
    OPTIONAL { <{{.URI}}> dcterms:creator ?creator . }
    BIND (STRDT(REPLACE(STRBEFORE(?m, "."), " ", "T"), xsd:dateTime) AS ?modified)
    { ?c skos:inScheme <{{.URI}}> }
    UNION
    { ?c skos:topConceptOf <{{.URI}}> }
    UNION
    { <{{.URI}}> skos:hasTopConcept ?c }
    ?c skos:prefLabel ?c_pl ;
        skos:definition ?c_def .
    {{.Filter}}
    OPTIONAL {
        ?c skos:broader ?broader .
        { ?broader skos:inScheme <{{.URI}}> . }
        UNION
        { ?broader skos:topConceptOf <{{.URI}}> . }
        UNION
        { <{{.URI}}> skos:hasTopConcept ?broader . }
    }
    FILTER(lang(?pl) = "en" || lang(?pl) = "")
    FILTER(lang(?def) = "en" || lang(?def) = "")
    FILTER(lang(?c_pl) = "en" || lang(?c_pl) = "")
    FILTER(lang(?c_def) = "en" || lang(?c_def) = "")
}
`

const mappingDescribe = `DESCRIBE <{{.URI}}>`

const collectionsListQuery = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
SELECT ?uri ?id ?systemUri ?prefLabel ?created ?issued ?modified ?creator ?publisher ?license
(GROUP_CONCAT(?conformsto;SEPARATOR=",") AS ?conforms_to) ?versionInfo ?description ?registermanager ?registerowner ?seeAlso ?dep
WHERE {
    ?uri a skos:Collection .
    BIND (STRAFTER(STRBEFORE(STR(?uri), "/current/"), "/collection/") AS ?id)
    BIND (CONCAT("/collection/", ?id, "/current/") AS ?systemUri)
    OPTIONAL { ?uri skos:prefLabel ?prefLabel .
        FILTER(lang(?prefLabel) = "en" || lang(?prefLabel) = "")
    }
    OPTIONAL { ?uri dcterms:created ?created }
    OPTIONAL { ?uri dcterms:issued ?issued }
    OPTIONAL {
        ?uri dcterms:date ?m .
        BIND (SUBSTR(?m, 0, 11) AS ?modified)
    }
    OPTIONAL { ?uri dcterms:creator ?creator }
    OPTIONAL { ?uri dcterms:publisher ?publisher }
    OPTIONAL { ?uri dcterms:license ?license }
    OPTIONAL { ?uri dcterms:conformsTo ?conformsto }
    OPTIONAL { ?uri owl:versionInfo ?versionInfo }
    OPTIONAL { ?uri owl:deprecated ?dep }
    OPTIONAL { ?uri dcterms:description ?description .
        FILTER(lang(?description) = "en" || lang(?description) = "")
    }
    OPTIONAL {
        ?uri <http://www.isotc211.org/schemas/grg/RE_RegisterManager> ?registermanager .
        ?uri <http://www.isotc211.org/schemas/grg/RE_RegisterOwner> ?registerowner .
    }
    OPTIONAL { ?uri rdfs:seeAlso ?seeAlso }
}
GROUP BY ?uri ?id ?systemUri ?prefLabel ?created ?issued ?modified ?creator ?publisher ?license ?versionInfo ?description ?registermanager ?registerowner ?seeAlso ?dep
ORDER BY ?prefLabel
`

const conceptSchemesListQuery = `PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX dcterms: <http://purl.org/dc/terms/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
SELECT ?uri ?id ?systemUri ?prefLabel ?modified ?creator ?publisher ?versionInfo ?description ?dep
WHERE {
    ?uri a skos:ConceptScheme .
    BIND (STRAFTER(STRBEFORE(STR(?uri), "/current/"), "/scheme/") AS ?id)
    BIND (CONCAT("/scheme/", ?id, "/current/") AS ?systemUri)
    OPTIONAL { ?uri skos:prefLabel ?prefLabel .
        FILTER(lang(?prefLabel) = "en" || lang(?prefLabel) = "")
    }
    OPTIONAL {
        ?uri dcterms:date ?m .
        BIND (SUBSTR(?m, 0, 11) AS ?modified)
    }
    OPTIONAL { ?uri dcterms:creator ?creator }
    OPTIONAL { ?uri dcterms:publisher ?publisher }
    OPTIONAL { ?uri owl:versionInfo ?versionInfo }
    OPTIONAL { ?uri owl:deprecated ?dep }
    OPTIONAL { ?uri dcterms:description ?description .
        FILTER(lang(?description) = "en" || lang(?description) = "")
    }
}
ORDER BY ?prefLabel
`

func containerKey(list models.ListName) string {
	return string(models.KindContainer) + ":" + string(list)
}

var catalogue = map[key]entry{
	{containerKey(models.ListCollections), profiles.TokenNVS, PurposeDetailConstruct}:    mustEntry("collections-nvs-rdf", FormConstruct, "cs", collectionsContainerConstruct),
	{containerKey(models.ListConceptSchemes), profiles.TokenNVS, PurposeDetailConstruct}: mustEntry("schemes-nvs-rdf", FormConstruct, "cs", schemesContainerConstruct),

	{string(models.KindCollection), profiles.TokenNVS, PurposeDetailSelect}:       mustEntry("collection-nvs-members", FormSelect, "c", collectionMembersSelect),
	{string(models.KindCollection), profiles.TokenNVS, PurposeDetailConstruct}:    mustEntry("collection-nvs-rdf", FormConstruct, "m", collectionProfileConstruct),
	{string(models.KindCollection), profiles.TokenDD, PurposeDetailSelect}:        mustEntry("collection-dd", FormSelect, "c", collectionDDSelect),
	{string(models.KindCollection), profiles.TokenSKOS, PurposeDetailConstruct}:   mustEntry("collection-skos", FormConstruct, "c", collectionSKOSConstruct),
	{string(models.KindCollection), profiles.TokenVocPub, PurposeDetailConstruct}: mustEntry("collection-vocpub", FormConstruct, "c", collectionVocPubConstruct),
	{string(models.KindCollection), anyProfile, PurposeDetailConstruct}:           mustEntry("collection-alt-rdf", FormConstruct, "m", collectionProfileConstruct),

	{string(models.KindConcept), profiles.TokenNVS, PurposeDetailSelect}:       mustEntry("concept-nvs-props", FormSelect, "", conceptPropertiesSelect),
	{string(models.KindConcept), anyProfile, PurposeDetailSelect}:              mustEntry("concept-alt-props", FormSelect, "", conceptPropertiesSelect),
	{string(models.KindConcept), profiles.TokenNVS, PurposeDetailConstruct}:    mustEntry("concept-nvs-rdf", FormConstruct, "", conceptProfileConstruct),
	{string(models.KindConcept), anyProfile, PurposeDetailConstruct}:           mustEntry("concept-alt-rdf", FormConstruct, "", conceptProfileConstruct),
	{string(models.KindConcept), profiles.TokenSKOS, PurposeDetailConstruct}:   mustEntry("concept-skos", FormConstruct, "", conceptSKOSConstruct),
	{string(models.KindConcept), profiles.TokenVocPub, PurposeDetailConstruct}: mustEntry("concept-vocpub", FormConstruct, "", conceptVocPubConstruct),
	{string(models.KindConcept), profiles.TokenSDO, PurposeDetailConstruct}:    mustEntry("concept-sdo", FormConstruct, "", conceptSDOConstruct),

	{string(models.KindScheme), profiles.TokenNVS, PurposeDetailSelect}:       mustEntry("scheme-nvs-hierarchy", FormSelect, "c", schemeHierarchySelect),
	{string(models.KindScheme), profiles.TokenNVS, PurposeListing}:            mustEntry("scheme-nvs-flat", FormSelect, "c", schemeFlatSelect),
	{string(models.KindScheme), profiles.TokenNVS, PurposeDetailConstruct}:    mustEntry("scheme-nvs-rdf", FormConstruct, "c", schemeNVSConstruct),
	{string(models.KindScheme), profiles.TokenDD, PurposeDetailSelect}:        mustEntry("scheme-dd", FormSelect, "c", schemeDDSelect),
	{string(models.KindScheme), profiles.TokenSKOS, PurposeDetailConstruct}:   mustEntry("scheme-skos", FormConstruct, "c", schemeSKOSConstruct),
	{string(models.KindScheme), profiles.TokenVocPub, PurposeDetailConstruct}: mustEntry("scheme-vocpub", FormConstruct, "c", schemeVocPubConstruct),

	{string(models.KindMapping), profiles.TokenNVS, PurposeDetailConstruct}: mustEntry("mapping-nvs", FormDescribe, "", mappingDescribe),
}
