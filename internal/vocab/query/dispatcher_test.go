package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
)

const (
	dataURI          = "http://vocab.nerc.ac.uk"
	acceptedClause   = `<http://www.w3.org/2002/07/owl#deprecated> "false" .`
	deprecatedClause = `<http://www.w3.org/2002/07/owl#deprecated> "true" .`
)

// =============================================================================
// Dispatcher Test Suite
// =============================================================================
// Justification: generated SPARQL is the contract with the store. These tests
// pin the substitutions (filter, prefixes, exclusions, restriction) rather than
// whole query texts.

type DispatcherSuite struct {
	suite.Suite
	d          *Dispatcher
	ontologies []profiles.Ontology
	argo       profiles.Profile
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) SetupTest() {
	s.d = NewDispatcher(dataURI + "/")
	s.ontologies = []profiles.Ontology{
		{Prefix: "sdn", URL: "http://www.seadatanet.org/urnurl/"},
		{Prefix: "argo", URL: "http://vocab.nerc.ac.uk/argo/"},
		{Prefix: "gcmd", URL: "https://gcmd.earthdata.nasa.gov/kms/"},
	}
	mts, def := profiles.AlternateMediaTypes(models.KindCollection)
	s.argo = profiles.New("argo", "https://registry.example.org/profile/argo", "Argo", "", mts, def,
		profiles.Ontology{Prefix: "argo", URL: "http://vocab.nerc.ac.uk/argo/"})
}

func (s *DispatcherSuite) build(res models.Resource, p profiles.Profile, purpose Purpose) Query {
	q, err := s.d.Build(Request{Resource: res, Profile: p, Purpose: purpose, Ontologies: s.ontologies})
	s.Require().NoError(err)
	return q
}

func (s *DispatcherSuite) TestContainerAcceptedFilter() {
	res := models.NewContainer("http://localhost:8080", models.ListCollections, models.FilterAccepted)
	q := s.build(res, profiles.NVS, PurposeDetailConstruct)

	s.Equal(FormConstruct, q.Form)
	s.Contains(q.Text, "?cs "+acceptedClause)
	s.NotContains(q.Text, deprecatedClause)
}

func (s *DispatcherSuite) TestCollectionDeprecatedFilterBindsMemberVariable() {
	res := models.NewCollection(dataURI, "P01", models.FilterDeprecated)
	q := s.build(res, profiles.NVS, PurposeDetailSelect)

	s.Equal(FormSelect, q.Form)
	s.Contains(q.Text, "?c "+deprecatedClause)
	s.NotContains(q.Text, acceptedClause)
	s.Contains(q.Text, "<"+res.URI+"> skos:member ?c")
}

func (s *DispatcherSuite) TestAllAndNoFilterProduceIdenticalText() {
	all := s.build(models.NewScheme(dataURI, "P21", models.FilterAll), profiles.NVS, PurposeDetailSelect)
	none := s.build(models.NewScheme(dataURI, "P21", models.FilterNone), profiles.NVS, PurposeDetailSelect)

	s.Equal(all.Text, none.Text)
	s.NotContains(all.Text, "owl#deprecated")
}

func (s *DispatcherSuite) TestPrimaryProfileIsNotRestricted() {
	q := s.build(models.NewCollection(dataURI, "P01", models.FilterNone), profiles.NVS, PurposeDetailConstruct)

	s.NotContains(q.Text, "?p2 != skos:broader )")
	s.Contains(q.Text, "?p2 != skos:broaderTransitive")
}

func (s *DispatcherSuite) TestAlternateProfileIsolatesItsOntology() {
	q := s.build(models.NewCollection(dataURI, "P01", models.FilterNone), s.argo, PurposeDetailConstruct)

	s.Contains(q.Text, "PREFIX argo: <http://vocab.nerc.ac.uk/argo/>")
	s.Contains(q.Text, `FILTER (!STRSTARTS(STR(?p2), "http://www.seadatanet.org/urnurl/"))`)
	s.Contains(q.Text, `FILTER (!STRSTARTS(STR(?p2), "https://gcmd.earthdata.nasa.gov/kms/"))`)
	s.NotContains(q.Text, `STRSTARTS(STR(?p2), "http://vocab.nerc.ac.uk/argo/")`)
	s.Contains(q.Text, "?p2 != skos:broader )")
	s.Contains(q.Text, "?p2 != owl:sameAs")
}

func (s *DispatcherSuite) TestExclusionsFollowPrefixOrder() {
	q := s.build(models.NewConcept(dataURI, "P01", "SAGEMSFM", ""), profiles.NVS, PurposeDetailConstruct)

	gcmd := strings.Index(q.Text, "gcmd.earthdata")
	sdn := strings.Index(q.Text, "seadatanet")
	argo := strings.Index(q.Text, "nerc.ac.uk/argo/")
	s.Require().True(gcmd > 0 && sdn > 0 && argo > 0)
	s.Less(argo, gcmd)
	s.Less(gcmd, sdn)
}

func (s *DispatcherSuite) TestConceptPropertiesUseDataURI() {
	q := s.build(models.NewStandardName(dataURI, "sea_water_temperature"), profiles.NVS, PurposeDetailSelect)

	s.Contains(q.Text, "<"+dataURI+"/standard_name/>")
	s.Contains(q.Text, "Climate and Forecast Standard Names")
	s.NotContains(q.Text, "{{")
}

func (s *DispatcherSuite) TestMappingIsDescribe() {
	res := models.NewMapping(dataURI, "I/1234")
	q := s.build(res, profiles.NVS, PurposeDetailConstruct)

	s.Equal(FormDescribe, q.Form)
	s.Equal("DESCRIBE <"+res.URI+">", q.Text)
}

func (s *DispatcherSuite) TestBaseProfileWithoutTemplateIsUnsupported() {
	_, err := s.d.Build(Request{
		Resource: models.NewMapping(dataURI, "I/1"),
		Profile:  profiles.SKOS,
		Purpose:  PurposeDetailConstruct,
	})

	var unsupported *UnsupportedQueryError
	s.Require().True(errors.As(err, &unsupported))
	s.Equal(models.KindMapping, unsupported.Kind)
	s.Equal("skos", unsupported.Token)
}

func (s *DispatcherSuite) TestBuildIsDeterministic() {
	res := models.NewCollection(dataURI, "P01", models.FilterAccepted)
	first := s.build(res, s.argo, PurposeDetailConstruct)
	for i := 0; i < 20; i++ {
		s.Equal(first.Text, s.build(res, s.argo, PurposeDetailConstruct).Text)
	}
}

func TestFilterClause(t *testing.T) {
	tests := []struct {
		filter   models.Filter
		expected string
	}{
		{models.FilterAccepted, "?m " + acceptedClause},
		{models.FilterDeprecated, "?m " + deprecatedClause},
		{models.FilterAll, ""},
		{models.FilterNone, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterClause(tt.filter, "m"))
		})
	}
}

func TestListQuery(t *testing.T) {
	q, err := ListQuery(models.ListCollections)
	require.NoError(t, err)
	assert.Contains(t, q, "?uri a skos:Collection")
	assert.Contains(t, q, "AS ?conforms_to")

	q, err = ListQuery(models.ListConceptSchemes)
	require.NoError(t, err)
	assert.Contains(t, q, "?uri a skos:ConceptScheme")

	_, err = ListQuery("bogus")
	assert.Error(t, err)
}

func TestExistsQuery(t *testing.T) {
	assert.Equal(t,
		"SELECT (COUNT(*) AS ?count) WHERE { <http://vocab.nerc.ac.uk/collection/P01/current/> ?p ?o . }",
		ExistsQuery("http://vocab.nerc.ac.uk/collection/P01/current/"))
}
