package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"vocprez/internal/vocab/profiles"
)

const mappingNT = `<http://vocab.nerc.ac.uk/mapping/I/1234567/> <http://www.w3.org/1999/02/22-rdf-syntax-ns#subject> <http://vocab.nerc.ac.uk/collection/P01/current/SAGEMSFM/> .
<http://vocab.nerc.ac.uk/mapping/I/1234567/> <http://www.w3.org/1999/02/22-rdf-syntax-ns#predicate> <http://www.w3.org/2004/02/skos/core#broader> .
<http://vocab.nerc.ac.uk/mapping/I/1234567/> <http://www.w3.org/1999/02/22-rdf-syntax-ns#object> <http://vocab.nerc.ac.uk/collection/P02/current/TDIS/> .
<http://vocab.nerc.ac.uk/mapping/I/1234567/> <http://purl.org/linked-data/registry#status> "accepted" .
<http://vocab.nerc.ac.uk/mapping/I/1234567/> <http://purl.org/linked-data/registry#submitter> _:s1 .
_:s1 <http://purl.org/linked-data/registry#name> "Jo Bloggs" .
_:s1 <http://www.w3.org/ns/org#> <http://vocab.nerc.ac.uk/collection/B75/current/ORG00009/> .
`

// =============================================================================
// Graph Suite
// =============================================================================
// Justification: the graph pipeline is where store output is repaired,
// filtered and re-encoded; every transformation is checked on a small
// realistic mapping graph.

type GraphSuite struct {
	suite.Suite
	graph *Graph
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) SetupTest() {
	g, err := Decode([]byte(mappingNT), profiles.MediaNTriples)
	s.Require().NoError(err)
	s.graph = g
}

func (s *GraphSuite) TestDecodeCountsTriples() {
	s.Equal(7, s.graph.Len())
}

func (s *GraphSuite) TestRepairOrganization() {
	s.Equal(1, s.graph.RepairOrganization())

	out, err := s.graph.Bytes(profiles.MediaNTriples)
	s.Require().NoError(err)
	s.Contains(string(out), "<http://www.w3.org/ns/org#Organization>")
	s.NotContains(string(out), "<http://www.w3.org/ns/org#> ")

	s.Zero(s.graph.RepairOrganization(), "repair is idempotent")
}

func (s *GraphSuite) TestIsolateProfile() {
	dropped := s.graph.IsolateProfile([]string{"http://purl.org/linked-data/registry#"})
	s.Equal(3, dropped)
	s.Equal(4, s.graph.Len())
	for _, t := range s.graph.Triples() {
		s.False(strings.HasPrefix(t.Pred.String(), "http://purl.org/linked-data/registry#"))
	}
}

func (s *GraphSuite) TestIsolateProfileWithNothingExcluded() {
	s.Zero(s.graph.IsolateProfile(nil))
	s.Equal(7, s.graph.Len())
}

func (s *GraphSuite) TestValueAndObjects() {
	v, ok := s.graph.Value("http://vocab.nerc.ac.uk/mapping/I/1234567/", NSRDF+"object")
	s.True(ok)
	s.Equal("http://vocab.nerc.ac.uk/collection/P02/current/TDIS/", v)

	_, ok = s.graph.Value("http://vocab.nerc.ac.uk/mapping/I/1234567/", NSSKOS+"prefLabel")
	s.False(ok)
}

func (s *GraphSuite) TestSerializeEachFormat() {
	s.graph.RepairOrganization()
	cases := []struct {
		mediaType string
		want      string
	}{
		{profiles.MediaTurtle, "http://vocab.nerc.ac.uk/mapping/I/1234567/"},
		{profiles.MediaN3, "http://vocab.nerc.ac.uk/mapping/I/1234567/"},
		{profiles.MediaJSONLD, "@id"},
		{profiles.MediaNTriples, "<http://vocab.nerc.ac.uk/mapping/I/1234567/> <http://www.w3.org/1999/02/22-rdf-syntax-ns#subject>"},
		{profiles.MediaRDFXML, `rdf:about="http://vocab.nerc.ac.uk/mapping/I/1234567/"`},
	}
	for _, tc := range cases {
		out, err := s.graph.Bytes(tc.mediaType)
		s.Require().NoError(err, tc.mediaType)
		s.Contains(string(out), tc.want, tc.mediaType)
	}
}

func (s *GraphSuite) TestSerializeUnknownMediaType() {
	_, err := s.graph.Bytes("application/pdf")
	s.Error(err)
}

// =============================================================================
// RDF/XML writer
// =============================================================================

func TestRDFXMLWriter(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddIRIs("http://vocab.nerc.ac.uk/collection/P01/current/", NSRDF+"type", NSSKOS+"Collection"))
	require.NoError(t, g.AddLiteral("http://vocab.nerc.ac.uk/collection/P01/current/", NSSKOS+"prefLabel", "BODC <Parameter> & Usage", "en"))
	require.NoError(t, g.AddLiteral("http://vocab.nerc.ac.uk/collection/P01/current/", "http://example.org/terms/1abc", "x", ""))

	out, err := g.Bytes(profiles.MediaRDFXML)
	require.NoError(t, err)
	body := string(out)

	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `xmlns:skos="http://www.w3.org/2004/02/skos/core#"`)
	assert.Contains(t, body, `<rdf:type rdf:resource="http://www.w3.org/2004/02/skos/core#Collection"/>`)
	assert.Contains(t, body, `<skos:prefLabel xml:lang="en">BODC &lt;Parameter&gt; &amp; Usage</skos:prefLabel>`)
	assert.Contains(t, body, `xmlns:ns2="http://example.org/terms/1"`, "leading digits move into the namespace")
	assert.Contains(t, body, "<ns2:abc>x</ns2:abc>")
	assert.Equal(t, 1, strings.Count(body, "<rdf:Description "), "one description per subject")
}

func TestRDFXMLRejectsUnsplittablePredicate(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddLiteral("http://example.org/a", "http://example.org/terms/", "x", ""))
	_, err := g.Bytes(profiles.MediaRDFXML)
	assert.Error(t, err)
}

func TestEnsureXMLDeclaration(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "missing declaration is added", in: "<rdf:RDF/>", want: xmlDeclaration + "<rdf:RDF/>"},
		{name: "present declaration is kept", in: `<?xml version="1.0"?><rdf:RDF/>`, want: `<?xml version="1.0"?><rdf:RDF/>`},
		{name: "leading whitespace is tolerated", in: "\n  <?xml version=\"1.0\"?><a/>", want: "\n  <?xml version=\"1.0\"?><a/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(EnsureXMLDeclaration([]byte(tt.in))))
		})
	}
}

func TestDecodeTurtle(t *testing.T) {
	body := `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
<http://vocab.nerc.ac.uk/scheme/ICES/current/> a skos:ConceptScheme ;
    skos:prefLabel "ICES"@en .`
	g, err := Decode([]byte(body), profiles.MediaTurtle)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	_, err = Decode([]byte("<not turtle"), profiles.MediaTurtle)
	assert.Error(t, err)
}
