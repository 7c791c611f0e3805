package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocprez/internal/vocab/models"
)

var allKinds = []models.Kind{
	models.KindContainer, models.KindCollection, models.KindConcept, models.KindScheme,
	models.KindMapping, models.KindDataset, models.KindWellKnown,
}

func TestNewAddsDefaultMediaType(t *testing.T) {
	p := New("x", "http://example.org/x", "X", "", []string{MediaTurtle}, MediaHTML)
	assert.Equal(t, []string{MediaHTML, MediaTurtle}, p.MediaTypes)
	assert.True(t, p.Supports(MediaHTML))
	assert.Equal(t, []string{"en"}, p.Languages)
}

func TestNewSortsOntologies(t *testing.T) {
	p := New("x", "u", "X", "", RDFMediaTypes, MediaTurtle,
		Ontology{Prefix: "sdn", URL: "https://sdn/"},
		Ontology{Prefix: "argo", URL: "https://argo/"},
	)
	require.Len(t, p.Ontologies, 2)
	assert.Equal(t, "argo", p.Ontologies[0].Prefix)
	assert.True(t, p.HasOntology("sdn"))
	assert.False(t, p.HasOntology("cf"))
}

func TestEveryBaseProfileContainsItsDefault(t *testing.T) {
	for _, kind := range allKinds {
		set := ForKind(kind)
		for _, p := range set.Profiles() {
			assert.Contains(t, p.MediaTypes, p.DefaultMediaType, "%s/%s", kind, p.Token)
		}
		assert.Equal(t, set.Tokens()[0], set.Primary().Token, "primary leads %s", kind)
		assert.Equal(t, TokenAlt, set.Tokens()[set.Len()-1], "alt trails %s", kind)
	}
}

func TestForKindTables(t *testing.T) {
	assert.Equal(t, []string{"dcat", "sdo", "alt"}, ForKind(models.KindDataset).Tokens())
	assert.Equal(t, []string{"nvs", "mem", "contanno", "alt"}, ForKind(models.KindContainer).Tokens())
	assert.Equal(t, []string{"nvs", "skos", "vocpub", "dd", "alt"}, ForKind(models.KindCollection).Tokens())
	assert.Equal(t, []string{"nvs", "skos", "vocpub", "sdo", "alt"}, ForKind(models.KindConcept).Tokens())
	assert.Equal(t, []string{"nvs", "alt"}, ForKind(models.KindMapping).Tokens())
	assert.Equal(t, "void", ForKind(models.KindWellKnown).Primary().Token)
}

func TestForKindPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { ForKind(models.Kind("bogus")) })
}

func TestWithOnlyAdds(t *testing.T) {
	base := ForKind(models.KindCollection)
	replacement := New(TokenNVS, "http://elsewhere/nvs", "Impostor", "", RDFMediaTypes, MediaTurtle)
	extra := New("argo", "https://registry.example.org/profile/argo", "Argo", "", RDFMediaTypes, MediaTurtle)

	got := base.With(replacement, extra)

	assert.Equal(t, []string{"nvs", "skos", "vocpub", "dd", "argo", "alt"}, got.Tokens())
	nvs, _ := got.Get(TokenNVS)
	assert.Equal(t, "https://w3id.org/profile/nvs", nvs.URI, "existing token kept")
	assert.Equal(t, 5, base.Len(), "receiver untouched")

	p, ok := got.FindByURI("https://registry.example.org/profile/argo")
	require.True(t, ok)
	assert.Equal(t, "argo", p.Token)
}

func TestMatchRange(t *testing.T) {
	mt, ok := NVS.MatchRange("text/*")
	require.True(t, ok)
	assert.Equal(t, MediaHTML, mt)

	mt, ok = VocPub.MatchRange("application/*")
	require.True(t, ok)
	assert.Equal(t, MediaRDFXML, mt)

	_, ok = DD.MatchRange("text/*")
	assert.False(t, ok)
}

func TestAlternateMediaTypes(t *testing.T) {
	mts, def := AlternateMediaTypes(models.KindConcept)
	assert.Equal(t, MediaHTML, def)
	assert.Contains(t, mts, MediaTurtle)

	mts, def = AlternateMediaTypes(models.KindCollection)
	assert.Equal(t, MediaTurtle, def)
	assert.NotContains(t, mts, MediaHTML)
}
