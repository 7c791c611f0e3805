package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataURI = "http://vocab.nerc.ac.uk"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"accepted", FilterAccepted, true},
		{"deprecated", FilterDeprecated, true},
		{"all", FilterAll, true},
		{"", FilterNone, false},
		{"PSAL", FilterNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseFilter(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestCollectionURI(t *testing.T) {
	concept := NewConcept(dataURI, "P01", "SAGEMSFM", "")
	assert.Equal(t, "http://vocab.nerc.ac.uk/collection/P01/current/SAGEMSFM/", concept.URI)
	assert.Equal(t, "http://vocab.nerc.ac.uk/collection/P01/current/", concept.CollectionURI())

	versioned := NewConcept(dataURI, "P01", "SAGEMSFM", "3")
	assert.Equal(t, "http://vocab.nerc.ac.uk/collection/P01/current/SAGEMSFM/3/", versioned.URI)
	assert.Equal(t, "http://vocab.nerc.ac.uk/collection/P01/current/", versioned.CollectionURI())

	sn := NewStandardName(dataURI, "sea_water_temperature")
	assert.True(t, sn.IsStandardName())
	assert.Equal(t, "http://vocab.nerc.ac.uk/collection/P07/current/", sn.CollectionURI())

	assert.Empty(t, NewCollection(dataURI, "P01", FilterNone).CollectionURI())
}

func TestValidateMapping(t *testing.T) {
	ok := NewMapping(dataURI, "I/1234/")
	require.NoError(t, ok.Validate())
	assert.Equal(t, "1234", ok.ID)

	bad := NewMapping(dataURI, "X/1234")
	err := bad.Validate()
	var malformed *MalformedAddressError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, `All requests for Mappings must contain either "I" or "E" in the URI`, malformed.Message)
}

func TestValidateRejectsIRIBreakers(t *testing.T) {
	r := NewCollection(dataURI, "P01> } DROP ALL {", FilterNone)
	assert.Error(t, r.Validate())
}

func TestContainers(t *testing.T) {
	c := NewContainer("http://localhost:8080/", ListCollections, FilterNone)
	assert.Equal(t, "http://localhost:8080/collection/", c.URI)
	assert.Equal(t, "NVS Vocabularies", c.Label)
	assert.True(t, c.Filterable())

	s := NewContainer("http://localhost:8080", ListConceptSchemes, FilterNone)
	assert.Equal(t, "http://localhost:8080/scheme/", s.URI)
	assert.Equal(t, "NVS Thesauri", s.Label)

	assert.False(t, NewDataset("http://localhost:8080").Filterable())
}

func TestSystemPath(t *testing.T) {
	r := NewScheme(dataURI, "ACCVOC", FilterNone)
	assert.Equal(t, "/scheme/ACCVOC/current/", r.SystemPath(dataURI+"/"))
}
