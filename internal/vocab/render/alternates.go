package render

import (
	"fmt"

	"github.com/knakk/rdf"

	"vocprez/internal/vocab/profiles"
)

const (
	nsALTR = "http://www.w3.org/ns/dx/conneg/altr#"
	nsPROF = "http://www.w3.org/ns/dx/prof/"
)

// AlternateProfile is one row of the alternates view.
type AlternateProfile struct {
	Token            string   `json:"token"`
	URI              string   `json:"uri"`
	Label            string   `json:"label"`
	Comment          string   `json:"comment,omitempty"`
	MediaTypes       []string `json:"media_types"`
	DefaultMediaType string   `json:"default_media_type"`
	Default          bool     `json:"default"`
}

// AlternatesView lists every profile and media type a resource offers.
type AlternatesView struct {
	URI          string             `json:"uri"`
	DefaultToken string             `json:"default_profile"`
	Profiles     []AlternateProfile `json:"profiles"`
}

func BuildAlternates(uri string, set profiles.Set) AlternatesView {
	v := AlternatesView{URI: uri, DefaultToken: set.Primary().Token}
	for _, p := range set.Profiles() {
		v.Profiles = append(v.Profiles, AlternateProfile{
			Token:            p.Token,
			URI:              p.URI,
			Label:            p.Label,
			Comment:          p.Comment,
			MediaTypes:       p.MediaTypes,
			DefaultMediaType: p.DefaultMediaType,
			Default:          p.Token == v.DefaultToken,
		})
	}
	return v
}

// AlternatesGraph expresses the view with the alternate-representations
// vocabulary: one blank-node representation per (profile, media type).
func AlternatesGraph(v AlternatesView) (*Graph, error) {
	g := NewGraph()
	subject, err := rdf.NewIRI(v.URI)
	if err != nil {
		return nil, err
	}
	hasRep, _ := rdf.NewIRI(nsALTR + "hasRepresentation")
	hasDefault, _ := rdf.NewIRI(nsALTR + "hasDefaultRepresentation")
	conformsTo, _ := rdf.NewIRI(NSDCT + "conformsTo")
	format, _ := rdf.NewIRI(NSDCT + "format")
	typ, _ := rdf.NewIRI(NSRDF + "type")
	repClass, _ := rdf.NewIRI(nsALTR + "Representation")

	n := 0
	for _, p := range v.Profiles {
		profileIRI, err := rdf.NewIRI(p.URI)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.Token, err)
		}
		if err := g.AddIRIs(p.URI, NSRDF+"type", nsPROF+"Profile"); err != nil {
			return nil, err
		}
		if err := g.AddLiteral(p.URI, NSRDFS+"label", p.Label, ""); err != nil {
			return nil, err
		}
		if p.Comment != "" {
			if err := g.AddLiteral(p.URI, NSRDFS+"comment", p.Comment, ""); err != nil {
				return nil, err
			}
		}
		if err := g.AddLiteral(p.URI, nsPROF+"hasToken", p.Token, ""); err != nil {
			return nil, err
		}

		for _, mt := range p.MediaTypes {
			n++
			rep, err := rdf.NewBlank(fmt.Sprintf("rep%d", n))
			if err != nil {
				return nil, err
			}
			lit, err := rdf.NewLiteral(mt)
			if err != nil {
				return nil, err
			}
			g.Add(subject, hasRep, rep)
			if p.Default && mt == p.DefaultMediaType {
				g.Add(subject, hasDefault, rep)
			}
			g.Add(rep, typ, repClass)
			g.Add(rep, conformsTo, profileIRI)
			g.Add(rep, format, lit)
		}
	}
	return g, nil
}
