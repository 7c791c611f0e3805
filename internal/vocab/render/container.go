package render

import (
	"vocprez/internal/vocab/listcache"
	"vocprez/internal/vocab/models"
)

// ContainerView is the model behind the collection and scheme listings.
type ContainerView struct {
	URI          string
	Label        string
	Comment      string
	ProfileToken string
	List         models.ListName
	Items        []listcache.Entry
	Members      []Member
}

// CollectionView is the model behind a collection page.
type CollectionView struct {
	Collection listcache.Entry
	Concepts   []map[string]any
}

// Member is one entry of a container's members view.
type Member struct {
	URI       string `json:"uri"`
	SystemURI string `json:"-"`
	Label     string `json:"label"`
}

func Members(entries []listcache.Entry) []Member {
	out := make([]Member, 0, len(entries))
	for _, e := range entries {
		out = append(out, Member{URI: e.URI, SystemURI: e.SystemURI, Label: e.PrefLabel})
	}
	return out
}

// MembersGraph describes the container as an rdf:Bag of its members.
func MembersGraph(uri, label string, members []Member) (*Graph, error) {
	g := NewGraph()
	if err := bagHeader(g, uri, label); err != nil {
		return nil, err
	}
	for _, m := range members {
		if err := g.AddIRIs(uri, NSRDFS+"member", m.URI); err != nil {
			return nil, err
		}
		if err := g.AddLiteral(m.URI, NSRDFS+"label", m.Label, ""); err != nil {
			return nil, err
		}
	}
	return g, nil
}

const containerNotice = "This object is a container that contains a number of members. " +
	"See other profiles of this object to see those members."

// ContannoGraph is the container annotation: what it is, without members.
func ContannoGraph(uri, label, comment string) (*Graph, error) {
	g := NewGraph()
	if err := bagHeader(g, uri, label); err != nil {
		return nil, err
	}
	if err := g.AddLiteral(uri, NSRDFS+"comment", containerNotice+" "+comment, ""); err != nil {
		return nil, err
	}
	return g, nil
}

func bagHeader(g *Graph, uri, label string) error {
	if err := g.AddIRIs(uri, NSRDF+"type", NSRDF+"Bag"); err != nil {
		return err
	}
	return g.AddLiteral(uri, NSRDFS+"label", label, "")
}
