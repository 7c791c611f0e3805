package render

import (
	"fmt"
	"strings"
)

const (
	nsDCE = "http://purl.org/dc/elements/1.1/"
	nsREG = "http://purl.org/linked-data/registry#"
)

// MappingView is the model behind the mapping HTML page.
type MappingView struct {
	URI                string
	SystemURI          string
	Subject            string
	SubjectSystemURI   string
	Predicate          string
	PredicateSystemURI string
	Object             string
	ObjectSystemURI    string
	Modified           string
	Status             string
	SubmitterTitle     string
	SubmitterName      string
	SubmitterMemberOf  string
	ProfileToken       string
}

// BuildMappingView reads the reified statement and its submitter from a
// DESCRIBE graph.
func BuildMappingView(g *Graph, uri, dataURI, profileToken string) (MappingView, error) {
	local := func(s string) string { return strings.Replace(s, dataURI, "", 1) }
	v := MappingView{URI: uri, SystemURI: local(uri), ProfileToken: profileToken}

	var ok bool
	if v.Subject, ok = g.Value(uri, NSRDF+"subject"); !ok {
		return MappingView{}, fmt.Errorf("mapping %s has no rdf:subject", uri)
	}
	if v.Predicate, ok = g.Value(uri, NSRDF+"predicate"); !ok {
		return MappingView{}, fmt.Errorf("mapping %s has no rdf:predicate", uri)
	}
	if v.Object, ok = g.Value(uri, NSRDF+"object"); !ok {
		return MappingView{}, fmt.Errorf("mapping %s has no rdf:object", uri)
	}
	v.SubjectSystemURI = local(v.Subject)
	v.PredicateSystemURI = local(v.Predicate)
	v.ObjectSystemURI = local(v.Object)
	v.Modified, _ = g.Value(uri, nsDCE+"modified")
	v.Status, _ = g.Value(uri, nsREG+"status")

	if submitter, found := g.Value(uri, nsREG+"submitter"); found {
		v.SubmitterTitle, _ = g.Value(submitter, nsREG+"title")
		v.SubmitterName, _ = g.Value(submitter, nsREG+"name")
		v.SubmitterMemberOf, _ = g.Value(submitter, NSORG+"memberOf")
	}
	return v, nil
}
