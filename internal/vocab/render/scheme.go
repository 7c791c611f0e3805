package render

import (
	"errors"
	"sort"
	"strings"

	"vocprez/internal/platform/sparql"
	"vocprez/internal/vocab/listcache"
)

// ErrCycle means the broader links of a scheme loop back on themselves, so
// no tree can be drawn.
var ErrCycle = errors.New("concept hierarchy contains a cycle")

// HierarchyNode is one concept in a scheme tree. A concept with several
// broader concepts appears under each of them.
type HierarchyNode struct {
	URI       string
	SystemURI string
	Label     string
	Children  []*HierarchyNode
}

// FlatConcept is one entry of the fallback list.
type FlatConcept struct {
	SystemURI string
	Label     string
}

// SchemeView is the model behind the scheme HTML page. Exactly one of
// Hierarchy and Flat is set.
type SchemeView struct {
	URI          string
	ProfileToken string
	Scheme       listcache.Entry
	Hierarchy    []*HierarchyNode
	Flat         []FlatConcept
}

// BuildHierarchy assembles the tree from ?c ?pl ?broader rows. Roots are
// concepts without a broader concept in the scheme; siblings are ordered
// by label. A loop anywhere in the broader links yields ErrCycle.
func BuildHierarchy(rows []sparql.Binding, dataURI string) ([]*HierarchyNode, error) {
	nodes := map[string]*HierarchyNode{}
	parents := map[string][]string{}
	children := map[string][]string{}
	node := func(uri string) *HierarchyNode {
		n, ok := nodes[uri]
		if !ok {
			n = &HierarchyNode{URI: uri, SystemURI: strings.TrimPrefix(uri, dataURI), Label: uri}
			nodes[uri] = n
		}
		return n
	}

	for _, row := range rows {
		c := row.Value("c")
		if c == "" {
			continue
		}
		n := node(c)
		if pl := row.Value("pl"); pl != "" {
			n.Label = pl
		}
		if b := row.Value("broader"); b != "" && b != c {
			node(b)
			if !contains(parents[c], b) {
				parents[c] = append(parents[c], b)
				children[b] = append(children[b], c)
			}
		} else if b == c {
			return nil, ErrCycle
		}
	}

	if hasCycle(nodes, children) {
		return nil, ErrCycle
	}

	var build func(uri string) *HierarchyNode
	build = func(uri string) *HierarchyNode {
		src := nodes[uri]
		out := &HierarchyNode{URI: src.URI, SystemURI: src.SystemURI, Label: src.Label}
		for _, c := range children[uri] {
			out.Children = append(out.Children, build(c))
		}
		sortNodes(out.Children)
		return out
	}

	var roots []*HierarchyNode
	for uri := range nodes {
		if len(parents[uri]) == 0 {
			roots = append(roots, build(uri))
		}
	}
	sortNodes(roots)
	return roots, nil
}

// FlatConcepts is the fallback listing used when the tree cannot be drawn.
func FlatConcepts(rows []sparql.Binding) []FlatConcept {
	out := make([]FlatConcept, 0, len(rows))
	for _, row := range rows {
		out = append(out, FlatConcept{SystemURI: row.Value("systemUri"), Label: row.Value("pl")})
	}
	return out
}

func hasCycle(nodes map[string]*HierarchyNode, children map[string][]string) bool {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[string]int, len(nodes))
	var visit func(string) bool
	visit = func(uri string) bool {
		switch state[uri] {
		case onPath:
			return true
		case done:
			return false
		}
		state[uri] = onPath
		for _, c := range children[uri] {
			if visit(c) {
				return true
			}
		}
		state[uri] = done
		return false
	}
	uris := make([]string, 0, len(nodes))
	for uri := range nodes {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	for _, uri := range uris {
		if visit(uri) {
			return true
		}
	}
	return false
}

func sortNodes(ns []*HierarchyNode) {
	sort.SliceStable(ns, func(i, j int) bool {
		if ns[i].Label != ns[j].Label {
			return ns[i].Label < ns[j].Label
		}
		return ns[i].URI < ns[j].URI
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
