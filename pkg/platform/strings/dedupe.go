// Package strings holds small string helpers shared by the cache and the
// profile registry.
package strings

import "strings"

// SplitList splits a separated value such as a comma separated conforms_to
// or ontology prefix list. Elements are trimmed; empty and repeated elements
// are dropped and order is preserved. An empty input gives nil.
//
//	SplitList(" a, b,,a ", ",") // []string{"a", "b"}
func SplitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return DedupeAndTrim(strings.Split(s, sep))
}

// DedupeAndTrim trims each value and keeps the first occurrence of each
// non-blank one. Comparison is case sensitive.
func DedupeAndTrim(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
