// Package render turns store answers into representations: SELECT rows into
// plain maps, CONSTRUCT graphs into any supported RDF serialization, and
// either of them into HTML view models for the template collaborator.
package render

import (
	"strings"

	"vocprez/internal/platform/sparql"
)

// Transform rewrites one bound value.
type Transform func(string) string

var (
	// DateOnly keeps the YYYY-MM-DD prefix of a timestamp.
	DateOnly Transform = func(s string) string {
		if len(s) > 10 {
			return s[:10]
		}
		return s
	}
	Underscores Transform = func(s string) string {
		return strings.ReplaceAll(s, "_", " ")
	}
	// UnderscoreBreaks lets long snake_case definitions wrap in HTML.
	UnderscoreBreaks Transform = func(s string) string {
		return strings.ReplaceAll(s, "_", "_ ")
	}
)

// Field maps one SELECT variable to one output key.
type Field struct {
	Key       string
	Var       string
	Transform Transform
	// Bool turns the value into true only when it is the literal "true";
	// an unbound variable becomes false.
	Bool bool
	// OmitEmpty drops the key when the variable is unbound.
	OmitEmpty bool
}

// RowSpec is the declarative shape of one output row.
type RowSpec []Field

// Rows applies shape to every binding, preserving order.
func Rows(bindings []sparql.Binding, shape RowSpec) []map[string]any {
	out := make([]map[string]any, 0, len(bindings))
	for _, b := range bindings {
		row := make(map[string]any, len(shape))
		for _, f := range shape {
			if f.Bool {
				row[f.Key] = b.Value(f.Var) == "true"
				continue
			}
			if !b.Has(f.Var) {
				if f.OmitEmpty {
					continue
				}
				row[f.Key] = ""
				continue
			}
			v := b.Value(f.Var)
			if f.Transform != nil {
				v = f.Transform(v)
			}
			row[f.Key] = v
		}
		out = append(out, row)
	}
	return out
}

// Row specs shared by the collection and scheme views.
var (
	CollectionMembers = RowSpec{
		{Key: "uri", Var: "c"},
		{Key: "systemUri", Var: "systemUri"},
		{Key: "id", Var: "id"},
		{Key: "prefLabel", Var: "pl", Transform: Underscores},
		{Key: "definition", Var: "def", Transform: UnderscoreBreaks},
		{Key: "date", Var: "date", Transform: DateOnly},
		{Key: "deprecated", Var: "dep", Bool: true},
	}
	CollectionDropDown = RowSpec{
		{Key: "uri", Var: "c"},
		{Key: "prefLabel", Var: "pl"},
	}
	SchemeDropDown = RowSpec{
		{Key: "uri", Var: "c"},
		{Key: "prefLabel", Var: "pl"},
		{Key: "broader", Var: "b", OmitEmpty: true},
	}
)
