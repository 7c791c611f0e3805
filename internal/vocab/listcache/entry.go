package listcache

import (
	"strings"

	"vocprez/internal/platform/sparql"
	pstrings "vocprez/pkg/platform/strings"
)

// Entry is one collection or concept scheme as listed in a container.
type Entry struct {
	URI             string   `json:"uri"`
	ID              string   `json:"id"`
	SystemURI       string   `json:"systemUri"`
	PrefLabel       string   `json:"prefLabel"`
	Created         string   `json:"created,omitempty"`
	Issued          string   `json:"issued,omitempty"`
	Modified        string   `json:"modified,omitempty"`
	Creator         string   `json:"creator,omitempty"`
	Publisher       string   `json:"publisher,omitempty"`
	License         string   `json:"license,omitempty"`
	ConformsTo      []string `json:"conforms_to,omitempty"`
	VersionInfo     string   `json:"versionInfo,omitempty"`
	Description     string   `json:"description,omitempty"`
	RegisterManager string   `json:"registermanager,omitempty"`
	RegisterOwner   string   `json:"registerowner,omitempty"`
	SeeAlso         string   `json:"seeAlso,omitempty"`
	Deprecated      bool     `json:"deprecated,omitempty"`
}

// Matches reports whether needle occurs in the id, label or description,
// the fields a container listing can be filtered on.
func (e Entry) Matches(needle string) bool {
	return strings.Contains(e.ID+e.PrefLabel+e.Description, needle)
}

// entriesFromBindings maps the bulk SELECT rows. The store may repeat a
// subject when optional properties have several values; the first row wins.
func entriesFromBindings(rows []sparql.Binding) []Entry {
	out := make([]Entry, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, b := range rows {
		uri := b.Value("uri")
		if uri == "" {
			continue
		}
		if _, dup := seen[uri]; dup {
			continue
		}
		seen[uri] = struct{}{}
		e := Entry{
			URI:             uri,
			ID:              b.Value("id"),
			SystemURI:       b.Value("systemUri"),
			PrefLabel:       b.Value("prefLabel"),
			Created:         b.Value("created"),
			Issued:          b.Value("issued"),
			Modified:        b.Value("modified"),
			Creator:         b.Value("creator"),
			Publisher:       b.Value("publisher"),
			License:         b.Value("license"),
			VersionInfo:     b.Value("versionInfo"),
			Description:     b.Value("description"),
			RegisterManager: b.Value("registermanager"),
			RegisterOwner:   b.Value("registerowner"),
			SeeAlso:         b.Value("seeAlso"),
			Deprecated:      b.Value("dep") == "true",
		}
		e.ConformsTo = pstrings.SplitList(b.Value("conforms_to"), ",")
		out = append(out, e)
	}
	return out
}
