package query

import (
	"strings"

	"vocprez/internal/vocab/models"
)

const deprecatedPredicate = "<http://www.w3.org/2002/07/owl#deprecated>"

// FilterClause returns the graph pattern that keeps only accepted or only
// deprecated members bound to variable v (without the leading "?"). All and
// none both yield the empty string.
func FilterClause(f models.Filter, v string) string {
	v = "?" + strings.TrimPrefix(v, "?")
	switch f {
	case models.FilterAccepted:
		return v + " " + deprecatedPredicate + ` "false" .`
	case models.FilterDeprecated:
		return v + " " + deprecatedPredicate + ` "true" .`
	default:
		return ""
	}
}
