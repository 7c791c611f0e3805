package conneg

import (
	"fmt"
	"strings"
)

// Pair is one servable profile with its media types, listed in errors so a
// client can see what it could have asked for.
type Pair struct {
	Token      string   `json:"token"`
	URI        string   `json:"uri"`
	MediaTypes []string `json:"media_types"`
}

// UnknownProfileError reports an explicit profile the resource does not offer.
type UnknownProfileError struct {
	Requested string
	Available []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("profile %q is not available for this resource; available profiles: %s",
		e.Requested, strings.Join(e.Available, ", "))
}

// NegotiationError reports an explicit media type no candidate profile
// supports.
type NegotiationError struct {
	MediaType string
	Available []Pair
}

func (e *NegotiationError) Error() string {
	parts := make([]string, 0, len(e.Available))
	for _, p := range e.Available {
		parts = append(parts, fmt.Sprintf("%s (%s)", p.Token, strings.Join(p.MediaTypes, ", ")))
	}
	return fmt.Sprintf("media type %q is not available for this resource; available: %s",
		e.MediaType, strings.Join(parts, "; "))
}
