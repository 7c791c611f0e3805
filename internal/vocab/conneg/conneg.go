// Package conneg picks exactly one (profile, media type) pair for a request
// from the profiles a resource offers.
package conneg

import (
	"strings"

	"vocprez/internal/vocab/profiles"
)

// Request carries the negotiation inputs taken from the HTTP request.
type Request struct {
	Accept        string
	AcceptProfile string
	// Profile is the _profile override: a token or a profile URI.
	Profile string
	// MediaType is the _mediatype override.
	MediaType string
}

// Result is the negotiated pair.
type Result struct {
	Profile   profiles.Profile
	MediaType string
}

// Negotiate resolves the request against set. It is deterministic: the same
// inputs always give the same pair.
//
// An explicit profile the set does not hold is an UnknownProfileError. An
// explicit media type that no candidate profile supports is a
// NegotiationError. Accept headers never fail: without a match the preferred
// profile's default media type is used.
func Negotiate(req Request, set profiles.Set) (Result, error) {
	preferred, explicit, err := preferredProfile(req, set)
	if err != nil {
		return Result{}, err
	}

	// The alternates view is only reached by naming it.
	candidates := []profiles.Profile{preferred}
	if !explicit {
		for _, p := range set.Profiles() {
			if p.Token != preferred.Token && p.Token != profiles.TokenAlt {
				candidates = append(candidates, p)
			}
		}
	}

	if mt := strings.TrimSpace(req.MediaType); mt != "" {
		for _, p := range candidates {
			if p.Supports(mt) {
				return Result{Profile: p, MediaType: mt}, nil
			}
		}
		return Result{}, &NegotiationError{MediaType: mt, Available: pairs(candidates)}
	}

	accepted := ParseAccept(req.Accept)
	for _, p := range candidates {
		for _, mt := range accepted {
			if strings.HasSuffix(mt, "/*") {
				if match, ok := p.MatchRange(mt); ok {
					return Result{Profile: p, MediaType: match}, nil
				}
				continue
			}
			if p.Supports(mt) {
				return Result{Profile: p, MediaType: mt}, nil
			}
		}
	}

	return Result{Profile: preferred, MediaType: preferred.DefaultMediaType}, nil
}

// preferredProfile returns the profile negotiation starts from and whether it
// was named explicitly by _profile or Accept-Profile.
func preferredProfile(req Request, set profiles.Set) (profiles.Profile, bool, error) {
	if name := strings.TrimSpace(req.Profile); name != "" {
		if p, ok := lookup(set, name); ok {
			return p, true, nil
		}
		return profiles.Profile{}, false, &UnknownProfileError{Requested: name, Available: set.Tokens()}
	}
	for _, name := range ParseAcceptProfile(req.AcceptProfile) {
		if p, ok := lookup(set, name); ok {
			return p, true, nil
		}
	}
	return set.Primary(), false, nil
}

func lookup(set profiles.Set, name string) (profiles.Profile, bool) {
	if p, ok := set.Get(name); ok {
		return p, true
	}
	return set.FindByURI(strings.Trim(name, "<>"))
}

func pairs(ps []profiles.Profile) []Pair {
	out := make([]Pair, 0, len(ps))
	for _, p := range ps {
		out = append(out, Pair{Token: p.Token, URI: p.URI, MediaTypes: append([]string(nil), p.MediaTypes...)})
	}
	return out
}
