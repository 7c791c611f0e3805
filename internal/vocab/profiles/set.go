package profiles

// Set is an ordered token to Profile mapping with a primary profile. The zero
// value is empty; build one with NewSet.
type Set struct {
	primary string
	order   []string
	byToken map[string]Profile
}

// NewSet keeps the given order; the primary token is moved to the front.
func NewSet(primary string, ps ...Profile) Set {
	s := Set{primary: primary, byToken: make(map[string]Profile, len(ps))}
	for _, p := range ps {
		if _, dup := s.byToken[p.Token]; dup {
			continue
		}
		s.byToken[p.Token] = p
		if p.Token == primary {
			s.order = append([]string{p.Token}, s.order...)
		} else {
			s.order = append(s.order, p.Token)
		}
	}
	return s
}

// With returns a copy that also holds ps. Tokens already present are kept
// as they are; new ones go before the trailing alternates profile.
func (s Set) With(ps ...Profile) Set {
	out := Set{
		primary: s.primary,
		order:   make([]string, 0, len(s.order)+len(ps)),
		byToken: make(map[string]Profile, len(s.byToken)+len(ps)),
	}
	for k, v := range s.byToken {
		out.byToken[k] = v
	}
	tail := ""
	for _, t := range s.order {
		if t == TokenAlt {
			tail = t
			continue
		}
		out.order = append(out.order, t)
	}
	for _, p := range ps {
		if _, exists := out.byToken[p.Token]; exists {
			continue
		}
		out.byToken[p.Token] = p
		out.order = append(out.order, p.Token)
	}
	if tail != "" {
		out.order = append(out.order, tail)
	}
	return out
}

func (s Set) Get(token string) (Profile, bool) {
	p, ok := s.byToken[token]
	return p, ok
}

// FindByURI looks a profile up by its canonical URI.
func (s Set) FindByURI(uri string) (Profile, bool) {
	for _, t := range s.order {
		if p := s.byToken[t]; p.URI == uri {
			return p, true
		}
	}
	return Profile{}, false
}

// Profiles returns the profiles in preference order.
func (s Set) Profiles() []Profile {
	out := make([]Profile, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.byToken[t])
	}
	return out
}

func (s Set) Tokens() []string {
	return append([]string(nil), s.order...)
}

func (s Set) Primary() Profile {
	return s.byToken[s.primary]
}

func (s Set) Len() int { return len(s.order) }
