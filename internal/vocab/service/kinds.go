package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"vocprez/internal/platform/sparql"
	"vocprez/internal/vocab/listcache"
	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
	"vocprez/internal/vocab/query"
	"vocprez/internal/vocab/render"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/requestcontext"
)

func (s *Service) renderKind(ctx context.Context, rv resolved) ([]byte, error) {
	switch rv.res.Kind {
	case models.KindDataset:
		return s.dataset(rv)
	case models.KindWellKnown:
		return s.static(render.StaticVoID, rv)
	case models.KindContainer:
		return s.container(ctx, rv)
	case models.KindCollection:
		return s.collection(ctx, rv)
	case models.KindConcept:
		return s.concept(ctx, rv)
	case models.KindScheme:
		return s.scheme(ctx, rv)
	case models.KindMapping:
		return s.mapping(ctx, rv)
	}
	return nil, fmt.Errorf("no renderer for %s resources", rv.res.Kind)
}

func (s *Service) staticData(rv resolved) render.StaticData {
	return render.StaticData{
		SystemURI: strings.TrimSuffix(s.site.SystemURI, "/"),
		DataURI:   strings.TrimSuffix(s.site.DataURI, "/"),
		Label:     rv.res.Label,
		Comment:   rv.res.Comment,
	}
}

func (s *Service) static(name string, rv resolved) ([]byte, error) {
	return render.Static(name, s.staticData(rv), rv.result.MediaType)
}

func (s *Service) dataset(rv resolved) ([]byte, error) {
	if rv.result.MediaType == profiles.MediaHTML {
		return s.page(rv, render.PageDataset, rv.res.Label, s.staticData(rv))
	}
	if rv.result.Profile.Token == profiles.TokenSDO {
		return s.static(render.StaticDatasetSDO, rv)
	}
	return s.static(render.StaticDatasetDCAT, rv)
}

// container lists collections or schemes from the cache.
func (s *Service) container(ctx context.Context, rv resolved) ([]byte, error) {
	entries, err := s.lists.Get(ctx, rv.res.List)
	if err != nil {
		return nil, err
	}
	entries = filterEntries(entries, rv.res.Filter, rv.req.Search)
	view := render.ContainerView{
		URI:          rv.res.URI,
		Label:        rv.res.Label,
		Comment:      rv.res.Comment,
		ProfileToken: rv.result.Profile.Token,
		List:         rv.res.List,
		Items:        entries,
		Members:      render.Members(entries),
	}
	mt := rv.result.MediaType

	switch rv.result.Profile.Token {
	case profiles.TokenMem:
		switch {
		case mt == profiles.MediaHTML:
			return s.page(rv, render.PageContainerMembers, rv.res.Label, view)
		case mt == profiles.MediaJSON:
			return json.Marshal(view.Members)
		}
		g, err := render.MembersGraph(rv.res.URI, rv.res.Label, view.Members)
		if err != nil {
			return nil, err
		}
		return g.Bytes(mt)
	case profiles.TokenContanno:
		if mt == profiles.MediaHTML {
			return s.page(rv, render.PageContainerAnno, rv.res.Label, view)
		}
		g, err := render.ContannoGraph(rv.res.URI, rv.res.Label, rv.res.Comment)
		if err != nil {
			return nil, err
		}
		return g.Bytes(mt)
	}

	if mt == profiles.MediaHTML {
		return s.page(rv, render.PageContainer, rv.res.Label, view)
	}
	return s.construct(ctx, rv)
}

func filterEntries(entries []listcache.Entry, f models.Filter, search string) []listcache.Entry {
	out := make([]listcache.Entry, 0, len(entries))
	for _, e := range entries {
		if f == models.FilterAccepted && e.Deprecated || f == models.FilterDeprecated && !e.Deprecated {
			continue
		}
		if search != "" && !e.Matches(search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *Service) collection(ctx context.Context, rv resolved) ([]byte, error) {
	switch rv.result.Profile.Token {
	case profiles.TokenNVS:
		if rv.result.MediaType != profiles.MediaHTML {
			return s.construct(ctx, rv)
		}
		rows, err := s.selectRows(ctx, rv, query.PurposeDetailSelect)
		if err != nil {
			return nil, err
		}
		view := render.CollectionView{Collection: rv.entry, Concepts: render.Rows(rows, render.CollectionMembers)}
		return s.page(rv, render.PageCollection, rv.entry.PrefLabel, view)
	case profiles.TokenDD:
		rows, err := s.selectRows(ctx, rv, query.PurposeDetailSelect)
		if err != nil {
			return nil, err
		}
		return json.Marshal(render.Rows(rows, render.CollectionDropDown))
	case profiles.TokenSKOS, profiles.TokenVocPub:
		return s.construct(ctx, rv)
	}
	return s.isolated(ctx, rv)
}

func (s *Service) concept(ctx context.Context, rv resolved) ([]byte, error) {
	token := rv.result.Profile.Token
	_, base := profiles.ForKind(models.KindConcept).Get(token)

	if rv.result.MediaType == profiles.MediaHTML && (token == profiles.TokenNVS || !base) {
		rows, err := s.selectRows(ctx, rv, query.PurposeDetailSelect)
		if err != nil {
			return nil, err
		}
		in := render.ConceptInput{
			URI:                  rv.res.URI,
			ProfileToken:         token,
			ProfileLabel:         rv.result.Profile.Label,
			CollectionConformsTo: rv.entry.ConformsTo,
		}
		if !base {
			in.ProfileNamespace = rv.result.Profile.URI
		}
		view := render.BuildConceptView(in, rows)
		return s.page(rv, render.PageConcept, view.PrefLabel, view)
	}
	if base {
		return s.construct(ctx, rv)
	}
	return s.isolated(ctx, rv)
}

func (s *Service) scheme(ctx context.Context, rv resolved) ([]byte, error) {
	switch rv.result.Profile.Token {
	case profiles.TokenNVS:
		if rv.result.MediaType != profiles.MediaHTML {
			return s.construct(ctx, rv)
		}
		rows, err := s.selectRows(ctx, rv, query.PurposeDetailSelect)
		if err != nil {
			return nil, err
		}
		view := render.SchemeView{URI: rv.res.URI, ProfileToken: profiles.TokenNVS, Scheme: rv.entry}
		view.Hierarchy, err = render.BuildHierarchy(rows, s.site.DataURI)
		if errors.Is(err, render.ErrCycle) {
			s.logger.WarnContext(ctx, "scheme hierarchy has a cycle, showing flat list",
				"request_id", requestcontext.RequestID(ctx),
				"uri", rv.res.URI,
			)
			flat, err := s.selectRows(ctx, rv, query.PurposeListing)
			if err != nil {
				return nil, err
			}
			view.Flat = render.FlatConcepts(flat)
		}
		return s.page(rv, render.PageScheme, rv.entry.PrefLabel, view)
	case profiles.TokenDD:
		rows, err := s.selectRows(ctx, rv, query.PurposeDetailSelect)
		if err != nil {
			return nil, err
		}
		return json.Marshal(render.Rows(rows, render.SchemeDropDown))
	}
	return s.construct(ctx, rv)
}

func (s *Service) mapping(ctx context.Context, rv resolved) ([]byte, error) {
	q, err := s.build(rv, query.PurposeDetailConstruct)
	if err != nil {
		return nil, err
	}
	body, err := s.executor.Construct(ctx, sparql.Form(q.Form), q.Text, profiles.MediaNTriples)
	if err != nil {
		return nil, err
	}
	g, err := render.Decode(body, profiles.MediaNTriples)
	if err != nil {
		return nil, &sparql.UpstreamQueryError{Form: sparql.Form(q.Form), Err: err}
	}
	if g.Len() == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "The URI you supplied for the Mapping does not exist")
	}
	g.RepairOrganization()

	if rv.result.MediaType == profiles.MediaHTML {
		view, err := render.BuildMappingView(g, rv.res.URI, s.site.DataURI, rv.result.Profile.Token)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "The URI you supplied for the Mapping does not exist")
		}
		return s.page(rv, render.PageMapping, "Mapping "+rv.res.ID, view)
	}
	return g.Bytes(rv.result.MediaType)
}

// alternates renders the profile listing every resource offers.
func (s *Service) alternates(rv resolved) ([]byte, error) {
	view := render.BuildAlternates(rv.res.URI, rv.set)
	switch rv.result.MediaType {
	case profiles.MediaHTML:
		return s.page(rv, render.PageAlternates, "Alternate Profiles", view)
	case profiles.MediaJSON:
		return json.Marshal(view)
	}
	g, err := render.AlternatesGraph(view)
	if err != nil {
		return nil, err
	}
	return g.Bytes(rv.result.MediaType)
}

func (s *Service) selectRows(ctx context.Context, rv resolved, purpose query.Purpose) ([]sparql.Binding, error) {
	q, err := s.build(rv, purpose)
	if err != nil {
		return nil, err
	}
	return s.executor.Select(ctx, q.Text)
}

// construct passes the store's serialization through unchanged, apart from
// the XML declaration some stores leave off RDF/XML.
func (s *Service) construct(ctx context.Context, rv resolved) ([]byte, error) {
	q, err := s.build(rv, query.PurposeDetailConstruct)
	if err != nil {
		return nil, err
	}
	body, err := s.executor.Construct(ctx, sparql.Form(q.Form), q.Text, rv.result.MediaType)
	if err != nil {
		return nil, err
	}
	if rv.result.MediaType == profiles.MediaRDFXML {
		body = render.EnsureXMLDeclaration(body)
	}
	return body, nil
}

// isolated renders an alternate profile's graph with every predicate from
// an ontology outside the profile removed.
func (s *Service) isolated(ctx context.Context, rv resolved) ([]byte, error) {
	if !profiles.IsRDF(rv.result.MediaType) {
		return nil, dErrors.New(dErrors.CodeNotAcceptable,
			fmt.Sprintf("profile %q is not available as %s", rv.result.Profile.Token, rv.result.MediaType))
	}
	q, err := s.build(rv, query.PurposeDetailConstruct)
	if err != nil {
		return nil, err
	}
	body, err := s.executor.Construct(ctx, sparql.Form(q.Form), q.Text, profiles.MediaNTriples)
	if err != nil {
		return nil, err
	}
	g, err := render.Decode(body, profiles.MediaNTriples)
	if err != nil {
		return nil, &sparql.UpstreamQueryError{Form: sparql.Form(q.Form), Err: err}
	}

	var excluded []string
	for _, o := range rv.ontologies {
		if !slices.Contains(rv.result.Profile.Ontologies, o) {
			excluded = append(excluded, o.URL)
		}
	}
	if n := g.IsolateProfile(excluded); n > 0 {
		s.logger.DebugContext(ctx, "dropped triples outside profile",
			"request_id", requestcontext.RequestID(ctx),
			"profile", rv.result.Profile.Token,
			"dropped", n,
		)
	}
	return g.Bytes(rv.result.MediaType)
}
