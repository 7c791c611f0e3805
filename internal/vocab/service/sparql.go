package service

import (
	"context"
	"regexp"
	"strings"

	"vocprez/internal/vocab/models"
	"vocprez/internal/vocab/profiles"
	"vocprez/internal/vocab/render"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/requestcontext"
)

var (
	// opaqueText matches the parts of a query that cannot hold keywords:
	// string literals, IRIs and comments.
	opaqueText = regexp.MustCompile(`"""[\s\S]*?"""|'''[\s\S]*?'''|"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'|<[^<>"{}|^\x60\\\s]*>|#[^\n]*`)

	// updateKeyword marks SPARQL Update requests, which the passthrough
	// refuses. Variables (?add) and prefixed names (ex:delete) do not count.
	updateKeyword = regexp.MustCompile(`(?i)(?:^|[^?$\w:])(?:INSERT|DELETE|LOAD|CLEAR|CREATE|DROP|COPY|MOVE|ADD)(?:[^\w:]|$)`)
)

// SPARQL forwards a read query to the store and returns its answer as is.
func (s *Service) SPARQL(ctx context.Context, q, accept string) ([]byte, string, error) {
	if strings.TrimSpace(q) == "" {
		return nil, "", dErrors.New(dErrors.CodeBadRequest, "a query is required")
	}
	if isUpdate(q) {
		return nil, "", dErrors.New(dErrors.CodeForbidden, "only read queries are accepted")
	}
	body, contentType, err := s.executor.Passthrough(ctx, q, accept)
	if err != nil {
		return nil, "", s.translate(ctx, err)
	}
	return body, contentType, nil
}

func isUpdate(q string) bool {
	return updateKeyword.MatchString(opaqueText.ReplaceAllString(q, " "))
}

// SPARQLPage renders the query form.
func (s *Service) SPARQLPage() ([]byte, error) {
	rv := resolved{res: models.Resource{URI: strings.TrimSuffix(s.site.SystemURI, "/") + "/sparql"}}
	return s.page(rv, render.PageSPARQL, "SPARQL", nil)
}

// SPARQLDescription returns the SPARQL 1.1 service description.
func (s *Service) SPARQLDescription(mediaType string) ([]byte, error) {
	if !profiles.IsRDF(mediaType) {
		mediaType = profiles.MediaTurtle
	}
	data := render.StaticData{
		SystemURI: strings.TrimSuffix(s.site.SystemURI, "/"),
		DataURI:   strings.TrimSuffix(s.site.DataURI, "/"),
	}
	return render.Static(render.StaticSPARQLService, data, mediaType)
}

// ClearCache drops cached lists (all of them for "" or "all") and the
// registry memo.
func (s *Service) ClearCache(ctx context.Context, name string) error {
	if err := s.lists.Invalidate(ctx, name); err != nil {
		return s.translate(ctx, err)
	}
	if s.alts != nil {
		s.alts.Invalidate()
	}
	s.logger.InfoContext(ctx, "cache cleared",
		"request_id", requestcontext.RequestID(ctx),
		"list", name,
	)
	return nil
}
