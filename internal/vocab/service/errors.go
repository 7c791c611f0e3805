package service

import (
	"context"
	"errors"

	"vocprez/internal/platform/sparql"
	"vocprez/internal/vocab/conneg"
	"vocprez/internal/vocab/listcache"
	"vocprez/internal/vocab/models"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/requestcontext"
)

// translate maps internal failures onto client-facing codes. Store query
// text and response bodies are logged here and never returned.
func (s *Service) translate(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}

	var (
		negotiation *conneg.NegotiationError
		unknown     *conneg.UnknownProfileError
		malformed   *models.MalformedAddressError
		upstream    *sparql.UpstreamQueryError
		unknownList *listcache.UnknownListError
	)
	switch {
	case errors.As(err, &negotiation):
		return dErrors.Wrap(err, dErrors.CodeNotAcceptable, negotiation.Error())
	case errors.As(err, &unknown):
		return dErrors.Wrap(err, dErrors.CodeProfileNotFound, unknown.Error())
	case errors.As(err, &malformed):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, malformed.Error())
	case errors.As(err, &unknownList):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, unknownList.Error())
	case errors.As(err, &upstream):
		s.logger.ErrorContext(ctx, "sparql query failed",
			"request_id", requestcontext.RequestID(ctx),
			"form", string(upstream.Form),
			"status", upstream.Status,
			"timeout", upstream.Timeout,
			"query", upstream.Query,
			"body", upstream.Body,
			"error", err,
		)
		return dErrors.Wrap(err, dErrors.CodeUpstream, "the vocabulary store could not answer the request")
	}

	s.logger.ErrorContext(ctx, "unexpected failure rendering resource",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	return dErrors.Wrap(err, dErrors.CodeInternal, "internal error")
}
