package handler

import (
	"io"
	"mime"
	"net/http"

	"vocprez/internal/vocab/conneg"
	"vocprez/internal/vocab/profiles"
	dErrors "vocprez/pkg/domain-errors"
	"vocprez/pkg/platform/httputil"
)

const maxQueryBytes = 1 << 20

// handleSPARQL implements the query-via-GET, query-via-URL-encoded-POST and
// query-via-POST-directly forms of the SPARQL protocol. Without a query it
// serves the query page to browsers and the service description otherwise.
func (h *Handler) handleSPARQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := sparqlQuery(w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	accept := r.Header.Get("Accept")

	if q == "" {
		h.writeSPARQLLanding(w, accept)
		return
	}

	body, ct, err := h.service.SPARQL(ctx, q, accept)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteBody(w, http.StatusOK, ct, body)
}

func sparqlQuery(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.Method != http.MethodPost {
		return r.URL.Query().Get("query"), nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxQueryBytes)
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/sparql-query":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "query body could not be read")
		}
		return string(raw), nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "query form could not be parsed")
		}
		return r.PostForm.Get("query"), nil
	}
	return "", dErrors.New(dErrors.CodeBadRequest,
		"POST bodies must be application/sparql-query or application/x-www-form-urlencoded")
}

func (h *Handler) writeSPARQLLanding(w http.ResponseWriter, accept string) {
	mediaType := ""
	for _, mt := range conneg.ParseAccept(accept) {
		if mt == profiles.MediaHTML || mt == "application/sparql-results+json" || profiles.IsRDF(mt) {
			mediaType = mt
			break
		}
	}

	if mediaType == "" || !profiles.IsRDF(mediaType) {
		body, err := h.service.SPARQLPage()
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteBody(w, http.StatusOK, contentType(profiles.MediaHTML), body)
		return
	}
	body, err := h.service.SPARQLDescription(mediaType)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteBody(w, http.StatusOK, contentType(mediaType), body)
}
