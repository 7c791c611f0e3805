package handler

import (
	"net/http"
	"net/url"
	"strings"

	"vocprez/internal/vocab/profiles"
	"vocprez/internal/vocab/service"
)

// contentType adds a charset to the textual media types.
func contentType(mediaType string) string {
	switch mediaType {
	case profiles.MediaHTML, profiles.MediaTurtle, profiles.MediaN3:
		return mediaType + "; charset=utf-8"
	}
	return mediaType
}

func writeNegotiationHeaders(w http.ResponseWriter, path string, rep *service.Representation) {
	header := w.Header()
	header.Set("Content-Profile", "<"+rep.Profile.URI+">")
	header.Add("Vary", "Accept")
	header.Add("Vary", "Accept-Profile")
	if link := linkHeader(path, rep); link != "" {
		header.Set("Link", link)
	}
}

// linkHeader names the served profile and one alternate per profile the
// resource offers, each at that profile's default media type.
func linkHeader(path string, rep *service.Representation) string {
	links := []string{"<" + rep.Profile.URI + `>; rel="profile"`}
	for _, p := range rep.Alternates.Profiles() {
		if p.Token == rep.Profile.Token {
			continue
		}
		q := url.Values{}
		q.Set("_profile", p.Token)
		q.Set("_mediatype", p.DefaultMediaType)
		links = append(links, "<"+path+"?"+q.Encode()+`>; rel="alternate"; type="`+
			p.DefaultMediaType+`"; profile="`+p.URI+`"`)
	}
	return strings.Join(links, ", ")
}
