package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"text/template"

	"vocprez/internal/vocab/profiles"
)

// TemplateRenderer draws a named HTML page.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// Page names.
const (
	PageDataset          = "dataset.html"
	PageContainer        = "container.html"
	PageContainerMembers = "container_mem.html"
	PageContainerAnno    = "container_contanno.html"
	PageCollection       = "collection.html"
	PageConcept          = "concept.html"
	PageScheme           = "scheme.html"
	PageMapping          = "mapping.html"
	PageAlternates       = "alternates.html"
	PageSPARQL           = "sparql.html"
)

// Page wraps every view model handed to the HTML templates.
type Page struct {
	Title        string
	URI          string
	ProfileToken string
	View         any
}

//go:embed templates/*.html
var htmlFS embed.FS

// HTMLTemplates is the embedded html/template implementation.
type HTMLTemplates struct {
	t *htmltemplate.Template
}

func NewHTMLTemplates() (*HTMLTemplates, error) {
	t, err := htmltemplate.New("pages").ParseFS(htmlFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &HTMLTemplates{t: t}, nil
}

// Render buffers the page so a template error never leaves a half-written
// response.
func (h *HTMLTemplates) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := h.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static RDF descriptions.
const (
	StaticDatasetDCAT   = "dataset_dcat.ttl"
	StaticDatasetSDO    = "dataset_sdo.ttl"
	StaticVoID          = "void.ttl"
	StaticSPARQLService = "sparql_service.ttl"
)

// StaticData fills the placeholders of the static Turtle documents.
type StaticData struct {
	SystemURI string
	DataURI   string
	Label     string
	Comment   string
}

//go:embed static/*.ttl
var staticFS embed.FS

var staticTemplates = template.Must(template.New("static").ParseFS(staticFS, "static/*.ttl"))

// Static renders one of the embedded Turtle documents in mediaType. Turtle
// is returned as written; every other serialization goes through the graph.
func Static(name string, data StaticData, mediaType string) ([]byte, error) {
	var buf bytes.Buffer
	if err := staticTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	if mediaType == profiles.MediaTurtle {
		return buf.Bytes(), nil
	}
	g, err := Decode(buf.Bytes(), profiles.MediaTurtle)
	if err != nil {
		return nil, err
	}
	return g.Bytes(mediaType)
}
