// Package portfolio re-exports the building blocks of the bilingual
// portfolio CMS and offers convenience entry points for embedding the
// editor into another service.
package portfolio

import (
	"context"

	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/form"
	"github.com/goliatone/go-portfolio-cms/pkg/locale"
	"github.com/goliatone/go-portfolio-cms/pkg/render"
	renderhtml "github.com/goliatone/go-portfolio-cms/pkg/render/html"
)

// Document is a raw bilingual section document.
type Document = form.Document

// Language is a supported content language code.
type Language = locale.Language

// Page aliases render.Page for callers driving a renderer directly.
type Page = render.Page

// Sections returns every registered section key in declaration order.
func Sections() []string {
	return content.NewRegistry().Sections()
}

// Localize narrows a raw bilingual value down to one language. Values that
// are not localized pass through structurally unchanged.
func Localize(value any, lang Language) any {
	return locale.Resolve(value, lang)
}

// BuildView binds a section's descriptors to a document, producing the
// renderable control tree.
func BuildView(section string, doc Document) (form.View, error) {
	schema, err := content.NewRegistry().Get(section)
	if err != nil {
		return form.View{}, err
	}
	return form.BuildView(schema.Fields, doc)
}

// RenderHTML renders a section's editor form as a standalone HTML page. It
// is the simplest entry point for callers that just want markup.
func RenderHTML(ctx context.Context, section string, doc Document, lang Language) ([]byte, error) {
	registry := content.NewRegistry()
	schema, err := registry.Get(section)
	if err != nil {
		return nil, err
	}

	view, err := form.BuildView(schema.Fields, doc)
	if err != nil {
		return nil, err
	}

	renderer, err := renderhtml.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.Page{
		Section:  section,
		Title:    schema.Name,
		Language: lang,
		View:     view,
	})
}
