// Package render defines the contract between the editor core and the
// surfaces that present it. Renderers consume the plain control tree and
// produce bytes; nothing in the core depends on any UI technology.
package render

import (
	"context"

	"github.com/goliatone/go-portfolio-cms/pkg/form"
	"github.com/goliatone/go-portfolio-cms/pkg/locale"
)

// Page is one editor screen: a section's control tree plus the chrome data
// the surface needs around it.
type Page struct {
	// Section is the section key, used for form routing.
	Section string
	// Title is the human heading for the screen.
	Title string
	// Language is the admin display language.
	Language locale.Language
	// View is the bound control tree.
	View form.View
}

// Renderer converts a page into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page) ([]byte, error)
}
