// Package html renders editor pages as server-side HTML using embedded
// pongo2 templates. Composite controls are composed in Go so the templates
// stay flat: each template renders one control shape, and nested trees are
// passed down as pre-rendered fragments.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/form"
	"github.com/goliatone/go-portfolio-cms/pkg/render"
)

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer is the server-side HTML surface.
type Renderer struct {
	engine *engine
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	return &Renderer{engine: newEngine(cfg.templateFS)}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, page render.Page) ([]byte, error) {
	body, err := r.renderView(page.View, "")
	if err != nil {
		return nil, fmt.Errorf("html: render %q: %w", page.Section, err)
	}

	out, err := r.engine.render("templates/form.tmpl", map[string]any{
		"section":  page.Section,
		"title":    page.Title,
		"language": string(page.Language),
		"body":     body,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// renderView concatenates the controls of one view. prefix is the dotted
// field path of the enclosing control, so input names line up with document
// paths ("experiences.0.en.position").
func (r *Renderer) renderView(view form.View, prefix string) (string, error) {
	var b strings.Builder
	for _, control := range view.Controls {
		fragment, err := r.renderControl(control, prefix)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}

func (r *Renderer) renderControl(control form.Control, prefix string) (string, error) {
	if control.Split != nil {
		return r.renderSplit(control, prefix)
	}

	name := joinPath(prefix, control.Name)
	data := map[string]any{
		"name":  name,
		"label": control.Label,
	}

	switch control.Kind {
	case content.KindText, content.KindImage:
		data["value"] = control.Value
		data["image"] = control.Kind == content.KindImage
		return r.engine.render("templates/input.tmpl", data)

	case content.KindTextarea:
		data["value"] = control.Value
		return r.engine.render("templates/textarea.tmpl", data)

	case content.KindSelect:
		options := make([]map[string]any, 0, len(control.Options))
		for _, opt := range control.Options {
			options = append(options, map[string]any{
				"value":    opt.Value,
				"label":    opt.Label,
				"selected": opt.Value == control.Value,
			})
		}
		data["options"] = options
		return r.engine.render("templates/select.tmpl", data)

	case content.KindList:
		items := make([]map[string]any, 0, len(control.Items))
		for i, item := range control.Items {
			items = append(items, map[string]any{
				"name":  name + "." + strconv.Itoa(i),
				"value": item,
			})
		}
		data["items"] = items
		return r.engine.render("templates/list.tmpl", data)

	case content.KindObject:
		body, err := r.renderView(*control.Object, name)
		if err != nil {
			return "", err
		}
		data["body"] = body
		return r.engine.render("templates/fieldset.tmpl", data)

	case content.KindArray:
		items := make([]map[string]any, 0, len(control.Array))
		for i, item := range control.Array {
			body, err := r.renderView(item.Form, name+"."+strconv.Itoa(i))
			if err != nil {
				return "", err
			}
			items = append(items, map[string]any{
				"title": item.Title,
				"body":  body,
			})
		}
		data["items"] = items
		return r.engine.render("templates/array.tmpl", data)
	}

	return "", fmt.Errorf("html: control %q has unknown kind %q", name, control.Kind)
}

func (r *Renderer) renderSplit(control form.Control, prefix string) (string, error) {
	tabs := make([]map[string]any, 0, len(control.Split.Tabs))
	for _, tab := range control.Split.Tabs {
		body, err := r.renderView(tab.Form, joinPath(prefix, string(tab.Language)))
		if err != nil {
			return "", err
		}
		tabs = append(tabs, map[string]any{
			"language": string(tab.Language),
			"label":    tab.Label,
			"body":     body,
		})
	}
	return r.engine.render("templates/tabs.tmpl", map[string]any{"tabs": tabs})
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	if name == "" {
		return prefix
	}
	return prefix + "." + name
}
