package form

import (
	"testing"

	"github.com/goliatone/go-portfolio-cms/pkg/content"
)

func heroFields() []content.Field {
	return []content.Field{
		{Name: "image", Label: "Hero Image", Kind: content.KindImage},
		{
			Name: "name", Label: "Name", Kind: content.KindObject,
			Children: []content.Field{
				{Name: "en", Label: "English", Kind: content.KindText},
				{Name: "id", Label: "Indonesian", Kind: content.KindText},
			},
		},
		{Name: "tags", Label: "Tags", Kind: content.KindList},
		{
			Name: "status", Label: "Status", Kind: content.KindSelect,
			Options: []content.Option{
				{Label: "Available", Value: "available"},
				{Label: "Busy", Value: "busy"},
			},
		},
	}
}

func TestBuildView_BindsValues(t *testing.T) {
	data := Document{
		"image":  "/hero.png",
		"name":   Document{"en": "Jane", "id": "Jane"},
		"tags":   []any{"Backend", "Cloud"},
		"status": "busy",
	}

	view, err := BuildView(heroFields(), data)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}
	if len(view.Controls) != 4 {
		t.Fatalf("expected 4 controls, got %d", len(view.Controls))
	}

	if view.Controls[0].Value != "/hero.png" {
		t.Fatalf("expected image value bound, got %q", view.Controls[0].Value)
	}

	name := view.Controls[1]
	if name.Object == nil {
		t.Fatalf("expected localized text to stay an object control, got %+v", name)
	}
	if name.Object.Controls[0].Value != "Jane" {
		t.Fatalf("expected nested value bound, got %+v", name.Object.Controls)
	}

	tags := view.Controls[2]
	if len(tags.Items) != 2 || tags.Items[0] != "Backend" {
		t.Fatalf("expected list items bound, got %+v", tags.Items)
	}

	status := view.Controls[3]
	if status.Value != "busy" || len(status.Options) != 2 {
		t.Fatalf("expected select value and options bound, got %+v", status)
	}
}

func TestBuildView_EmptyDocumentStillRenders(t *testing.T) {
	view, err := BuildView(heroFields(), nil)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}
	if len(view.Controls) != 4 {
		t.Fatalf("expected every descriptor to produce a control, got %d", len(view.Controls))
	}
	if view.Controls[0].Value != "" {
		t.Fatalf("expected empty value for unsaved section, got %q", view.Controls[0].Value)
	}
}

func TestBuildView_ArrayItemsGetTitles(t *testing.T) {
	fields := []content.Field{
		{
			Name: "experiences", Label: "Experiences", Kind: content.KindArray,
			ItemChildren: []content.Field{
				{
					Name: "en", Label: "English", Kind: content.KindObject,
					Children: []content.Field{
						{Name: "position", Label: "Position", Kind: content.KindText},
					},
				},
				{
					Name: "id", Label: "Indonesian", Kind: content.KindObject,
					Children: []content.Field{
						{Name: "position", Label: "Position", Kind: content.KindText},
					},
				},
				{Name: "company", Label: "Company", Kind: content.KindText},
			},
		},
	}
	data := Document{
		"experiences": []any{
			map[string]any{
				"en":      map[string]any{"position": "Dev"},
				"id":      map[string]any{"position": "Pengembang"},
				"company": "Acme",
			},
			map[string]any{},
		},
	}

	view, err := BuildView(fields, data)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}

	items := view.Controls[0].Array
	if len(items) != 2 {
		t.Fatalf("expected two array items, got %d", len(items))
	}
	if items[0].Title != "Dev at Acme" {
		t.Fatalf("expected derived item title, got %q", items[0].Title)
	}
	if items[1].Title != "Item 2" {
		t.Fatalf("expected positional fallback title, got %q", items[1].Title)
	}
}

func TestBuildView_LanguageSplitOnObjectPair(t *testing.T) {
	fields := []content.Field{
		{
			Name: "cta", Label: "Call to Action", Kind: content.KindObject,
			Children: []content.Field{
				{
					Name: "en", Label: "English", Kind: content.KindObject,
					Children: []content.Field{
						{Name: "label", Label: "Label", Kind: content.KindText},
						{Name: "url", Label: "URL", Kind: content.KindText},
					},
				},
				{
					Name: "id", Label: "Indonesian", Kind: content.KindObject,
					Children: []content.Field{
						{Name: "label", Label: "Label", Kind: content.KindText},
						{Name: "url", Label: "URL", Kind: content.KindText},
					},
				},
			},
		},
	}
	data := Document{
		"cta": Document{
			"en": Document{"label": "Hire me", "url": "/contact"},
			"id": Document{"label": "Rekrut saya", "url": "/contact"},
		},
	}

	view, err := BuildView(fields, data)
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}

	cta := view.Controls[0]
	if cta.Object == nil || len(cta.Object.Controls) != 1 {
		t.Fatalf("expected cta object to contain one split control, got %+v", cta)
	}

	split := cta.Object.Controls[0].Split
	if split == nil {
		t.Fatalf("expected en/id object pair to become a language split")
	}
	if len(split.Tabs) != 2 || split.Tabs[0].Language != "en" || split.Tabs[1].Language != "id" {
		t.Fatalf("expected en and id tabs in order, got %+v", split.Tabs)
	}
	if split.Tabs[1].Form.Controls[0].Value != "Rekrut saya" {
		t.Fatalf("expected nested value bound inside tab, got %+v", split.Tabs[1].Form)
	}
}

func TestBuildView_SplitNeedsExactPair(t *testing.T) {
	fields := []content.Field{
		{
			Name: "en", Label: "English", Kind: content.KindObject,
			Children: []content.Field{{Name: "x", Label: "X", Kind: content.KindText}},
		},
	}

	view, err := BuildView(fields, Document{})
	if err != nil {
		t.Fatalf("BuildView returned error: %v", err)
	}
	if view.Controls[0].Split != nil {
		t.Fatalf("expected single object to stay a fieldset, got split")
	}
	if view.Controls[0].Object == nil {
		t.Fatalf("expected object control, got %+v", view.Controls[0])
	}
}

func TestBuildView_UnknownKindFails(t *testing.T) {
	fields := []content.Field{{Name: "x", Label: "X", Kind: content.Kind("mystery")}}

	if _, err := BuildView(fields, Document{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
