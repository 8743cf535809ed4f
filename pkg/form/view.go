package form

import (
	"fmt"

	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/locale"
)

// View is the renderable control tree for one descriptor list bound to one
// data snapshot. It is plain data so renderers stay thin bindings and the
// core remains testable without any UI framework.
type View struct {
	Controls []Control
}

// Control is one rendered slot. Exactly one of the kind-specific members is
// populated, matching the descriptor's kind.
type Control struct {
	Name    string
	Label   string
	Kind    content.Kind
	Value   string           // text, textarea, image, select
	Options []content.Option // select
	Items   []string         // list
	Object  *View            // object
	Array   []ArrayItem      // array
	Split   *LanguageSplit   // language-split object pair
}

// ArrayItem is one record of an array field, presented as a summary card that
// opens a nested form.
type ArrayItem struct {
	Title string
	Form  View
}

// LanguageSplit presents the en/id descriptor pair as two parallel tabs so
// both variants of one structured field can be edited side by side instead of
// as generic objects named after language codes.
type LanguageSplit struct {
	Tabs []LanguageTab
}

// LanguageTab is one language branch of a split control.
type LanguageTab struct {
	Language locale.Language
	Label    string
	Form     View
}

// BuildView renders a descriptor list against a data snapshot. Missing or
// mistyped sub-data defaults to empty records and sequences, so a section
// that has never been saved still produces an editable form.
func BuildView(fields []content.Field, data Document) (View, error) {
	if split, ok := languageSplit(fields); ok {
		tabs := make([]LanguageTab, 0, len(split))
		for _, field := range split {
			sub, err := BuildView(field.Children, ObjectAt(data, field.Name))
			if err != nil {
				return View{}, err
			}
			tabs = append(tabs, LanguageTab{
				Language: locale.Language(field.Name),
				Label:    field.Label,
				Form:     sub,
			})
		}
		return View{Controls: []Control{{
			Kind:  content.KindObject,
			Split: &LanguageSplit{Tabs: tabs},
		}}}, nil
	}

	controls := make([]Control, 0, len(fields))
	for _, field := range fields {
		control, err := buildControl(field, data)
		if err != nil {
			return View{}, err
		}
		controls = append(controls, control)
	}
	return View{Controls: controls}, nil
}

func buildControl(field content.Field, data Document) (Control, error) {
	control := Control{Name: field.Name, Label: field.Label, Kind: field.Kind}

	switch field.Kind {
	case content.KindText, content.KindTextarea, content.KindImage:
		control.Value = StringAt(data, field.Name)
	case content.KindSelect:
		control.Value = StringAt(data, field.Name)
		control.Options = field.Options
	case content.KindList:
		control.Items = Strings(ListAt(data, field.Name))
	case content.KindObject:
		sub, err := BuildView(field.Children, ObjectAt(data, field.Name))
		if err != nil {
			return Control{}, err
		}
		control.Object = &sub
	case content.KindArray:
		items := ListAt(data, field.Name)
		control.Array = make([]ArrayItem, 0, len(items))
		for i, raw := range items {
			item, _ := raw.(map[string]any)
			sub, err := BuildView(field.ItemChildren, item)
			if err != nil {
				return Control{}, err
			}
			control.Array = append(control.Array, ArrayItem{
				Title: ItemTitle(item, i),
				Form:  sub,
			})
		}
	default:
		return Control{}, fmt.Errorf("form: field %q has unknown kind %q", field.Name, field.Kind)
	}

	return control, nil
}

// languageSplit reports whether a descriptor list is the conventional shape
// of a structured localized value: exactly the [en, id] pair, both objects.
func languageSplit(fields []content.Field) ([]content.Field, bool) {
	if len(fields) != 2 {
		return nil, false
	}
	if fields[0].Name != string(locale.English) || fields[1].Name != string(locale.Indonesian) {
		return nil, false
	}
	if fields[0].Kind != content.KindObject || fields[1].Kind != content.KindObject {
		return nil, false
	}
	return fields, true
}
