package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_SectionsInDeclarationOrder(t *testing.T) {
	registry := NewRegistry()

	want := []string{
		"nav", "hero", "workExperience", "educationAndAwards",
		"projects", "contact", "footer", "settings",
	}
	if diff := cmp.Diff(want, registry.Sections()); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_GetUnknownSection(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("blog")
	if !errors.Is(err, ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound, got %v", err)
	}

	if _, ok := registry.Lookup("blog"); ok {
		t.Fatalf("expected Lookup miss for unknown section")
	}
}

func TestRegistry_EveryDescriptorPassesCheck(t *testing.T) {
	if err := NewRegistry().Check(); err != nil {
		t.Fatalf("descriptor invariants violated: %v", err)
	}
}

func TestRegistry_SettingsHasNoDescriptors(t *testing.T) {
	registry := NewRegistry()

	schema, err := registry.Get("settings")
	if err != nil {
		t.Fatalf("expected settings to be registered: %v", err)
	}
	if len(schema.Fields) != 0 {
		t.Fatalf("expected settings to carry no generic descriptors, got %+v", schema.Fields)
	}
}

func TestLocalizedHelperShape(t *testing.T) {
	field := localized("description", "Description", KindTextarea)

	if field.Kind != KindObject || len(field.Children) != 2 {
		t.Fatalf("expected bilingual object wrapper, got %+v", field)
	}
	if field.Children[0].Name != "en" || field.Children[1].Name != "id" {
		t.Fatalf("expected en before id, got %+v", field.Children)
	}
	if field.Children[0].Kind != KindTextarea || field.Children[1].Kind != KindTextarea {
		t.Fatalf("expected leaf kind carried into both branches, got %+v", field.Children)
	}
}

func TestFieldCheck_CompositeInvariants(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		ok    bool
	}{
		{"text leaf", Field{Name: "x", Label: "X", Kind: KindText}, true},
		{"object without children", Field{Name: "x", Label: "X", Kind: KindObject}, false},
		{"array without item schema", Field{Name: "x", Label: "X", Kind: KindArray}, false},
		{"select without options", Field{Name: "x", Label: "X", Kind: KindSelect}, false},
		{"unnamed field", Field{Label: "X", Kind: KindText}, false},
		{
			"valid array",
			Field{Name: "x", Label: "X", Kind: KindArray, ItemChildren: []Field{{Name: "y", Label: "Y", Kind: KindText}}},
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.field.Check()
			if tc.ok && err != nil {
				t.Fatalf("expected valid descriptor, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invariant violation")
			}
		})
	}
}
