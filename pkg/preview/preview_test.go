package preview

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-portfolio-cms/pkg/locale"
)

// wire connects an editor and a viewer in-process through two relays.
func wire(t *testing.T, lang locale.Language, render RenderFunc) (*Editor, *Viewer) {
	t.Helper()

	toViewer := &Relay{}
	toEditor := &Relay{}

	editor := NewEditor(toViewer, lang)
	viewer := NewViewer(toEditor, render)

	toViewer.Bind(func(msg Message) error {
		viewer.Receive(msg)
		return nil
	})
	toEditor.Bind(func(msg Message) error {
		editor.Receive(msg)
		return nil
	})
	return editor, viewer
}

func TestEditorPublishesSnapshotOnEdit(t *testing.T) {
	var rendered []any
	editor, viewer := wire(t, locale.Indonesian, func(section string, localized any, lang locale.Language) {
		rendered = append(rendered, localized)
	})

	editor.Edit("hero", map[string]any{
		"name": map[string]any{"en": "Jane", "id": "Jane"},
		"description": map[string]any{
			"en": "Engineer",
			"id": "Insinyur",
		},
	})

	last, ok := viewer.Last()
	if !ok {
		t.Fatalf("expected viewer to receive an update")
	}
	if last.Type != TypeUpdate || last.Section != "hero" || last.Lang != locale.Indonesian {
		t.Fatalf("unexpected update frame %+v", last)
	}

	if len(rendered) != 1 {
		t.Fatalf("expected one render, got %d", len(rendered))
	}
	want := map[string]any{"name": "Jane", "description": "Insinyur"}
	if diff := cmp.Diff(want, rendered[0]); diff != "" {
		t.Fatalf("rendered content mismatch (-want +got):\n%s", diff)
	}
}

func TestReadyTriggersResend(t *testing.T) {
	renders := 0
	editor, viewer := wire(t, locale.English, func(string, any, locale.Language) {
		renders++
	})

	editor.Edit("footer", map[string]any{
		"rights": map[string]any{"en": "All rights reserved", "id": "Hak cipta"},
	})
	if renders != 1 {
		t.Fatalf("expected initial render, got %d", renders)
	}

	// A preview window that reloads announces readiness and gets the current
	// snapshot again.
	if err := viewer.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if renders != 2 {
		t.Fatalf("expected resend after ready, got %d renders", renders)
	}
}

func TestEditorWithoutSectionStaysQuiet(t *testing.T) {
	sent := 0
	editor := NewEditor(ChannelFunc(func(Message) error {
		sent++
		return nil
	}), locale.English)

	// Nothing selected yet: ready and language changes have nothing to send.
	editor.Receive(Message{Type: TypeReady})
	editor.SetLanguage(locale.Indonesian)
	if sent != 0 {
		t.Fatalf("expected no publishes before a section is selected, got %d", sent)
	}
}

func TestLanguageSwitchRepublishes(t *testing.T) {
	var langs []locale.Language
	editor, _ := wire(t, locale.English, func(_ string, _ any, lang locale.Language) {
		langs = append(langs, lang)
	})

	editor.Edit("hero", map[string]any{
		"name": map[string]any{"en": "Jane", "id": "Jane"},
	})
	editor.SetLanguage(locale.Indonesian)

	want := []locale.Language{locale.English, locale.Indonesian}
	if diff := cmp.Diff(want, langs); diff != "" {
		t.Fatalf("render language sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestLastUpdateWins(t *testing.T) {
	editor, viewer := wire(t, locale.English, nil)

	editor.Edit("hero", map[string]any{"image": "/v1.png"})
	editor.Update(map[string]any{"image": "/v2.png"})

	last, ok := viewer.Last()
	if !ok {
		t.Fatalf("expected updates to arrive")
	}
	if last.Data["image"] != "/v2.png" {
		t.Fatalf("expected latest snapshot kept, got %+v", last.Data)
	}
}

func TestRelayDropsWhenUnbound(t *testing.T) {
	relay := &Relay{}
	editor := NewEditor(relay, locale.English)

	// No receiver yet: the publish is dropped, not an error.
	editor.Edit("hero", map[string]any{"image": "/hero.png"})

	viewer := NewViewer(ChannelFunc(func(Message) error { return nil }), nil)
	relay.Bind(func(msg Message) error {
		viewer.Receive(msg)
		return nil
	})

	if _, ok := viewer.Last(); ok {
		t.Fatalf("expected dropped message to stay dropped")
	}

	// The ready handshake repairs the gap.
	editor.Receive(Message{Type: TypeReady})
	last, ok := viewer.Last()
	if !ok || last.Data["image"] != "/hero.png" {
		t.Fatalf("expected resend after binding, got %+v", last)
	}
}
