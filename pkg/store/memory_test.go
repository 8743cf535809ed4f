package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemory_LoadUnsavedSectionIsEmpty(t *testing.T) {
	m := NewMemory()

	doc, err := m.Load(context.Background(), "hero")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %+v", doc)
	}
}

func TestMemory_SaveThenLoadRoundTrips(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	doc := map[string]any{
		"name": map[string]any{"en": "Jane", "id": "Jane"},
		"tags": []any{"Backend"},
	}

	saved, err := m.Save(ctx, "hero", doc)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if diff := cmp.Diff(doc, saved); diff != "" {
		t.Fatalf("saved document mismatch (-want +got):\n%s", diff)
	}

	loaded, err := m.Load(ctx, "hero")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(doc, loaded); diff != "" {
		t.Fatalf("loaded document mismatch (-want +got):\n%s", diff)
	}
}

func TestMemory_SaveIsUpsertLastWriteWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Save(ctx, "footer", map[string]any{"rights": "v1"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := m.Save(ctx, "footer", map[string]any{"rights": "v2"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _ := m.Load(ctx, "footer")
	if loaded["rights"] != "v2" {
		t.Fatalf("expected last write to win, got %+v", loaded)
	}
}

func TestMemory_StoredDocumentIsIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	doc := map[string]any{"nested": map[string]any{"value": "original"}}
	if _, err := m.Save(ctx, "hero", doc); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	doc["nested"].(map[string]any)["value"] = "mutated"

	loaded, _ := m.Load(ctx, "hero")
	if loaded["nested"].(map[string]any)["value"] != "original" {
		t.Fatalf("expected stored document isolated from caller, got %+v", loaded)
	}

	// Mutating a loaded copy must not leak either.
	loaded["nested"].(map[string]any)["value"] = "mutated again"
	reloaded, _ := m.Load(ctx, "hero")
	if reloaded["nested"].(map[string]any)["value"] != "original" {
		t.Fatalf("expected loads to return independent copies, got %+v", reloaded)
	}
}

func TestCollectionName(t *testing.T) {
	cases := map[string]string{
		"hero":               "Hero",
		"workExperience":     "WorkExperience",
		"educationAndAwards": "EducationAndAwards",
		"":                   "",
	}
	for in, want := range cases {
		if got := CollectionName(in); got != want {
			t.Fatalf("CollectionName(%q) = %q, want %q", in, got, want)
		}
	}
}
