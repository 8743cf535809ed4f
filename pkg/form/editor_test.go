package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetField_DoesNotMutateSnapshot(t *testing.T) {
	before := Document{"email": "old@example.com"}

	after := SetField(before, "email", "new@example.com")

	if before["email"] != "old@example.com" {
		t.Fatalf("expected original snapshot untouched, got %+v", before)
	}
	if after["email"] != "new@example.com" {
		t.Fatalf("expected updated field, got %+v", after)
	}
}

func TestSetPath_MaterialisesMissingRecords(t *testing.T) {
	after := SetPath(Document{}, []string{"cta", "en", "label"}, "Hire me")

	want := Document{
		"cta": Document{
			"en": Document{"label": "Hire me"},
		},
	}
	if diff := cmp.Diff(want, after); diff != "" {
		t.Fatalf("path update mismatch (-want +got):\n%s", diff)
	}
}

func TestSetPath_PreservesSiblings(t *testing.T) {
	before := Document{
		"cta": Document{
			"en": Document{"label": "Hire me", "url": "/contact"},
		},
		"tags": []any{"Go"},
	}

	after := SetPath(before, []string{"cta", "en", "label"}, "Contact")

	cta := ObjectAt(ObjectAt(after, "cta"), "en")
	if cta["label"] != "Contact" || cta["url"] != "/contact" {
		t.Fatalf("expected sibling values preserved, got %+v", cta)
	}
	if len(ListAt(after, "tags")) != 1 {
		t.Fatalf("expected untouched branches to survive, got %+v", after)
	}
}

func TestListReducers_RoundTrip(t *testing.T) {
	data := Document{}

	data = AppendListItem(data, "tags")
	data = UpdateListItem(data, "tags", 0, "Backend")
	data = AppendListItem(data, "tags")
	data = UpdateListItem(data, "tags", 1, "Cloud")

	if diff := cmp.Diff([]string{"Backend", "Cloud"}, Strings(ListAt(data, "tags"))); diff != "" {
		t.Fatalf("list state mismatch (-want +got):\n%s", diff)
	}

	data = RemoveListItem(data, "tags", 0)
	if diff := cmp.Diff([]string{"Cloud"}, Strings(ListAt(data, "tags"))); diff != "" {
		t.Fatalf("list state after remove mismatch (-want +got):\n%s", diff)
	}
}

func TestListReducers_StaleIndexIsNoOp(t *testing.T) {
	before := Document{"tags": []any{"Go"}}

	if after := UpdateListItem(before, "tags", 5, "x"); !cmp.Equal(before, after) {
		t.Fatalf("expected out-of-range update to return snapshot, got %+v", after)
	}
	if after := RemoveListItem(before, "tags", -1); !cmp.Equal(before, after) {
		t.Fatalf("expected out-of-range remove to return snapshot, got %+v", after)
	}
}

func TestArrayReducers_RoundTrip(t *testing.T) {
	data := Document{}

	data = AppendArrayItem(data, "experiences")
	item := Document{
		"en":      Document{"position": "Developer"},
		"id":      Document{"position": "Pengembang"},
		"company": "Acme",
	}
	data = UpdateArrayItem(data, "experiences", 0, item)

	items := ListAt(data, "experiences")
	if len(items) != 1 {
		t.Fatalf("expected one record, got %d", len(items))
	}
	if diff := cmp.Diff(item, items[0]); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	data = RemoveArrayItem(data, "experiences", 0)
	if len(ListAt(data, "experiences")) != 0 {
		t.Fatalf("expected empty array after remove, got %+v", data)
	}
}

func TestAccessors_DefaultOnMissingOrMistyped(t *testing.T) {
	data := Document{"count": 3, "nested": "not a record"}

	if got := ObjectAt(data, "nested"); len(got) != 0 {
		t.Fatalf("expected empty record for mistyped field, got %+v", got)
	}
	if got := ObjectAt(nil, "anything"); len(got) != 0 {
		t.Fatalf("expected empty record for nil document, got %+v", got)
	}
	if got := ListAt(data, "count"); got != nil {
		t.Fatalf("expected nil sequence for mistyped field, got %+v", got)
	}
	if got := StringAt(data, "count"); got != "" {
		t.Fatalf("expected empty string for mistyped field, got %q", got)
	}
}
