package form

import "testing"

func TestItemTitle_ProbeOrder(t *testing.T) {
	cases := []struct {
		name string
		item Document
		want string
	}{
		{
			name: "title wins over everything",
			item: Document{
				"en": Document{"title": "Vue Project", "name": "ignored"},
			},
			want: "Vue Project",
		},
		{
			name: "indonesian branch fills missing english",
			item: Document{
				"en": Document{},
				"id": Document{"title": "Proyek Vue"},
			},
			want: "Proyek Vue",
		},
		{
			name: "name before platform",
			item: Document{
				"en":       Document{"name": "Jane"},
				"platform": "github",
			},
			want: "Jane",
		},
		{
			name: "platform is capitalized",
			item: Document{"platform": "github"},
			want: "Github",
		},
		{
			name: "position and company combine",
			item: Document{
				"en":      Document{"position": "Dev", "company": "Acme"},
			},
			want: "Dev at Acme",
		},
		{
			name: "position alone",
			item: Document{
				"en": Document{"position": "Dev"},
			},
			want: "Dev",
		},
		{
			name: "institution",
			item: Document{
				"en": Document{"institution": "ITB"},
			},
			want: "ITB",
		},
		{
			name: "role and organization combine",
			item: Document{
				"en": Document{"role": "Member", "organization": "GDG"},
			},
			want: "Member at GDG",
		},
		{
			name: "direct localized title",
			item: Document{
				"title": Document{"en": "Gold Medal", "id": "Medali Emas"},
			},
			want: "Gold Medal",
		},
		{
			name: "direct localized title falls back to indonesian",
			item: Document{
				"title": Document{"id": "Medali Emas"},
			},
			want: "Medali Emas",
		},
		{
			name: "positional fallback",
			item: Document{},
			want: "Item 3",
		},
		{
			name: "nil item",
			item: nil,
			want: "Item 3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ItemTitle(tc.item, 2); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
