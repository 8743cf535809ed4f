// Package store persists section documents. Each section owns at most one
// document; loads of never-saved sections yield an empty record rather than
// an error so brand-new sections can be edited from scratch, and saves are
// plain upserts with last-write-wins semantics.
package store

import (
	"context"
	"strings"
)

// Store is the narrow document-store contract the data service depends on.
type Store interface {
	// Load fetches the raw (all-languages) document for a section. An absent
	// document is returned as an empty record with a nil error.
	Load(ctx context.Context, section string) (map[string]any, error)
	// Save upserts the singleton document for a section and returns the
	// persisted content.
	Save(ctx context.Context, section string, doc map[string]any) (map[string]any, error)
}

// CollectionName maps a section key to its collection: the capitalized
// section name, one collection per section.
func CollectionName(section string) string {
	if section == "" {
		return ""
	}
	return strings.ToUpper(section[:1]) + section[1:]
}
