// Package section implements the data service behind the admin editor:
// loading a section's raw bilingual document and saving it back after
// validation. One document per section, upsert on save, last write wins.
package section

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-portfolio-cms/pkg/auth"
	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/store"
	"github.com/goliatone/go-portfolio-cms/pkg/validation"
)

// Service loads and saves section documents against the document store.
type Service struct {
	registry *content.Registry
	docs     store.Store
	sanitize *bluemonday.Policy
}

// NewService wires the data service. The strict sanitizer strips any markup
// pasted into long-form text fields before it can reach the public site.
func NewService(registry *content.Registry, docs store.Store) *Service {
	return &Service{
		registry: registry,
		docs:     docs,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Load fetches the raw (all-languages) document for a section. A section
// that has never been saved yields an empty record, not an error; an unknown
// section key is rejected via content.ErrSchemaNotFound.
func (s *Service) Load(ctx context.Context, key string) (map[string]any, error) {
	if _, err := s.registry.Get(key); err != nil {
		return nil, err
	}
	return s.docs.Load(ctx, key)
}

// Save validates and persists a section document. It requires an
// authenticated actor, rejects sections without a validation rule set, and
// reports every failing field path at once via *validation.Error. Nothing is
// written unless the whole document passes.
func (s *Service) Save(ctx context.Context, actor auth.Actor, key string, doc map[string]any) (map[string]any, error) {
	if !actor.Authenticated() {
		return nil, auth.ErrUnauthorized
	}

	schema, err := s.registry.Get(key)
	if err != nil {
		return nil, err
	}
	rule, ok := validation.Section(key)
	if !ok || len(schema.Fields) == 0 {
		// Registered but without generic descriptors (settings): not editable
		// through this path.
		return nil, fmt.Errorf("%w: %q has no generic editor", content.ErrSchemaNotFound, key)
	}

	doc = s.sanitizeDocument(schema.Fields, doc)

	if err := validation.Check(rule, doc); err != nil {
		return nil, err
	}

	return s.docs.Save(ctx, key, doc)
}

// sanitizeDocument rewrites long-form text fields through the strict policy,
// guided by the descriptor tree so structured values stay untouched.
func (s *Service) sanitizeDocument(fields []content.Field, doc map[string]any) map[string]any {
	if doc == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	for _, field := range fields {
		value, ok := out[field.Name]
		if !ok {
			continue
		}
		out[field.Name] = s.sanitizeValue(field, value)
	}
	return out
}

func (s *Service) sanitizeValue(field content.Field, value any) any {
	switch field.Kind {
	case content.KindTextarea:
		if text, ok := value.(string); ok {
			return s.sanitize.Sanitize(text)
		}
	case content.KindObject:
		if record, ok := value.(map[string]any); ok {
			return s.sanitizeDocument(field.Children, record)
		}
	case content.KindArray:
		items, ok := value.([]any)
		if !ok {
			return value
		}
		out := make([]any, len(items))
		for i, item := range items {
			if record, ok := item.(map[string]any); ok {
				out[i] = s.sanitizeDocument(field.ItemChildren, record)
			} else {
				out[i] = item
			}
		}
		return out
	}
	return value
}
