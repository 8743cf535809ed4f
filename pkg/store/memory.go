package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store used by tests and dev mode. Documents are
// deep-copied on both paths so callers can never alias stored state.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]map[string]any)}
}

// Load implements Store.
func (m *Memory) Load(_ context.Context, section string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[section]
	if !ok {
		return map[string]any{}, nil
	}
	return copyDocument(doc), nil
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, section string, doc map[string]any) (map[string]any, error) {
	stored := copyDocument(doc)

	m.mu.Lock()
	m.docs[section] = stored
	m.mu.Unlock()

	return copyDocument(stored), nil
}

func copyDocument(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = copyValue(value)
	}
	return out
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyDocument(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	default:
		return value
	}
}
