package media

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Library for tests and dev mode. Content bytes are
// held in memory; URLs point at a fake host.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	now     func() time.Time
}

type memoryObject struct {
	meta    Object
	content []byte
}

// NewMemory returns an empty in-memory library.
func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string]memoryObject),
		now:     time.Now,
	}
}

// List implements Library.
func (m *Memory) List(_ context.Context) ([]Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	objects := make([]Object, 0, len(m.objects))
	for _, obj := range m.objects {
		objects = append(objects, obj.meta)
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UploadedAt.After(objects[j].UploadedAt)
	})
	return objects, nil
}

// Put implements Library.
func (m *Memory) Put(_ context.Context, filename, contentType string, content io.Reader) (Object, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return Object{}, err
	}

	name := uuid.NewString() + "-" + filename
	meta := Object{
		Name:        name,
		URL:         "https://media.invalid/" + name,
		Size:        int64(len(data)),
		ContentType: contentType,
		UploadedAt:  m.now(),
	}

	m.mu.Lock()
	m.objects[name] = memoryObject{meta: meta, content: data}
	m.mu.Unlock()
	return meta, nil
}

// Delete implements Library.
func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[name]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, name)
	return nil
}

// Content returns the stored bytes, for tests.
func (m *Memory) Content(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[name]
	return obj.content, ok
}
