package preview

import (
	"sync"

	"github.com/goliatone/go-portfolio-cms/pkg/locale"
)

// Editor is the publishing side of the synchroniser. It owns the edit buffer
// state and pushes a complete snapshot on every state change and whenever
// the rendering side announces readiness. Rapid successive edits may
// supersede in-flight updates; only the latest snapshot matters.
type Editor struct {
	mu      sync.Mutex
	out     Channel
	section string
	buffer  map[string]any
	lang    locale.Language
}

// NewEditor builds the editor side publishing to out.
func NewEditor(out Channel, lang locale.Language) *Editor {
	if !lang.Valid() {
		lang = locale.DefaultLanguage
	}
	return &Editor{out: out, lang: lang}
}

// Edit replaces the active section and buffer, then republishes.
func (e *Editor) Edit(section string, buffer map[string]any) {
	e.mu.Lock()
	e.section = section
	e.buffer = buffer
	e.mu.Unlock()
	e.publish()
}

// Update replaces the edit buffer for the current section, then republishes.
func (e *Editor) Update(buffer map[string]any) {
	e.mu.Lock()
	e.buffer = buffer
	e.mu.Unlock()
	e.publish()
}

// SetLanguage switches the preview display language, then republishes.
func (e *Editor) SetLanguage(lang locale.Language) {
	if !lang.Valid() {
		return
	}
	e.mu.Lock()
	e.lang = lang
	e.mu.Unlock()
	e.publish()
}

// Receive handles messages from the rendering side. A ready signal triggers
// a resend of the current state so a renderer that loaded late still gets a
// snapshot.
func (e *Editor) Receive(msg Message) {
	if msg.Type == TypeReady {
		e.publish()
	}
}

// Snapshot returns the current publish state.
func (e *Editor) Snapshot() Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Message{Type: TypeUpdate, Section: e.section, Data: e.buffer, Lang: e.lang}
}

func (e *Editor) publish() {
	msg := e.Snapshot()
	if msg.Section == "" {
		return
	}
	// Fire and forget: a failed or dropped delivery is repaired by the next
	// edit, which resends full state.
	_ = e.out.Send(msg)
}
