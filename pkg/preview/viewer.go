package preview

import (
	"sync"

	"github.com/goliatone/go-portfolio-cms/pkg/locale"
)

// RenderFunc presents one section's language-resolved content. It receives
// the section key, the document already narrowed to the active language, and
// that language for presentation decisions.
type RenderFunc func(section string, localized any, lang locale.Language)

// Viewer is the rendering side of the synchroniser. It announces readiness,
// keeps only the latest update, and resolves the raw snapshot down to the
// active language before dispatching to the presentational layer.
type Viewer struct {
	mu     sync.Mutex
	out    Channel
	render RenderFunc
	last   *Message
}

// NewViewer builds the rendering side, replying on out.
func NewViewer(out Channel, render RenderFunc) *Viewer {
	return &Viewer{out: out, render: render}
}

// Start announces readiness to the editor side.
func (v *Viewer) Start() error {
	return v.out.Send(Message{Type: TypeReady})
}

// Receive handles an incoming message. Updates overwrite whatever came
// before ("last message wins") and trigger a re-render.
func (v *Viewer) Receive(msg Message) {
	if msg.Type != TypeUpdate {
		return
	}

	v.mu.Lock()
	stored := msg
	v.last = &stored
	render := v.render
	v.mu.Unlock()

	if render != nil {
		render(msg.Section, locale.Resolve(msg.Data, msg.Lang), msg.Lang)
	}
}

// Last returns the most recent update, if any arrived yet.
func (v *Viewer) Last() (Message, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.last == nil {
		return Message{}, false
	}
	return *v.last, true
}
