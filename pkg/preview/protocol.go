// Package preview synchronises the in-progress edit buffer with an isolated
// rendering context. The two sides share no memory; they exchange typed
// messages over a Channel, and every update carries the full snapshot so a
// lost message is repaired by the next edit.
package preview

import (
	"sync"

	"github.com/goliatone/go-portfolio-cms/pkg/locale"
)

// MessageType discriminates protocol messages.
type MessageType string

const (
	// TypeReady is sent by the rendering context once it can receive updates.
	TypeReady MessageType = "PREVIEW_READY"
	// TypeUpdate carries the full edit state from editor to renderer.
	TypeUpdate MessageType = "UPDATE_PREVIEW"
)

// Message is one protocol frame. Update messages always carry a complete
// snapshot, never a delta.
type Message struct {
	Type    MessageType     `json:"type"`
	Section string          `json:"section,omitempty"`
	Data    map[string]any  `json:"data,omitempty"`
	Lang    locale.Language `json:"lang,omitempty"`
}

// Channel delivers messages across the context boundary. Delivery is
// fire-and-forget: senders never block on acknowledgement.
type Channel interface {
	Send(Message) error
}

// ChannelFunc adapts a function to the Channel interface.
type ChannelFunc func(Message) error

// Send implements Channel.
func (f ChannelFunc) Send(msg Message) error { return f(msg) }

// Relay is a Channel whose receiving side may attach later. Messages sent
// before Bind are dropped on purpose: the ready handshake exists so the
// editor resends once the other side is listening, and every message is a
// full snapshot anyway.
type Relay struct {
	mu     sync.RWMutex
	target func(Message) error
}

// Bind attaches the receiving side.
func (r *Relay) Bind(fn func(Message) error) {
	r.mu.Lock()
	r.target = fn
	r.mu.Unlock()
}

// Send implements Channel.
func (r *Relay) Send(msg Message) error {
	r.mu.RLock()
	target := r.target
	r.mu.RUnlock()

	if target == nil {
		return nil
	}
	return target(msg)
}
