package preview

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub bridges the protocol over websockets so a preview window running in a
// separate process can subscribe. The editor side publishes through the hub
// as a Channel; connected preview clients receive every update as JSON, and
// their ready frames are forwarded back to a registered receiver.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	conns   map[*websocket.Conn]struct{}
	receive func(Message)
}

// NewHub builds a websocket bridge.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The admin surface sits behind bearer auth; the preview socket
			// only ever carries content the editor is about to publish.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Notify registers the editor-side receiver for frames coming back from
// preview clients, usually Editor.Receive.
func (h *Hub) Notify(fn func(Message)) {
	h.mu.Lock()
	h.receive = fn
	h.mu.Unlock()
}

// Send implements Channel by broadcasting the message to every connected
// preview client. A client that fails to receive is disconnected; the next
// snapshot repairs any client that reconnects.
func (h *Hub) Send(msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Warn("preview client write failed, dropping", zap.Error(err))
			conn.Close()
			delete(h.conns, conn)
		}
	}
	return nil
}

// Clients reports the number of connected preview windows.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// ServeHTTP upgrades the request to a websocket and pumps incoming frames
// until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("preview upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	h.log.Debug("preview client connected", zap.String("remote", conn.RemoteAddr().String()))

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("preview client read failed", zap.Error(err))
			}
			return
		}

		h.mu.Lock()
		receive := h.receive
		h.mu.Unlock()
		if receive != nil {
			receive(msg)
		}
	}
}
