// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is the envelope pushed to dashboard clients.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans queue and ledger changes out to every connected dashboard.
type Hub struct {
	clients map[*websocket.Conn]bool
	// mu also serializes writes: gorilla connections do not allow
	// concurrent WriteMessage calls.
	mu  sync.Mutex
	log *zap.SugaredLogger
}

// NewHub creates an empty Hub.
func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}
}

// Register adds a new client connection.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	h.log.Infow("websocket client registered", "addr", conn.RemoteAddr().String())
}

// Unregister removes a client connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		h.log.Infow("websocket client unregistered", "addr", conn.RemoteAddr().String())
	}
}

// Broadcast sends an event to every connected client. A client that fails
// to accept the write is dropped; the broadcast itself never fails.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		h.log.Errorw("failed to marshal broadcast payload", "event", event, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warnw("dropping unresponsive websocket client", "addr", conn.RemoteAddr().String(), "error", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
