package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed over a user's live channel.
const (
	EventRecommendation = "recommendation"
	EventMeasurement    = "measurement"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// WSClient serializes writes to its connection; gorilla/websocket
// allows at most one concurrent writer per Conn.
type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu sync.Mutex
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// Ping sends a keepalive control frame.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// RealtimeHub fans out events to every live connection of a user. New
// recommendations and ingested IoT measurements are pushed here.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast delivers an event to every connection the user holds. Write
// failures are ignored; the read loop notices the dead peer and
// unregisters it.
func (h *RealtimeHub) Broadcast(userID uint, eventType string, data any) {
	msg, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.write(websocket.TextMessage, msg)
	}
}
