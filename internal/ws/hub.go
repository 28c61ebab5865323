package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const broadcastBuffer = 256

// ChangeEvent is pushed to every connected client after a successful write.
type ChangeEvent struct {
	Type     string      `json:"type"`
	Resource string      `json:"resource"`
	Action   string      `json:"action"`
	ID       uuid.UUID   `json:"id"`
	Data     interface{} `json:"data,omitempty"`
	At       time.Time   `json:"at"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Publish queues a change event. It never blocks: when the buffer is full the
// event is dropped and logged.
func (h *Hub) Publish(resource, action string, id uuid.UUID, data interface{}) {
	msg, err := json.Marshal(ChangeEvent{
		Type:     "resource_change",
		Resource: resource,
		Action:   action,
		ID:       id,
		Data:     data,
		At:       time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("ws: marshal change event")
		return
	}

	select {
	case h.Broadcast <- msg:
	default:
		log.Warn().Str("resource", resource).Str("action", action).Msg("ws: broadcast buffer full, event dropped")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Stop ends Run and closes every client connection.
func (h *Hub) Stop() {
	close(h.done)
}

// Join hands conn to Run. It returns false once the hub is stopped.
func (h *Hub) Join(conn *websocket.Conn) bool {
	select {
	case h.Register <- conn:
		return true
	case <-h.done:
		return false
	}
}

// Leave hands conn back to Run; after Stop it returns without blocking.
func (h *Hub) Leave(conn *websocket.Conn) {
	select {
	case h.Unregister <- conn:
	case <-h.done:
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Debug().Msg("ws: client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()

		case <-h.done:
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return
		}
	}
}
