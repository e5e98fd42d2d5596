// Package realtime holds the process-wide map from account id to live
// websocket connection. The map is advisory: it backs best-effort push
// notifications and never carries a business invariant.
package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type Event struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Hub struct {
	mu    sync.Mutex
	conns map[uuid.UUID]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[uuid.UUID]*websocket.Conn)}
}

func (h *Hub) register(id uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()
	log.Printf("realtime: registered user %s", id)
}

// unregister removes the mapping only if it still points at conn, so a
// reconnect is not torn down by the old connection closing.
func (h *Hub) unregister(id uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	if h.conns[id] == conn {
		delete(h.conns, id)
	}
	h.mu.Unlock()
	log.Printf("realtime: unregistered user %s", id)
}

// Notify delivers an event if the recipient has a live connection.
// Fire-and-forget: absence of a connection and write failures are both
// swallowed.
func (h *Hub) Notify(id uuid.UUID, title, message string) {
	h.mu.Lock()
	conn := h.conns[id]
	h.mu.Unlock()
	if conn == nil {
		return
	}
	if err := conn.WriteJSON(Event{Title: title, Message: message}); err != nil {
		log.Printf("realtime: failed to push to %s: %v", id, err)
	}
}

// Upgrade rejects non-websocket requests on the /ws route.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler registers the connecting client under the user_id it announces,
// mirroring the connect/disconnect lifecycle of the push channel. The id
// is client-asserted; the map is never authoritative.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		id, err := uuid.Parse(conn.Query("user_id"))
		if err != nil {
			_ = conn.Close()
			return
		}

		h.register(id, conn)
		defer h.unregister(id, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
