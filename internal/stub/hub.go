package stub

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/campuspulse/engage-go/internal/domain/poll"
)

// Hub tracks live-results subscribers per poll and pushes tally updates to
// them after each accepted vote.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*websocket.Conn]bool)}
}

func (h *Hub) Register(pollID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[pollID] == nil {
		h.clients[pollID] = make(map[*websocket.Conn]bool)
	}
	h.clients[pollID][conn] = true
	log.Printf("Live client registered for poll %s (%d watching)", pollID, len(h.clients[pollID]))
}

func (h *Hub) Unregister(pollID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[pollID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.clients, pollID)
		}
	}
}

// Broadcast sends the tally to every subscriber of the poll. Slow or dead
// connections are dropped rather than blocking the vote path.
func (h *Hub) Broadcast(results poll.Results) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients[results.PollID] {
		if err := conn.WriteJSON(results); err != nil {
			log.Printf("Dropping live client for poll %s: %v", results.PollID, err)
			conn.Close()
			delete(h.clients[results.PollID], conn)
		}
	}
}
