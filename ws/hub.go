package ws

import (
	"sync"

	"yaadjobs_backend/internal/logger"
)

// Event is the envelope pushed to connected clients. Type names follow
// "domain.action", e.g. "verification.decided", "application.updated".
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub tracks connected clients and fans events out to them. It replaces
// the SPA's ambient auth-state callback with an explicit subscription
// channel: clients connect once and receive every event addressed to them.
type Hub struct {
	clients    map[string][]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			conns := h.clients[client.UserID]
			for i, c := range conns {
				if c == client {
					close(c.Send)
					h.clients[client.UserID] = append(conns[:i], conns[i+1:]...)
					break
				}
			}
			if len(h.clients[client.UserID]) == 0 {
				delete(h.clients, client.UserID)
			}
			h.mu.Unlock()
			logger.Debug("ws client unregistered", "user_id", client.UserID)
		}
	}
}

// PublishToUser delivers an event to every connection the user holds.
// A slow connection is dropped rather than blocking the publisher.
func (h *Hub) PublishToUser(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[userID] {
		select {
		case client.Send <- event:
		default:
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// PublishToRoles delivers an event to every connected client holding one
// of the given roles (staff dashboards refreshing the pending queue).
func (h *Hub) PublishToRoles(roles map[string]bool, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.clients {
		for _, client := range conns {
			if !roles[client.Role] {
				continue
			}
			select {
			case client.Send <- event:
			default:
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}
}
