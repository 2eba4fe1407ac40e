package ws

import (
	"github.com/gorilla/websocket"

	"yaadjobs_backend/internal/logger"
)

type Client struct {
	UserID string
	Role   string
	Conn   *websocket.Conn
	Send   chan Event
	Hub    *Hub
}

// readPump drains the connection so close frames are processed. Clients
// only receive events; inbound payloads are ignored.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			logger.Debug("ws write error", "user_id", c.UserID, "error", err.Error())
			break
		}
	}
}
