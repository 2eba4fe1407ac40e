package ws

import (
	"net/http"

	"yaadjobs_backend/internal/logger"
	"yaadjobs_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type Handler struct {
	Hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{Hub: hub}
}

// ServeWS upgrades an authenticated request to a websocket subscription.
// Identity comes from the auth middleware, never from query parameters.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	client := &Client{
		UserID: userID,
		Role:   string(middleware.GetRole(c)),
		Conn:   conn,
		Send:   make(chan Event, 256),
		Hub:    h.Hub,
	}

	h.Hub.register <- client

	go client.readPump()
	go client.writePump()
}
