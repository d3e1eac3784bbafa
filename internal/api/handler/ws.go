package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"vozurbana/backend/internal/feed"
	"vozurbana/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict to the dashboard origin once it has a fixed host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeFeed upgrades the connection and registers it with the feed hub.
// RequireAuth and RequireFuncionario already ran; only staff get here.
func (h *Handler) ServeFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &feed.WebSocketClient{
		ID:   uuid.New().String(),
		Conn: conn,
		Hub:  h.Hub,
		Send: make(chan models.FeedEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
