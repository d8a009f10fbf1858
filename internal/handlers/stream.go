package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"sambatin/internal/events"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 匿名公开流，跨站订阅放行
	CheckOrigin: func(r *http.Request) bool { return true },
}

type StreamHandler struct {
	hub *events.Hub
}

func NewStreamHandler(hub *events.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Subscribe 把一个 websocket 连接挂到一个订阅范围上：
//
//	GET /api/stream?scope=posts
//	GET /api/stream?scope=reactions&sambat_id=...
//	GET /api/stream?scope=replies&sambat_id=...
//
// 连接断开即退订，一连接一范围。
func (h *StreamHandler) Subscribe(c *gin.Context) {
	scope, ok := resolveScope(c.Query("scope"), c.Query("sambat_id"))
	if !ok {
		JSONError(c, http.StatusBadRequest, "scope tidak valid")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	ch, cancel := h.hub.Subscribe(scope)
	defer cancel()
	defer conn.Close()

	// 读泵只用来发现客户端断开
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e, open := <-ch:
			if !open {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func resolveScope(scope, sambatID string) (string, bool) {
	switch scope {
	case "", "posts":
		return events.ScopePosts, true
	case "reactions":
		if sambatID == "" {
			return "", false
		}
		return events.ScopeReactions(sambatID), true
	case "replies":
		if sambatID == "" {
			return "", false
		}
		return events.ScopeReplies(sambatID), true
	}
	return "", false
}
