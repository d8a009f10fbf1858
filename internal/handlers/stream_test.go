package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sambatin/internal/events"
	"sambatin/internal/models"
)

func newStreamServer(t *testing.T) (*httptest.Server, *events.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := events.NewHub()

	r := gin.New()
	r.GET("/api/stream", NewStreamHandler(hub).Subscribe)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, hub
}

func dialStream(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := strings.Replace(server.URL, "http", "ws", 1) + "/api/stream" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) events.Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var e events.Event
	require.NoError(t, conn.ReadJSON(&e))
	return e
}

func TestStream_PostsScopeReceivesNewPosts(t *testing.T) {
	server, hub := newStreamServer(t)
	conn := dialStream(t, server, "?scope=posts")
	waitForSubscriber(t, hub, events.ScopePosts)

	hub.Publish(events.NewPostCreated(models.Sambat{ID: "s1", Content: "halo", PersonaName: "Anonim"}))

	e := readEvent(t, conn)
	assert.Equal(t, events.PostCreated, e.Type)
	require.NotNil(t, e.Sambat)
	assert.Equal(t, "s1", e.Sambat.ID)
}

func TestStream_ReactionScopeIsPerSambat(t *testing.T) {
	server, hub := newStreamServer(t)
	conn := dialStream(t, server, "?scope=reactions&sambat_id=s1")
	waitForSubscriber(t, hub, events.ScopeReactions("s1"))

	// 别的帖子的表情不该串进来
	hub.Publish(events.NewReactionAdded("s2", models.ReactionSkull))
	hub.Publish(events.NewReactionAdded("s1", models.ReactionFire))

	e := readEvent(t, conn)
	assert.Equal(t, events.ReactionAdded, e.Type)
	assert.Equal(t, "s1", e.SambatID)
	assert.Equal(t, models.ReactionFire, e.ReactionType)
}

func TestStream_ReplyScopeReceivesReplies(t *testing.T) {
	server, hub := newStreamServer(t)
	conn := dialStream(t, server, "?scope=replies&sambat_id=s1")
	waitForSubscriber(t, hub, events.ScopeReplies("s1"))

	hub.Publish(events.NewReplyAdded(models.Reply{ID: "r1", SambatID: "s1", Content: "sabar", PersonaName: "Anonim"}))

	e := readEvent(t, conn)
	assert.Equal(t, events.ReplyAdded, e.Type)
	require.NotNil(t, e.Reply)
	assert.Equal(t, "r1", e.Reply.ID)
}

func TestStream_InvalidScopeRejected(t *testing.T) {
	server, _ := newStreamServer(t)

	resp, err := http.Get(server.URL + "/api/stream?scope=everything")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// reactions/replies 必须带 sambat_id
	resp2, err := http.Get(server.URL + "/api/stream?scope=reactions")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestStream_DisconnectDropsSubscription(t *testing.T) {
	server, hub := newStreamServer(t)
	conn := dialStream(t, server, "?scope=posts")
	waitForSubscriber(t, hub, events.ScopePosts)

	conn.Close()

	assert.Eventually(t, func() bool {
		return hub.SubscriberCount(events.ScopePosts) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

// waitForSubscriber 等 handler 的订阅真正挂上 hub，再开始发事件
func waitForSubscriber(t *testing.T, hub *events.Hub, scope string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.SubscriberCount(scope) > 0
	}, 2*time.Second, 5*time.Millisecond)
}
