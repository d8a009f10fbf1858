package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambatin/internal/events"
	"sambatin/internal/middleware"
	"sambatin/internal/models"
	"sambatin/internal/storage"
)

type ReplyHandler struct {
	store storage.Storage
	hub   *events.Hub
}

func NewReplyHandler(store storage.Storage, hub *events.Hub) *ReplyHandler {
	return &ReplyHandler{store: store, hub: hub}
}

// List 回复按创建时间升序
func (h *ReplyHandler) List(c *gin.Context) {
	sambatID := c.Param("id")

	replies, err := h.store.ListReplies(sambatID)
	if err != nil {
		log.Printf("failed to list replies for %s: %v", sambatID, err)
		JSONError(c, http.StatusInternalServerError, "Gagal memuat balasan")
		return
	}
	if replies == nil {
		replies = []models.Reply{}
	}

	c.JSON(http.StatusOK, gin.H{"replies": replies, "count": len(replies)})
}

type addReplyRequest struct {
	Content     string `json:"content"`
	PersonaName string `json:"persona_name"`
}

// Create 追加一条回复。回复是用户主动操作，失败要让用户看到并重发。
func (h *ReplyHandler) Create(c *gin.Context) {
	sambatID := c.Param("id")

	var req addReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Format permintaan tidak valid")
		return
	}

	content := sanitize(req.Content)
	if content == "" {
		JSONError(c, http.StatusBadRequest, "Balasan tidak boleh kosong")
		return
	}

	personaName := sanitize(req.PersonaName)
	if personaName == "" {
		if p := middleware.SessionPersona(c); p != nil {
			personaName = p.Name
		} else {
			personaName = "Anonim"
		}
	}

	reply := models.Reply{
		SambatID:    sambatID,
		Content:     content,
		PersonaName: personaName,
	}
	if err := h.store.AddReply(&reply); err != nil {
		log.Printf("failed to add reply on %s: %v", sambatID, err)
		JSONError(c, http.StatusInternalServerError, "Gagal mengirim balasan")
		return
	}

	h.hub.Publish(events.NewReplyAdded(reply))

	c.JSON(http.StatusCreated, reply)
}
