package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambatin/internal/events"
	"sambatin/internal/models"
	"sambatin/internal/storage"
)

type ReactionHandler struct {
	store storage.Storage
	hub   *events.Hub
}

func NewReactionHandler(store storage.Storage, hub *events.Hub) *ReactionHandler {
	return &ReactionHandler{store: store, hub: hub}
}

type addReactionRequest struct {
	Type models.ReactionType `json:"reaction_type" binding:"required"`
}

// Add appends one reaction event. Counts are not returned: clients get
// the increment through their subscription, same as everyone else.
// Store failures are logged and swallowed, the action is fire-and-forget.
func (h *ReactionHandler) Add(c *gin.Context) {
	sambatID := c.Param("id")

	var req addReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "reaction_type wajib diisi")
		return
	}
	if !req.Type.Valid() {
		JSONError(c, http.StatusBadRequest, "Jenis reaksi tidak dikenal")
		return
	}

	reaction := models.Reaction{
		SambatID: sambatID,
		Type:     req.Type,
	}
	if err := h.store.AddReaction(&reaction); err != nil {
		log.Printf("failed to add reaction on %s: %v", sambatID, err)
		c.JSON(http.StatusAccepted, gin.H{"success": false})
		return
	}

	h.hub.Publish(events.NewReactionAdded(sambatID, req.Type))

	c.JSON(http.StatusAccepted, gin.H{"success": true})
}
