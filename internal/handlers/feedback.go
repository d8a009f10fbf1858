package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambatin/internal/services"
)

type FeedbackHandler struct {
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type feedbackRequest struct {
	Type    string `json:"type"` // "bug" | "suggestion"
	Message string `json:"message"`
	Email   string `json:"email"`
}

// Submit 把反馈转发到外部 webhook
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Format permintaan tidak valid")
		return
	}

	message := sanitize(req.Message)
	if message == "" {
		JSONError(c, http.StatusBadRequest, "Pesan tidak boleh kosong")
		return
	}

	if err := h.feedback.Submit(req.Type, message, req.Email); err != nil {
		log.Printf("feedback relay failed: %v", err)
		JSONError(c, http.StatusBadGateway, "Gagal mengirim masukan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
