package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambatin/internal/services"
)

type VerifyHandler struct {
	turnstile *services.TurnstileService
}

func NewVerifyHandler(turnstile *services.TurnstileService) *VerifyHandler {
	return &VerifyHandler{turnstile: turnstile}
}

type verifyRequest struct {
	Token string `json:"token"`
}

// Turnstile 人机校验中转
func (h *VerifyHandler) Turnstile(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Token required"})
		return
	}

	ok, err := h.turnstile.Verify(req.Token)
	if err != nil {
		if errors.Is(err, services.ErrTurnstileNotConfigured) {
			log.Println("TURNSTILE_SECRET_KEY not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server configuration error"})
			return
		}
		log.Printf("turnstile verification error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Verification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
