package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambatin/internal/models"
	"sambatin/internal/storage"
)

type ReportHandler struct {
	store storage.Storage
}

func NewReportHandler(store storage.Storage) *ReportHandler {
	return &ReportHandler{store: store}
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// Create 举报是 fire-and-forget：失败只记日志，举报人无感知
func (h *ReportHandler) Create(c *gin.Context) {
	sambatID := c.Param("id")

	var req reportRequest
	_ = c.ShouldBindJSON(&req) // reason 可以为空

	report := models.Report{SambatID: sambatID}
	if reason := sanitize(req.Reason); reason != "" {
		report.Reason = &reason
	}

	if err := h.store.AddReport(&report); err != nil {
		log.Printf("failed to store report on %s: %v", sambatID, err)
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true})
}
