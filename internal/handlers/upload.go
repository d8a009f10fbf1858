package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambatin/internal/services"
)

type UploadHandler struct {
	uploader *services.VoiceUploadService
}

func NewUploadHandler(uploader *services.VoiceUploadService) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Voice 语音中转：收 multipart 文件，转发对象存储，返回公开 URL
func (h *UploadHandler) Voice(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		JSONError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fileHeader.Size > maxVoiceBytes {
		JSONError(c, http.StatusBadRequest, errVoiceTooLarge.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("failed to open uploaded file: %v", err)
		JSONError(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("failed to read uploaded file: %v", err)
		JSONError(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	url, err := h.uploader.Upload(data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("voice upload failed: %v", err)
		JSONError(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
