package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sambatin/internal/models"
	"sambatin/internal/storage"
	"sambatin/internal/utils"
)

const stickerCacheKey = "stickers:catalog"

type StickerHandler struct {
	store storage.Storage
}

func NewStickerHandler(store storage.Storage) *StickerHandler {
	return &StickerHandler{store: store}
}

// List 贴纸目录，预置数据，缓存十分钟
func (h *StickerHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(stickerCacheKey); cached != nil {
		if stickers, ok := cached.([]models.Sticker); ok {
			c.JSON(http.StatusOK, gin.H{"stickers": stickers})
			return
		}
	}

	stickers, err := h.store.ListStickers()
	if err != nil {
		log.Printf("failed to list stickers: %v", err)
		JSONError(c, http.StatusInternalServerError, "Gagal memuat stiker")
		return
	}

	utils.GetCache().Set(stickerCacheKey, stickers, 10*time.Minute)

	c.JSON(http.StatusOK, gin.H{"stickers": stickers})
}
