package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sambatin/internal/events"
	"sambatin/internal/feed"
	"sambatin/internal/middleware"
	"sambatin/internal/models"
	"sambatin/internal/services"
	"sambatin/internal/storage"
)

// pageSize 首页最多展示的帖子数
const pageSize = 50

const maxVoiceBytes = 10 << 20 // 10 MB

var errVoiceTooLarge = errors.New("Ukuran file suara maksimal 10 MB")

type SambatHandler struct {
	store    storage.Storage
	hub      *events.Hub
	tracker  *feed.Tracker
	uploader *services.VoiceUploadService
}

func NewSambatHandler(store storage.Storage, hub *events.Hub, tracker *feed.Tracker, uploader *services.VoiceUploadService) *SambatHandler {
	return &SambatHandler{
		store:    store,
		hub:      hub,
		tracker:  tracker,
		uploader: uploader,
	}
}

// List 活跃帖子列表，未过期、最新在前。命中 tracker 的热视图就不再查库。
func (h *SambatHandler) List(c *gin.Context) {
	if sambats, ok := h.tracker.Snapshot(); ok {
		c.JSON(http.StatusOK, gin.H{"sambats": newSambatViews(sambats)})
		return
	}

	sambats, err := h.store.ListActiveSambats(pageSize)
	if err != nil {
		log.Printf("failed to list sambats: %v", err)
		JSONError(c, http.StatusInternalServerError, "Gagal memuat sambat")
		return
	}
	h.tracker.Seed(sambats)

	c.JSON(http.StatusOK, gin.H{"sambats": newSambatViews(sambats)})
}

// Detail 单帖详情，带表情聚合
func (h *SambatHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	sambat, err := h.store.GetSambat(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			JSONError(c, http.StatusNotFound, "Sambat tidak ditemukan")
			return
		}
		log.Printf("failed to get sambat %s: %v", id, err)
		JSONError(c, http.StatusInternalServerError, "Gagal memuat sambat")
		return
	}

	c.JSON(http.StatusOK, newSambatView(*sambat))
}

// Create 发帖。语音帖先把录音转存到对象存储，转存失败则不落库。
// 情绪标签在这里算一次，之后不再重算；新帖通过通知流进各端视图。
func (h *SambatHandler) Create(c *gin.Context) {
	content := sanitize(c.PostForm("content"))

	voiceURL, isVoice, err := h.resolveVoice(c)
	if err != nil {
		if errors.Is(err, errVoiceTooLarge) {
			JSONError(c, http.StatusBadRequest, errVoiceTooLarge.Error())
			return
		}
		// 上传失败帖子不能建，错误抛给用户重试
		log.Printf("voice upload failed: %v", err)
		JSONError(c, http.StatusBadGateway, "Gagal mengunggah suara")
		return
	}

	if content == "" && !isVoice {
		JSONError(c, http.StatusBadRequest, "Pesan tidak boleh kosong")
		return
	}

	now := time.Now()
	expiresAt, err := resolveExpiry(c.PostForm("expiry_option"), c.PostForm("expires_at"), now)
	if err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	personaName := sanitize(c.PostForm("persona_name"))
	if personaName == "" {
		if p := middleware.SessionPersona(c); p != nil {
			personaName = p.Name
		} else {
			personaName = "Anonim"
		}
	}

	sambat := models.Sambat{
		Content:     content,
		PersonaName: personaName,
		IsVoice:     isVoice,
		VoiceURL:    voiceURL,
		Sentiment:   services.AnalyzeSentiment(content),
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
		IsExpired:   false,
	}

	if err := h.store.CreateSambat(&sambat); err != nil {
		log.Printf("failed to create sambat: %v", err)
		JSONError(c, http.StatusInternalServerError, "Gagal mengirim sambat")
		return
	}

	h.hub.Publish(events.NewPostCreated(sambat))

	c.JSON(http.StatusCreated, newSambatView(sambat))
}

// Delete 管理删除（路由挂在 AdminRequired 后面）
func (h *SambatHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteSambat(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			JSONError(c, http.StatusNotFound, "Sambat tidak ditemukan")
			return
		}
		log.Printf("failed to delete sambat %s: %v", id, err)
		JSONError(c, http.StatusInternalServerError, "Gagal menghapus sambat")
		return
	}

	h.hub.Publish(events.NewPostDeleted(id))

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// resolveVoice 读出录音：直接带文件就现场转存，带 voice_url 说明客户端
// 已经走过 /api/upload-voice
func (h *SambatHandler) resolveVoice(c *gin.Context) (*string, bool, error) {
	if url := c.PostForm("voice_url"); url != "" {
		return &url, true, nil
	}

	fileHeader, err := c.FormFile("voice")
	if err != nil {
		// 没带文件就是纯文本帖
		return nil, false, nil
	}
	if fileHeader.Size > maxVoiceBytes {
		return nil, false, errVoiceTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, false, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, false, fmt.Errorf("读取上传文件失败: %w", err)
	}

	url, err := h.uploader.Upload(data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return nil, false, err
	}
	return &url, true, nil
}

// resolveExpiry 把过期选项换算成绝对时间。自定义时间必须在未来。
func resolveExpiry(option, customRaw string, now time.Time) (*time.Time, error) {
	switch option {
	case "", "permanent":
		if customRaw == "" {
			return nil, nil
		}
		option = "custom"
	case "24h":
		t := now.Add(24 * time.Hour)
		return &t, nil
	case "1w":
		t := now.Add(7 * 24 * time.Hour)
		return &t, nil
	case "custom":
	default:
		return nil, errors.New("Pilihan kedaluwarsa tidak dikenal")
	}

	t, err := time.Parse(time.RFC3339, customRaw)
	if err != nil {
		return nil, errors.New("Format tanggal tidak valid")
	}
	if !t.After(now) {
		return nil, errors.New("Waktu hangus harus di masa depan")
	}
	return &t, nil
}
