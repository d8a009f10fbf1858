package handlers

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"sambatin/internal/middleware"
	"sambatin/internal/services"
)

type PersonaHandler struct {
	personaService *services.PersonaService
}

func NewPersonaHandler(personaService *services.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

// Get 返回当前会话马甲和欢迎弹窗状态。没分配过就返回 null，
// 等客户端走完欢迎流程再生成。
func (h *PersonaHandler) Get(c *gin.Context) {
	session := sessions.Default(c)
	welcomeSeen, _ := session.Get(middleware.SessionWelcomeSeen).(bool)

	var persona *services.Persona
	if p := middleware.SessionPersona(c); p != nil {
		persona = p
	}

	c.JSON(http.StatusOK, gin.H{
		"persona":      persona,
		"welcome_seen": welcomeSeen,
	})
}

type setPersonaRequest struct {
	Name string `json:"name" binding:"required"`
}

// Set 用户自拟马甲，覆盖随机分配的
func (h *PersonaHandler) Set(c *gin.Context) {
	var req setPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "name wajib diisi")
		return
	}

	name := sanitize(req.Name)
	if name == "" {
		JSONError(c, http.StatusBadRequest, "Nama tidak boleh kosong")
		return
	}

	persona := services.Persona{Name: name}
	if known, ok := h.personaService.Lookup(name); ok {
		// 选回了官方马甲，补上对应 emoji
		persona = known
	}
	if err := h.storeAndMarkWelcome(c, persona); err != nil {
		log.Printf("failed to save persona session: %v", err)
		JSONError(c, http.StatusInternalServerError, "Gagal menyimpan persona")
		return
	}

	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

// Regenerate 重新随机一个马甲并写进会话
func (h *PersonaHandler) Regenerate(c *gin.Context) {
	persona := h.personaService.Generate()
	if err := h.storeAndMarkWelcome(c, persona); err != nil {
		log.Printf("failed to save persona session: %v", err)
		JSONError(c, http.StatusInternalServerError, "Gagal menyimpan persona")
		return
	}

	c.JSON(http.StatusOK, gin.H{"persona": persona})
}

func (h *PersonaHandler) storeAndMarkWelcome(c *gin.Context, p services.Persona) error {
	// 欢迎标记和马甲同属一个会话，StorePersona 的 Save 一并落盘
	sessions.Default(c).Set(middleware.SessionWelcomeSeen, true)
	return middleware.StorePersona(c, p)
}
