package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"sambatin/internal/events"
	"sambatin/internal/feed"
	"sambatin/internal/handlers"
	"sambatin/internal/middleware"
	"sambatin/internal/services"
	"sambatin/internal/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.Storage, hub *events.Hub, tracker *feed.Tracker) {
	// Services shared across handlers
	uploader := services.NewVoiceUploadService()

	// Handlers
	sambatHandler := handlers.NewSambatHandler(store, hub, tracker, uploader)
	reactionHandler := handlers.NewReactionHandler(store, hub)
	replyHandler := handlers.NewReplyHandler(store, hub)
	reportHandler := handlers.NewReportHandler(store)
	stickerHandler := handlers.NewStickerHandler(store)
	personaHandler := handlers.NewPersonaHandler(services.NewPersonaService())
	uploadHandler := handlers.NewUploadHandler(uploader)
	verifyHandler := handlers.NewVerifyHandler(services.NewTurnstileService())
	feedbackHandler := handlers.NewFeedbackHandler(services.NewFeedbackService())
	streamHandler := handlers.NewStreamHandler(hub)

	// 匿名写操作按 IP 限频：发帖慢、点表情快
	createLimit := middleware.RateLimit(rate.Every(10*time.Second), 3)
	reactLimit := middleware.RateLimit(rate.Every(time.Second), 10)

	api := r.Group("/api")
	{
		// 公共读
		api.GET("/sambats", sambatHandler.List)            // 活跃帖子墙
		api.GET("/sambats/:id", sambatHandler.Detail)      // 帖子详情
		api.GET("/sambats/:id/replies", replyHandler.List) // 回复列表
		api.GET("/stickers", stickerHandler.List)          // 贴纸目录
		api.GET("/stream", streamHandler.Subscribe)        // 变更通知流

		// 匿名写
		api.POST("/sambats", createLimit, sambatHandler.Create)
		api.POST("/sambats/:id/replies", createLimit, replyHandler.Create)
		api.POST("/sambats/:id/reactions", reactLimit, reactionHandler.Add)
		api.POST("/sambats/:id/report", reactLimit, reportHandler.Create)

		// 会话马甲
		api.GET("/persona", personaHandler.Get)
		api.POST("/persona", personaHandler.Set)
		api.POST("/persona/regenerate", personaHandler.Regenerate)

		// 中转
		api.POST("/upload-voice", createLimit, uploadHandler.Voice)
		api.POST("/verify-turnstile", verifyHandler.Turnstile)
		api.POST("/feedback", createLimit, feedbackHandler.Submit)

		// 管理
		api.DELETE("/sambats/:id", middleware.AdminRequired(), sambatHandler.Delete)
	}
}
