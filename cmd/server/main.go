package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sambatin/internal/db"
	"sambatin/internal/events"
	"sambatin/internal/feed"
	"sambatin/internal/middleware"
	"sambatin/internal/router"
	"sambatin/internal/services"
	"sambatin/internal/storage"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()
	store := storage.NewGormStorage(db.DB)

	// 变更通知中枢 + 热点视图（快照只信 10 秒，过期回源）
	hub := events.NewHub()
	tracker := feed.NewTracker(50, 10*time.Second)
	tracker.Run(hub)

	// 过期扫描后台任务
	services.NewExpiryService(store, hub).Start()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	sessionStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("sambatin_session", sessionStore))

	// Middleware
	r.Use(middleware.LoadPersona())

	// Routes
	router.RegisterRoutes(r, store, hub, tracker)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("sambatin server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
