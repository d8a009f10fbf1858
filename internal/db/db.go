package db

import (
	"log"
	"os"

	"sambatin/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=sambatin port=5432 sslmode=disable TimeZone=Asia/Jakarta"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.Sambat{},
		&models.Reaction{},
		&models.Reply{},
		&models.Report{},
		&models.Sticker{},
		&models.PlacedSticker{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed sticker catalog
	seedStickers()
}

func seedStickers() {
	// 贴纸目录已存在则跳过
	var count int64
	DB.Model(&models.Sticker{}).Count(&count)
	if count > 0 {
		log.Println("Stickers already seeded, skipping")
		return
	}

	for _, sticker := range models.AvailableStickers {
		if err := DB.Create(&sticker).Error; err != nil {
			log.Printf("Failed to create sticker %s: %v", sticker.ID, err)
		}
	}
	log.Println("Sticker catalog created successfully")
}
