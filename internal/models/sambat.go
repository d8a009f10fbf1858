package models

import (
	"time"
)

type Sentiment string

const (
	SentimentAngry   Sentiment = "angry"
	SentimentSad     Sentiment = "sad"
	SentimentHappy   Sentiment = "happy"
	SentimentNeutral Sentiment = "neutral"
)

// Sambat 一条匿名吐槽 (anonymous confession), text or voice.
// Content is immutable after creation; only the aggregate reaction counters
// and the expiry sweep ever touch an existing row.
type Sambat struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	PersonaName string     `gorm:"size:100;not null" json:"persona_name"`
	IsVoice     bool       `gorm:"default:false" json:"is_voice"`
	VoiceURL    *string    `json:"voice_url"`
	Sentiment   Sentiment  `gorm:"type:varchar(10);default:'neutral'" json:"sentiment"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `gorm:"index" json:"expires_at"`
	IsExpired   bool       `gorm:"default:false;index" json:"is_expired"`

	// 非数据库字段，查询时聚合填充
	Reactions ReactionCounts  `gorm:"-" json:"reactions"`
	Stickers  []PlacedSticker `gorm:"-" json:"stickers"`
}
