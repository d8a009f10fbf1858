package models

import (
	"time"
)

// Reply 帖子下的匿名回复，append-only，按创建时间升序展示
type Reply struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	SambatID    string    `gorm:"type:uuid;not null;index" json:"sambat_id"`
	Sambat      Sambat    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	PersonaName string    `gorm:"size:100;not null" json:"persona_name"`
	CreatedAt   time.Time `json:"created_at"`
}
