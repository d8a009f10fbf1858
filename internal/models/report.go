package models

import (
	"time"
)

// Report 举报记录。Write-only from the client's perspective: there is no
// read path in the API, moderation reads the table directly.
type Report struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SambatID  string    `gorm:"type:uuid;not null;index" json:"sambat_id"`
	Sambat    Sambat    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Reason    *string   `gorm:"size:200" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
