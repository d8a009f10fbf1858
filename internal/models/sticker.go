package models

import (
	"time"
)

// Sticker 贴纸目录项（预置数据，只读）
type Sticker struct {
	ID    string `gorm:"size:20;primaryKey" json:"id"`
	Emoji string `gorm:"size:10;not null" json:"emoji"`
	Label string `gorm:"size:50;not null" json:"label"`
}

// PlacedSticker is a sticker pinned onto a sambat at a percentage position.
// Declared for the data model; the placement write path is not part of the
// current feature set.
type PlacedSticker struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SambatID  string    `gorm:"type:uuid;not null;index" json:"sambat_id"`
	Sambat    Sambat    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	StickerID string    `gorm:"size:20;not null" json:"sticker_id"`
	Sticker   Sticker   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	PositionX float64   `gorm:"not null" json:"position_x"`
	PositionY float64   `gorm:"not null" json:"position_y"`
	PlacedAt  time.Time `gorm:"autoCreateTime" json:"placed_at"`
}

// AvailableStickers 预置贴纸目录，db.Init 时写入
var AvailableStickers = []Sticker{
	{ID: "sabar", Emoji: "🙏", Label: "Sabar ya"},
	{ID: "kuat", Emoji: "💪", Label: "Kuat!"},
	{ID: "peluk", Emoji: "🤗", Label: "Peluk virtual"},
	{ID: "lucu", Emoji: "🤣", Label: "Lucu bgt"},
	{ID: "setuju", Emoji: "👍", Label: "Setuju"},
	{ID: "sama", Emoji: "🤝", Label: "Sama dong"},
	{ID: "semangat", Emoji: "🔥", Label: "Semangat!"},
	{ID: "gabisa", Emoji: "💀", Label: "Ga bisa..."},
	{ID: "waduh", Emoji: "😬", Label: "Waduh"},
	{ID: "makan", Emoji: "🍜", Label: "Makan dulu"},
}
