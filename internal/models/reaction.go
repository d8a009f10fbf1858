package models

import (
	"time"
)

type ReactionType string

const (
	ReactionFire  ReactionType = "fire"  // 🔥
	ReactionSad   ReactionType = "sad"   // 😢
	ReactionLaugh ReactionType = "laugh" // 😂
	ReactionHug   ReactionType = "hug"   // 🫂
	ReactionSkull ReactionType = "skull" // 💀
)

// ReactionTypes is the closed set of reaction kinds, in display order.
var ReactionTypes = []ReactionType{ReactionFire, ReactionSad, ReactionLaugh, ReactionHug, ReactionSkull}

func (t ReactionType) Valid() bool {
	switch t {
	case ReactionFire, ReactionSad, ReactionLaugh, ReactionHug, ReactionSkull:
		return true
	}
	return false
}

// Reaction is one append-only acknowledgment event. Counts are always
// derived by aggregation, never stored as a mutable counter column.
type Reaction struct {
	ID        string       `gorm:"type:uuid;primaryKey" json:"id"`
	SambatID  string       `gorm:"type:uuid;not null;index" json:"sambat_id"`
	Sambat    Sambat       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Type      ReactionType `gorm:"column:reaction_type;type:varchar(10);not null" json:"reaction_type"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReactionCounts 帖子的各类表情统计
type ReactionCounts struct {
	Fire  int `json:"fire"`
	Sad   int `json:"sad"`
	Laugh int `json:"laugh"`
	Hug   int `json:"hug"`
	Skull int `json:"skull"`
}

// Get returns the counter for one kind.
func (c ReactionCounts) Get(t ReactionType) int {
	switch t {
	case ReactionFire:
		return c.Fire
	case ReactionSad:
		return c.Sad
	case ReactionLaugh:
		return c.Laugh
	case ReactionHug:
		return c.Hug
	case ReactionSkull:
		return c.Skull
	}
	return 0
}

// Add bumps the counter for one kind by delta and returns the new counts.
func (c ReactionCounts) Add(t ReactionType, delta int) ReactionCounts {
	switch t {
	case ReactionFire:
		c.Fire += delta
	case ReactionSad:
		c.Sad += delta
	case ReactionLaugh:
		c.Laugh += delta
	case ReactionHug:
		c.Hug += delta
	case ReactionSkull:
		c.Skull += delta
	}
	return c
}
