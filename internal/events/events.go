package events

import (
	"sambatin/internal/models"
)

type Type string

const (
	PostCreated   Type = "post_created"
	PostDeleted   Type = "post_deleted"
	ReactionAdded Type = "reaction_added"
	ReplyAdded    Type = "reply_added"
)

// Event is one change notification. The variant set is closed; every
// consumer switches on Type and ignores unknown variants.
type Event struct {
	Type         Type                `json:"type"`
	SambatID     string              `json:"sambat_id"`
	Sambat       *models.Sambat      `json:"sambat,omitempty"`        // post_created
	ReactionType models.ReactionType `json:"reaction_type,omitempty"` // reaction_added
	Reply        *models.Reply       `json:"reply,omitempty"`         // reply_added
}

func NewPostCreated(s models.Sambat) Event {
	return Event{Type: PostCreated, SambatID: s.ID, Sambat: &s}
}

func NewPostDeleted(sambatID string) Event {
	return Event{Type: PostDeleted, SambatID: sambatID}
}

func NewReactionAdded(sambatID string, t models.ReactionType) Event {
	return Event{Type: ReactionAdded, SambatID: sambatID, ReactionType: t}
}

func NewReplyAdded(r models.Reply) Event {
	return Event{Type: ReplyAdded, SambatID: r.SambatID, Reply: &r}
}
