// Package feed holds the in-memory view of the confession wall and the
// pure reducer that patches it from change notifications.
package feed

import (
	"sambatin/internal/events"
	"sambatin/internal/models"
)

// View is the reconciled state a connected wall sees: the active sambat
// list (newest first) plus per-sambat reply threads.
type View struct {
	Sambats []models.Sambat
	Replies map[string][]models.Reply
}

// Apply folds one event into the view and returns the new view without
// mutating the old one.
//
// Reaction increments are deliberately not idempotent: the same event
// delivered twice doubles the count. The transport is trusted to deliver
// each insert exactly once; the initial full fetch is the only point
// where counts are reconciled against the store.
func Apply(v View, e events.Event) View {
	switch e.Type {
	case events.PostCreated:
		if e.Sambat == nil {
			return v
		}
		// 新帖置顶，计数一律从零开始，等通知流补
		s := *e.Sambat
		s.Reactions = models.ReactionCounts{}
		next := make([]models.Sambat, 0, len(v.Sambats)+1)
		next = append(next, s)
		next = append(next, v.Sambats...)
		v.Sambats = next

	case events.PostDeleted:
		next := make([]models.Sambat, 0, len(v.Sambats))
		for _, s := range v.Sambats {
			if s.ID != e.SambatID {
				next = append(next, s)
			}
		}
		v.Sambats = next

	case events.ReactionAdded:
		next := make([]models.Sambat, len(v.Sambats))
		copy(next, v.Sambats)
		for i := range next {
			if next[i].ID == e.SambatID {
				next[i].Reactions = next[i].Reactions.Add(e.ReactionType, 1)
				break
			}
		}
		v.Sambats = next

	case events.ReplyAdded:
		if e.Reply == nil {
			return v
		}
		replies := make(map[string][]models.Reply, len(v.Replies)+1)
		for k, list := range v.Replies {
			replies[k] = list
		}
		replies[e.SambatID] = append(append([]models.Reply{}, replies[e.SambatID]...), *e.Reply)
		v.Replies = replies
	}
	return v
}
