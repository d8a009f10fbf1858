// Package storage is the narrow persistence boundary: one Postgres-backed
// implementation for the server, one in-memory implementation for tests.
package storage

import (
	"errors"
	"time"

	"sambatin/internal/models"
)

var ErrNotFound = errors.New("not found")

type Storage interface {
	// ListActiveSambats returns non-expired sambats newest first, bounded
	// to limit, with per-kind reaction counts aggregated.
	ListActiveSambats(limit int) ([]models.Sambat, error)
	GetSambat(id string) (*models.Sambat, error)
	CreateSambat(s *models.Sambat) error
	DeleteSambat(id string) error
	// MarkExpired flips is_expired on every row whose expiry has elapsed
	// and returns the affected ids.
	MarkExpired(now time.Time) ([]string, error)

	AddReaction(r *models.Reaction) error
	CountReactions(sambatID string) (models.ReactionCounts, error)

	ListReplies(sambatID string) ([]models.Reply, error)
	AddReply(r *models.Reply) error

	AddReport(r *models.Report) error

	ListStickers() ([]models.Sticker, error)
}
