package storage

import (
	"sort"
	"sync"
	"time"

	"sambatin/internal/models"

	"github.com/google/uuid"
)

// MemoryStorage 测试用内存实现，契约与 GormStorage 一致
type MemoryStorage struct {
	mu        sync.Mutex
	sambats   map[string]models.Sambat
	reactions map[string][]models.Reaction // keyed by sambat id
	replies   map[string][]models.Reply
	reports   []models.Report
	stickers  []models.Sticker
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sambats:   make(map[string]models.Sambat),
		reactions: make(map[string][]models.Reaction),
		replies:   make(map[string][]models.Reply),
		stickers:  append([]models.Sticker{}, models.AvailableStickers...),
	}
}

func (s *MemoryStorage) ListActiveSambats(limit int) ([]models.Sambat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sambats := make([]models.Sambat, 0, len(s.sambats))
	for _, sb := range s.sambats {
		if sb.IsExpired {
			continue
		}
		sb.Reactions = s.countLocked(sb.ID)
		sambats = append(sambats, sb)
	}
	sort.Slice(sambats, func(i, j int) bool {
		return sambats[i].CreatedAt.After(sambats[j].CreatedAt)
	})
	if len(sambats) > limit {
		sambats = sambats[:limit]
	}
	return sambats, nil
}

func (s *MemoryStorage) GetSambat(id string) (*models.Sambat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sambat, ok := s.sambats[id]
	if !ok {
		return nil, ErrNotFound
	}
	sambat.Reactions = s.countLocked(id)
	return &sambat, nil
}

func (s *MemoryStorage) CreateSambat(sambat *models.Sambat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sambat.ID == "" {
		sambat.ID = uuid.NewString()
	}
	if sambat.CreatedAt.IsZero() {
		sambat.CreatedAt = time.Now()
	}
	s.sambats[sambat.ID] = *sambat
	return nil
}

func (s *MemoryStorage) DeleteSambat(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sambats[id]; !ok {
		return ErrNotFound
	}
	delete(s.sambats, id)
	delete(s.reactions, id)
	delete(s.replies, id)
	return nil
}

func (s *MemoryStorage) MarkExpired(now time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, sb := range s.sambats {
		if !sb.IsExpired && sb.ExpiresAt != nil && !sb.ExpiresAt.After(now) {
			sb.IsExpired = true
			s.sambats[id] = sb
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *MemoryStorage) AddReaction(r *models.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sambats[r.SambatID]; !ok {
		return ErrNotFound
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.reactions[r.SambatID] = append(s.reactions[r.SambatID], *r)
	return nil
}

func (s *MemoryStorage) CountReactions(sambatID string) (models.ReactionCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(sambatID), nil
}

func (s *MemoryStorage) countLocked(sambatID string) models.ReactionCounts {
	var counts models.ReactionCounts
	for _, r := range s.reactions[sambatID] {
		counts = counts.Add(r.Type, 1)
	}
	return counts
}

func (s *MemoryStorage) ListReplies(sambatID string) ([]models.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replies := append([]models.Reply{}, s.replies[sambatID]...)
	sort.Slice(replies, func(i, j int) bool {
		return replies[i].CreatedAt.Before(replies[j].CreatedAt)
	})
	return replies, nil
}

func (s *MemoryStorage) AddReply(r *models.Reply) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sambats[r.SambatID]; !ok {
		return ErrNotFound
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.replies[r.SambatID] = append(s.replies[r.SambatID], *r)
	return nil
}

func (s *MemoryStorage) AddReport(r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sambats[r.SambatID]; !ok {
		return ErrNotFound
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.reports = append(s.reports, *r)
	return nil
}

// Reports exposes stored reports for test assertions.
func (s *MemoryStorage) Reports() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Report{}, s.reports...)
}

func (s *MemoryStorage) ListStickers() ([]models.Sticker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Sticker{}, s.stickers...), nil
}
