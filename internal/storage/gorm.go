package storage

import (
	"errors"
	"time"

	"sambatin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStorage Postgres 实现
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) ListActiveSambats(limit int) ([]models.Sambat, error) {
	var sambats []models.Sambat
	err := s.db.
		Where("is_expired = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&sambats).Error
	if err != nil {
		return nil, err
	}

	if err := s.fillReactionCounts(sambats); err != nil {
		return nil, err
	}
	return sambats, nil
}

// fillReactionCounts 批量聚合填充表情计数
func (s *GormStorage) fillReactionCounts(sambats []models.Sambat) error {
	if len(sambats) == 0 {
		return nil
	}

	ids := make([]string, len(sambats))
	for i, sb := range sambats {
		ids[i] = sb.ID
	}

	type countRow struct {
		SambatID     string
		ReactionType models.ReactionType
		Count        int
	}
	var rows []countRow
	err := s.db.Model(&models.Reaction{}).
		Select("sambat_id, reaction_type, COUNT(*) as count").
		Where("sambat_id IN ?", ids).
		Group("sambat_id, reaction_type").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	countMap := make(map[string]models.ReactionCounts)
	for _, r := range rows {
		countMap[r.SambatID] = countMap[r.SambatID].Add(r.ReactionType, r.Count)
	}

	for i := range sambats {
		sambats[i].Reactions = countMap[sambats[i].ID]
	}
	return nil
}

func (s *GormStorage) GetSambat(id string) (*models.Sambat, error) {
	var sambat models.Sambat
	if err := s.db.First(&sambat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	counts, err := s.CountReactions(id)
	if err != nil {
		return nil, err
	}
	sambat.Reactions = counts
	return &sambat, nil
}

func (s *GormStorage) CreateSambat(sambat *models.Sambat) error {
	if sambat.ID == "" {
		sambat.ID = uuid.NewString()
	}
	return s.db.Create(sambat).Error
}

func (s *GormStorage) DeleteSambat(id string) error {
	res := s.db.Delete(&models.Sambat{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) MarkExpired(now time.Time) ([]string, error) {
	var ids []string
	err := s.db.Model(&models.Sambat{}).
		Where("is_expired = ? AND expires_at IS NOT NULL AND expires_at <= ?", false, now).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	err = s.db.Model(&models.Sambat{}).
		Where("id IN ?", ids).
		Update("is_expired", true).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *GormStorage) AddReaction(r *models.Reaction) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return s.db.Create(r).Error
}

func (s *GormStorage) CountReactions(sambatID string) (models.ReactionCounts, error) {
	type countRow struct {
		ReactionType models.ReactionType
		Count        int
	}
	var rows []countRow
	err := s.db.Model(&models.Reaction{}).
		Select("reaction_type, COUNT(*) as count").
		Where("sambat_id = ?", sambatID).
		Group("reaction_type").
		Scan(&rows).Error
	if err != nil {
		return models.ReactionCounts{}, err
	}

	var counts models.ReactionCounts
	for _, r := range rows {
		counts = counts.Add(r.ReactionType, r.Count)
	}
	return counts, nil
}

func (s *GormStorage) ListReplies(sambatID string) ([]models.Reply, error) {
	var replies []models.Reply
	err := s.db.
		Where("sambat_id = ?", sambatID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (s *GormStorage) AddReply(r *models.Reply) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return s.db.Create(r).Error
}

func (s *GormStorage) AddReport(r *models.Report) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return s.db.Create(r).Error
}

func (s *GormStorage) ListStickers() ([]models.Sticker, error) {
	var stickers []models.Sticker
	err := s.db.Order("id ASC").Find(&stickers).Error
	return stickers, err
}
