package repository

import (
	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Append(msg *domain.MatchingMessage) error
	ListByMatching(matchingID uint) ([]domain.MatchingMessage, error)
	ListByMatchings(matchingIDs []uint) ([]domain.MatchingMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Append(msg *domain.MatchingMessage) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) ListByMatching(matchingID uint) ([]domain.MatchingMessage, error) {
	var msgs []domain.MatchingMessage
	err := r.db.
		Where("matching_id = ?", matchingID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) ListByMatchings(matchingIDs []uint) ([]domain.MatchingMessage, error) {
	if len(matchingIDs) == 0 {
		return nil, nil
	}
	var msgs []domain.MatchingMessage
	err := r.db.
		Where("matching_id IN ?", matchingIDs).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
