package services

import (
	"errors"
	"fmt"

	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriberService struct {
	db *gorm.DB
}

func NewSubscriberService(db *gorm.DB) *SubscriberService {
	return &SubscriberService{db: db}
}

// Subscribe records a newsletter opt-in. Deliberately not idempotent: the
// same email can subscribe any number of times, as it always could.
func (s *SubscriberService) Subscribe(email string) (*models.Subscriber, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	subscriber := models.Subscriber{
		ID:    uuid.New(),
		Email: email,
	}
	if err := s.db.Create(&subscriber).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return &subscriber, nil
}

func (s *SubscriberService) IsSubscribed(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Subscriber{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subscriber: %w", err)
	}
	return count > 0, nil
}
