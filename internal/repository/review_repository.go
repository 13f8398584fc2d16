package repository

import (
	"github.com/gatherly/gatherly-backend/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create relies on the unique index over (event_id, user_id), same as RSVPs.
func (r *ReviewRepository) Create(review *models.Review) (*models.Review, error) {
	result := r.db.Create(review)
	if result.Error != nil {
		return nil, result.Error
	}
	return review, nil
}

func (r *ReviewRepository) GetByEventAndUser(eventID, userID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ListByEvent(eventID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
