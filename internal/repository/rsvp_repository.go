package repository

import (
	"github.com/gatherly/gatherly-backend/internal/models"
	"gorm.io/gorm"
)

type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Create relies on the unique index over (event_id, user_id) to reject a
// second RSVP from the same user atomically; the caller matches
// gorm.ErrDuplicatedKey to report a conflict.
func (r *RSVPRepository) Create(rsvp *models.RSVP) (*models.RSVP, error) {
	result := r.db.Create(rsvp)
	if result.Error != nil {
		return nil, result.Error
	}
	return rsvp, nil
}

func (r *RSVPRepository) GetByEventAndUser(eventID, userID uint) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&rsvp).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// UpdateStatus mutates the status column only; existence and ownership of
// the row are fixed.
func (r *RSVPRepository) UpdateStatus(rsvp *models.RSVP, status models.RSVPStatus) error {
	return r.db.Model(rsvp).Update("status", status).Error
}

func (r *RSVPRepository) CountForEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.RSVP{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
