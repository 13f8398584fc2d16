package models

import (
	"time"

	"github.com/gatherly/gatherly-backend/internal/apperr"
	"gorm.io/gorm"
)

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	OrganizerID uint      `json:"organizer_id" gorm:"not null;index"`
	Organizer   User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time" gorm:"not null"`
	EndTime     time.Time `json:"end_time" gorm:"not null;check:end_time > start_time"`
	// No column default here: gorm would skip a zero-value false on insert
	// and the database default would flip private events to public. The
	// service layer applies the default instead.
	IsPublic    bool      `json:"is_public" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	RSVPs   []RSVP   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reviews []Review `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave re-checks time ordering at persistence time. The service layer
// validates first; this hook keeps a malformed row out of the store no matter
// which path tried to write it.
func (e *Event) BeforeSave(tx *gorm.DB) error {
	if !e.EndTime.After(e.StartTime) {
		return apperr.Validation("end_time", "End time must be after start time.")
	}
	return nil
}

type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	IsPublic    *bool     `json:"is_public"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	IsPublic    *bool      `json:"is_public"`
}

// EventListQuery carries the listing filters. Ordering accepts
// start_time/created_at with an optional "-" prefix for descending.
type EventListQuery struct {
	Location string
	IsPublic *bool
	Search   string
	Ordering string
}

type EventResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	OrganizerID   uint      `json:"organizer_id"`
	OrganizerName string    `json:"organizer_name"`
	Location      string    `json:"location"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	RSVPCount     int       `json:"rsvp_count"`
	AverageRating *float64  `json:"average_rating"`
}
