package models

import (
	"time"
)

type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "Going"
	RSVPMaybe    RSVPStatus = "Maybe"
	RSVPNotGoing RSVPStatus = "Not Going"
)

// ValidRSVPStatus reports whether s is one of the three allowed literals.
func ValidRSVPStatus(s RSVPStatus) bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

type RSVP struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	EventID   uint       `json:"event_id" gorm:"not null;uniqueIndex:idx_rsvps_event_user"`
	Event     Event      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_rsvps_event_user"`
	User      User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Status    RSVPStatus `json:"status" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at"`
}

type RSVPRequest struct {
	Status RSVPStatus `json:"status" validate:"required,rsvp_status"`
}

type RSVPResponse struct {
	ID         uint       `json:"id"`
	EventID    uint       `json:"event_id"`
	UserID     uint       `json:"user_id"`
	UserName   string     `json:"user_name"`
	EventTitle string     `json:"event_title"`
	Status     RSVPStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}
