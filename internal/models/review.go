package models

import (
	"time"
)

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_reviews_event_user"`
	Event     Event     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_event_user"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID         uint      `json:"id"`
	EventID    uint      `json:"event_id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	EventTitle string    `json:"event_title"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
