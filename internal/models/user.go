package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Profile is created in the same transaction as the user and is
	// removed with it.
	Profile *UserProfile `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type UserProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor identifies the user behind a request. A nil *Actor means the
// request is anonymous; access control never falls back to a default user.
type Actor struct {
	UserID   uint
	Username string
	Email    string
}
