package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered student. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	School       string    `gorm:"size:255" json:"school,omitempty"`
	Interests    string    `gorm:"size:512" json:"interests,omitempty"`
	Provider     string    `gorm:"size:32" json:"provider,omitempty"`
	ProviderID   string    `gorm:"size:255" json:"-"`
	AvatarURL    string    `gorm:"size:512" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}
