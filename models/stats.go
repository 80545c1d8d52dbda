package models

import "time"

// UserStats is the per-user gamification rollup. Records are created lazily:
// a user without a row reads back as all zeros.
type UserStats struct {
	UserID           string    `gorm:"primaryKey;size:36" json:"userId"`
	SessionsAttended int       `gorm:"not null;default:0" json:"sessionsAttended"`
	QuizzesCompleted int       `gorm:"not null;default:0" json:"quizzesCompleted"`
	LearningStreak   int       `gorm:"not null;default:0" json:"learningStreak"`
	UpdatedAt        time.Time `json:"-"`
}
