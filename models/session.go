package models

import "time"

// Session types. The type of a session is fixed at creation.
const (
	SessionTypeTutoring   = "tutoring"
	SessionTypeGroupStudy = "group-study"
)

// Session is a schedulable live or in-person study/tutoring event.
// Sessions are seeded at startup and not created through the public API.
type Session struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Date        string `gorm:"size:64" json:"date"`
	Time        string `gorm:"size:64" json:"time"`
	ZoomLink    string `gorm:"size:512" json:"zoomLink"`
	Type        string `gorm:"size:16;not null" json:"type"`
	Location    string `gorm:"size:255" json:"location,omitempty"`
	Address     string `gorm:"size:255" json:"address,omitempty"`
}

// Signup records a user's registration for a session.
// At most one active signup exists per (user, session) pair.
type Signup struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;not null;uniqueIndex:uk_signup_user_session,priority:1" json:"userId"`
	SessionID  string    `gorm:"size:36;not null;uniqueIndex:uk_signup_user_session,priority:2" json:"sessionId"`
	SignedUpAt time.Time `json:"signedUpAt"`
}
