package models

import "time"

// Comment is a reply on a note, displayed as a chat-like thread ordered by
// creation time ascending.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	NoteID    string    `gorm:"size:36;index;not null" json:"noteId"`
	UserID    string    `gorm:"size:36;index;not null" json:"userId"`
	Author    string    `gorm:"size:128" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
