package models

import "time"

// Note is a user-authored post in the social feed. The Likes and Comments
// fields are maintained counters, kept in step with the Like/Comment tables
// by the store on every create/delete.
type Note struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	Title     string      `gorm:"size:255;not null" json:"title"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Preview   string      `gorm:"size:512" json:"preview"`
	Author    string      `gorm:"size:128" json:"author"`
	AuthorID  string      `gorm:"size:36;index;not null" json:"authorId"`
	Hashtags  HashtagList `gorm:"type:text" json:"hashtags"`
	Likes     int         `gorm:"not null;default:0" json:"likes"`
	Comments  int         `gorm:"not null;default:0" json:"comments"`
	Helpful   bool        `gorm:"not null;default:false" json:"helpful"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Like marks that a user liked a note. At most one per (user, note) pair.
type Like struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:uk_like_user_note,priority:1" json:"userId"`
	NoteID    string    `gorm:"size:36;not null;uniqueIndex:uk_like_user_note,priority:2" json:"noteId"`
	CreatedAt time.Time `json:"createdAt"`
}
