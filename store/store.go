package store

import (
	"context"
	"errors"
	"time"

	"github.com/bizbudz/bizbudz/models"
)

// Store errors. Every failure of a store operation is a normal, reportable
// outcome; callers translate these to response codes with errors.Is.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput means a required field was empty or malformed.
	ErrInvalidInput = errors.New("invalid input")
)

// StatsPatch carries a partial update for a user's stats. Nil fields are
// left untouched by UpdateUserStats.
type StatsPatch struct {
	SessionsAttended *int `json:"sessionsAttended"`
	QuizzesCompleted *int `json:"quizzesCompleted"`
	LearningStreak   *int `json:"learningStreak"`
}

// Counts holds platform-wide entity totals for the public stats endpoint.
type Counts struct {
	Users    int64 `json:"user_count"`
	Notes    int64 `json:"note_count"`
	Comments int64 `json:"comment_count"`
}

// Store is the engagement store: the single owner of users, sessions,
// signups, notes, likes, comments and per-user stats. Each method executes
// atomically with respect to other operations touching the same entity;
// in particular every mutation of a Like or Comment row moves the owning
// note's counter in the same step.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// Sessions and signups
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	SignUp(ctx context.Context, userID, sessionID string) (*models.Signup, error)
	CancelSignup(ctx context.Context, userID, sessionID string) (bool, error)
	ListUserSignups(ctx context.Context, userID string) ([]models.Signup, error)

	// Notes, likes and comments
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	LikeNote(ctx context.Context, userID, noteID string) (*models.Like, *models.Note, error)
	UnlikeNote(ctx context.Context, userID, noteID string) (*models.Note, bool, error)
	ListUserLikes(ctx context.Context, userID string) ([]models.Like, error)
	ListComments(ctx context.Context, noteID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error

	// Stats
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
	UpdateUserStats(ctx context.Context, userID string, patch StatsPatch) (*models.UserStats, error)

	// Page views and platform counts
	BumpPageView(ctx context.Context, day time.Time, path string) error
	DailyActiveCount(ctx context.Context, day time.Time) (int64, error)
	Counts(ctx context.Context) (Counts, error)

	Close() error
}
