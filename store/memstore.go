package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bizbudz/bizbudz/models"
)

// MemStore keeps every table in process memory. A single mutex is held for
// the full duration of each operation, so a compound read-check-then-write
// (uniqueness check, insert, counter bump) is never interleaved with another
// operation. Suitable for single-process deployments and tests.
type MemStore struct {
	mu sync.Mutex

	users     map[string]models.User
	sessions  map[string]models.Session
	signups   map[string]models.Signup
	notes     map[string]models.Note
	likes     map[string]models.Like
	comments  map[string]models.Comment
	stats     map[string]models.UserStats
	pageViews map[string]int64

	nowFn func() time.Time
}

// NewMemStore builds an in-memory store, optionally preloaded with seed data.
func NewMemStore(seed *Seed) *MemStore {
	s := &MemStore{
		users:     map[string]models.User{},
		sessions:  map[string]models.Session{},
		signups:   map[string]models.Signup{},
		notes:     map[string]models.Note{},
		likes:     map[string]models.Like{},
		comments:  map[string]models.Comment{},
		stats:     map[string]models.UserStats{},
		pageViews: map[string]int64{},
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
	if seed != nil {
		for _, u := range seed.Users {
			s.users[u.ID] = u
		}
		for _, sess := range seed.Sessions {
			s.sessions[sess.ID] = sess
		}
		for _, n := range seed.Notes {
			s.notes[n.ID] = n
		}
		for _, c := range seed.Comments {
			s.comments[c.ID] = c
		}
	}
	return s
}

func (s *MemStore) newID() string {
	return uuid.NewString()
}

// CreateUser stores a new user, filling in the ID and creation time.
// Email addresses are unique across users.
func (s *MemStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" || strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("name and email are required: %w", ErrInvalidInput)
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, email) {
			return fmt.Errorf("email %s already registered: %w", email, ErrConflict)
		}
	}
	if user.ID == "" {
		user.ID = s.newID()
	}
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("user id %s: %w", user.ID, ErrConflict)
	}
	user.Email = email
	user.CreatedAt = s.nowFn()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user

	// Stats rows are created eagerly at registration so first reads are cheap.
	s.stats[user.ID] = models.UserStats{UserID: user.ID, UpdatedAt: user.CreatedAt}
	return nil
}

func (s *MemStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &u, nil
}

func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

func (s *MemStore) ListSessions(ctx context.Context) ([]models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return &sess, nil
}

// SignUp registers a user for a session. A repeat call for the same pair is
// idempotent and returns the existing record, so rapid double clicks never
// create duplicate signups.
func (s *MemStore) SignUp(ctx context.Context, userID, sessionID string) (*models.Signup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	for _, su := range s.signups {
		if su.UserID == userID && su.SessionID == sessionID {
			out := su
			return &out, nil
		}
	}
	signup := models.Signup{
		ID:         s.newID(),
		UserID:     userID,
		SessionID:  sessionID,
		SignedUpAt: s.nowFn(),
	}
	s.signups[signup.ID] = signup
	return &signup, nil
}

// CancelSignup removes the pair's signup if one exists. It reports false,
// not an error, when there is nothing to cancel.
func (s *MemStore) CancelSignup(ctx context.Context, userID, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, su := range s.signups {
		if su.UserID == userID && su.SessionID == sessionID {
			delete(s.signups, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemStore) ListUserSignups(ctx context.Context, userID string) ([]models.Signup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Signup{}
	for _, su := range s.signups {
		if su.UserID == userID {
			out = append(out, su)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) ListNotes(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemStore) GetNote(ctx context.Context, id string) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return &n, nil
}

// CreateNote stores a new note with zeroed counters.
func (s *MemStore) CreateNote(ctx context.Context, note *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(note.Title) == "" || strings.TrimSpace(note.Content) == "" {
		return fmt.Errorf("title and content are required: %w", ErrInvalidInput)
	}
	if note.ID == "" {
		note.ID = s.newID()
	}
	if note.Hashtags == nil {
		note.Hashtags = models.HashtagList{}
	}
	note.Likes = 0
	note.Comments = 0
	note.CreatedAt = s.nowFn()
	s.notes[note.ID] = *note
	return nil
}

// LikeNote inserts a like and increments the note counter in one step.
// Liking an already-liked note returns the existing like unchanged.
func (s *MemStore) LikeNote(ctx context.Context, userID, noteID string) (*models.Like, *models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok {
		return nil, nil, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	for _, l := range s.likes {
		if l.UserID == userID && l.NoteID == noteID {
			like := l
			return &like, &note, nil
		}
	}
	like := models.Like{
		ID:        s.newID(),
		UserID:    userID,
		NoteID:    noteID,
		CreatedAt: s.nowFn(),
	}
	s.likes[like.ID] = like
	note.Likes++
	s.notes[noteID] = note
	return &like, &note, nil
}

// UnlikeNote removes the pair's like and decrements the counter, clamped at
// zero. It reports false when no like exists.
func (s *MemStore) UnlikeNote(ctx context.Context, userID, noteID string) (*models.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok {
		return nil, false, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	for id, l := range s.likes {
		if l.UserID == userID && l.NoteID == noteID {
			delete(s.likes, id)
			if note.Likes > 0 {
				note.Likes--
			}
			s.notes[noteID] = note
			return &note, true, nil
		}
	}
	return &note, false, nil
}

func (s *MemStore) ListUserLikes(ctx context.Context, userID string) ([]models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Like{}
	for _, l := range s.likes {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListComments returns a note's comments ordered by creation time ascending.
func (s *MemStore) ListComments(ctx context.Context, noteID string) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.NoteID == noteID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// CreateComment appends a comment and increments the note counter in one step.
func (s *MemStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(comment.Content) == "" {
		return fmt.Errorf("content is required: %w", ErrInvalidInput)
	}
	note, ok := s.notes[comment.NoteID]
	if !ok {
		return fmt.Errorf("note %s: %w", comment.NoteID, ErrNotFound)
	}
	if comment.ID == "" {
		comment.ID = s.newID()
	}
	comment.CreatedAt = s.nowFn()
	s.comments[comment.ID] = *comment
	note.Comments++
	s.notes[note.ID] = note
	return nil
}

// GetUserStats never fails: a user without a row reads back as all zeros.
func (s *MemStore) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stats[userID]
	if !ok {
		st = models.UserStats{UserID: userID}
	}
	return &st, nil
}

// UpdateUserStats merges only the supplied fields over the current record.
func (s *MemStore) UpdateUserStats(ctx context.Context, userID string, patch StatsPatch) (*models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stats[userID]
	if !ok {
		st = models.UserStats{UserID: userID}
	}
	if patch.SessionsAttended != nil {
		st.SessionsAttended = *patch.SessionsAttended
	}
	if patch.QuizzesCompleted != nil {
		st.QuizzesCompleted = *patch.QuizzesCompleted
	}
	if patch.LearningStreak != nil {
		st.LearningStreak = *patch.LearningStreak
	}
	st.UpdatedAt = s.nowFn()
	s.stats[userID] = st
	return &st, nil
}

func pvKey(day time.Time, path string) string {
	return day.Format("2006-01-02") + "|" + path
}

func (s *MemStore) BumpPageView(ctx context.Context, day time.Time, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageViews[pvKey(day, path)]++
	return nil
}

func (s *MemStore) DailyActiveCount(ctx context.Context, day time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := day.Format("2006-01-02") + "|"
	var total int64
	for k, v := range s.pageViews {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total, nil
}

func (s *MemStore) Counts(ctx context.Context) (Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Users:    int64(len(s.users)),
		Notes:    int64(len(s.notes)),
		Comments: int64(len(s.comments)),
	}, nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error { return nil }
