package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbudz/bizbudz/models"
)

func newTestStore(t *testing.T) *MemStore {
	t.Helper()
	return NewMemStore(nil)
}

func mustCreateUser(t *testing.T, s *MemStore, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func mustCreateNote(t *testing.T, s *MemStore, authorID string) *models.Note {
	t.Helper()
	n := &models.Note{Title: "Pricing strategies", Content: "Notes from today's workshop.", AuthorID: authorID}
	require.NoError(t, s.CreateNote(context.Background(), n))
	return n
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "Ada", "ada@example.com")

	err := s.CreateUser(ctx, &models.User{Name: "Ada Again", Email: "ADA@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateUserRequiresNameAndEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.CreateUser(ctx, &models.User{Name: "No Email"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = s.CreateUser(ctx, &models.User{Email: "noname@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "Ada", "Ada@Example.com")

	got, err := s.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestSignUpIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.sessions["s1"] = models.Session{ID: "s1", Title: "Intro to Marketing", Type: models.SessionTypeTutoring}
	u := mustCreateUser(t, s, "Ada", "ada@example.com")

	first, err := s.SignUp(ctx, u.ID, "s1")
	require.NoError(t, err)

	second, err := s.SignUp(ctx, u.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	signups, err := s.ListUserSignups(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, signups, 1)
}

func TestSignUpMissingSession(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SignUp(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelSignup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.sessions["s1"] = models.Session{ID: "s1", Title: "Finance 101", Type: models.SessionTypeGroupStudy}
	u := mustCreateUser(t, s, "Ada", "ada@example.com")

	_, err := s.SignUp(ctx, u.ID, "s1")
	require.NoError(t, err)

	removed, err := s.CancelSignup(ctx, u.ID, "s1")
	require.NoError(t, err)
	assert.True(t, removed)

	// Nothing left to cancel.
	removed, err = s.CancelSignup(ctx, u.ID, "s1")
	require.NoError(t, err)
	assert.False(t, removed)

	signups, err := s.ListUserSignups(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, signups)
}

func TestLikeNoteIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "Ada", "ada@example.com")
	n := mustCreateNote(t, s, u.ID)

	like1, note1, err := s.LikeNote(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, note1.Likes)

	like2, note2, err := s.LikeNote(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.Equal(t, like1.ID, like2.ID)
	assert.Equal(t, 1, note2.Likes)

	likes, err := s.ListUserLikes(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestUnlikeNoteSymmetryAndFloor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "Ada", "ada@example.com")
	n := mustCreateNote(t, s, u.ID)

	_, _, err := s.LikeNote(ctx, u.ID, n.ID)
	require.NoError(t, err)

	note, removed, err := s.UnlikeNote(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, note.Likes)

	// Unliking again is a no-op and the counter never goes negative.
	note, removed, err = s.UnlikeNote(ctx, u.ID, n.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 0, note.Likes)
}

func TestLikeNoteMissingNote(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.LikeNote(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.UnlikeNote(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentLikersDistinctUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "Ada", "ada@example.com")
	n := mustCreateNote(t, s, author.ID)

	const likers = 32
	var wg sync.WaitGroup
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.LikeNote(ctx, fmt.Sprintf("user-%d", i), n.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	note, err := s.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, likers, note.Likes)
}

func TestCommentCounterMatchesRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "Ada", "ada@example.com")
	n := mustCreateNote(t, s, u.ID)

	for i := 0; i < 5; i++ {
		c := &models.Comment{NoteID: n.ID, UserID: u.ID, Author: u.Name, Content: fmt.Sprintf("reply %d", i)}
		require.NoError(t, s.CreateComment(ctx, c))
	}

	note, err := s.GetNote(ctx, n.ID)
	require.NoError(t, err)
	comments, err := s.ListComments(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, len(comments), note.Comments)
}

func TestCommentsOrderedByCreationTime(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "Ada", "ada@example.com")
	n := mustCreateNote(t, s, u.ID)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	offsets := []time.Duration{3 * time.Minute, time.Minute, 2 * time.Minute}
	for i, off := range offsets {
		when := base.Add(off)
		s.nowFn = func() time.Time { return when }
		c := &models.Comment{NoteID: n.ID, UserID: u.ID, Content: fmt.Sprintf("comment %d", i)}
		require.NoError(t, s.CreateComment(ctx, c))
	}
	s.nowFn = func() time.Time { return time.Now().UTC() }

	comments, err := s.ListComments(ctx, n.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i := 1; i < len(comments); i++ {
		assert.False(t, comments[i].CreatedAt.Before(comments[i-1].CreatedAt))
	}
	assert.Equal(t, "comment 1", comments[0].Content)
	assert.Equal(t, "comment 0", comments[2].Content)
}

func TestCommentOnMissingNote(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateComment(context.Background(), &models.Comment{NoteID: "missing", UserID: "u1", Content: "hello"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStatsZeroDefault(t *testing.T) {
	s := newTestStore(t)
	stats, err := s.GetUserStats(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, "never-seen", stats.UserID)
	assert.Zero(t, stats.SessionsAttended)
	assert.Zero(t, stats.QuizzesCompleted)
	assert.Zero(t, stats.LearningStreak)
}

func TestUpdateUserStatsPartialMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	five, seven := 5, 7
	stats, err := s.UpdateUserStats(ctx, "u1", StatsPatch{SessionsAttended: &five, LearningStreak: &seven})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.SessionsAttended)
	assert.Equal(t, 0, stats.QuizzesCompleted)
	assert.Equal(t, 7, stats.LearningStreak)

	// A later patch touching only one field leaves the others alone.
	two := 2
	stats, err = s.UpdateUserStats(ctx, "u1", StatsPatch{QuizzesCompleted: &two})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.SessionsAttended)
	assert.Equal(t, 2, stats.QuizzesCompleted)
	assert.Equal(t, 7, stats.LearningStreak)
}

func TestNoteCountersStartAtZero(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, "Ada", "ada@example.com")

	n := &models.Note{Title: "t", Content: "c", AuthorID: u.ID, Likes: 99, Comments: 99}
	require.NoError(t, s.CreateNote(context.Background(), n))
	assert.Zero(t, n.Likes)
	assert.Zero(t, n.Comments)
}

func TestTimestampsAreUTC(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := mustCreateUser(t, s, "Ada", "ada@example.com")
	assert.Equal(t, time.UTC, u.CreatedAt.Location())

	n := mustCreateNote(t, s, u.ID)
	assert.Equal(t, time.UTC, n.CreatedAt.Location())

	s.sessions["s1"] = models.Session{ID: "s1", Title: "Finance 101", Type: models.SessionTypeGroupStudy}
	signup, err := s.SignUp(ctx, u.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, signup.SignedUpAt.Location())
}

func TestPageViewDailyActive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	today := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, s.BumpPageView(ctx, today, "/"))
	require.NoError(t, s.BumpPageView(ctx, today, "/"))
	require.NoError(t, s.BumpPageView(ctx, today, "/notes"))
	require.NoError(t, s.BumpPageView(ctx, yesterday, "/"))

	count, err := s.DailyActiveCount(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "Ada", "ada@example.com")
	n := mustCreateNote(t, s, u.ID)
	require.NoError(t, s.CreateComment(ctx, &models.Comment{NoteID: n.ID, UserID: u.ID, Content: "hi"}))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Users: 1, Notes: 1, Comments: 1}, counts)
}

func TestDemoSeedLoads(t *testing.T) {
	s := NewMemStore(DemoSeed())
	ctx := context.Background()

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sessions)

	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, notes)

	// Seeded comment counters agree with the seeded comment rows.
	for _, n := range notes {
		comments, err := s.ListComments(ctx, n.ID)
		require.NoError(t, err)
		assert.Equal(t, n.Comments, len(comments), "note %s", n.ID)
	}
}
