package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bizbudz/bizbudz/models"
)

// GormStore persists the engagement tables in MySQL. Compound operations run
// inside a transaction with the parent row locked FOR UPDATE, and counters
// move through SQL expressions, so concurrent likers cannot lose updates the
// way a naive read-then-write would.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized gorm DB. The DB must be opened with
// TranslateError so duplicate-key violations surface as gorm.ErrDuplicatedKey.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SeedIfEmpty loads seed rows when the sessions table has no data yet.
func (s *GormStore) SeedIfEmpty(ctx context.Context, seed *Seed) error {
	if seed == nil {
		return nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Session{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sess := range seed.Sessions {
			if err := tx.Create(&sess).Error; err != nil {
				return err
			}
		}
		for _, n := range seed.Notes {
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		for _, c := range seed.Comments {
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		for _, u := range seed.Users {
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" || strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("name and email are required: %w", ErrInvalidInput)
	}
	user.Email = email
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserStats{UserID: user.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("email %s already registered: %w", email, ErrConflict)
	}
	return err
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.WithContext(ctx).Order("id").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *GormStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) SignUp(ctx context.Context, userID, sessionID string) (*models.Signup, error) {
	var signup models.Signup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess models.Session
		if err := tx.First(&sess, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
			}
			return err
		}
		err := tx.Where("user_id = ? AND session_id = ?", userID, sessionID).First(&signup).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		signup = models.Signup{
			ID:         uuid.NewString(),
			UserID:     userID,
			SessionID:  sessionID,
			SignedUpAt: time.Now().UTC(),
		}
		if err := tx.Create(&signup).Error; err != nil {
			// Another writer won the unique index race; return its row.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return tx.Where("user_id = ? AND session_id = ?", userID, sessionID).First(&signup).Error
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &signup, nil
}

func (s *GormStore) CancelSignup(ctx context.Context, userID, sessionID string) (bool, error) {
	res := s.db.WithContext(ctx).Where("user_id = ? AND session_id = ?", userID, sessionID).Delete(&models.Signup{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) ListUserSignups(ctx context.Context, userID string) ([]models.Signup, error) {
	var signups []models.Signup
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&signups).Error; err != nil {
		return nil, err
	}
	return signups, nil
}

func (s *GormStore) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *GormStore) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &note, nil
}

func (s *GormStore) CreateNote(ctx context.Context, note *models.Note) error {
	if strings.TrimSpace(note.Title) == "" || strings.TrimSpace(note.Content) == "" {
		return fmt.Errorf("title and content are required: %w", ErrInvalidInput)
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.Hashtags == nil {
		note.Hashtags = models.HashtagList{}
	}
	note.Likes = 0
	note.Comments = 0
	note.CreatedAt = time.Now().UTC()
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *GormStore) LikeNote(ctx context.Context, userID, noteID string) (*models.Like, *models.Note, error) {
	var like models.Like
	var note models.Note
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the note row so the like insert and the counter bump are one unit.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&note, "id = ?", noteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
			}
			return err
		}
		err := tx.Where("user_id = ? AND note_id = ?", userID, noteID).First(&like).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		like = models.Like{
			ID:        uuid.NewString(),
			UserID:    userID,
			NoteID:    noteID,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return tx.Where("user_id = ? AND note_id = ?", userID, noteID).First(&like).Error
			}
			return err
		}
		if err := tx.Model(&models.Note{}).Where("id = ?", noteID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		return tx.First(&note, "id = ?", noteID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &like, &note, nil
}

func (s *GormStore) UnlikeNote(ctx context.Context, userID, noteID string) (*models.Note, bool, error) {
	var note models.Note
	removed := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&note, "id = ?", noteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
			}
			return err
		}
		res := tx.Where("user_id = ? AND note_id = ?", userID, noteID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		// Clamp at zero to guard against any prior accounting drift.
		if err := tx.Model(&models.Note{}).Where("id = ?", noteID).
			UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error; err != nil {
			return err
		}
		return tx.First(&note, "id = ?", noteID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &note, removed, nil
}

func (s *GormStore) ListUserLikes(ctx context.Context, userID string) ([]models.Like, error) {
	var likes []models.Like
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *GormStore) ListComments(ctx context.Context, noteID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).Where("note_id = ?", noteID).
		Order("created_at ASC, id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	if strings.TrimSpace(comment.Content) == "" {
		return fmt.Errorf("content is required: %w", ErrInvalidInput)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var note models.Note
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&note, "id = ?", comment.NoteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("note %s: %w", comment.NoteID, ErrNotFound)
			}
			return err
		}
		if comment.ID == "" {
			comment.ID = uuid.NewString()
		}
		comment.CreatedAt = time.Now().UTC()
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Note{}).Where("id = ?", comment.NoteID).
			UpdateColumn("comments", gorm.Expr("comments + 1")).Error
	})
}

func (s *GormStore) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.db.WithContext(ctx).First(&stats, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserStats{UserID: userID}, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (s *GormStore) UpdateUserStats(ctx context.Context, userID string, patch StatsPatch) (*models.UserStats, error) {
	var stats models.UserStats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&stats, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = models.UserStats{UserID: userID}
		} else if err != nil {
			return err
		}
		if patch.SessionsAttended != nil {
			stats.SessionsAttended = *patch.SessionsAttended
		}
		if patch.QuizzesCompleted != nil {
			stats.QuizzesCompleted = *patch.QuizzesCompleted
		}
		if patch.LearningStreak != nil {
			stats.LearningStreak = *patch.LearningStreak
		}
		stats.UpdatedAt = time.Now().UTC()
		return tx.Save(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *GormStore) BumpPageView(ctx context.Context, day time.Time, path string) error {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "path"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
	}).Create(&models.PageView{Date: midnight, Path: path, Count: 1}).Error
}

func (s *GormStore) DailyActiveCount(ctx context.Context, day time.Time) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.PageView{}).
		Where("date = ?", day.Format("2006-01-02")).
		Select("COALESCE(SUM(count),0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *GormStore) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.User{}).Count(&c.Users).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.Note{}).Count(&c.Notes).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.Comment{}).Count(&c.Comments).Error; err != nil {
		return c, err
	}
	return c, nil
}

// Close releases the underlying sql.DB connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
