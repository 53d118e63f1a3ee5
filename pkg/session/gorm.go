package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Session is the row shape of the database backing.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// GormStore keeps sessions in a sessions table so that every process sharing
// the database sees the same logins.
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormStore(db *gorm.DB, logger *zap.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormStore{db: db, logger: logger}, nil
}

func (s *GormStore) Create(userID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return "", err
	}
	return sess.Token, nil
}

func (s *GormStore) Get(token string) (uint, error) {
	var sess Session
	err := s.db.First(&sess, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if time.Now().After(sess.ExpiresAt) {
		// Lazy cleanup of the stale row.
		if err := s.db.Delete(&Session{}, "token = ?", token).Error; err != nil {
			s.logger.Warn("failed to delete expired session", zap.Error(err))
		}
		return 0, ErrNotFound
	}
	return sess.UserID, nil
}

func (s *GormStore) Destroy(token string) error {
	res := s.db.Delete(&Session{}, "token = ?", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
