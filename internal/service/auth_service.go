package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/pkg/password"
	"github.com/photoshare/photoshare-backend/pkg/session"
)

type AuthService struct {
	users      UserStore
	sessions   session.Store
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthService(users UserStore, sessions session.Store, sessionTTL time.Duration, logger *zap.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = session.DefaultTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates a user with a hashed credential. The login name check and
// the unique index together guard against duplicates; a race between the two
// surfaces as a create error.
func (s *AuthService) Register(req models.RegisterRequest) error {
	exists, err := s.users.LoginNameExists(req.LoginName)
	if err != nil {
		return err
	}
	if exists {
		return ErrLoginNameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		LoginName:    req.LoginName,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Location:     req.Location,
		Description:  req.Description,
		Occupation:   req.Occupation,
	}

	if err := s.users.Create(user); err != nil {
		return err
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("login_name", user.LoginName))
	return nil
}

// Login verifies credentials and opens a session. Unknown login name and bad
// password produce the same error so the caller cannot tell which failed.
func (s *AuthService) Login(req models.LoginRequest) (models.UserProjection, string, error) {
	user, err := s.users.GetByLoginName(req.LoginName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserProjection{}, "", ErrInvalidLogin
	}
	if err != nil {
		return models.UserProjection{}, "", err
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		return models.UserProjection{}, "", ErrInvalidLogin
	}

	token, err := s.sessions.Create(user.ID, s.sessionTTL)
	if err != nil {
		return models.UserProjection{}, "", err
	}

	s.logger.Info("user logged in", zap.Uint("user_id", user.ID))
	return user.Projection(), token, nil
}

// Logout destroys the session. Returns session.ErrNotFound when there is
// none to destroy.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Destroy(token)
}
